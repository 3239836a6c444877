package project

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/logger"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
	"github.com/dmitrymomot/portfolio/pkg/sanitizer"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

type Service struct {
	repo         Repository
	storage      file.Storage
	log          *slog.Logger
	maxImageSize int64
	now          func() time.Time
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMaxImageSize(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxImageSize = n
		}
	}
}

func NewService(repo Repository, storage file.Storage, opts ...Option) *Service {
	s := &Service{
		repo:         repo,
		storage:      storage,
		log:          logger.Nop(),
		maxImageSize: file.DefaultMaxImageSize,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns all projects, or those whose stack contains tech.
func (s *Service) List(ctx context.Context, tech string) ([]Project, error) {
	tech = sanitizer.SanitizeInput(tech)
	if err := validator.ApplyFirst(validator.MaxLenString("tech", tech, validator.MaxTechStackItemLength)); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, tech)
}

func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*Project, error) {
	image, err := s.upload(ctx, in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := &Project{
		ID:          bson.NewObjectID(),
		Title:       in.Title.Text,
		Description: in.Description.Text,
		TechStack:   in.TechStack,
		ImageURL:    image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Link != nil {
		p.Link = *in.Link
	}
	if in.GithubURL != nil {
		p.GithubURL = *in.GithubURL
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.discard(ctx, image)
		return nil, err
	}

	s.log.InfoContext(ctx, "project created", logger.Resource(resourceName), logger.ResourceID(p.ID.Hex()))
	return p, nil
}

// Update applies the fields present in in. An empty link or githubUrl removes it.
func (s *Service) Update(ctx context.Context, id bson.ObjectID, in Input) (*Project, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := s.upload(ctx, in)
	if err != nil {
		return nil, err
	}

	u := mongo.NewUpdate().
		SetLocalized("title", in.Title.Changes()).
		SetLocalized("description", in.Description.Changes()).
		SetOptional("link", in.Link).
		SetOptional("githubUrl", in.GithubURL)
	if in.TechStack != nil {
		u.Set("techStack", in.TechStack)
	}
	if image != "" {
		u.Set("imageUrl", image)
	}
	if u.Empty() {
		return current, nil
	}

	p, err := s.repo.Update(ctx, id, u)
	if err != nil {
		s.discard(ctx, image)
		return nil, err
	}
	if image != "" {
		s.discard(ctx, current.ImageURL)
	}

	s.log.InfoContext(ctx, "project updated", logger.Resource(resourceName), logger.ResourceID(id.Hex()))
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.discard(ctx, current.ImageURL)

	s.log.InfoContext(ctx, "project deleted", logger.Resource(resourceName), logger.ResourceID(id.Hex()))
	return nil
}

func (s *Service) upload(ctx context.Context, in Input) (string, error) {
	if in.Image == nil {
		return "", nil
	}
	stored, err := file.Upload(ctx, s.storage, imagePrefix, in.Image, s.maxImageSize)
	if err != nil {
		return "", err
	}
	return stored.URL, nil
}

func (s *Service) discard(ctx context.Context, url string) {
	if err := file.Remove(ctx, s.storage, url); err != nil {
		s.log.WarnContext(ctx, "failed to remove image",
			logger.Resource(resourceName),
			logger.Error(err),
			slog.String("url", url),
		)
	}
}

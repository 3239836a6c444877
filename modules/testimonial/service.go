package testimonial

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/logger"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
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

func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*Testimonial, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*Testimonial, error) {
	image, err := s.upload(ctx, in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &Testimonial{
		ID:        bson.NewObjectID(),
		Name:      in.Name.Text,
		Text:      in.Text.Text,
		ImageURL:  image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Position != nil {
		t.Position = *in.Position
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.discard(ctx, image)
		return nil, err
	}

	s.log.InfoContext(ctx, "testimonial created", logger.Resource(resourceName), logger.ResourceID(t.ID.Hex()))
	return t, nil
}

func (s *Service) Update(ctx context.Context, id bson.ObjectID, in Input) (*Testimonial, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	image, err := s.upload(ctx, in)
	if err != nil {
		return nil, err
	}

	u := mongo.NewUpdate().
		SetLocalized("name", in.Name.Changes()).
		SetLocalized("text", in.Text.Changes()).
		SetOptional("position", in.Position)
	if image != "" {
		u.Set("imageUrl", image)
	}
	if u.Empty() {
		return current, nil
	}

	t, err := s.repo.Update(ctx, id, u)
	if err != nil {
		s.discard(ctx, image)
		return nil, err
	}
	if image != "" {
		s.discard(ctx, current.ImageURL)
	}

	s.log.InfoContext(ctx, "testimonial updated", logger.Resource(resourceName), logger.ResourceID(id.Hex()))
	return t, nil
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

	s.log.InfoContext(ctx, "testimonial deleted", logger.Resource(resourceName), logger.ResourceID(id.Hex()))
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

package skill

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

func (s *Service) List(ctx context.Context, category string) ([]Skill, error) {
	category = sanitizer.TrimToUpper(category)
	if category != "" {
		if err := validator.ApplyFirst(validator.InListString("category", category, Categories)); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, category)
}

func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*Skill, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*Skill, error) {
	icon, err := s.upload(ctx, in)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sk := &Skill{
		ID:         bson.NewObjectID(),
		Name:       in.Name.Text,
		Level:      in.Level.Text,
		Categories: in.Categories,
		IconURL:    icon,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, sk); err != nil {
		s.discard(ctx, icon)
		return nil, err
	}

	s.log.InfoContext(ctx, "skill created", logger.Resource(resourceName), logger.ResourceID(sk.ID.Hex()))
	return sk, nil
}

func (s *Service) Update(ctx context.Context, id bson.ObjectID, in Input) (*Skill, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	icon, err := s.upload(ctx, in)
	if err != nil {
		return nil, err
	}

	u := mongo.NewUpdate().
		SetLocalized("name", in.Name.Changes()).
		SetLocalized("level", in.Level.Changes())
	if in.Categories != nil {
		u.Set("categories", in.Categories)
	}
	if icon != "" {
		u.Set("iconUrl", icon)
	}
	if u.Empty() {
		return current, nil
	}

	sk, err := s.repo.Update(ctx, id, u)
	if err != nil {
		s.discard(ctx, icon)
		return nil, err
	}
	if icon != "" {
		s.discard(ctx, current.IconURL)
	}

	s.log.InfoContext(ctx, "skill updated", logger.Resource(resourceName), logger.ResourceID(id.Hex()))
	return sk, nil
}

func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.discard(ctx, current.IconURL)

	s.log.InfoContext(ctx, "skill deleted", logger.Resource(resourceName), logger.ResourceID(id.Hex()))
	return nil
}

// upload stores the icon when one was sent and returns its URL.
func (s *Service) upload(ctx context.Context, in Input) (string, error) {
	if in.Icon == nil {
		return "", nil
	}
	stored, err := file.Upload(ctx, s.storage, iconPrefix, in.Icon, s.maxImageSize)
	if err != nil {
		return "", err
	}
	return stored.URL, nil
}

func (s *Service) discard(ctx context.Context, url string) {
	if err := file.Remove(ctx, s.storage, url); err != nil {
		s.log.WarnContext(ctx, "failed to remove icon",
			logger.Resource(resourceName),
			logger.Error(err),
			slog.String("url", url),
		)
	}
}

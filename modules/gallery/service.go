package gallery

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

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
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

// List returns all items, or those in category when it is not empty.
func (s *Service) List(ctx context.Context, category string) ([]Item, error) {
	category = sanitizer.TrimToUpper(category)
	if category != "" {
		if err := validator.ApplyFirst(validator.InListString("category", category, Categories)); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, category)
}

func (s *Service) Get(ctx context.Context, id bson.ObjectID) (*Item, error) {
	return s.repo.Get(ctx, id)
}

// Create uploads the image and stores the item. The upload is removed again
// when the item cannot be stored.
func (s *Service) Create(ctx context.Context, in Input) (*Item, error) {
	stored, err := file.Upload(ctx, s.storage, imagePrefix, in.Image, s.maxImageSize)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := &Item{
		ID:          bson.NewObjectID(),
		Title:       in.Title.Text,
		Description: in.Description.Text,
		Categories:  in.Categories,
		ImageURL:    stored.URL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.discard(ctx, stored.URL)
		return nil, err
	}

	s.log.InfoContext(ctx, "gallery item created",
		logger.Resource(resourceName),
		logger.ResourceID(item.ID.Hex()),
	)
	return item, nil
}

// Update applies the fields present in in. Translations that were not sent
// keep their stored value. A new image replaces the old one, which is then deleted.
func (s *Service) Update(ctx context.Context, id bson.ObjectID, in Input) (*Item, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	u := mongo.NewUpdate().
		SetLocalized("title", in.Title.Changes()).
		SetLocalized("description", in.Description.Changes())
	if in.Categories != nil {
		u.Set("categories", in.Categories)
	}

	var uploaded string
	if in.Image != nil {
		stored, err := file.Upload(ctx, s.storage, imagePrefix, in.Image, s.maxImageSize)
		if err != nil {
			return nil, err
		}
		uploaded = stored.URL
		u.Set("imageUrl", uploaded)
	}

	if u.Empty() {
		return current, nil
	}

	item, err := s.repo.Update(ctx, id, u)
	if err != nil {
		s.discard(ctx, uploaded)
		return nil, err
	}
	if uploaded != "" {
		s.discard(ctx, current.ImageURL)
	}

	s.log.InfoContext(ctx, "gallery item updated",
		logger.Resource(resourceName),
		logger.ResourceID(id.Hex()),
	)
	return item, nil
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

	s.log.InfoContext(ctx, "gallery item deleted",
		logger.Resource(resourceName),
		logger.ResourceID(id.Hex()),
	)
	return nil
}

// discard removes an image that is no longer referenced. Failures are only
// logged: the item itself is already consistent.
func (s *Service) discard(ctx context.Context, url string) {
	if err := file.Remove(ctx, s.storage, url); err != nil {
		s.log.WarnContext(ctx, "failed to remove image",
			logger.Resource(resourceName),
			logger.Error(err),
			slog.String("url", url),
		)
	}
}

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/portfolio/pkg/jwt"
	"github.com/dmitrymomot/portfolio/pkg/logger"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

type Service struct {
	repo       Repository
	tokens     *jwt.Service
	log        *slog.Logger
	bcryptCost int
	strength   validator.PasswordStrengthConfig
	now        func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

func WithPasswordStrength(cfg validator.PasswordStrengthConfig) Option {
	return func(s *Service) {
		s.strength = cfg
	}
}

func NewService(repo Repository, tokens *jwt.Service, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		tokens:     tokens,
		log:        logger.Nop(),
		bcryptCost: bcrypt.DefaultCost,
		strength:   validator.DefaultPasswordStrength(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates an admin. The very first user may register anonymously;
// after that actor must be an authenticated admin.
func (s *Service) Register(ctx context.Context, req RegisterRequest, actor *jwt.Claims) (*User, error) {
	req, err := req.Validate(s.strength)
	if err != nil {
		return nil, err
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if n > 0 && (actor == nil || actor.Role != RoleAdmin) {
		return nil, ErrForbidden
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u := &User{
		ID:           bson.NewObjectID(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	attrs := []any{logger.UserID(u.ID.Hex()), logger.Component("auth"), logger.Event("register")}
	if actor != nil {
		attrs = append(attrs, slog.String("registered_by", actor.UserID()))
	}
	s.log.InfoContext(ctx, "user registered", attrs...)
	return u, nil
}

// Login checks the credentials and issues a token. Unknown emails and wrong
// passwords fail alike with ErrInvalidCredentials and take the same time.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	req, err := req.Validate()
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("get user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.log.WarnContext(ctx, "login failed",
			logger.UserID(u.ID.Hex()),
			logger.Component("auth"),
			logger.Event("login_failed"),
		)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(u.ID.Hex(), u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.repo.TouchLogin(ctx, u.ID, now); err != nil {
		s.log.WarnContext(ctx, "failed to record login",
			logger.UserID(u.ID.Hex()),
			logger.Error(err),
			logger.Component("auth"),
		)
	} else {
		u.LastLoginAt = &now
	}

	s.log.InfoContext(ctx, "user logged in",
		logger.UserID(u.ID.Hex()),
		logger.Component("auth"),
		logger.Event("login"),
	)
	return &Session{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

// Me returns the user the claims were issued for.
func (s *Service) Me(ctx context.Context, claims *jwt.Claims) (*User, error) {
	if claims == nil {
		return nil, ErrNotFound
	}
	id, err := bson.ObjectIDFromHex(claims.UserID())
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), s.bcryptCost)
	})
	return s.dummyHash
}

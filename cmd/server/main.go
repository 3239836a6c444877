package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/modules/gallery"
	"github.com/dmitrymomot/portfolio/modules/project"
	"github.com/dmitrymomot/portfolio/modules/skill"
	"github.com/dmitrymomot/portfolio/modules/testimonial"
	"github.com/dmitrymomot/portfolio/modules/user"
	"github.com/dmitrymomot/portfolio/pkg/clientip"
	"github.com/dmitrymomot/portfolio/pkg/config"
	"github.com/dmitrymomot/portfolio/pkg/environment"
	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/httpserver"
	"github.com/dmitrymomot/portfolio/pkg/i18n"
	"github.com/dmitrymomot/portfolio/pkg/jwt"
	"github.com/dmitrymomot/portfolio/pkg/logger"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
	"github.com/dmitrymomot/portfolio/pkg/ratelimit"
	"github.com/dmitrymomot/portfolio/pkg/redis"
	"github.com/dmitrymomot/portfolio/pkg/requestid"
	"github.com/dmitrymomot/portfolio/pkg/validator"
)

const startupTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg serverConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.App.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.App.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, mongoClient, err := mongo.Open(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongo", logger.Error(err), logger.Component("mongo"))
		}
	}()

	checks := map[string]httpserver.Check{"mongo": mongo.Healthcheck(mongoClient)}

	var store ratelimit.Store
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		store = ratelimit.NewRedisStore(rdb, ratelimit.WithRedisPrefix(cfg.App.ServiceName+":ratelimit:"))
		checks["redis"] = redis.Healthcheck(rdb)
	} else {
		mem := ratelimit.NewMemoryStore()
		defer func() { _ = mem.Close() }()
		store = mem
		log.Warn("REDIS_URL is not set, rate limits are kept in memory", logger.Component("ratelimit"))
	}

	var (
		storage    file.Storage
		uploadsDir string
	)
	if cfg.S3.Enabled() {
		s3, err := file.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return err
		}
		storage = s3
		checks["s3"] = s3.Healthcheck
	} else {
		local, err := file.NewLocalStorage(cfg.App.UploadDir, cfg.App.UploadURL)
		if err != nil {
			return err
		}
		storage = local
		uploadsDir = local.Dir()
		log.Warn("S3_BUCKET is not set, images are stored on local disk",
			logger.Component("file"),
			slog.String("dir", uploadsDir),
		)
	}

	tr, err := i18n.NewTranslator(ctx, i18n.Embedded(),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(env.ExposesInternals()),
	)
	if err != nil {
		return err
	}

	tokens, err := jwt.New(cfg.JWT)
	if err != nil {
		return err
	}

	apiLimiter, err := ratelimit.NewFixedWindow(store, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	if err != nil {
		return err
	}
	loginLimiter, err := ratelimit.NewFixedWindow(store, cfg.RateLimit.LoginRequests, cfg.RateLimit.LoginWindow)
	if err != nil {
		return err
	}

	galleryRepo := gallery.NewMongoRepository(db)
	skillRepo := skill.NewMongoRepository(db)
	testimonialRepo := testimonial.NewMongoRepository(db)
	projectRepo := project.NewMongoRepository(db)
	userRepo := user.NewMongoRepository(db)

	for _, ensure := range []func(context.Context) error{
		galleryRepo.EnsureIndexes,
		skillRepo.EnsureIndexes,
		testimonialRepo.EnsureIndexes,
		projectRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	maxImage := cfg.S3.MaxImageSize
	strength := validator.DefaultPasswordStrength()
	if cfg.App.PasswordMinLength > strength.MinLength {
		strength.MinLength = cfg.App.PasswordMinLength
	}
	deps := routerDeps{
		env:          env,
		log:          log,
		translator:   tr,
		errorHandler: handler.NewErrorHandler(log, tr),
		tokens:       tokens,
		apiLimiter:   apiLimiter,
		loginLimiter: loginLimiter,
		checks:       checks,
		trustProxy:   cfg.App.TrustProxyHeaders,
		gallery:      gallery.NewService(galleryRepo, storage, gallery.WithLogger(log), gallery.WithMaxImageSize(maxImage)),
		skill:        skill.NewService(skillRepo, storage, skill.WithLogger(log), skill.WithMaxImageSize(maxImage)),
		testimonial:  testimonial.NewService(testimonialRepo, storage, testimonial.WithLogger(log), testimonial.WithMaxImageSize(maxImage)),
		project:      project.NewService(projectRepo, storage, project.WithLogger(log), project.WithMaxImageSize(maxImage)),
		user:         user.NewService(userRepo, tokens,
			user.WithLogger(log),
			user.WithBcryptCost(cfg.App.BcryptCost),
			user.WithPasswordStrength(strength),
		),
	}
	if uploadsDir != "" && strings.HasPrefix(cfg.App.UploadURL, "/") {
		deps.uploadsPath = cfg.App.UploadURL
		deps.uploadsDir = uploadsDir
	}

	log.Info("starting portfolio api",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("env", env.String()),
	)
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(context.Background(), newRouter(deps))
}

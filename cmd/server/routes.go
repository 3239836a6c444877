package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/portfolio/handler"
	"github.com/dmitrymomot/portfolio/modules/gallery"
	"github.com/dmitrymomot/portfolio/modules/project"
	"github.com/dmitrymomot/portfolio/modules/skill"
	"github.com/dmitrymomot/portfolio/modules/testimonial"
	"github.com/dmitrymomot/portfolio/modules/user"
	"github.com/dmitrymomot/portfolio/pkg/clientip"
	"github.com/dmitrymomot/portfolio/pkg/environment"
	"github.com/dmitrymomot/portfolio/pkg/httpserver"
	"github.com/dmitrymomot/portfolio/pkg/i18n"
	"github.com/dmitrymomot/portfolio/pkg/jwt"
	"github.com/dmitrymomot/portfolio/pkg/ratelimit"
	"github.com/dmitrymomot/portfolio/pkg/requestid"
)

type routerDeps struct {
	env          environment.Environment
	log          *slog.Logger
	translator   *i18n.Translator
	errorHandler handler.ErrorHandler[handler.Context]
	tokens       *jwt.Service
	apiLimiter   ratelimit.Limiter
	loginLimiter ratelimit.Limiter
	checks       map[string]httpserver.Check
	trustProxy   bool

	// uploadsPath is the URL prefix local images are served under; empty
	// when images live in S3 or on an external host.
	uploadsPath string
	uploadsDir  string

	gallery     *gallery.Service
	skill       *skill.Service
	testimonial *testimonial.Service
	project     *project.Service
	user        *user.Service
}

func newRouter(d routerDeps) http.Handler {
	var ipOpts []clientip.Option
	if !d.trustProxy {
		ipOpts = append(ipOpts, clientip.WithoutProxyHeaders())
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(d.env),
		clientip.Middleware(clientip.New(ipOpts...)),
		i18n.Middleware(i18n.DefaultLangExtractor(
			i18n.WithSupportedLanguages(d.translator.SupportedLanguages()...),
		)),
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.checks))

	if d.uploadsPath != "" {
		prefix := "/" + strings.Trim(d.uploadsPath, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix, http.FileServer(http.Dir(d.uploadsDir))))
	}

	unauthorized := func(w http.ResponseWriter, r *http.Request, err error) {
		d.errorHandler(handler.NewContext(w, r), errors.Join(handler.ErrUnauthorized, err))
	}
	tooManyRequests := func(w http.ResponseWriter, r *http.Request, _ *ratelimit.Result) {
		d.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
	}
	auth := jwt.Middleware(d.tokens, jwt.WithErrorFunc(unauthorized))

	r.Route("/api", func(r chi.Router) {
		r.Use(ratelimit.Middleware(d.apiLimiter, ratelimit.ByClientIP,
			ratelimit.WithOnLimitReached(tooManyRequests),
			ratelimit.WithLogger(d.log),
		))

		r.Mount("/gallery", gallery.NewHandler(d.gallery, auth, d.errorHandler).Handle())
		r.Mount("/skills", skill.NewHandler(d.skill, auth, d.errorHandler).Handle())
		r.Mount("/testimonials", testimonial.NewHandler(d.testimonial, auth, d.errorHandler).Handle())
		r.Mount("/projects", project.NewHandler(d.project, auth, d.errorHandler).Handle())
		r.Mount("/auth", user.NewHandler(d.user, d.tokens, d.errorHandler,
			user.WithAuthErrorFunc(unauthorized),
			user.WithLoginLimiter(ratelimit.Middleware(d.loginLimiter,
				ratelimit.Prefixed("login", ratelimit.ByClientIP),
				ratelimit.WithOnLimitReached(tooManyRequests),
				ratelimit.WithLogger(d.log),
			)),
		).Handle())
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		d.errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})

	return r
}

package main

import (
	"github.com/dmitrymomot/portfolio/pkg/file"
	"github.com/dmitrymomot/portfolio/pkg/httpserver"
	"github.com/dmitrymomot/portfolio/pkg/jwt"
	"github.com/dmitrymomot/portfolio/pkg/mongo"
	"github.com/dmitrymomot/portfolio/pkg/ratelimit"
	"github.com/dmitrymomot/portfolio/pkg/redis"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"portfolio-api"`
	// UploadDir and UploadURL configure local image storage, used when no
	// S3 bucket is set. A UploadURL starting with "/" is served by this process.
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadURL string `env:"UPLOAD_URL" envDefault:"/uploads/"`
	// TrustProxyHeaders makes the client IP come from X-Forwarded-For and
	// similar headers. Disable when the API is reachable without a proxy.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"true"`

	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`
	BcryptCost        int `env:"BCRYPT_COST" envDefault:"10"`
}

type serverConfig struct {
	App       appConfig
	HTTP      httpserver.Config
	Mongo     mongo.Config
	Redis     redis.Config
	S3        file.S3Config
	JWT       jwt.Config
	RateLimit ratelimit.Config
}

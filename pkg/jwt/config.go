package jwt

import "time"

type Config struct {
	Secret       string        `env:"JWT_SECRET,required"`
	Issuer       string        `env:"JWT_ISSUER" envDefault:"portfolio"`
	TTL          time.Duration `env:"JWT_TTL" envDefault:"24h"`
	CookieName   string        `env:"JWT_COOKIE_NAME" envDefault:"token"`
	CookieDomain string        `env:"JWT_COOKIE_DOMAIN"`
	CookieSecure bool          `env:"JWT_COOKIE_SECURE" envDefault:"true"`
}

const minSecretLength = 32

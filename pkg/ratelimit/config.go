package ratelimit

import "time"

type Config struct {
	Requests      int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	Window        time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	LoginRequests int           `env:"RATE_LIMIT_LOGIN_REQUESTS" envDefault:"10"`
	LoginWindow   time.Duration `env:"RATE_LIMIT_LOGIN_WINDOW" envDefault:"15m"`
}

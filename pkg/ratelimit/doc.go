// Package ratelimit throttles requests per client with a fixed-window counter.
//
// Counters live in a Store. MemoryStore serves single-instance deployments
// and tests; RedisStore shares counters between instances. Middleware keys
// requests with a KeyFunc, sets the X-RateLimit-* headers and fails open
// when the store is unavailable.
//
//	limiter, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 100, time.Minute)
//	r.Use(ratelimit.Middleware(limiter, ratelimit.ByClientIP))
package ratelimit

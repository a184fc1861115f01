package middleware

import (
	"time"

	"finmail-classifier/pkg/log"
)

// Config holds the edge settings shared by all middlewares.
type Config struct {
	AllowedOrigins  []string
	RequestsPerMin  int
	LimiterCapacity int
	LimiterTTL      time.Duration
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.LimiterCapacity, cfg.LimiterTTL)
	}
	return mw
}

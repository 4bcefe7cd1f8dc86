package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"formation-management/pkg/log"
)

// Config tunes the shared middleware.
type Config struct {
	// RateLimitPerMin caps requests per client IP per minute on guarded
	// routes. Zero disables the limiter.
	RateLimitPerMin int
}

type Middleware struct {
	l   log.Logger
	cfg Config

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(l log.Logger, cfg Config) *Middleware {
	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}
}

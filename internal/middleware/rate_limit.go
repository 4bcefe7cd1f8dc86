package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"formation-management/pkg/response"
)

// RateLimit enforces a per-client-IP request budget on guarded routes.
// With no configured limit it is a no-op.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	if m.cfg.RateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s on %s", c.ClientIP(), c.FullPath())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m *Middleware) limiterFor(clientIP string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[clientIP]
	if !ok {
		perSecond := rate.Limit(float64(m.cfg.RateLimitPerMin) / 60.0)
		limiter = rate.NewLimiter(perSecond, m.cfg.RateLimitPerMin)
		m.limiters[clientIP] = limiter
	}
	return limiter
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-service/internal/adapter/gin/handler"
	grpcmiddleware "employee-service/internal/adapter/grpc/middleware"
)

// RateLimiter returns a Gin middleware that takes one token per request from
// a bucket keyed by method, route and client IP. Redis errors let the
// request through.
func RateLimiter(limiter *grpcmiddleware.RateLimiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		clientIP := c.ClientIP()
		key := fmt.Sprintf("ratelimit:tb:http:%s:%s:%s", c.Request.Method, route, clientIP)

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("rate limiter redis error, allowing request", zap.String("client_ip", clientIP), zap.Error(err))
		}

		if !allowed {
			cfg := limiter.Config()
			log.Warn("rate limit exceeded", zap.String("client_ip", clientIP), zap.String("route", route))
			handler.AbortWithError(c, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)", cfg.RequestsPerSecond, cfg.BurstCapacity))
			return
		}

		c.Next()
	}
}

package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-service/cmd/api/di"
	ginrouter "employee-service/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(c *di.Container, ginAddr string, l *zap.Logger) *http.Server {
	if c.Config.Logger.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := ginrouter.Options{
		ServiceName: c.Config.Logger.ServiceName,
		RateLimiter: c.RateLimiter,
		Metrics:     c.Metrics,
		Swagger:     c.Config.App.SwaggerEnabled,
	}
	if c.Registry != nil {
		opts.Gatherer = c.Registry
	}

	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(c.EmployeeHandler, c.CompanyHandler, opts, l)

	l.Info("Gin REST API configured",
		zap.String("address", ginAddr),
		zap.Bool("swagger", opts.Swagger),
		zap.Bool("metrics", opts.Gatherer != nil),
		zap.Bool("rate_limit", c.RateLimiter.Enabled()),
	)

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

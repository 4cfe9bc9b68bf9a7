package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"employee-service/api/openapi"
	"employee-service/internal/adapter/gin/handler"
	"employee-service/internal/adapter/gin/middleware"
	grpcmiddleware "employee-service/internal/adapter/grpc/middleware"
)

// Options selects the optional parts of the router.
type Options struct {
	ServiceName string
	RateLimiter *grpcmiddleware.RateLimiter // nil disables rate limiting
	Metrics     *middleware.Metrics         // nil disables request metrics
	Gatherer    prometheus.Gatherer         // served on /metrics when set
	Swagger     bool                        // serve /openapi.json and /swagger/*
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	employeeHandler *handler.EmployeeHandler,
	companyHandler *handler.CompanyHandler,
	opts Options,
	log *zap.Logger,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(opts.Metrics.Handler())
	router.Use(middleware.RateLimiter(opts.RateLimiter, log))

	router.NoRoute(func(c *gin.Context) {
		handler.AbortWithError(c, http.StatusNotFound, "route "+c.Request.URL.Path+" not found")
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": opts.ServiceName,
		})
	})

	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	if opts.Swagger {
		router.GET("/openapi.json", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", openapi.Document)
		})
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))
	}

	employees := router.Group("/employees")
	{
		employees.GET("", employeeHandler.ListEmployees)
		employees.POST("", employeeHandler.CreateEmployee)
		employees.GET("/:id", employeeHandler.GetEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	companies := router.Group("/companies")
	{
		companies.GET("", companyHandler.ListCompanies)
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:id", companyHandler.GetCompany)
		companies.GET("/:id/employees", companyHandler.GetCompanyEmployees)
		companies.PUT("/:id", companyHandler.UpdateCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)
	}

	return router
}

package di

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/cmd/api/infrastructure"
	"employee-service/internal/adapter/cache"
	"employee-service/internal/adapter/db/memory"
	"employee-service/internal/adapter/db/postgres"
	ginhandler "employee-service/internal/adapter/gin/handler"
	ginmiddleware "employee-service/internal/adapter/gin/middleware"
	grpcadapter "employee-service/internal/adapter/grpc"
	"employee-service/internal/adapter/grpc/middleware"
	"employee-service/internal/adapter/repository/cached"
	"employee-service/internal/config"
	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
	redisclient "employee-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	DB              *gorm.DB
	RedisClient     *redisclient.Client
	EmployeeUC      employeeuc.Usecase
	CompanyUC       companyuc.Usecase
	RateLimiter     *middleware.RateLimiter
	Registry        *prometheus.Registry
	Metrics         *ginmiddleware.Metrics
	EmployeeHandler *ginhandler.EmployeeHandler
	CompanyHandler  *ginhandler.CompanyHandler
	Directory       *grpcadapter.DirectoryServer
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database, nil for the memory driver
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis client, nil when disabled
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	employeeRepo, companyRepo := newRepositories(db, l)

	// Wrap repositories with the cache layer when Redis is available
	if rdb != nil {
		employeeCache := cache.NewRedisEmployeeCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		employeeRepo = cached.NewEmployeeRepository(employeeRepo, employeeCache, l)
		companyRepo = cached.NewCompanyRepository(companyRepo, employeeCache, l)
	}

	// Initialize use cases
	companyUC := companyuc.New(companyRepo, l)
	employeeUC := employeeuc.New(employeeRepo, companyRepo, l)

	// Initialize rate limiter, a no-op without Redis
	var rateLimiter *middleware.RateLimiter
	if rdb != nil {
		rateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           cfg.RateLimit.Enabled,
			},
			l,
		)
	}

	// Initialize metrics on a private registry
	var (
		registry *prometheus.Registry
		metrics  *ginmiddleware.Metrics
	)
	if cfg.App.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = ginmiddleware.NewMetrics(registry)
	}

	return &Container{
		Config:          cfg,
		Logger:          l,
		DB:              db,
		RedisClient:     rdb,
		EmployeeUC:      employeeUC,
		CompanyUC:       companyUC,
		RateLimiter:     rateLimiter,
		Registry:        registry,
		Metrics:         metrics,
		EmployeeHandler: ginhandler.NewEmployeeHandler(employeeUC, l),
		CompanyHandler:  ginhandler.NewCompanyHandler(companyUC, l),
		Directory:       grpcadapter.NewDirectoryServer(employeeUC, companyUC, l),
	}, nil
}

// companyRepository is what both usecases need from the company store.
type companyRepository interface {
	companyuc.Repository
	employeeuc.CompanyLookup
}

// newRepositories selects the GORM repositories, or the in-memory store
// when db is nil.
func newRepositories(db *gorm.DB, l *zap.Logger) (employeeuc.Repository, companyRepository) {
	if db == nil {
		store := memory.NewStore()
		return memory.NewEmployeeRepo(store), memory.NewCompanyRepo(store)
	}
	return postgres.NewEmployeeRepoPG(db, l), postgres.NewCompanyRepoPG(db, l)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}

package server

import (
	"go.uber.org/zap"
	grpc "google.golang.org/grpc"

	grpcadapter "employee-service/internal/adapter/grpc"
	"employee-service/internal/adapter/grpc/middleware"
	"employee-service/pkg/logger"
)

// SetupGRPC creates and configures the gRPC server
func SetupGRPC(directory grpcadapter.DirectoryService, l *zap.Logger, rateLimiter *middleware.RateLimiter) *grpc.Server {
	// Create gRPC server with request ID and rate limit interceptors
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			rateLimiter.UnaryInterceptor(),
		),
	)
	grpcadapter.RegisterDirectoryServer(grpcServer, directory)

	l.Info("gRPC directory service registered", zap.String("service", grpcadapter.DirectoryServiceName))

	return grpcServer
}

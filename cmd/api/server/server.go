package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"employee-service/cmd/api/di"
	"employee-service/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	GRPC   *grpc.Server // nil when gRPC is disabled
	Gin    *http.Server
}

// New creates a new server instance
func New(c *di.Container) *Server {
	s := &Server{
		Config: c.Config,
		Logger: c.Logger,
	}
	s.Gin = SetupGinServer(c, s.httpAddress(), c.Logger)
	if c.Config.App.GRPCEnabled {
		s.GRPC = SetupGRPC(c.Directory, c.Logger, c.RateLimiter)
	}
	return s
}

// Start starts the REST server and, when enabled, the gRPC server. It
// returns once both have stopped. If either fails, the other is stopped
// immediately and the first error is returned.
func (s *Server) Start() error {
	var (
		g    errgroup.Group
		once sync.Once
	)
	fail := func(err error) error {
		once.Do(s.stopAll)
		return err
	}

	if s.GRPC != nil {
		g.Go(func() error {
			if err := s.startGRPC(); err != nil {
				return fail(fmt.Errorf("failed to start gRPC server: %w", err))
			}
			return nil
		})
	}

	g.Go(func() error {
		s.Logger.Info("REST API running", zap.String("address", s.httpAddress()))
		if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fail(fmt.Errorf("failed to start REST API: %w", err))
		}
		return nil
	})

	return g.Wait()
}

// stopAll closes both servers without waiting for in-flight requests.
func (s *Server) stopAll() {
	s.Logger.Warn("stopping servers after failure")
	if s.GRPC != nil {
		s.GRPC.Stop()
	}
	if err := s.Gin.Close(); err != nil {
		s.Logger.Warn("failed to close REST API", zap.Error(err))
	}
}

// startGRPC starts the gRPC server
func (s *Server) startGRPC() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", s.grpcAddress())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.Logger.Info("gRPC server running", zap.String("address", s.grpcAddress()))
	// ErrServerStopped means Stop ran before Serve began.
	if err := s.GRPC.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// grpcAddress returns the gRPC server address
func (s *Server) grpcAddress() string {
	return ":" + s.Config.App.GRPCPort
}

// httpAddress returns the HTTP server address
func (s *Server) httpAddress() string {
	return ":" + s.Config.App.HTTPPort
}

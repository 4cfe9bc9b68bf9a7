package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"employee-service/cmd/api/di"
	grpcadapter "employee-service/internal/adapter/grpc"
	"employee-service/internal/config"
)

func newContainer(t *testing.T, grpcEnabled bool) *di.Container {
	return newContainerOnPorts(t, grpcEnabled, "8080", "50051")
}

func newContainerOnPorts(t *testing.T, grpcEnabled bool, httpPort, grpcPort string) *di.Container {
	cfg := &config.Config{
		DB: config.DatabaseConfig{Driver: config.DriverMemory},
		App: config.AppConfig{
			HTTPPort:               httpPort,
			GRPCPort:               grpcPort,
			GRPCEnabled:            grpcEnabled,
			ShutdownTimeoutSeconds: 1,
			MetricsEnabled:         true,
			SwaggerEnabled:         true,
		},
		Logger: config.LoggerConfig{Level: "debug", ServiceName: "employee-service"},
	}
	c, err := di.NewContainer(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return c
}

func TestNew_WiresServers(t *testing.T) {
	s := New(newContainer(t, true))

	require.NotNil(t, s.GRPC)
	assert.Contains(t, s.GRPC.GetServiceInfo(), grpcadapter.DirectoryServiceName)
	assert.Equal(t, ":8080", s.Gin.Addr)

	w := httptest.NewRecorder()
	s.Gin.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestNew_GRPCDisabled(t *testing.T) {
	s := New(newContainer(t, false))

	assert.Nil(t, s.GRPC)
	assert.NotNil(t, s.Gin)
}

func TestWithSignal_StopCancels(t *testing.T) {
	ctx, stop := WithSignal(context.Background(), zaptest.NewLogger(t))
	assert.NoError(t, ctx.Err())

	stop()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

// busyPort holds a TCP port for the rest of the test.
func busyPort(t *testing.T) string {
	lis, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })
	return strconv.Itoa(lis.Addr().(*net.TCPAddr).Port)
}

func startAsync(s *Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.Start() }()
	return done
}

func TestStart_GRPCListenFailureStopsREST(t *testing.T) {
	s := New(newContainerOnPorts(t, true, "0", busyPort(t)))

	select {
	case err := <-startAsync(s):
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start gRPC server")
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the gRPC listener failed")
	}
}

func TestStart_RESTListenFailureStopsGRPC(t *testing.T) {
	s := New(newContainerOnPorts(t, true, busyPort(t), "0"))

	select {
	case err := <-startAsync(s):
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start REST API")
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the REST listener failed")
	}
}

func TestStart_ReturnsNilAfterGracefulShutdown(t *testing.T) {
	s := New(newContainerOnPorts(t, true, "0", "0"))
	done := startAsync(s)

	time.Sleep(100 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Gin.Shutdown(ctx))
	s.GRPC.GracefulStop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after shutdown")
	}
}

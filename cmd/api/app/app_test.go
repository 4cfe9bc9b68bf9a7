package app

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-service/cmd/api/di"
	"employee-service/cmd/api/server"
	"employee-service/internal/config"
)

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := &config.Config{
		DB: config.DatabaseConfig{Driver: config.DriverMemory},
		App: config.AppConfig{
			HTTPPort:               "0",
			GRPCPort:               "0",
			GRPCEnabled:            true,
			ShutdownTimeoutSeconds: 2,
		},
		Logger: config.LoggerConfig{Level: "info", ServiceName: "employee-service"},
	}
	l := zap.NewNop()
	container, err := di.NewContainer(cfg, l)
	require.NoError(t, err)

	a := &App{Config: cfg, Logger: l, Server: server.New(container), Container: container}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("application did not shut down")
	}
}

func TestApp_RunReturnsServerFailure(t *testing.T) {
	busy, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := &config.Config{
		DB: config.DatabaseConfig{Driver: config.DriverMemory},
		App: config.AppConfig{
			HTTPPort:               "0",
			GRPCPort:               strconv.Itoa(busy.Addr().(*net.TCPAddr).Port),
			GRPCEnabled:            true,
			ShutdownTimeoutSeconds: 1,
		},
		Logger: config.LoggerConfig{Level: "info", ServiceName: "employee-service"},
	}
	l := zap.NewNop()
	container, err := di.NewContainer(cfg, l)
	require.NoError(t, err)

	a := &App{Config: cfg, Logger: l, Server: server.New(container), Container: container}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start gRPC server")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the gRPC listener failed")
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	assert.Equal(t, "development", getEnvironment())

	t.Setenv("APP_ENV", "production")
	assert.Equal(t, "production", getEnvironment())
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, ".", getConfigPath())

	t.Setenv("CONFIG_PATH", "/etc/employee-service")
	assert.Equal(t, "/etc/employee-service", getConfigPath())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "50051", cfg.App.GRPCPort)
	assert.Equal(t, 30, cfg.App.ShutdownTimeoutSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "employee-service", cfg.Logger.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "DB_DRIVER=sqlite\nDB_SQLITE_PATH=/tmp/staff.db\nHTTP_PORT=9000\nREDIS_CACHE_TTL=60\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/staff.db", cfg.DB.SQLitePath)
	assert.Equal(t, "9100", cfg.App.HTTPPort, "environment wins over the file")
	assert.Equal(t, 60, cfg.Redis.CacheTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.DB.Driver = "oracle" }, "DB_DRIVER"},
		{"memory needs nothing", func(c *Config) { c.DB.Driver = DriverMemory; c.DB.Host = "" }, ""},
		{"sqlite path", func(c *Config) { c.DB.Driver = DriverSQLite; c.DB.SQLitePath = "" }, "DB_SQLITE_PATH"},
		{"shutdown timeout", func(c *Config) { c.App.ShutdownTimeoutSeconds = 0 }, "APP_SHUTDOWN_TIMEOUT_SECONDS"},
		{"rate limit without redis", func(c *Config) { c.RateLimit.Enabled = true }, "REDIS_ENABLED"},
		{"grpc port", func(c *Config) { c.App.GRPCPort = "" }, "GRPC_PORT"},
		{"grpc disabled", func(c *Config) { c.App.GRPCEnabled = false; c.App.GRPCPort = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSNAndURL(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5433", User: "app", Password: "p@ss", Name: "staff", SSLMode: "disable"}

	assert.Equal(t, "host=db user=app password=p@ss dbname=staff port=5433 sslmode=disable", db.DSN())
	assert.Equal(t, "postgres://app:p%40ss@db:5433/staff?sslmode=disable", db.URL())
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employee-service/cmd/api/di"
	"employee-service/internal/config"
	"employee-service/pkg/logger"
)

// cli carries state shared by the subcommands.
type cli struct {
	configPath string
	logLevel   string
	out        io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	cmd := &cobra.Command{
		Use:           "employeectl",
		Short:         "Administer the employee-service store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&c.configPath, "config", defaultConfigPath(), "directory containing app.env")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level for the command")

	cmd.AddCommand(
		c.migrateCmd(),
		c.seedCmd(),
		c.reportCmd(),
		c.exportCmd(),
	)
	return cmd
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}

// load reads the configuration and builds a logger writing to stderr.
func (c *cli) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.NewWithConfig(logger.Config{
		Level:            c.logLevel,
		Format:           "console",
		OutputPath:       "stderr",
		SlowQuerySeconds: cfg.Logger.SlowQuerySeconds,
		ServiceName:      "employeectl",
		ServiceVersion:   cfg.Logger.ServiceVersion,
		Environment:      "cli",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg.Logger.Level = c.logLevel
	return cfg, l, nil
}

// container builds the same dependency graph as the API server. The memory
// driver is rejected because nothing would outlive the command.
func (c *cli) container() (*di.Container, error) {
	cfg, l, err := c.load()
	if err != nil {
		return nil, err
	}
	if cfg.DB.Driver == config.DriverMemory {
		return nil, fmt.Errorf("DB_DRIVER=memory keeps no data between runs")
	}
	return di.NewContainer(cfg, l)
}

func (c *cli) success(format string, args ...any) {
	color.New(color.FgGreen).Fprintf(c.out, format+"\n", args...)
}

func (c *cli) info(format string, args ...any) {
	color.New(color.FgCyan).Fprintf(c.out, format+"\n", args...)
}

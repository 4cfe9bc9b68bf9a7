package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"employee-service/internal/config"
	"employee-service/internal/platform/migrations"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|drop|version]",
		Short:     "Apply the SQL schema migrations to Postgres",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "drop", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) > 0 {
				action = args[0]
			}

			cfg, l, err := c.load()
			if err != nil {
				return err
			}
			if cfg.DB.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations target postgres, DB_DRIVER is %q", cfg.DB.Driver)
			}

			r, err := migrations.New(cfg.DB.URL(), l)
			if err != nil {
				return err
			}
			defer r.Close()

			switch action {
			case "up":
				err = r.Up()
			case "down":
				err = r.Down()
			case "drop":
				err = r.Drop()
			case "version":
				var st migrations.Status
				st, err = r.Version()
				if err == nil {
					if !st.Applied {
						c.info("no migration applied")
						return nil
					}
					c.info("version=%d dirty=%t", st.Version, st.Dirty)
					return nil
				}
			}
			if err != nil {
				return err
			}

			c.success("migration %s completed", action)
			return nil
		},
	}
}

package main

import (
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"employee-service/internal/seed"
)

func (c *cli) seedCmd() *cobra.Command {
	opts := seed.Options{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with fake companies and employees",
		Example: `  employeectl seed
  employeectl seed --companies 20 --employees-per-company 50 --unassigned 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := c.container()
			if err != nil {
				return err
			}
			defer container.Close()

			bar := progressbar.NewOptions(opts.Total(),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("[Seeding]"),
				progressbar.OptionShowCount(),
				progressbar.OptionShowIts(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionClearOnFinish(),
			)

			start := time.Now()
			res, err := seed.New(container.CompanyUC, container.EmployeeUC, container.Logger).Run(cmd.Context(), opts, bar)
			_ = bar.Finish()
			if err != nil {
				return err
			}

			c.success("created %d companies and %d employees in %v",
				res.Companies, res.Employees, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Companies, "companies", 5, "number of companies")
	cmd.Flags().IntVar(&opts.EmployeesPerCompany, "employees-per-company", 10, "employees created with each company")
	cmd.Flags().IntVar(&opts.Unassigned, "unassigned", 5, "employees without a company")
	cmd.Flags().Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "random seed")
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"employee-service/internal/export"
)

func (c *cli) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every company and employee to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := c.container()
			if err != nil {
				return err
			}
			defer container.Close()

			ctx := cmd.Context()
			companies, err := container.CompanyUC.ListCompanies(ctx)
			if err != nil {
				return err
			}
			employees, err := container.EmployeeUC.ListEmployees(ctx)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := export.WriteRoster(f, companies, employees); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			c.success("wrote %d companies and %d employees to %s", len(companies), len(employees), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "roster.xlsx", "workbook path")
	return cmd
}

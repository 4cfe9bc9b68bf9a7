package main

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
)

func (c *cli) reportCmd() *cobra.Command {
	var gender string

	cmd := &cobra.Command{
		Use:       "report [companies|employees]",
		Short:     "Print companies or employees as a table",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"companies", "employees"},
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := c.container()
			if err != nil {
				return err
			}
			defer container.Close()

			ctx := cmd.Context()
			if len(args) > 0 && args[0] == "employees" {
				var list []employeeuc.Employee
				if gender != "" {
					list, err = container.EmployeeUC.ListEmployeesByGender(ctx, employeeuc.ListByGenderRequest{Gender: gender})
				} else {
					list, err = container.EmployeeUC.ListEmployees(ctx)
				}
				if err != nil {
					return err
				}
				renderEmployees(c.out, list)
				c.info("%d employees", len(list))
				return nil
			}

			list, err := container.CompanyUC.ListCompanies(ctx)
			if err != nil {
				return err
			}
			renderCompanies(c.out, list)
			c.info("%d companies", len(list))
			return nil
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "", "only employees with this gender")
	return cmd
}

func renderCompanies(w io.Writer, companies []companyuc.Company) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Company", "Employees", "Total Salary"})
	table.SetAutoFormatHeaders(false)
	for _, c := range companies {
		total := 0
		for _, e := range c.Employees {
			total += e.Salary
		}
		table.Append([]string{
			strconv.FormatInt(c.ID, 10),
			c.CompanyName,
			strconv.Itoa(c.EmployeeNumber()),
			strconv.Itoa(total),
		})
	}
	table.Render()
}

func renderEmployees(w io.Writer, employees []employeeuc.Employee) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Age", "Gender", "Salary", "Company ID"})
	table.SetAutoFormatHeaders(false)
	for _, e := range employees {
		company := "-"
		if e.CompanyID != nil {
			company = strconv.FormatInt(*e.CompanyID, 10)
		}
		table.Append([]string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			strconv.Itoa(e.Age),
			e.Gender,
			strconv.Itoa(e.Salary),
			company,
		})
	}
	table.Render()
}

// Package export writes the company and employee roster as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
)

// Sheet names in the roster workbook.
const (
	SheetCompanies = "Companies"
	SheetEmployees = "Employees"
)

var (
	companyHeaders  = []string{"ID", "Company", "Employees", "Total Salary"}
	employeeHeaders = []string{"ID", "Name", "Age", "Gender", "Salary", "Company"}
)

// WriteRoster writes one sheet of companies and one of employees to w.
// Employees without a company leave the Company cell empty.
func WriteRoster(w io.Writer, companies []companyuc.Company, employees []employeeuc.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	names := make(map[int64]string, len(companies))
	if _, err := f.NewSheet(SheetCompanies); err != nil {
		return err
	}
	if err := writeRow(f, SheetCompanies, 1, toCells(companyHeaders), headerStyle); err != nil {
		return err
	}
	for i, c := range companies {
		names[c.ID] = c.CompanyName
		total := 0
		for _, e := range c.Employees {
			total += e.Salary
		}
		if err := writeRow(f, SheetCompanies, i+2, []any{c.ID, c.CompanyName, c.EmployeeNumber(), total}, 0); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetEmployees); err != nil {
		return err
	}
	if err := writeRow(f, SheetEmployees, 1, toCells(employeeHeaders), headerStyle); err != nil {
		return err
	}
	for i, e := range employees {
		values := []any{e.ID, e.Name, e.Age, e.Gender, e.Salary}
		if e.CompanyID != nil {
			values = append(values, names[*e.CompanyID])
		}
		if err := writeRow(f, SheetEmployees, i+2, values, 0); err != nil {
			return err
		}
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// writeRow writes values from column A of row. A zero style leaves the
// default formatting.
func writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	for i, val := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

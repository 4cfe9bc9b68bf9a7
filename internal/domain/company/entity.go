package company

import "employee-service/internal/domain/employee"

// Company represents a company entity that owns a collection of employees.
type Company struct {
	ID          int64               // ID is assigned by the store on first persist
	CompanyName string              // CompanyName is the display name
	Employees   []employee.Employee // Employees ordered by employee ID
}

// EmployeeIDs returns the IDs of the company's employees.
func (c *Company) EmployeeIDs() []int64 {
	ids := make([]int64, 0, len(c.Employees))
	for _, e := range c.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}

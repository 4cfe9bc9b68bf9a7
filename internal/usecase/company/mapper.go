package company

import (
	domain "employee-service/internal/domain/company"
	"employee-service/internal/domain/employee"
	employeeuc "employee-service/internal/usecase/employee"
)

// ToDTO maps a persisted company into its DTO.
func ToDTO(c domain.Company) Company {
	return Company{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		Employees:   employeeuc.ToDTOs(c.Employees),
	}
}

// ToDTOs maps a slice of persisted companies, never returning nil.
func ToDTOs(in []domain.Company) []Company {
	out := make([]Company, len(in))
	for i, c := range in {
		out[i] = ToDTO(c)
	}
	return out
}

func fromCreateRequest(in CreateCompanyRequest) *domain.Company {
	c := &domain.Company{
		CompanyName: in.CompanyName,
		Employees:   make([]employee.Employee, 0, len(in.Employees)),
	}
	for _, e := range in.Employees {
		c.Employees = append(c.Employees, employee.Employee{
			Name:   e.Name,
			Age:    e.Age,
			Gender: e.Gender,
			Salary: e.Salary,
		})
	}
	return c
}

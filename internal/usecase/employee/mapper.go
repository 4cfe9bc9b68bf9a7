package employee

import domain "employee-service/internal/domain/employee"

// ToDTO maps a persisted employee into its DTO.
func ToDTO(e domain.Employee) Employee {
	return Employee{
		ID:        e.ID,
		Name:      e.Name,
		Age:       e.Age,
		Gender:    e.Gender,
		Salary:    e.Salary,
		CompanyID: e.CompanyID,
	}
}

// ToDTOs maps a slice of persisted employees, never returning nil.
func ToDTOs(in []domain.Employee) []Employee {
	out := make([]Employee, len(in))
	for i, e := range in {
		out[i] = ToDTO(e)
	}
	return out
}

func fromCreateRequest(in CreateEmployeeRequest) *domain.Employee {
	return &domain.Employee{
		Name:      in.Name,
		Age:       in.Age,
		Gender:    in.Gender,
		Salary:    in.Salary,
		CompanyID: in.CompanyID,
	}
}

// applyUpdate copies the mutable fields onto an existing employee. ID and
// CompanyID are left alone.
func applyUpdate(dst *domain.Employee, in UpdateEmployeeRequest) {
	dst.Name = in.Name
	dst.Age = in.Age
	dst.Gender = in.Gender
	dst.Salary = in.Salary
}

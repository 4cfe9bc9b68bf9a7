package company

import (
	"employee-service/internal/domain/pagination"
	employeeuc "employee-service/internal/usecase/employee"
)

// NewEmployee is an employee created together with its company.
type NewEmployee struct {
	Name   string `validate:"max=255"`
	Age    int
	Gender string `validate:"max=64"`
	Salary int
}

// CreateCompanyRequest represents the request payload for creating a company.
type CreateCompanyRequest struct {
	CompanyName string        `validate:"max=255"`
	Employees   []NewEmployee `validate:"dive"`
}

// UpdateCompanyRequest renames an existing company.
type UpdateCompanyRequest struct {
	ID          int64
	CompanyName string `validate:"max=255"`
}

// GetCompanyRequest represents the request payload for retrieving a company.
type GetCompanyRequest struct {
	ID int64
}

// DeleteCompanyRequest represents the request payload for deleting a company.
type DeleteCompanyRequest struct {
	ID int64
}

// ListPageRequest selects a 1-based page of companies ordered by ID.
type ListPageRequest struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=1000"`
}

// ListPageResponse is one page of companies with pagination totals.
type ListPageResponse struct {
	Companies  []Company
	Pagination *pagination.Info
}

// Company is the company DTO. Employees is never nil.
type Company struct {
	ID          int64
	CompanyName string
	Employees   []employeeuc.Employee
}

// EmployeeNumber is the number of employees the company owns.
func (c Company) EmployeeNumber() int {
	return len(c.Employees)
}

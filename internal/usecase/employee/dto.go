package employee

import "employee-service/internal/domain/pagination"

// CreateEmployeeRequest represents the request payload for creating a new employee.
type CreateEmployeeRequest struct {
	Name      string `validate:"max=255"`
	Age       int
	Gender    string `validate:"max=64"`
	Salary    int
	CompanyID *int64
}

// UpdateEmployeeRequest overwrites every mutable field of an existing employee.
type UpdateEmployeeRequest struct {
	ID     int64
	Name   string `validate:"max=255"`
	Age    int
	Gender string `validate:"max=64"`
	Salary int
}

// GetEmployeeRequest represents the request payload for retrieving an employee.
type GetEmployeeRequest struct {
	ID int64
}

// DeleteEmployeeRequest represents the request payload for deleting an employee.
type DeleteEmployeeRequest struct {
	ID int64
}

// ListByGenderRequest filters employees by exact gender value.
type ListByGenderRequest struct {
	Gender string
}

// ListPageRequest selects a 1-based page of employees ordered by ID.
type ListPageRequest struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=1000"`
}

// ListPageResponse is one page of employees with pagination totals.
type ListPageResponse struct {
	Employees  []Employee
	Pagination *pagination.Info
}

// Employee represents an employee DTO (Data Transfer Object) for API responses.
type Employee struct {
	ID        int64
	Name      string
	Age       int
	Gender    string
	Salary    int
	CompanyID *int64
}

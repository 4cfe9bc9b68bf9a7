package employee

import "context"

// Usecase defines the interface for employee business logic operations.
type Usecase interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	CreateEmployee(ctx context.Context, in CreateEmployeeRequest) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeRequest) (*Employee, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeRequest) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeRequest) error
	ListEmployeesByGender(ctx context.Context, in ListByGenderRequest) ([]Employee, error)
	ListEmployeesPage(ctx context.Context, in ListPageRequest) (*ListPageResponse, error)
}

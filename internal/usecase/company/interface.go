package company

import (
	"context"

	employeeuc "employee-service/internal/usecase/employee"
)

// Usecase defines the interface for company business logic operations.
type Usecase interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	CreateCompany(ctx context.Context, in CreateCompanyRequest) (*Company, error)
	GetCompany(ctx context.Context, in GetCompanyRequest) (*Company, error)
	GetCompanyEmployees(ctx context.Context, in GetCompanyRequest) ([]employeeuc.Employee, error)
	UpdateCompany(ctx context.Context, in UpdateCompanyRequest) (*Company, error)
	DeleteCompany(ctx context.Context, in DeleteCompanyRequest) error
	ListCompaniesPage(ctx context.Context, in ListPageRequest) (*ListPageResponse, error)
}

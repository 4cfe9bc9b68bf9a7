package company

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "employee-service/internal/domain/company"
	"employee-service/internal/domain/pagination"
	employeeuc "employee-service/internal/usecase/employee"
	apperrors "employee-service/pkg/errors"
	"employee-service/pkg/validation"
)

// Repository defines the interface for company data access operations.
// Implementations return domain.ErrNotFound when an id does not resolve and
// load Employees ordered by employee ID.
type Repository interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)                                  // Create a company and its nested employees
	GetByID(ctx context.Context, id int64) (*domain.Company, error)                                          // Retrieve company with employees
	Update(ctx context.Context, c *domain.Company) (*domain.Company, error)                                  // Overwrite the company name
	Delete(ctx context.Context, id int64) error                                                              // Delete company and its employees, no-op when missing
	List(ctx context.Context) ([]domain.Company, error)                                                      // List all companies ordered by ID
	ListPage(ctx context.Context, page pagination.Page) (companies []domain.Company, total int64, err error) // List one page ordered by ID
	Exists(ctx context.Context, id int64) (bool, error)                                                      // Report whether a company exists
}

// Service implements the business logic for company management operations.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

var _ Usecase = (*Service)(nil)

// New creates a new company Service.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validation.New()}
}

// ListCompanies returns every company with its employees, ordered by ID.
func (s *Service) ListCompanies(ctx context.Context) ([]Company, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list companies", zap.Error(err))
		return nil, err
	}
	return ToDTOs(companies), nil
}

// CreateCompany persists a company together with any nested employees.
func (s *Service) CreateCompany(ctx context.Context, in CreateCompanyRequest) (*Company, error) {
	s.log.Info("creating company", zap.String("company_name", in.CompanyName), zap.Int("employees", len(in.Employees)))

	if err := validation.Struct(s.validate, in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, fromCreateRequest(in))
	if err != nil {
		s.log.Error("failed to create company", zap.Error(err))
		return nil, err
	}

	dto := ToDTO(*created)
	return &dto, nil
}

// GetCompany retrieves a company by ID.
func (s *Service) GetCompany(ctx context.Context, in GetCompanyRequest) (*Company, error) {
	c, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to get company")
	}

	dto := ToDTO(*c)
	return &dto, nil
}

// GetCompanyEmployees returns the employees of a company ordered by ID.
func (s *Service) GetCompanyEmployees(ctx context.Context, in GetCompanyRequest) ([]employeeuc.Employee, error) {
	c, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to get company employees")
	}
	return employeeuc.ToDTOs(c.Employees), nil
}

// UpdateCompany overwrites the name of an existing company. Employees are
// not touched.
func (s *Service) UpdateCompany(ctx context.Context, in UpdateCompanyRequest) (*Company, error) {
	s.log.Info("updating company", zap.Int64("id", in.ID), zap.String("company_name", in.CompanyName))

	if err := validation.Struct(s.validate, in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to load company for update")
	}

	existing.CompanyName = in.CompanyName

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to update company")
	}

	dto := ToDTO(*updated)
	return &dto, nil
}

// DeleteCompany removes a company and its employees. Deleting a missing ID
// is a no-op.
func (s *Service) DeleteCompany(ctx context.Context, in DeleteCompanyRequest) error {
	s.log.Info("deleting company", zap.Int64("id", in.ID))

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		s.log.Error("failed to delete company", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}

// ListCompaniesPage returns one 1-based page of companies ordered by ID.
func (s *Service) ListCompaniesPage(ctx context.Context, in ListPageRequest) (*ListPageResponse, error) {
	if err := validation.Struct(s.validate, in); err != nil {
		s.log.Warn("invalid page request", zap.Int("page", in.Page), zap.Int("page_size", in.PageSize), zap.Error(err))
		return nil, err
	}

	companies, total, err := s.repo.ListPage(ctx, pagination.Page{Number: in.Page, Size: in.PageSize})
	if err != nil {
		s.log.Error("failed to list companies page", zap.Int("page", in.Page), zap.Int("page_size", in.PageSize), zap.Error(err))
		return nil, err
	}

	return &ListPageResponse{
		Companies:  ToDTOs(companies),
		Pagination: pagination.NewInfo(total, int64(in.Page), int64(in.PageSize)),
	}, nil
}

func (s *Service) notFoundOr(err error, id int64, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Warn("company not found", zap.Int64("id", id))
		return apperrors.NewNotFoundError("company", domain.NotFoundMessage(id))
	}
	s.log.Error(msg, zap.Int64("id", id), zap.Error(err))
	return err
}

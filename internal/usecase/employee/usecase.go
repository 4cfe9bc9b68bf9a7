package employee

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	companydomain "employee-service/internal/domain/company"
	domain "employee-service/internal/domain/employee"
	"employee-service/internal/domain/pagination"
	apperrors "employee-service/pkg/errors"
	"employee-service/pkg/validation"
)

// Repository defines the interface for employee data access operations.
// Implementations return domain.ErrNotFound when an id does not resolve.
type Repository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)                                 // Create a new employee
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)                                          // Retrieve employee by ID
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)                                 // Overwrite an existing employee
	Delete(ctx context.Context, id int64) error                                                               // Delete employee by ID, no-op when missing
	List(ctx context.Context) ([]domain.Employee, error)                                                      // List all employees ordered by ID
	ListByGender(ctx context.Context, gender string) ([]domain.Employee, error)                               // List employees with an exact gender
	ListPage(ctx context.Context, page pagination.Page) (employees []domain.Employee, total int64, err error) // List one page ordered by ID
}

// CompanyLookup reports whether a company exists. It is used to reject
// employees that reference an unknown company.
type CompanyLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service implements the business logic for employee management operations.
type Service struct {
	repo      Repository          // Repository for data access
	companies CompanyLookup       // Optional company existence check
	log       *zap.Logger         // Logger for structured logging
	validate  *validator.Validate // Validator for request validation
}

var _ Usecase = (*Service)(nil)

// New creates a new employee Service. companies may be nil, in which case
// CompanyID on create is stored without an existence check.
func New(r Repository, companies CompanyLookup, log *zap.Logger) *Service {
	return &Service{repo: r, companies: companies, log: log, validate: validation.New()}
}

// ListEmployees returns every employee ordered by ID.
func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list employees", zap.Error(err))
		return nil, err
	}
	return ToDTOs(employees), nil
}

// CreateEmployee persists a new employee and returns it with its assigned ID.
func (s *Service) CreateEmployee(ctx context.Context, in CreateEmployeeRequest) (*Employee, error) {
	s.log.Info("creating employee", zap.String("name", in.Name), zap.String("gender", in.Gender))

	if err := validation.Struct(s.validate, in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	if in.CompanyID != nil && s.companies != nil {
		exists, err := s.companies.Exists(ctx, *in.CompanyID)
		if err != nil {
			s.log.Error("failed to check company", zap.Int64("company_id", *in.CompanyID), zap.Error(err))
			return nil, err
		}
		if !exists {
			s.log.Warn("company not found for new employee", zap.Int64("company_id", *in.CompanyID))
			return nil, apperrors.NewNotFoundError("company", companydomain.NotFoundMessage(*in.CompanyID))
		}
	}

	created, err := s.repo.Create(ctx, fromCreateRequest(in))
	if err != nil {
		s.log.Error("failed to create employee", zap.Error(err))
		return nil, err
	}

	dto := ToDTO(*created)
	return &dto, nil
}

// GetEmployee retrieves an employee by ID.
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeRequest) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to get employee")
	}

	dto := ToDTO(*e)
	return &dto, nil
}

// UpdateEmployee overwrites name, age, gender and salary of an existing
// employee. The store is left untouched when the employee does not exist.
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeRequest) (*Employee, error) {
	s.log.Info("updating employee", zap.Int64("id", in.ID), zap.String("name", in.Name))

	if err := validation.Struct(s.validate, in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to load employee for update")
	}

	applyUpdate(existing, in)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, s.notFoundOr(err, in.ID, "failed to update employee")
	}

	dto := ToDTO(*updated)
	return &dto, nil
}

// DeleteEmployee removes an employee. Deleting a missing ID is a no-op.
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeRequest) error {
	s.log.Info("deleting employee", zap.Int64("id", in.ID))

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		s.log.Error("failed to delete employee", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}

// ListEmployeesByGender returns employees whose gender equals in.Gender exactly.
func (s *Service) ListEmployeesByGender(ctx context.Context, in ListByGenderRequest) ([]Employee, error) {
	employees, err := s.repo.ListByGender(ctx, in.Gender)
	if err != nil {
		s.log.Error("failed to list employees by gender", zap.String("gender", in.Gender), zap.Error(err))
		return nil, err
	}
	return ToDTOs(employees), nil
}

// ListEmployeesPage returns the 1-based page [(page-1)*pageSize, page*pageSize)
// of employees ordered by ID.
func (s *Service) ListEmployeesPage(ctx context.Context, in ListPageRequest) (*ListPageResponse, error) {
	if err := validation.Struct(s.validate, in); err != nil {
		s.log.Warn("invalid page request", zap.Int("page", in.Page), zap.Int("page_size", in.PageSize), zap.Error(err))
		return nil, err
	}

	s.log.Debug("listing employees page", zap.Int("page", in.Page), zap.Int("page_size", in.PageSize))

	employees, total, err := s.repo.ListPage(ctx, pagination.Page{Number: in.Page, Size: in.PageSize})
	if err != nil {
		s.log.Error("failed to list employees page", zap.Int("page", in.Page), zap.Int("page_size", in.PageSize), zap.Error(err))
		return nil, err
	}

	return &ListPageResponse{
		Employees:  ToDTOs(employees),
		Pagination: pagination.NewInfo(total, int64(in.Page), int64(in.PageSize)),
	}, nil
}

// notFoundOr converts domain.ErrNotFound into a NotFoundError and logs any
// other failure with msg.
func (s *Service) notFoundOr(err error, id int64, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		s.log.Warn("employee not found", zap.Int64("id", id))
		return apperrors.NewNotFoundError("employee", domain.NotFoundMessage(id))
	}
	s.log.Error(msg, zap.Int64("id", id), zap.Error(err))
	return err
}

package handler

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
)

// MockEmployeeUsecase is a mock implementation of employee.Usecase
type MockEmployeeUsecase struct {
	mock.Mock
}

func (m *MockEmployeeUsecase) ListEmployees(ctx context.Context) ([]employeeuc.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employeeuc.Employee), args.Error(1)
}

func (m *MockEmployeeUsecase) CreateEmployee(ctx context.Context, in employeeuc.CreateEmployeeRequest) (*employeeuc.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeuc.Employee), args.Error(1)
}

func (m *MockEmployeeUsecase) GetEmployee(ctx context.Context, in employeeuc.GetEmployeeRequest) (*employeeuc.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeuc.Employee), args.Error(1)
}

func (m *MockEmployeeUsecase) UpdateEmployee(ctx context.Context, in employeeuc.UpdateEmployeeRequest) (*employeeuc.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeuc.Employee), args.Error(1)
}

func (m *MockEmployeeUsecase) DeleteEmployee(ctx context.Context, in employeeuc.DeleteEmployeeRequest) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockEmployeeUsecase) ListEmployeesByGender(ctx context.Context, in employeeuc.ListByGenderRequest) ([]employeeuc.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employeeuc.Employee), args.Error(1)
}

func (m *MockEmployeeUsecase) ListEmployeesPage(ctx context.Context, in employeeuc.ListPageRequest) (*employeeuc.ListPageResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeuc.ListPageResponse), args.Error(1)
}

// MockCompanyUsecase is a mock implementation of company.Usecase
type MockCompanyUsecase struct {
	mock.Mock
}

func (m *MockCompanyUsecase) ListCompanies(ctx context.Context) ([]companyuc.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]companyuc.Company), args.Error(1)
}

func (m *MockCompanyUsecase) CreateCompany(ctx context.Context, in companyuc.CreateCompanyRequest) (*companyuc.Company, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*companyuc.Company), args.Error(1)
}

func (m *MockCompanyUsecase) GetCompany(ctx context.Context, in companyuc.GetCompanyRequest) (*companyuc.Company, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*companyuc.Company), args.Error(1)
}

func (m *MockCompanyUsecase) GetCompanyEmployees(ctx context.Context, in companyuc.GetCompanyRequest) ([]employeeuc.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]employeeuc.Employee), args.Error(1)
}

func (m *MockCompanyUsecase) UpdateCompany(ctx context.Context, in companyuc.UpdateCompanyRequest) (*companyuc.Company, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*companyuc.Company), args.Error(1)
}

func (m *MockCompanyUsecase) DeleteCompany(ctx context.Context, in companyuc.DeleteCompanyRequest) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockCompanyUsecase) ListCompaniesPage(ctx context.Context, in companyuc.ListPageRequest) (*companyuc.ListPageResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*companyuc.ListPageResponse), args.Error(1)
}

func setupEmployeeTest(t *testing.T) (*gin.Engine, *MockEmployeeUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockEmployeeUsecase)
	h := NewEmployeeHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/employees", h.ListEmployees)
	r.POST("/employees", h.CreateEmployee)
	r.GET("/employees/:id", h.GetEmployee)
	r.PUT("/employees/:id", h.UpdateEmployee)
	r.DELETE("/employees/:id", h.DeleteEmployee)
	return r, mockUsecase
}

func setupCompanyTest(t *testing.T) (*gin.Engine, *MockCompanyUsecase) {
	gin.SetMode(gin.TestMode)
	mockUsecase := new(MockCompanyUsecase)
	h := NewCompanyHandler(mockUsecase, zaptest.NewLogger(t))

	r := gin.New()
	r.GET("/companies", h.ListCompanies)
	r.POST("/companies", h.CreateCompany)
	r.GET("/companies/:id", h.GetCompany)
	r.GET("/companies/:id/employees", h.GetCompanyEmployees)
	r.PUT("/companies/:id", h.UpdateCompany)
	r.DELETE("/companies/:id", h.DeleteCompany)
	return r, mockUsecase
}

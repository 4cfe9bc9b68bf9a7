package grpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"employee-service/internal/domain/pagination"
	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
	apperrors "employee-service/pkg/errors"
)

// DirectoryServer implements the employee.v1.Directory gRPC service on top
// of the employee and company usecases. Messages are google.protobuf.Struct
// documents carrying the same fields as the REST API.
type DirectoryServer struct {
	employees employeeuc.Usecase
	companies companyuc.Usecase
	log       *zap.Logger
}

// NewDirectoryServer creates a new gRPC directory server
func NewDirectoryServer(employees employeeuc.Usecase, companies companyuc.Usecase, log *zap.Logger) *DirectoryServer {
	return &DirectoryServer{employees: employees, companies: companies, log: log}
}

// ListEmployees returns every employee as {"employees": [...]}.
func (s *DirectoryServer) ListEmployees(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.employees.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"employees": employeeValues(list)})
}

// CreateEmployee stores a new employee and returns it with its ID.
func (s *DirectoryServer) CreateEmployee(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	req := employeeuc.CreateEmployeeRequest{
		Name:      f.text("name"),
		Age:       f.integer("age"),
		Gender:    f.text("gender"),
		Salary:    f.integer("salary"),
		CompanyID: f.optionalInteger64("companyId"),
	}
	if f.err != nil {
		return nil, f.err
	}

	e, err := s.employees.CreateEmployee(ctx, req)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(employeeValue(*e))
}

// GetEmployee handles gRPC GetEmployee request
func (s *DirectoryServer) GetEmployee(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(in)
	if err != nil {
		return nil, err
	}
	e, err := s.employees.GetEmployee(ctx, employeeuc.GetEmployeeRequest{ID: id})
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(employeeValue(*e))
}

// UpdateEmployee handles gRPC UpdateEmployee request
func (s *DirectoryServer) UpdateEmployee(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	req := employeeuc.UpdateEmployeeRequest{
		ID:     f.integer64("id"),
		Name:   f.text("name"),
		Age:    f.integer("age"),
		Gender: f.text("gender"),
		Salary: f.integer("salary"),
	}
	if f.err != nil {
		return nil, f.err
	}

	e, err := s.employees.UpdateEmployee(ctx, req)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(employeeValue(*e))
}

// DeleteEmployee handles gRPC DeleteEmployee request
func (s *DirectoryServer) DeleteEmployee(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	id, err := idField(in)
	if err != nil {
		return nil, err
	}
	if err := s.employees.DeleteEmployee(ctx, employeeuc.DeleteEmployeeRequest{ID: id}); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// ListEmployeesByGender handles gRPC ListEmployeesByGender request
func (s *DirectoryServer) ListEmployeesByGender(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	gender := f.text("gender")
	if f.err != nil {
		return nil, f.err
	}

	list, err := s.employees.ListEmployeesByGender(ctx, employeeuc.ListByGenderRequest{Gender: gender})
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"employees": employeeValues(list)})
}

// ListEmployeesPage handles gRPC ListEmployeesPage request
func (s *DirectoryServer) ListEmployeesPage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	req := employeeuc.ListPageRequest{Page: f.integer("page"), PageSize: f.integer("pageSize")}
	if f.err != nil {
		return nil, f.err
	}

	resp, err := s.employees.ListEmployeesPage(ctx, req)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{
		"employees":  employeeValues(resp.Employees),
		"pagination": paginationValue(resp.Pagination),
	})
}

// ListCompanies handles gRPC ListCompanies request
func (s *DirectoryServer) ListCompanies(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list, err := s.companies.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"companies": companyValues(list)})
}

// CreateCompany stores a company together with its initial employees.
func (s *DirectoryServer) CreateCompany(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	req := companyuc.CreateCompanyRequest{CompanyName: f.text("companyName")}
	if f.err != nil {
		return nil, f.err
	}
	for i, v := range in.GetFields()["employees"].GetListValue().GetValues() {
		ef := readFields(v.GetStructValue(), fmt.Sprintf("employees[%d].", i))
		req.Employees = append(req.Employees, companyuc.NewEmployee{
			Name:   ef.text("name"),
			Age:    ef.integer("age"),
			Gender: ef.text("gender"),
			Salary: ef.integer("salary"),
		})
		if ef.err != nil {
			return nil, ef.err
		}
	}

	c, err := s.companies.CreateCompany(ctx, req)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(companyValue(*c))
}

// GetCompany handles gRPC GetCompany request
func (s *DirectoryServer) GetCompany(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(in)
	if err != nil {
		return nil, err
	}
	c, err := s.companies.GetCompany(ctx, companyuc.GetCompanyRequest{ID: id})
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(companyValue(*c))
}

// GetCompanyEmployees handles gRPC GetCompanyEmployees request
func (s *DirectoryServer) GetCompanyEmployees(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(in)
	if err != nil {
		return nil, err
	}
	list, err := s.companies.GetCompanyEmployees(ctx, companyuc.GetCompanyRequest{ID: id})
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"employees": employeeValues(list)})
}

// UpdateCompany renames a company. Employees in the request are ignored.
func (s *DirectoryServer) UpdateCompany(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	req := companyuc.UpdateCompanyRequest{ID: f.integer64("id"), CompanyName: f.text("companyName")}
	if f.err != nil {
		return nil, f.err
	}

	c, err := s.companies.UpdateCompany(ctx, req)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(companyValue(*c))
}

// DeleteCompany handles gRPC DeleteCompany request
func (s *DirectoryServer) DeleteCompany(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error) {
	id, err := idField(in)
	if err != nil {
		return nil, err
	}
	if err := s.companies.DeleteCompany(ctx, companyuc.DeleteCompanyRequest{ID: id}); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// ListCompaniesPage handles gRPC ListCompaniesPage request
func (s *DirectoryServer) ListCompaniesPage(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f := readFields(in, "")
	req := companyuc.ListPageRequest{Page: f.integer("page"), PageSize: f.integer("pageSize")}
	if f.err != nil {
		return nil, f.err
	}

	resp, err := s.companies.ListCompaniesPage(ctx, req)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{
		"companies":  companyValues(resp.Companies),
		"pagination": paginationValue(resp.Pagination),
	})
}

func employeeValue(e employeeuc.Employee) map[string]any {
	m := map[string]any{
		"id":     e.ID,
		"name":   e.Name,
		"age":    e.Age,
		"gender": e.Gender,
		"salary": e.Salary,
	}
	if e.CompanyID != nil {
		m["companyId"] = *e.CompanyID
	}
	return m
}

func employeeValues(list []employeeuc.Employee) []any {
	out := make([]any, len(list))
	for i, e := range list {
		out[i] = employeeValue(e)
	}
	return out
}

func companyValue(c companyuc.Company) map[string]any {
	return map[string]any{
		"id":             c.ID,
		"companyName":    c.CompanyName,
		"employeeNumber": c.EmployeeNumber(),
		"employees":      employeeValues(c.Employees),
	}
}

func companyValues(list []companyuc.Company) []any {
	out := make([]any, len(list))
	for i, c := range list {
		out[i] = companyValue(c)
	}
	return out
}

func paginationValue(p *pagination.Info) map[string]any {
	if p == nil {
		return nil
	}
	return map[string]any{
		"total":      p.Total,
		"page":       p.Page,
		"limit":      p.Limit,
		"totalPages": p.TotalPages,
	}
}

// toStatus maps usecase errors onto gRPC status codes.
func toStatus(err error) error {
	return apperrors.ToGRPC(err)
}

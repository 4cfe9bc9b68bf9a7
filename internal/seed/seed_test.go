package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"employee-service/internal/adapter/db/memory"
	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
)

type countingProgress struct{ n int }

func (p *countingProgress) Add(n int) error {
	p.n += n
	return nil
}

func newServices(t *testing.T) (*companyuc.Service, *employeeuc.Service) {
	log := zaptest.NewLogger(t)
	store := memory.NewStore()
	companies := memory.NewCompanyRepo(store)
	return companyuc.New(companies, log), employeeuc.New(memory.NewEmployeeRepo(store), companies, log)
}

func TestSeeder_Run(t *testing.T) {
	companies, employees := newServices(t)
	s := New(companies, employees, zaptest.NewLogger(t))
	opts := Options{Companies: 3, EmployeesPerCompany: 4, Unassigned: 2, Seed: 7}
	progress := &countingProgress{}

	res, err := s.Run(context.Background(), opts, progress)
	require.NoError(t, err)

	assert.Equal(t, Result{Companies: 3, Employees: 14}, res)
	assert.Equal(t, opts.Total(), progress.n)

	ctx := context.Background()
	listed, err := companies.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for _, c := range listed {
		assert.NotEmpty(t, c.CompanyName)
		assert.Equal(t, 4, c.EmployeeNumber())
	}

	all, err := employees.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 14)
	for _, e := range all {
		assert.Contains(t, []string{"female", "male"}, e.Gender)
		assert.GreaterOrEqual(t, e.Age, 18)
		assert.NotEmpty(t, e.Name)
	}
}

func TestSeeder_Deterministic(t *testing.T) {
	names := func() []string {
		companies, employees := newServices(t)
		_, err := New(companies, employees, zaptest.NewLogger(t)).Run(context.Background(), Options{Unassigned: 5, Seed: 42}, nil)
		require.NoError(t, err)
		all, err := employees.ListEmployees(context.Background())
		require.NoError(t, err)
		out := make([]string, len(all))
		for i, e := range all {
			out[i] = e.Name
		}
		return out
	}

	assert.Equal(t, names(), names())
}

func TestSeeder_NegativeCounts(t *testing.T) {
	companies, employees := newServices(t)
	_, err := New(companies, employees, zaptest.NewLogger(t)).Run(context.Background(), Options{Companies: -1}, nil)
	assert.Error(t, err)
}

// Package seed fills the store with fake companies and employees.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jaswdr/faker"
	"go.uber.org/zap"

	companyuc "employee-service/internal/usecase/company"
	employeeuc "employee-service/internal/usecase/employee"
)

// Options controls how much data Run creates.
type Options struct {
	Companies           int
	EmployeesPerCompany int
	Unassigned          int   // employees created without a company
	Seed                int64 // same seed, same data
}

// Progress is notified after every created record.
type Progress interface {
	Add(n int) error
}

// Result counts the records Run created.
type Result struct {
	Companies int
	Employees int
}

// Seeder creates fake data through the usecases so validation and cache
// invalidation apply as for API traffic.
type Seeder struct {
	companies companyuc.Usecase
	employees employeeuc.Usecase
	log       *zap.Logger
}

// New creates a Seeder.
func New(companies companyuc.Usecase, employees employeeuc.Usecase, log *zap.Logger) *Seeder {
	return &Seeder{companies: companies, employees: employees, log: log}
}

// Total is the number of records opts produces.
func (o Options) Total() int {
	return o.Companies*(1+o.EmployeesPerCompany) + o.Unassigned
}

// Run creates opts.Companies companies, each with opts.EmployeesPerCompany
// employees, then opts.Unassigned employees without a company.
func (s *Seeder) Run(ctx context.Context, opts Options, progress Progress) (Result, error) {
	if opts.Companies < 0 || opts.EmployeesPerCompany < 0 || opts.Unassigned < 0 {
		return Result{}, fmt.Errorf("seed counts must not be negative")
	}

	fake := faker.NewWithSeed(rand.NewSource(opts.Seed))
	var res Result

	for i := 0; i < opts.Companies; i++ {
		req := companyuc.CreateCompanyRequest{CompanyName: fake.Company().Name()}
		for j := 0; j < opts.EmployeesPerCompany; j++ {
			e := fakeEmployee(fake)
			req.Employees = append(req.Employees, companyuc.NewEmployee{
				Name: e.Name, Age: e.Age, Gender: e.Gender, Salary: e.Salary,
			})
		}

		c, err := s.companies.CreateCompany(ctx, req)
		if err != nil {
			return res, fmt.Errorf("create company %d: %w", i+1, err)
		}
		res.Companies++
		res.Employees += c.EmployeeNumber()
		advance(progress, 1+c.EmployeeNumber())
	}

	for i := 0; i < opts.Unassigned; i++ {
		if _, err := s.employees.CreateEmployee(ctx, fakeEmployee(fake)); err != nil {
			return res, fmt.Errorf("create employee %d: %w", i+1, err)
		}
		res.Employees++
		advance(progress, 1)
	}

	s.log.Info("seed completed",
		zap.Int("companies", res.Companies),
		zap.Int("employees", res.Employees),
	)
	return res, nil
}

func advance(progress Progress, n int) {
	if progress != nil {
		_ = progress.Add(n)
	}
}

func fakeEmployee(fake faker.Faker) employeeuc.CreateEmployeeRequest {
	p := fake.Person()
	req := employeeuc.CreateEmployeeRequest{
		Age:    fake.IntBetween(18, 67),
		Salary: fake.IntBetween(20, 200) * 100,
	}
	if fake.Bool() {
		req.Gender = "female"
		req.Name = p.FirstNameFemale() + " " + p.LastName()
	} else {
		req.Gender = "male"
		req.Name = p.FirstNameMale() + " " + p.LastName()
	}
	return req
}

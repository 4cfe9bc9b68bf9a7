// Package memory is a non-persistent store used when DB_DRIVER=memory.
// Data is lost when the process exits.
package memory

import (
	"context"
	"slices"
	"sync"

	"employee-service/internal/domain/company"
	"employee-service/internal/domain/employee"
	"employee-service/internal/domain/pagination"
)

// Store holds employees and companies guarded by a single lock so company
// cascades are atomic.
type Store struct {
	mu             sync.RWMutex
	employees      map[int64]employee.Employee
	companies      map[int64]string
	nextEmployeeID int64
	nextCompanyID  int64
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		employees: make(map[int64]employee.Employee),
		companies: make(map[int64]string),
	}
}

// EmployeeRepo is the employee repository view of a Store.
type EmployeeRepo struct{ s *Store }

// CompanyRepo is the company repository view of a Store.
type CompanyRepo struct{ s *Store }

// NewEmployeeRepo returns the employee repository backed by s.
func NewEmployeeRepo(s *Store) *EmployeeRepo { return &EmployeeRepo{s: s} }

// NewCompanyRepo returns the company repository backed by s.
func NewCompanyRepo(s *Store) *CompanyRepo { return &CompanyRepo{s: s} }

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func clone(e employee.Employee) employee.Employee {
	e.CompanyID = copyID(e.CompanyID)
	return e
}

// sortedEmployees returns the employees accepted by keep ordered by ID.
// Callers must hold the read lock.
func (s *Store) sortedEmployees(keep func(employee.Employee) bool) []employee.Employee {
	out := make([]employee.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if keep == nil || keep(e) {
			out = append(out, clone(e))
		}
	}
	slices.SortFunc(out, func(a, b employee.Employee) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

func (s *Store) companyLocked(id int64) company.Company {
	return company.Company{
		ID:          id,
		CompanyName: s.companies[id],
		Employees: s.sortedEmployees(func(e employee.Employee) bool {
			return e.CompanyID != nil && *e.CompanyID == id
		}),
	}
}

func (s *Store) sortedCompanyIDs() []int64 {
	ids := make([]int64, 0, len(s.companies))
	for id := range s.companies {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func window[T any](items []T, page pagination.Page) []T {
	start := max(0, min(page.Offset(), len(items)))
	end := min(start+page.Limit(), len(items))
	return items[start:end]
}

// Create stores e under a new ID.
func (r *EmployeeRepo) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextEmployeeID++
	stored := clone(*e)
	stored.ID = r.s.nextEmployeeID
	r.s.employees[stored.ID] = stored

	out := clone(stored)
	return &out, nil
}

// GetByID returns employee.ErrNotFound when id is unknown.
func (r *EmployeeRepo) GetByID(_ context.Context, id int64) (*employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return nil, employee.ErrNotFound
	}
	out := clone(e)
	return &out, nil
}

// Update overwrites name, age, gender and salary.
func (r *EmployeeRepo) Update(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.employees[e.ID]
	if !ok {
		return nil, employee.ErrNotFound
	}
	stored.Name = e.Name
	stored.Age = e.Age
	stored.Gender = e.Gender
	stored.Salary = e.Salary
	r.s.employees[e.ID] = stored

	out := clone(stored)
	return &out, nil
}

// Delete removes id if present.
func (r *EmployeeRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.employees, id)
	return nil
}

// List returns all employees ordered by ID.
func (r *EmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedEmployees(nil), nil
}

// ListByGender returns employees whose gender matches exactly.
func (r *EmployeeRepo) ListByGender(_ context.Context, gender string) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.sortedEmployees(func(e employee.Employee) bool { return e.Gender == gender }), nil
}

// ListPage returns one page ordered by ID and the total count.
func (r *EmployeeRepo) ListPage(_ context.Context, page pagination.Page) ([]employee.Employee, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.s.sortedEmployees(nil)
	return window(all, page), int64(len(all)), nil
}

// Create stores c and its employees under new IDs.
func (r *CompanyRepo) Create(_ context.Context, c *company.Company) (*company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCompanyID++
	id := r.s.nextCompanyID
	r.s.companies[id] = c.CompanyName

	for _, e := range c.Employees {
		r.s.nextEmployeeID++
		e.ID = r.s.nextEmployeeID
		e.CompanyID = copyID(&id)
		r.s.employees[e.ID] = e
	}

	out := r.s.companyLocked(id)
	return &out, nil
}

// GetByID returns company.ErrNotFound when id is unknown.
func (r *CompanyRepo) GetByID(_ context.Context, id int64) (*company.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.companies[id]; !ok {
		return nil, company.ErrNotFound
	}
	out := r.s.companyLocked(id)
	return &out, nil
}

// Update overwrites the company name.
func (r *CompanyRepo) Update(_ context.Context, c *company.Company) (*company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.companies[c.ID]; !ok {
		return nil, company.ErrNotFound
	}
	r.s.companies[c.ID] = c.CompanyName

	out := r.s.companyLocked(c.ID)
	return &out, nil
}

// Delete removes the company and its employees if present.
func (r *CompanyRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for eid, e := range r.s.employees {
		if e.CompanyID != nil && *e.CompanyID == id {
			delete(r.s.employees, eid)
		}
	}
	delete(r.s.companies, id)
	return nil
}

// List returns all companies ordered by ID.
func (r *CompanyRepo) List(_ context.Context) ([]company.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.sortedCompanyIDs()
	out := make([]company.Company, len(ids))
	for i, id := range ids {
		out[i] = r.s.companyLocked(id)
	}
	return out, nil
}

// ListPage returns one page of companies ordered by ID and the total count.
func (r *CompanyRepo) ListPage(_ context.Context, page pagination.Page) ([]company.Company, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := r.s.sortedCompanyIDs()
	selected := window(ids, page)
	out := make([]company.Company, len(selected))
	for i, id := range selected {
		out[i] = r.s.companyLocked(id)
	}
	return out, int64(len(ids)), nil
}

// Exists reports whether id is a known company.
func (r *CompanyRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.companies[id]
	return ok, nil
}

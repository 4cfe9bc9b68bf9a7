package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/internal/domain/employee"
	"employee-service/internal/domain/pagination"
)

// EmployeeRepoPG implements the employee Repository interface using GORM.
// It works against any GORM dialect the schema migrates on.
type EmployeeRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewEmployeeRepoPG creates a new instance of EmployeeRepoPG.
func NewEmployeeRepoPG(db *gorm.DB, log *zap.Logger) *EmployeeRepoPG {
	return &EmployeeRepoPG{db: db, log: log}
}

// Create inserts a new employee and returns it with the assigned ID.
func (r *EmployeeRepoPG) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	if e == nil {
		return nil, errors.New("employee cannot be nil")
	}

	model := employeeFromDomain(e)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create employee in db", zap.Error(err), zap.String("name", e.Name))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	r.log.Info("employee created in db", zap.Int64("id", model.ID))
	created := model.toDomain()
	return &created, nil
}

// GetByID retrieves an employee by ID.
func (r *EmployeeRepoPG) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	var model EmployeeSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("employee not found", zap.Int64("id", id))
			return nil, employee.ErrNotFound
		}
		r.log.Error("failed to get employee from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	e := model.toDomain()
	return &e, nil
}

// Update overwrites name, age, gender and salary. A map is used so zero
// values are written too.
func (r *EmployeeRepoPG) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	if e == nil {
		return nil, errors.New("employee cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&EmployeeSchema{}).Where("id = ?", e.ID).Updates(map[string]any{
		"name":   e.Name,
		"age":    e.Age,
		"gender": e.Gender,
		"salary": e.Salary,
	})
	if res.Error != nil {
		r.log.Error("failed to update employee in db", zap.Error(res.Error), zap.Int64("id", e.ID))
		return nil, fmt.Errorf("failed to update employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, employee.ErrNotFound
	}

	r.log.Info("employee updated in db", zap.Int64("id", e.ID))
	return r.GetByID(ctx, e.ID)
}

// Delete removes an employee by ID. Missing rows are not an error.
func (r *EmployeeRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&EmployeeSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete employee in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete employee: %w", res.Error)
	}

	r.log.Info("employee deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return nil
}

// List returns all employees ordered by ID.
func (r *EmployeeRepoPG) List(ctx context.Context) ([]employee.Employee, error) {
	var models []EmployeeSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list employees from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employeesToDomain(models), nil
}

// ListByGender returns employees whose gender matches exactly, ordered by ID.
func (r *EmployeeRepoPG) ListByGender(ctx context.Context, gender string) ([]employee.Employee, error) {
	var models []EmployeeSchema
	if err := r.db.WithContext(ctx).Where("gender = ?", gender).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list employees by gender from db", zap.Error(err), zap.String("gender", gender))
		return nil, fmt.Errorf("failed to list employees by gender: %w", err)
	}
	return employeesToDomain(models), nil
}

// ListPage returns one page of employees ordered by ID and the total count.
func (r *EmployeeRepoPG) ListPage(ctx context.Context, page pagination.Page) ([]employee.Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&EmployeeSchema{}).Count(&total).Error; err != nil {
		r.log.Error("failed to count employees", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	if page.PastEnd(total) {
		return []employee.Employee{}, total, nil
	}

	var models []EmployeeSchema
	err := r.db.WithContext(ctx).Order("id").Offset(page.Offset()).Limit(page.Limit()).Find(&models).Error
	if err != nil {
		r.log.Error("failed to list employees page from db", zap.Error(err), zap.Int("page", page.Number), zap.Int("page_size", page.Size))
		return nil, 0, fmt.Errorf("failed to list employees page: %w", err)
	}

	return employeesToDomain(models), total, nil
}

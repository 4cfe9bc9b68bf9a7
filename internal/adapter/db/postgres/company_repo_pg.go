package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-service/internal/domain/company"
	"employee-service/internal/domain/pagination"
)

// CompanyRepoPG implements the company Repository interface using GORM.
type CompanyRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewCompanyRepoPG creates a new instance of CompanyRepoPG.
func NewCompanyRepoPG(db *gorm.DB, log *zap.Logger) *CompanyRepoPG {
	return &CompanyRepoPG{db: db, log: log}
}

func preloadEmployees(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// Create inserts a company and its nested employees in one transaction.
func (r *CompanyRepoPG) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	if c == nil {
		return nil, errors.New("company cannot be nil")
	}

	model := companyFromDomain(c)
	model.ID = 0
	for i := range model.Employees {
		model.Employees[i].ID = 0
		model.Employees[i].CompanyID = nil
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create company in db", zap.Error(err), zap.String("company_name", c.CompanyName))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	r.log.Info("company created in db", zap.Int64("id", model.ID), zap.Int("employees", len(model.Employees)))
	created := model.toDomain()
	return &created, nil
}

// GetByID retrieves a company with its employees ordered by ID.
func (r *CompanyRepoPG) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	var model CompanySchema
	err := r.db.WithContext(ctx).Preload("Employees", preloadEmployees).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("company not found", zap.Int64("id", id))
			return nil, company.ErrNotFound
		}
		r.log.Error("failed to get company from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	c := model.toDomain()
	return &c, nil
}

// Update overwrites the company name. Employees are not modified.
func (r *CompanyRepoPG) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	if c == nil {
		return nil, errors.New("company cannot be nil")
	}

	res := r.db.WithContext(ctx).Model(&CompanySchema{}).Where("id = ?", c.ID).Update("company_name", c.CompanyName)
	if res.Error != nil {
		r.log.Error("failed to update company in db", zap.Error(res.Error), zap.Int64("id", c.ID))
		return nil, fmt.Errorf("failed to update company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, company.ErrNotFound
	}

	r.log.Info("company updated in db", zap.Int64("id", c.ID))
	return r.GetByID(ctx, c.ID)
}

// Delete removes a company and every employee it owns. Missing rows are not
// an error.
func (r *CompanyRepoPG) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", id).Delete(&EmployeeSchema{}).Error; err != nil {
			return fmt.Errorf("delete employees: %w", err)
		}
		if err := tx.Delete(&CompanySchema{}, id).Error; err != nil {
			return fmt.Errorf("delete company: %w", err)
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to delete company in db", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("failed to delete company: %w", err)
	}

	r.log.Info("company deleted in db", zap.Int64("id", id))
	return nil
}

// List returns all companies with their employees, ordered by ID.
func (r *CompanyRepoPG) List(ctx context.Context) ([]company.Company, error) {
	var models []CompanySchema
	if err := r.db.WithContext(ctx).Preload("Employees", preloadEmployees).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list companies from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companiesToDomain(models), nil
}

// ListPage returns one page of companies ordered by ID and the total count.
func (r *CompanyRepoPG) ListPage(ctx context.Context, page pagination.Page) ([]company.Company, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&CompanySchema{}).Count(&total).Error; err != nil {
		r.log.Error("failed to count companies", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}
	if page.PastEnd(total) {
		return []company.Company{}, total, nil
	}

	var models []CompanySchema
	err := r.db.WithContext(ctx).
		Preload("Employees", preloadEmployees).
		Order("id").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list companies page from db", zap.Error(err), zap.Int("page", page.Number), zap.Int("page_size", page.Size))
		return nil, 0, fmt.Errorf("failed to list companies page: %w", err)
	}

	return companiesToDomain(models), total, nil
}

// Exists reports whether a company with id exists.
func (r *CompanyRepoPG) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CompanySchema{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.Error("failed to check company existence", zap.Error(err), zap.Int64("id", id))
		return false, fmt.Errorf("failed to check company: %w", err)
	}
	return count > 0, nil
}

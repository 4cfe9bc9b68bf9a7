package cached

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"employee-service/internal/adapter/cache"
	domain "employee-service/internal/domain/company"
	"employee-service/internal/domain/pagination"
	"employee-service/internal/usecase/company"
)

// CompanyRepository decorates a company repository so that cascading
// deletes also evict the cached employees. Company reads are not cached.
type CompanyRepository struct {
	dbRepo company.Repository
	cache  cache.EmployeeCache
	log    *zap.Logger
}

var _ company.Repository = (*CompanyRepository)(nil)

// NewCompanyRepository creates a new instance of CompanyRepository.
func NewCompanyRepository(dbRepo company.Repository, cache cache.EmployeeCache, log *zap.Logger) *CompanyRepository {
	return &CompanyRepository{dbRepo: dbRepo, cache: cache, log: log}
}

// Create delegates to the DB repository.
func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	return r.dbRepo.Create(ctx, c)
}

// GetByID delegates to the DB repository.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return r.dbRepo.GetByID(ctx, id)
}

// Update delegates to the DB repository.
func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	return r.dbRepo.Update(ctx, c)
}

// Delete removes the company and evicts every employee it owned.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	var owned []int64
	if r.cache != nil {
		c, err := r.dbRepo.GetByID(ctx, id)
		switch {
		case err == nil:
			owned = c.EmployeeIDs()
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
	}

	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}

	if len(owned) > 0 {
		if err := r.cache.DeleteMultiple(ctx, owned...); err != nil {
			r.log.Warn("failed to invalidate employees of deleted company", zap.Int64("company_id", id), zap.Error(err))
		}
	}
	return nil
}

// List delegates to the DB repository.
func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	return r.dbRepo.List(ctx)
}

// ListPage delegates to the DB repository.
func (r *CompanyRepository) ListPage(ctx context.Context, page pagination.Page) ([]domain.Company, int64, error) {
	return r.dbRepo.ListPage(ctx, page)
}

// Exists delegates to the DB repository.
func (r *CompanyRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.dbRepo.Exists(ctx, id)
}

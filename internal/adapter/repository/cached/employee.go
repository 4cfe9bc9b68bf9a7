package cached

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"employee-service/internal/adapter/cache"
	domain "employee-service/internal/domain/employee"
	"employee-service/internal/domain/pagination"
	"employee-service/internal/usecase/employee"
)

// EmployeeRepository implements employee.Repository with cache-aside reads
// by ID. It wraps a persistent repository and a cache implementation.
type EmployeeRepository struct {
	dbRepo employee.Repository
	cache  cache.EmployeeCache
	log    *zap.Logger
	group  singleflight.Group
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// NewEmployeeRepository creates a new instance of EmployeeRepository.
// A nil cache turns the decorator into a pass-through.
func NewEmployeeRepository(dbRepo employee.Repository, cache cache.EmployeeCache, log *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	return r.dbRepo.Create(ctx, e)
}

// GetByID retrieves an employee by ID using the cache-aside pattern.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	// Concurrent misses for the same id share one database read.
	result, err, _ := r.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		if r.cache != nil {
			if cached, err := r.cache.Get(ctx, id); err == nil && cached != nil {
				return cached, nil
			}
		}

		var version uint64
		if r.cache != nil {
			version = r.cache.Version(id)
		}

		e, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			r.store(ctx, e, version)
		}
		return e, nil
	})
	if err != nil {
		return nil, err
	}

	// Callers may mutate the result, so each gets its own copy.
	e := *result.(*domain.Employee)
	if e.CompanyID != nil {
		companyID := *e.CompanyID
		e.CompanyID = &companyID
	}
	return &e, nil
}

// Update writes through to the DB repository and invalidates the cache.
func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	updated, err := r.dbRepo.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, e.ID)
	return updated, nil
}

// Delete deletes through to the DB repository and invalidates the cache.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	if err := r.dbRepo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// List delegates to the DB repository.
func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	return r.dbRepo.List(ctx)
}

// ListByGender delegates to the DB repository.
func (r *EmployeeRepository) ListByGender(ctx context.Context, gender string) ([]domain.Employee, error) {
	return r.dbRepo.ListByGender(ctx, gender)
}

// ListPage delegates to the DB repository.
func (r *EmployeeRepository) ListPage(ctx context.Context, page pagination.Page) ([]domain.Employee, int64, error) {
	return r.dbRepo.ListPage(ctx, page)
}

// store caches e unless id was invalidated after version was read. A write
// that lands between the database read and Set would otherwise leave the
// old row cached until the TTL expires.
func (r *EmployeeRepository) store(ctx context.Context, e *domain.Employee, version uint64) {
	if err := r.cache.Set(ctx, e); err != nil {
		r.log.Warn("failed to cache employee", zap.Int64("id", e.ID), zap.Error(err))
		return
	}
	if r.cache.Version(e.ID) == version {
		return
	}
	r.log.Debug("employee changed during load, evicting", zap.Int64("id", e.ID))
	r.invalidate(ctx, e.ID)
}

func (r *EmployeeRepository) invalidate(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("failed to invalidate employee cache", zap.Int64("id", id), zap.Error(err))
	}
}

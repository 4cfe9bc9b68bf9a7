package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "employee-service/internal/domain/employee"
)

// EmployeeCache defines the interface for employee caching operations.
type EmployeeCache interface {
	// Get retrieves an employee from cache by ID.
	// Returns nil if the employee is not in cache.
	Get(ctx context.Context, id int64) (*domain.Employee, error)

	// Set stores an employee in cache with the configured TTL.
	Set(ctx context.Context, e *domain.Employee) error

	// Delete removes an employee from cache by ID.
	Delete(ctx context.Context, id int64) error

	// DeleteMultiple removes several employees from cache by ID.
	DeleteMultiple(ctx context.Context, ids ...int64) error

	// Version counts the invalidations of id seen by this process. A loader
	// that observes a change across its read must not keep what it cached.
	Version(id int64) uint64
}

// RedisEmployeeCache implements EmployeeCache using Redis as the backing store.
type RedisEmployeeCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger

	mu       sync.Mutex
	versions map[int64]uint64
}

// NewRedisEmployeeCache creates a new Redis-backed employee cache.
func NewRedisEmployeeCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisEmployeeCache {
	return &RedisEmployeeCache{
		client:   client,
		ttl:      ttl,
		log:      log,
		versions: make(map[int64]uint64),
	}
}

// Version returns the invalidation count of id.
func (c *RedisEmployeeCache) Version(id int64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[id]
}

// bump records an invalidation. It runs before the key is deleted.
func (c *RedisEmployeeCache) bump(ids ...int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		c.versions[id]++
	}
}

// Key returns the Redis key an employee is cached under.
func Key(id int64) string {
	return fmt.Sprintf("employee:%d", id)
}

// Get retrieves an employee from Redis cache.
func (c *RedisEmployeeCache) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	data, err := c.client.Get(ctx, Key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.log.Debug("cache miss", zap.Int64("employee_id", id))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}

	var e domain.Employee
	if err := json.Unmarshal(data, &e); err != nil {
		c.log.Error("failed to unmarshal cached employee", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("employee_id", id))
	return &e, nil
}

// Set stores an employee in Redis cache with TTL.
func (c *RedisEmployeeCache) Set(ctx context.Context, e *domain.Employee) error {
	if e == nil {
		return errors.New("cannot cache nil employee")
	}

	data, err := json.Marshal(e)
	if err != nil {
		c.log.Error("failed to marshal employee for cache", zap.Int64("employee_id", e.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, Key(e.ID), data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("employee_id", e.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached employee", zap.Int64("employee_id", e.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes an employee from Redis cache.
func (c *RedisEmployeeCache) Delete(ctx context.Context, id int64) error {
	c.bump(id)
	if err := c.client.Del(ctx, Key(id)).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Int64("employee_id", id))
	return nil
}

// DeleteMultiple removes several employees from Redis cache in one call.
func (c *RedisEmployeeCache) DeleteMultiple(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	c.bump(ids...)
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = Key(id)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Error("failed to delete multiple from cache", zap.Int("count", len(ids)), zap.Error(err))
		return err
	}

	c.log.Debug("deleted multiple from cache", zap.Int("count", len(ids)))
	return nil
}

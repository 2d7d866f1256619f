package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/employee-directory/internal/logger"
	"github.com/sbilibin2017/employee-directory/internal/models"
)

// listCacheKey holds the serialized full employee list.
const listCacheKey = "employees:all"

// EmployeeListCacheRepository caches the employee list in Redis.
type EmployeeListCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewEmployeeListCacheRepository creates a new cache repository with the given TTL.
func NewEmployeeListCacheRepository(client *redis.Client, expiration time.Duration) *EmployeeListCacheRepository {
	return &EmployeeListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached list, or nil on a cache miss.
func (r *EmployeeListCacheRepository) Get(ctx context.Context) ([]models.EmployeeDB, error) {
	val, err := r.client.Get(ctx, listCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", listCacheKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var employees []models.EmployeeDB
	if err := json.Unmarshal([]byte(val), &employees); err != nil {
		logger.Log.Errorw("failed to decode cached employee list", "key", listCacheKey, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", listCacheKey,
		"result_count", len(employees),
		"error", nil,
	)

	return employees, nil
}

// Set caches the employee list with the configured expiration.
func (r *EmployeeListCacheRepository) Set(ctx context.Context, employees []models.EmployeeDB) error {
	data, err := json.Marshal(employees)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, listCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", listCacheKey,
		"count", len(employees),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached list. Called after every mutation.
func (r *EmployeeListCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, listCacheKey).Err()

	logger.Log.Infow(
		"key", listCacheKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}

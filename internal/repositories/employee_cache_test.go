package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/employee-directory/internal/models"
)

func TestEmployeeListCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewEmployeeListCacheRepository(rdb, 2*time.Second)

	employees := []models.EmployeeDB{
		{EmployeeID: "a1b2c3d4", Name: "Jane Doe", Email: "jane@x.com", Mobile: 712345678},
		{EmployeeID: "e5f6a7b8", Name: "John Smith", Email: "john@x.com", Mobile: 9876543210},
	}

	t.Run("miss before set", func(t *testing.T) {
		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set and get", func(t *testing.T) {
		err := repo.Set(ctx, employees)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "Jane Doe", got[0].Name)
	})

	t.Run("invalidate drops the list", func(t *testing.T) {
		err := repo.Set(ctx, employees)
		assert.NoError(t, err)

		err = repo.Invalidate(ctx)
		assert.NoError(t, err)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("entry expires", func(t *testing.T) {
		err := repo.Set(ctx, employees)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, &redisRepository{client: client}
}

func TestIncrementWithTTL_WindowDoesNotSlide(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)

	count, ttl, err := repo.IncrementWithTTL(ctx, "INTAKE:RATE_LIMIT:a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, time.Minute, ttl)

	server.FastForward(20 * time.Second)

	count, ttl, err = repo.IncrementWithTTL(ctx, "INTAKE:RATE_LIMIT:a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 40*time.Second, ttl)

	server.FastForward(41 * time.Second)

	count, _, err = repo.IncrementWithTTL(ctx, "INTAKE:RATE_LIMIT:a", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIncrementWithTTL_RestoresMissingExpiry(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)
	require.NoError(t, server.Set("INTAKE:RATE_LIMIT:b", "9"))

	count, ttl, err := repo.IncrementWithTTL(ctx, "INTAKE:RATE_LIMIT:b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
	assert.Equal(t, time.Minute, ttl)
	assert.Equal(t, time.Minute, server.TTL("INTAKE:RATE_LIMIT:b"))

	server.FastForward(time.Minute + time.Second)
	assert.False(t, server.Exists("INTAKE:RATE_LIMIT:b"))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	server, repo := newTestRepository(t)
	require.NoError(t, server.Set("INTAKE:RATE_LIMIT:c", "1"))

	require.NoError(t, repo.Delete(ctx, "INTAKE:RATE_LIMIT:c"))
	assert.False(t, server.Exists("INTAKE:RATE_LIMIT:c"))
}

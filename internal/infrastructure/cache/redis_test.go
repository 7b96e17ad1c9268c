package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable points at a port nothing listens on so calls fail fast
func unreachable(t *testing.T) *RedisClient {
	t.Helper()
	rc := NewRedisClient("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}

func TestRedisClient_SetEncodeError(t *testing.T) {
	rc := unreachable(t)

	err := rc.Set(context.Background(), "k", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis encode k")
}

func TestRedisClient_DeleteNoKeys(t *testing.T) {
	assert.NoError(t, unreachable(t).Delete(context.Background()))
}

func TestRedisClient_ServerDown(t *testing.T) {
	rc := unreachable(t)
	ctx := context.Background()

	assert.Error(t, rc.Connect(ctx))
	assert.Error(t, rc.Ping(ctx))

	var dest map[string]string
	hit, err := rc.Get(ctx, "author:1", &dest)
	assert.Error(t, err, "a connection failure is not a cache miss")
	assert.False(t, hit)
}

func TestRedisClient_NilClient(t *testing.T) {
	rc := &RedisClient{}
	assert.Error(t, rc.Ping(context.Background()))
	assert.NoError(t, rc.Close())
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "author:1", map[string]string{"name": "Alice"}, time.Minute))

	var dest map[string]string
	hit, err := c.Get(ctx, "author:1", &dest)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, dest)

	assert.NoError(t, c.Delete(ctx, "author:1"))
	assert.NoError(t, c.Ping(ctx))
}

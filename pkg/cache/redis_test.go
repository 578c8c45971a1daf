package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewRedisCache(logger, addr, "shoppy-test:", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ctx := context.Background()

	c.Set(ctx, "order:1", []byte("payload"))
	got, ok := c.Get(ctx, "order:1")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)

	c.Delete(ctx, "order:1")
	_, ok = c.Get(ctx, "order:1")
	assert.False(t, ok)
}

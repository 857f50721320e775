package cache_test

import (
	"agency/shared/cache"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneration(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	entry := func(gen int64) string { return fmt.Sprintf("availability:2025-03-10:%d", gen) }

	gen, err := cache.Generation(ctx, c, "availability-generation:2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.Save(ctx, entry(1), "left over", 30))
	require.NoError(t, cache.Retire(ctx, c, "availability-generation:2025-03-10", entry))

	gen, err = cache.Generation(ctx, c, "availability-generation:2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
	assert.False(t, mr.Exists(entry(1)))
	assert.Positive(t, mr.TTL("availability-generation:2025-03-10"))
}

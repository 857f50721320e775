package cache

import (
	"context"
	"errors"
)

// Counters outlive every entry keyed by them, so a counter that expires and restarts at zero
// cannot map back onto a live entry.
const generationSeconds = 24 * 60 * 60

// Generation reads the counter stored at key. A counter that was never bumped is generation 0.
func Generation(ctx context.Context, c RedisCache, key string) (int64, error) {
	var gen int64

	err := c.Get(ctx, key, &gen)
	if errors.Is(err, Nil) {
		return 0, nil
	}

	return gen, err
}

// Retire bumps the counter at key so entries filled under an older generation are never read again,
// including fills still in flight. The entry the new generation maps to is dropped in case it survived
// from before the counter last expired.
func Retire(ctx context.Context, c RedisCache, key string, entry func(gen int64) string) error {
	gen, err := c.Incr(ctx, key, generationSeconds)
	if err != nil {
		return err
	}

	if err = c.Delete(ctx, entry(gen)); err != nil && !errors.Is(err, Nil) {
		return err
	}

	return nil
}

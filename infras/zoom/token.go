package zoom

import (
	"context"
	"sync"
	"time"
)

// tokenRefreshMargin is subtracted from the provider expiry so a token is never used in its last minutes.
const tokenRefreshMargin = 5 * time.Minute

// FetchFunc obtains a fresh access token and its lifetime.
type FetchFunc func(ctx context.Context) (token string, expiresIn time.Duration, err error)

// TokenCache holds one access token. Refresh is serialized so concurrent callers share a single token request.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

func NewTokenCache(now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}

	return &TokenCache{now: now}
}

// Get returns the cached token or calls fetch when it is missing or expired.
func (c *TokenCache) Get(ctx context.Context, fetch FetchFunc) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresIn, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	lifetime := max(expiresIn-tokenRefreshMargin, 0)

	c.token = token
	c.expiresAt = c.now().Add(lifetime)

	return token, nil
}

// Invalidate drops the cached token, e.g. after the API rejected it.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}

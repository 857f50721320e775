package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"agency/infras/otel"
	"agency/shared/constant"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a short-lived mutual exclusion keyed by string.
type Locker interface {
	// Lock returns a token and true when the key was free.
	Lock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Unlock(ctx context.Context, key, token string) error
}

type redisLock struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisLock(client *redis.Client, otl otel.Otel) Locker {
	return &redisLock{client: client, otel: otl}
}

func (r *redisLock) Lock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lock.Lock")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("lock.key", key)

	token = uuid.NewString()

	ok, err = r.client.SetNX(ctx, keyPrefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	if !ok {
		return "", false, nil
	}

	return token, true, nil
}

func (r *redisLock) Unlock(ctx context.Context, key, token string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".lock.Unlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = releaseScript.Run(ctx, r.client, []string{keyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", key, err)
	}

	return nil
}

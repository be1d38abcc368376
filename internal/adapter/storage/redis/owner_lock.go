package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	// lockTTL bounds how long a crashed holder can block an owner.
	lockTTL = 30 * time.Second

	// acquireWait is the total budget for waiting on a busy lock.
	acquireWait = 5 * time.Second

	retryDelay = 50 * time.Millisecond
)

// releaseScript deletes the lock key only if the caller still holds it,
// so an expired-and-reacquired lock is never released by the old holder.
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`)

// OwnerLock implements ports.OwnerLocker using Redis SET NX. It serializes
// create/rotate/delete per owner identity across service instances.
type OwnerLock struct {
	client *goredis.Client
	prefix string
}

// NewOwnerLock creates a new Redis-backed per-owner mutex.
func NewOwnerLock(client *goredis.Client) *OwnerLock {
	return &OwnerLock{
		client: client,
		prefix: "ownerlock:",
	}
}

// Acquire takes the owner's lock, polling until acquireWait or context
// cancellation. The returned function releases the lock.
func (l *OwnerLock) Acquire(ctx context.Context, ownerID uuid.UUID) (func(), error) {
	key := l.prefix + ownerID.String()
	token := uuid.NewString()
	deadline := time.Now().Add(acquireWait)

	for {
		ok, err := l.client.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("redis owner lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("owner lock busy: %s", ownerID)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}

// release runs on a fresh context so the lock is freed even when the
// request context is already cancelled.
func (l *OwnerLock) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = releaseScript.Run(ctx, l.client, []string{key}, token).Err()
}

package redis_test

import (
	"context"
	"testing"
	"time"

	"wallet-custody/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLockClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestOwnerLock_AcquireAndRelease(t *testing.T) {
	mr, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ctx := context.Background()
	ownerID := uuid.New()

	release, err := lock.Acquire(ctx, ownerID)
	require.NoError(t, err)
	require.NotNil(t, release)

	assert.True(t, mr.Exists("ownerlock:"+ownerID.String()))

	release()
	assert.False(t, mr.Exists("ownerlock:"+ownerID.String()))
}

func TestOwnerLock_Reentry_AfterRelease(t *testing.T) {
	_, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ctx := context.Background()
	ownerID := uuid.New()

	release, err := lock.Acquire(ctx, ownerID)
	require.NoError(t, err)
	release()

	release, err = lock.Acquire(ctx, ownerID)
	require.NoError(t, err)
	release()
}

func TestOwnerLock_DifferentOwnersIndependent(t *testing.T) {
	_, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ctx := context.Background()

	r1, err := lock.Acquire(ctx, uuid.New())
	require.NoError(t, err)
	defer r1()

	r2, err := lock.Acquire(ctx, uuid.New())
	require.NoError(t, err)
	defer r2()
}

func TestOwnerLock_BlocksSecondHolder(t *testing.T) {
	_, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ownerID := uuid.New()

	release, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)
	defer release()

	// Second acquisition of the same owner stalls until its context expires.
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, err = lock.Acquire(ctx, ownerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOwnerLock_WaitsForRelease(t *testing.T) {
	_, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ownerID := uuid.New()

	release, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)

	go func() {
		time.Sleep(150 * time.Millisecond)
		release()
	}()

	start := time.Now()
	r2, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)
	defer r2()
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond,
		"second holder should have waited for the first release")
}

func TestOwnerLock_StaleHolderExpires(t *testing.T) {
	mr, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ownerID := uuid.New()

	_, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)

	// A crashed holder never releases; the TTL frees the owner.
	mr.FastForward(31 * time.Second)

	release, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)
	release()
}

func TestOwnerLock_StaleReleaseDoesNotFreeNewHolder(t *testing.T) {
	mr, client := newLockClient(t)
	lock := redis.NewOwnerLock(client)
	ownerID := uuid.New()

	staleRelease, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)

	current, err := lock.Acquire(context.Background(), ownerID)
	require.NoError(t, err)
	defer current()

	// The expired holder's release carries the old token and must not
	// delete the new holder's lock.
	staleRelease()
	assert.True(t, mr.Exists("ownerlock:"+ownerID.String()))
}

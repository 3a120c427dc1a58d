package auth

import (
	"context"
	"testing"
	"time"

	"marketplace_auth/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(guard Guard, id string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{ID: id, Guard: guard, AccountID: 5, Role: domain.RoleVendor, IssuedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	require.NoError(t, store.Save(ctx, newSession(GuardSeller, "s1", time.Hour)))
	got, err := store.Find(ctx, GuardSeller, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(5), got.AccountID)

	// Same id under another guard is a different key
	other, err := store.Find(ctx, GuardAdmin, "s1")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, store.Save(ctx, newSession(GuardSeller, "old", -time.Second)))
	expired, err := store.Find(ctx, GuardSeller, "old")
	require.NoError(t, err)
	assert.Nil(t, expired)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, GuardSeller, "s1"))
	assert.Equal(t, 0, store.Len())
}

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	store := NewRedisSessionStore(rdb)

	sess := newSession(GuardCustomer, "r1", time.Hour)
	require.NoError(t, store.Save(ctx, sess))
	assert.Contains(t, rdb.data, "session:customer:r1")
	assert.InDelta(t, time.Hour.Seconds(), rdb.ttls["session:customer:r1"].Seconds(), 5)

	got, err := store.Find(ctx, GuardCustomer, "r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.AccountID, got.AccountID)
	assert.Equal(t, domain.RoleVendor, got.Role)

	missing, err := store.Find(ctx, GuardCustomer, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Delete(ctx, GuardCustomer, "r1"))
	assert.NotContains(t, rdb.data, "session:customer:r1")

	assert.Error(t, store.Save(ctx, newSession(GuardCustomer, "r2", -time.Second)))
}

package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitlife/internal/domain/entity"
	"fitlife/internal/domain/service"
)

func newTestStore(ttl time.Duration) *memoryStore {
	return &memoryStore{
		sessions: make(map[string]*entity.AdminSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := newTestStore(time.Hour)
	ctx := context.Background()

	adminID := uuid.New()
	id, err := store.Create(ctx, &entity.AdminSession{
		AdminID:  adminID,
		Username: "ops",
		Email:    "ops@example.com",
		LoginAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.Len(t, id, 64)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, sess.ID)
	assert.Equal(t, adminID, sess.AdminID)
	assert.Equal(t, "ops", sess.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
}

func TestMemoryStore_GeneratesUniqueIDs(t *testing.T) {
	store := newTestStore(time.Hour)
	ctx := context.Background()

	first, err := store.Create(ctx, &entity.AdminSession{Username: "ops"})
	require.NoError(t, err)
	second, err := store.Create(ctx, &entity.AdminSession{Username: "ops"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both sessions remain retrievable; creating a session never evicts another.
	_, err = store.Get(ctx, first)
	assert.NoError(t, err)
	_, err = store.Get(ctx, second)
	assert.NoError(t, err)
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := newTestStore(time.Hour)

	_, err := store.Get(context.Background(), "forged-session-id")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	store := newTestStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, &entity.AdminSession{Username: "ops"})
	require.NoError(t, err)

	// Jump the clock past the expiry.
	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_Destroy(t *testing.T) {
	store := newTestStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, &entity.AdminSession{Username: "ops"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Destroying an unknown ID is a no-op, not an error.
	assert.NoError(t, store.Destroy(ctx, "never-existed"))
}

func TestMemoryStore_EvictExpired(t *testing.T) {
	store := newTestStore(time.Hour)
	ctx := context.Background()

	live, err := store.Create(ctx, &entity.AdminSession{Username: "live"})
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, err := store.Create(ctx, &entity.AdminSession{Username: "stale"})
	require.NoError(t, err)
	store.now = time.Now

	assert.Equal(t, 1, store.evictExpired())

	_, err = store.Get(ctx, live)
	assert.NoError(t, err)
	_, err = store.Get(ctx, stale)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := newTestStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, &entity.AdminSession{Username: "ops"})
	require.NoError(t, err)

	first, err := store.Get(ctx, id)
	require.NoError(t, err)
	first.Username = "tampered"

	second, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ops", second.Username)
}

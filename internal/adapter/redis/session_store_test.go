package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient connects to REDIS_TEST_ADDRESS, or localhost:6379, and skips
// the test when no server answers.
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis not reachable at %s: %v", addr, err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(newTestClient(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	session := &domain.Session{ID: uuid.New(), UserID: 5, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Get(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, store.Delete(ctx, session.ID))
}

func TestSessionStoreDeleteByUser(t *testing.T) {
	store := NewSessionStore(newTestClient(t))
	ctx := context.Background()
	now := time.Now()

	a := &domain.Session{ID: uuid.New(), UserID: 5, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	b := &domain.Session{ID: uuid.New(), UserID: 5, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	c := &domain.Session{ID: uuid.New(), UserID: 6, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	for _, s := range []*domain.Session{a, b, c} {
		require.NoError(t, store.Save(ctx, s))
	}

	require.NoError(t, store.DeleteByUser(ctx, 5))
	_, err := store.Get(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, c.ID)
	assert.NoError(t, err)
}

func TestSessionStoreRejectsExpired(t *testing.T) {
	store := NewSessionStore(newTestClient(t))
	now := time.Now()

	err := store.Save(context.Background(), &domain.Session{ID: uuid.New(), UserID: 1, ExpiresAt: now.Add(-time.Second)})
	assert.Error(t, err)
}

func TestRedisAdapterCache(t *testing.T) {
	cache := NewRedisAdapter(newTestClient(t))

	_, err := cache.Get("car:1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, cache.Set("car:1", []byte(`{"id":1}`), time.Minute))
	got, err := cache.Get("car:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(got))

	require.NoError(t, cache.Delete("car:1"))
	_, err = cache.Get("car:1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

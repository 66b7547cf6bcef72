package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRedisSessions(t *testing.T, now time.Time) (*redisSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewRedisSessionRepository(client, zap.NewNop()).(*redisSessionRepository)
	repo.now = func() time.Time { return now }
	return repo, mr
}

// dropBeforeSet deletes the key right before the next SET reaches redis, the
// way a concurrent logout would between load and write.
type dropBeforeSet struct {
	mr  *miniredis.Miniredis
	key string
}

func (h dropBeforeSet) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h dropBeforeSet) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "set" {
			h.mr.Del(h.key)
		}
		return next(ctx, cmd)
	}
}

func (h dropBeforeSet) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRedisSessionCreateSetsTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mr := newRedisSessions(t, now)

	require.NoError(t, repo.Create(context.Background(), testSession(now, raviProfile)))

	assert.True(t, mr.Exists("session:hash-1"))
	assert.Equal(t, 2*time.Hour, mr.TTL("session:hash-1"))
}

func TestRedisSessionCreateAlreadyExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mr := newRedisSessions(t, now)
	s := testSession(now, nil)
	s.ExpiresAt = now.Add(-time.Minute)

	assert.Error(t, repo.Create(context.Background(), s))
	assert.False(t, mr.Exists("session:hash-1"))
}

func TestRedisFindValidSessionRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, _ := newRedisSessions(t, now)
	s := testSession(now, raviProfile)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.FindValidSession(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "hash-1", got.TokenHash)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, raviProfile, got.Profile)
	assert.True(t, got.ExpiresAt.Equal(s.ExpiresAt))
	assert.True(t, got.IsLoggedIn(now))
}

func TestRedisFindValidSessionWithoutProfile(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, _ := newRedisSessions(t, now)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testSession(now, nil)))

	got, err := repo.FindValidSession(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Profile)
	assert.False(t, got.IsLoggedIn(now))
}

func TestRedisFindValidSessionMissing(t *testing.T) {
	repo, _ := newRedisSessions(t, time.Now())

	got, err := repo.FindValidSession(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisExpiredSessionIsNil(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("key evicted by ttl", func(t *testing.T) {
		repo, mr := newRedisSessions(t, now)
		require.NoError(t, repo.Create(ctx, testSession(now, raviProfile)))

		mr.FastForward(2*time.Hour + time.Second)

		got, err := repo.FindValidSession(ctx, "hash-1")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("clock past expires_at before eviction", func(t *testing.T) {
		repo, mr := newRedisSessions(t, now)
		require.NoError(t, repo.Create(ctx, testSession(now, raviProfile)))

		repo.now = func() time.Time { return now.Add(2 * time.Hour) }

		got, err := repo.FindValidSession(ctx, "hash-1")
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.True(t, mr.Exists("session:hash-1"))
	})
}

func TestRedisLogoutThenFindIsNil(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mr := newRedisSessions(t, now)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testSession(now, raviProfile)))

	require.NoError(t, repo.Revoke(ctx, "hash-1"))
	assert.False(t, mr.Exists("session:hash-1"))

	got, err := repo.FindValidSession(ctx, "hash-1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Revoke(ctx, "hash-1"), ErrSessionNotFound)
	assert.ErrorIs(t, repo.UpdateProfile(ctx, "hash-1", raviProfile), ErrSessionNotFound)
}

func TestRedisUpdateProfileKeepsTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mr := newRedisSessions(t, now)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testSession(now, nil)))

	mr.FastForward(30 * time.Minute)
	later := now.Add(30 * time.Minute)
	repo.now = func() time.Time { return later }

	require.NoError(t, repo.UpdateProfile(ctx, "hash-1", raviProfile))
	assert.Equal(t, 90*time.Minute, mr.TTL("session:hash-1"))

	got, err := repo.FindValidSession(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, raviProfile, got.Profile)
	assert.True(t, got.UpdatedAt.Equal(later))
}

func TestRedisUpdateProfileMissingSession(t *testing.T) {
	repo, mr := newRedisSessions(t, time.Now())

	assert.ErrorIs(t, repo.UpdateProfile(context.Background(), "nope", raviProfile), ErrSessionNotFound)
	assert.False(t, mr.Exists("session:nope"))
}

func TestRedisUpdateProfileLosesRaceWithLogout(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mr := newRedisSessions(t, now)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, testSession(now, nil)))

	repo.client.AddHook(dropBeforeSet{mr: mr, key: "session:hash-1"})

	assert.ErrorIs(t, repo.UpdateProfile(ctx, "hash-1", raviProfile), ErrSessionNotFound)
	// XX must not resurrect the deleted key
	assert.False(t, mr.Exists("session:hash-1"))
}

func TestRedisCleanExpiredSessionsIsNoop(t *testing.T) {
	repo, _ := newRedisSessions(t, time.Now())

	n, err := repo.CleanExpiredSessions(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisStoreDown(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo, mr := newRedisSessions(t, now)
	mr.Close()

	got, err := repo.FindValidSession(context.Background(), "hash-1")
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Error(t, repo.Create(context.Background(), testSession(now, nil)))
}

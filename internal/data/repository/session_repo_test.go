package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"farm-storefront/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sessionColumns = []string{
	"id", "token_hash", "access_token", "refresh_token", "profile", "user_agent",
	"ip_address", "expires_at", "revoked_at", "created_at", "updated_at",
}

const liveSessionFilter = `WHERE token_hash = \$1\s+AND revoked_at IS NULL\s+AND expires_at > NOW\(\)`

// profileArg matches the JSONB argument by content rather than byte layout.
type profileArg struct{ want *entity.Profile }

func (a profileArg) Match(v any) bool {
	raw, ok := v.([]byte)
	if !ok {
		return false
	}
	if a.want == nil {
		return raw == nil
	}
	var got entity.Profile
	if err := json.Unmarshal(raw, &got); err != nil {
		return false
	}
	return got == *a.want
}

func newPgxSessions(t *testing.T) (SessionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewSessionRepository(mock, zap.NewNop()), mock
}

func testSession(now time.Time, profile *entity.Profile) *entity.Session {
	return &entity.Session{
		BaseNoDelete: entity.NewBaseNoDelete(now),
		TokenHash:    "hash-1",
		AccessToken:  "access",
		RefreshToken: "refresh",
		Profile:      profile,
		ExpiresAt:    now.Add(2 * time.Hour),
	}
}

var raviProfile = &entity.Profile{Username: "ravi", Email: "ravi@farm.in", Role: entity.RoleCustomer, IsEmailVerified: true}

func TestPgxSessionCreateEncodesProfile(t *testing.T) {
	repo, mock := newPgxSessions(t)
	s := testSession(time.Now(), raviProfile)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(s.ID, "hash-1", "access", "refresh", profileArg{raviProfile},
			s.UserAgent, s.IPAddress, s.ExpiresAt, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), s))
}

func TestPgxSessionCreateWithoutProfileWritesNull(t *testing.T) {
	repo, mock := newPgxSessions(t)
	s := testSession(time.Now(), nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(s.ID, "hash-1", "access", "refresh", profileArg{nil},
			s.UserAgent, s.IPAddress, s.ExpiresAt, s.CreatedAt, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), s))
}

func TestPgxFindValidSessionDecodesProfile(t *testing.T) {
	repo, mock := newPgxSessions(t)
	now := time.Now().UTC()
	s := testSession(now, nil)
	raw, err := json.Marshal(raviProfile)
	require.NoError(t, err)

	mock.ExpectQuery(liveSessionFilter).
		WithArgs("hash-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns).
			AddRow(s.ID, "hash-1", "access", "refresh", raw, nil, nil, s.ExpiresAt, nil, now, now))

	got, err := repo.FindValidSession(context.Background(), "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, raviProfile, got.Profile)
	assert.Nil(t, got.RevokedAt)
	assert.True(t, got.IsLoggedIn(now))
}

func TestPgxFindValidSessionNullProfile(t *testing.T) {
	repo, mock := newPgxSessions(t)
	now := time.Now().UTC()
	s := testSession(now, nil)

	mock.ExpectQuery(liveSessionFilter).
		WithArgs("hash-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns).
			AddRow(s.ID, "hash-1", "access", "refresh", nil, nil, nil, s.ExpiresAt, nil, now, now))

	got, err := repo.FindValidSession(context.Background(), "hash-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Profile)
	assert.False(t, got.IsLoggedIn(now))
}

// Expired and revoked rows are filtered in SQL, so both come back as no rows.
func TestPgxFindValidSessionMissingIsNil(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectQuery(liveSessionFilter).
		WithArgs("expired").
		WillReturnRows(pgxmock.NewRows(sessionColumns))

	got, err := repo.FindValidSession(context.Background(), "expired")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPgxFindValidSessionStoreError(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectQuery(liveSessionFilter).
		WithArgs("hash-1").
		WillReturnError(errors.New("connection reset"))

	got, err := repo.FindValidSession(context.Background(), "hash-1")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestPgxLogoutThenFindIsNil(t *testing.T) {
	repo, mock := newPgxSessions(t)
	ctx := context.Background()

	mock.ExpectExec(`SET revoked_at = NOW\(\), updated_at = NOW\(\)\s+WHERE token_hash = \$1 AND revoked_at IS NULL`).
		WithArgs("hash-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(liveSessionFilter).
		WithArgs("hash-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns))

	require.NoError(t, repo.Revoke(ctx, "hash-1"))
	got, err := repo.FindValidSession(ctx, "hash-1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPgxRevokeTwiceIsNotFound(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectExec(regexp.QuoteMeta("SET revoked_at = NOW()")).
		WithArgs("hash-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Revoke(context.Background(), "hash-1"), ErrSessionNotFound)
}

func TestPgxUpdateProfile(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectExec(`SET profile = \$2, updated_at = NOW\(\)\s+WHERE token_hash = \$1 AND revoked_at IS NULL`).
		WithArgs("hash-1", profileArg{raviProfile}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateProfile(context.Background(), "hash-1", raviProfile))
}

func TestPgxUpdateProfileOnRevokedSession(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectExec(regexp.QuoteMeta("SET profile = $2")).
		WithArgs("gone", profileArg{raviProfile}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.UpdateProfile(context.Background(), "gone", raviProfile), ErrSessionNotFound)
}

func TestPgxUpdateProfileStoreError(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectExec(regexp.QuoteMeta("SET profile = $2")).
		WithArgs("hash-1", profileArg{raviProfile}).
		WillReturnError(errors.New("connection reset"))

	err := repo.UpdateProfile(context.Background(), "hash-1", raviProfile)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestPgxCleanExpiredSessionsKeepsAWeek(t *testing.T) {
	repo, mock := newPgxSessions(t)

	mock.ExpectExec(`DELETE FROM sessions\s+WHERE expires_at < NOW\(\) - INTERVAL '7 days'\s+OR revoked_at < NOW\(\) - INTERVAL '7 days'`).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := repo.CleanExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

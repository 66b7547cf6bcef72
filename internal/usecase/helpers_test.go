package usecase

import (
	"context"
	"testing"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/testutil"
	"farm-storefront/pkg/upstream"
	"farm-storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type testDeps struct {
	svc      *Service
	up       *testutil.Upstream
	sessions *testutil.MemorySessions
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	up := testutil.NewUpstream(t)
	sessions := testutil.NewMemorySessions()
	log := zap.NewNop()

	api := upstream.New(up.URL(), log, upstream.WithTimeout(5*time.Second))
	repo := repository.NewRepository(sessions, api, log)
	cfg := &utils.Config{
		Session:  utils.SessionConfig{TTL: time.Hour},
		Upstream: utils.UpstreamConfig{UploadMaxMB: 1},
	}

	return &testDeps{svc: NewService(repo, cfg, log), up: up, sessions: sessions}
}

// sessionCtx returns a context carrying a logged-in session for role.
func (d *testDeps) sessionCtx(t *testing.T, role entity.Role) (context.Context, *entity.Session) {
	t.Helper()
	now := time.Now()
	session := &entity.Session{
		BaseNoDelete: entity.NewBaseNoDelete(now),
		TokenHash:    utils.HashToken(uuid.NewString()),
		AccessToken:  "access-" + string(role),
		Profile: &entity.Profile{
			Username:        "user-" + string(role),
			Email:           string(role) + "@farm.test",
			Role:            role,
			IsEmailVerified: true,
		},
		ExpiresAt: now.Add(time.Hour),
	}
	if err := d.sessions.Create(context.Background(), session); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return utils.SetSessionContext(context.Background(), session), session
}

func order(id int64, status entity.OrderStatus) map[string]any {
	return map[string]any{
		"id":          id,
		"created_at":  "2024-05-01T10:00:00Z",
		"total_price": "120.00",
		"status":      string(status),
		"items":       []any{},
		"is_paid":     false,
	}
}

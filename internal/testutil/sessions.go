// Package testutil holds fakes shared by the usecase, middleware and adaptor
// tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
)

// MemorySessions is an in-memory repository.SessionRepository.
type MemorySessions struct {
	mu   sync.Mutex
	rows map[string]*entity.Session
	Now  func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{rows: map[string]*entity.Session{}, Now: time.Now}
}

var _ repository.SessionRepository = (*MemorySessions)(nil)

func (m *MemorySessions) Create(ctx context.Context, session *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *session
	m.rows[session.TokenHash] = &cp
	return nil
}

func (m *MemorySessions) FindValidSession(ctx context.Context, tokenHash string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[tokenHash]
	if !ok || row.RevokedAt != nil || !m.Now().Before(row.ExpiresAt) {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (m *MemorySessions) UpdateProfile(ctx context.Context, tokenHash string, profile *entity.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[tokenHash]
	if !ok || row.RevokedAt != nil {
		return repository.ErrSessionNotFound
	}
	row.Profile = profile
	return nil
}

func (m *MemorySessions) Revoke(ctx context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[tokenHash]
	if !ok || row.RevokedAt != nil {
		return repository.ErrSessionNotFound
	}
	now := m.Now()
	row.RevokedAt = &now
	return nil
}

func (m *MemorySessions) CleanExpiredSessions(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.Now().Add(-7 * 24 * time.Hour)
	var n int64
	for hash, row := range m.rows {
		if row.ExpiresAt.Before(cutoff) || (row.RevokedAt != nil && row.RevokedAt.Before(cutoff)) {
			delete(m.rows, hash)
			n++
		}
	}
	return n, nil
}

// Get returns the stored row regardless of state.
func (m *MemorySessions) Get(tokenHash string) (*entity.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[tokenHash]
	if !ok {
		return nil, false
	}
	cp := *row
	return &cp, true
}

// Len counts rows, revoked ones included.
func (m *MemorySessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

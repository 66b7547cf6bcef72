package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/database"
	"farm-storefront/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned by Revoke and UpdateProfile when no live row
// matches the token hash.
var ErrSessionNotFound = errors.New("session not found or already revoked")

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, tokenHash string) (*entity.Session, error)
	UpdateProfile(ctx context.Context, tokenHash string, profile *entity.Profile) error
	Revoke(ctx context.Context, tokenHash string) error
	CleanExpiredSessions(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	profile, err := encodeProfile(session.Profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO sessions (id, token_hash, access_token, refresh_token, profile,
		                      user_agent, ip_address, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.Exec(ctx, query,
		session.ID,
		session.TokenHash,
		session.AccessToken,
		session.RefreshToken,
		profile,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, tokenHash string) (*entity.Session, error) {
	query := `
		SELECT id, token_hash, access_token, refresh_token, profile, user_agent,
		       ip_address, expires_at, revoked_at, created_at, updated_at
		FROM sessions
		WHERE token_hash = $1
		  AND revoked_at IS NULL
		  AND expires_at > NOW()
	`

	var (
		session entity.Session
		profile []byte
	)
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.TokenHash,
		&session.AccessToken,
		&session.RefreshToken,
		&profile,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.RevokedAt,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session",
			zap.Error(err),
			zap.String("token_hash", utils.MaskToken(tokenHash)),
		)
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if session.Profile, err = decodeProfile(profile); err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) UpdateProfile(ctx context.Context, tokenHash string, profile *entity.Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	query := `
		UPDATE sessions
		SET profile = $2, updated_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, tokenHash, raw)
	if err != nil {
		r.log.Error("Failed to update session profile",
			zap.Error(err),
			zap.String("token_hash", utils.MaskToken(tokenHash)),
		)
		return fmt.Errorf("failed to update session profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	query := `
		UPDATE sessions
		SET revoked_at = NOW(), updated_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, tokenHash)
	if err != nil {
		r.log.Error("Failed to revoke session",
			zap.Error(err),
			zap.String("token_hash", utils.MaskToken(tokenHash)),
		)
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// CleanExpiredSessions drops rows that expired or were revoked more than a
// week ago and reports how many went.
func (r *sessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM sessions
		WHERE expires_at < NOW() - INTERVAL '7 days'
		   OR revoked_at < NOW() - INTERVAL '7 days'
	`

	result, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean expired sessions",
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to clean sessions: %w", err)
	}

	return result.RowsAffected(), nil
}

// profile kolom JSONB, NULL kalau belum pernah fetch profile
func encodeProfile(p *entity.Profile) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode session profile: %w", err)
	}
	return b, nil
}

func decodeProfile(raw []byte) (*entity.Profile, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p entity.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode session profile: %w", err)
	}
	return &p, nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// redisSession is the JSON value stored under session:<token_hash>.
type redisSession struct {
	ID           uuid.UUID       `json:"id"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Profile      *entity.Profile `json:"profile,omitempty"`
	UserAgent    *string         `json:"user_agent,omitempty"`
	IPAddress    *string         `json:"ip_address,omitempty"`
	ExpiresAt    time.Time       `json:"expires_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type redisSessionRepository struct {
	client *redis.Client
	log    *zap.Logger
	now    func() time.Time
}

// NewRedisSessionRepository keeps sessions as expiring keys, so revocation is
// a delete and there is nothing to clean up.
func NewRedisSessionRepository(client *redis.Client, log *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		client: client,
		log:    log.With(zap.String("repository", "session_redis")),
		now:    time.Now,
	}
}

func (r *redisSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("failed to create session: already expired")
	}

	value, err := json.Marshal(redisSession{
		ID:           session.ID,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Profile:      session.Profile,
		UserAgent:    session.UserAgent,
		IPAddress:    session.IPAddress,
		ExpiresAt:    session.ExpiresAt,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+session.TokenHash, value, ttl).Err(); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) FindValidSession(ctx context.Context, tokenHash string) (*entity.Session, error) {
	record, err := r.load(ctx, tokenHash)
	if err != nil || record == nil {
		return nil, err
	}
	if !r.now().Before(record.ExpiresAt) {
		return nil, nil
	}

	return &entity.Session{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        record.ID,
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
		},
		TokenHash:    tokenHash,
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		Profile:      record.Profile,
		UserAgent:    record.UserAgent,
		IPAddress:    record.IPAddress,
		ExpiresAt:    record.ExpiresAt,
	}, nil
}

func (r *redisSessionRepository) UpdateProfile(ctx context.Context, tokenHash string, profile *entity.Profile) error {
	record, err := r.load(ctx, tokenHash)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrSessionNotFound
	}

	record.Profile = profile
	record.UpdatedAt = r.now()
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = r.client.SetArgs(ctx, sessionKeyPrefix+tokenHash, value, redis.SetArgs{KeepTTL: true, Mode: "XX"}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrSessionNotFound
	}
	if err != nil {
		r.log.Error("Failed to update session profile",
			zap.Error(err),
			zap.String("token_hash", utils.MaskToken(tokenHash)),
		)
		return fmt.Errorf("failed to update session profile: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	deleted, err := r.client.Del(ctx, sessionKeyPrefix+tokenHash).Result()
	if err != nil {
		r.log.Error("Failed to revoke session",
			zap.Error(err),
			zap.String("token_hash", utils.MaskToken(tokenHash)),
		)
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// CleanExpiredSessions is a no-op; redis expires the keys itself.
func (r *redisSessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

func (r *redisSessionRepository) load(ctx context.Context, tokenHash string) (*redisSession, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+tokenHash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load session",
			zap.Error(err),
			zap.String("token_hash", utils.MaskToken(tokenHash)),
		)
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	var record redisSession
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &record, nil
}

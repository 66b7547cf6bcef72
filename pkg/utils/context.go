package utils

import (
	"context"

	"farm-storefront/internal/data/entity"
)

type contextKey string

const (
	SessionKey     contextKey = "session"
	AccessTokenKey contextKey = "access_token"
)

// SetSessionContext stores the resolved BFF session and the upstream bearer
// token it carries.
func SetSessionContext(ctx context.Context, session *entity.Session) context.Context {
	ctx = context.WithValue(ctx, SessionKey, session)
	ctx = context.WithValue(ctx, AccessTokenKey, session.AccessToken)
	return ctx
}

func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

// GetRoleFromContext returns the role of the cached profile, if any.
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok || session.Profile == nil {
		return "", false
	}
	return session.Profile.Role, true
}

// GetAccessTokenFromContext mendapatkan upstream token dari context
func GetAccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// SetAccessTokenContext is used where a token exists before a session does
// (the profile fetch right after token issuance).
func SetAccessTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenKey, token)
}

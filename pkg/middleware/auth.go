package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

// SessionResolver turns a presented storefront token into a live session.
type SessionResolver interface {
	Current(ctx context.Context, token string) (*entity.Session, error)
}

// TokenFromRequest reads the session token from "Authorization: Bearer" first,
// then from the session cookie.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// Session resolves the token, if any, and puts the session in the context.
// It never rejects a request; use RequireSession for that.
func Session(resolver SessionResolver, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolver.Current(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", utils.MaskToken(token)),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetSessionContext(r.Context(), session)))
		})
	}
}

// RequireSession rejects requests without a logged-in session.
func RequireSession(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSessionFromContext(r.Context())
			if !ok || !session.IsLoggedIn(time.Now()) {
				logger.Debug("Unauthenticated request", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Please log in to continue")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireVerified gates cart and order pages behind email verification.
func RequireVerified(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.GetSessionFromContext(r.Context())
			if !ok || session.Profile == nil {
				utils.ResponseUnauthorized(w, "Please log in to continue")
				return
			}
			if !session.Profile.IsEmailVerified {
				logger.Warn("Unverified access attempt",
					zap.String("username", session.Profile.Username),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Please verify your email first")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole - middleware cek role dari profile session
func RequireRole(logger *zap.Logger, roles ...entity.Role) func(http.Handler) http.Handler {
	allowed := make(map[entity.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Please log in to continue")
				return
			}
			if !allowed[role] {
				logger.Warn("Role check: access denied",
					zap.String("role", string(role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "You do not have access to this page")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

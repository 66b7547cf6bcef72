package response

import (
	"time"

	"farm-storefront/internal/data/entity"
)

// SessionResponse is what GET /api/session returns for every visitor.
type SessionResponse struct {
	IsLoggedIn bool            `json:"is_logged_in"`
	User       *entity.Profile `json:"user"`
	ExpiresAt  *time.Time      `json:"expires_at,omitempty"`
}

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Landing   string          `json:"landing"`
	Session   SessionResponse `json:"session"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SessionToResponse treats a nil or profile-less session as logged out.
func SessionToResponse(session *entity.Session, now time.Time) SessionResponse {
	if !session.IsLoggedIn(now) {
		return SessionResponse{}
	}
	expiresAt := session.ExpiresAt
	return SessionResponse{
		IsLoggedIn: true,
		User:       session.Profile,
		ExpiresAt:  &expiresAt,
	}
}

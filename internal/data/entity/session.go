package entity

import (
	"time"
)

// Session is the BFF-side login: the upstream tokens plus the last profile
// fetched with them. The browser only ever sees the opaque token whose hash
// is TokenHash.
type Session struct {
	BaseNoDelete
	TokenHash    string     `db:"token_hash"`
	AccessToken  string     `db:"access_token"`
	RefreshToken string     `db:"refresh_token"`
	Profile      *Profile   `db:"profile"`
	UserAgent    *string    `db:"user_agent"`
	IPAddress    *string    `db:"ip_address"`
	ExpiresAt    time.Time  `db:"expires_at"`
	RevokedAt    *time.Time `db:"revoked_at"`
}

// IsLoggedIn holds only while the row is live and a profile fetch succeeded.
func (s *Session) IsLoggedIn(now time.Time) bool {
	if s == nil || s.RevokedAt != nil || !now.Before(s.ExpiresAt) {
		return false
	}
	return s.Profile != nil
}

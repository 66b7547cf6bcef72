package database

import (
	"context"
	"fmt"
)

// sessionSchema is the only table the storefront owns; everything else lives
// behind the upstream API.
const sessionSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id            UUID PRIMARY KEY,
	token_hash    TEXT NOT NULL UNIQUE,
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL DEFAULT '',
	profile       JSONB,
	user_agent    TEXT,
	ip_address    TEXT,
	expires_at    TIMESTAMPTZ NOT NULL,
	revoked_at    TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);
`

// Migrate creates the sessions table if it does not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, sessionSchema); err != nil {
		return fmt.Errorf("apply session schema: %w", err)
	}
	return nil
}

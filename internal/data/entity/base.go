package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseNoDelete is the id + timestamps block of rows the storefront owns
// itself (only sessions; everything else is upstream data).
type BaseNoDelete struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewBaseNoDelete(now time.Time) BaseNoDelete {
	return BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

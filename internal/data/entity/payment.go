package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment is a driver payout tied to one delivered order.
type Payment struct {
	ID           int64           `json:"id"`
	Driver       string          `json:"driver"`
	RelatedOrder int64           `json:"related_order"`
	Amount       decimal.Decimal `json:"amount"`
	Status       PaymentStatus   `json:"status"`
	PaidAt       *time.Time      `json:"paid_at"`
}

type Earnings struct {
	Payments      []Payment       `json:"payments"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalPending  decimal.Decimal `json:"total_pending"`
}

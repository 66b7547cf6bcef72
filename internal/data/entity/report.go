package entity

import (
	"github.com/shopspring/decimal"
)

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type OrderReport struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	AssignedOrders  int             `json:"assigned_orders"`
	OnWayOrders     int             `json:"on_way_orders"`
	DeliveredOrders int             `json:"delivered_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	OrdersPerDay    []DayCount      `json:"orders_per_day"`
}

type PaymentReport struct {
	PendingPayments int             `json:"pending_payments"`
	PaidPayments    int             `json:"paid_payments"`
	FailedPayments  int             `json:"failed_payments"`
	TotalDriverPaid decimal.Decimal `json:"total_driver_paid"`
	TotalDriverDue  decimal.Decimal `json:"total_driver_due"`
	PaymentsPerDay  []DayCount      `json:"payments_per_day"`
}

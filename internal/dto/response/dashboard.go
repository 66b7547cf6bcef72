package response

import "farm-storefront/internal/data/entity"

type DashboardStats struct {
	Products        int `json:"products"`
	Orders          int `json:"orders"`
	Users           int `json:"users"`
	PendingPayments int `json:"pending_payments"`
}

type DashboardResponse struct {
	Stats         DashboardStats        `json:"stats"`
	OrderReport   *entity.OrderReport   `json:"order_report"`
	PaymentReport *entity.PaymentReport `json:"payment_report"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusOnWay     OrderStatus = "on_way"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses in workflow order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAssigned,
	OrderStatusOnWay,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type OrderItem struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type Order struct {
	ID                 int64           `json:"id"`
	CreatedAt          time.Time       `json:"created_at"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Status             OrderStatus     `json:"status"`
	Items              []OrderItem     `json:"items"`
	AssignedDriver     *int64          `json:"assigned_driver"`
	AssignedDriverName string          `json:"assigned_driver_name,omitempty"`
	Username           string          `json:"username,omitempty"`
	IsPaid             bool            `json:"is_paid"`
}

// OrderDetail is GET /orders/detail/{id}/.
type OrderDetail struct {
	Order
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	DriverName    *string    `json:"driver_name"`
	DeliveredAt   *time.Time `json:"delivered_at"`
	PaymentMode   *string    `json:"payment_mode"`
}

// StatusFilter narrows the staff order listing.
type StatusFilter struct {
	Status OrderStatus
	Date   string // YYYY-MM-DD
}

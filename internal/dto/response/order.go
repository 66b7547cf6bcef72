package response

import (
	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/workflow"
)

// StaffOrderResponse is one row of the staff table with its status selector.
type StaffOrderResponse struct {
	entity.Order
	StatusOptions []workflow.Option `json:"status_options"`
	CanAssign     bool              `json:"can_assign"`
}

type DeliveryOrderResponse struct {
	entity.Order
	StatusOptions []workflow.Option `json:"status_options"`
	CanRequestOTP bool              `json:"can_request_otp"`
}

type DeliveryOrdersResponse struct {
	Filter        []entity.OrderStatus    `json:"filter"`
	FilterOptions []workflow.Option       `json:"filter_options"`
	Orders        []DeliveryOrderResponse `json:"orders"`
}

type CustomerOrderResponse struct {
	entity.Order
	CanCancel bool `json:"can_cancel"`
}

type StatusChangeResponse struct {
	OrderID int64              `json:"order_id"`
	Status  entity.OrderStatus `json:"status"`
	Message string             `json:"message,omitempty"`
}

func StaffOrderToResponse(order entity.Order) StaffOrderResponse {
	return StaffOrderResponse{
		Order:         order,
		StatusOptions: workflow.Options(order.Status, workflow.ActorStaff),
		CanAssign:     !order.Status.Terminal(),
	}
}

func DeliveryOrderToResponse(order entity.Order) DeliveryOrderResponse {
	return DeliveryOrderResponse{
		Order:         order,
		StatusOptions: workflow.Options(order.Status, workflow.ActorDelivery),
		CanRequestOTP: workflow.CanRequestOTP(order.Status) == nil,
	}
}

func CustomerOrderToResponse(order entity.Order) CustomerOrderResponse {
	return CustomerOrderResponse{
		Order:     order,
		CanCancel: workflow.CanTransition(order.Status, entity.OrderStatusCancelled, workflow.ActorCustomer) == nil,
	}
}

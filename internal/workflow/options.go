package workflow

import "farm-storefront/internal/data/entity"

// Option is one entry of a status <select>.
type Option struct {
	Value    entity.OrderStatus `json:"value"`
	Label    string             `json:"label"`
	Selected bool               `json:"selected"`
	Disabled bool               `json:"disabled"`
}

var staffOptions = []Option{
	{Value: entity.OrderStatusPending, Label: "Pending"},
	{Value: entity.OrderStatusAssigned, Label: "Assigned"},
	{Value: entity.OrderStatusOnWay, Label: "On Way"},
	{Value: entity.OrderStatusDelivered, Label: "Delivered"},
	{Value: entity.OrderStatusCancelled, Label: "Cancelled"},
}

// drivers never get "delivered" in the selector, that goes through the OTP
var deliveryOptions = []Option{
	{Value: entity.OrderStatusAssigned, Label: "Assigned"},
	{Value: entity.OrderStatusOnWay, Label: "Left for Delivery"},
	{Value: entity.OrderStatusCancelled, Label: "Cancelled"},
}

// DeliveryFilterOptions are the checkboxes of the driver's order list.
var DeliveryFilterOptions = []Option{
	{Value: entity.OrderStatusAssigned, Label: "Assigned"},
	{Value: entity.OrderStatusOnWay, Label: "Left for Delivery"},
	{Value: entity.OrderStatusDelivered, Label: "Delivered"},
	{Value: entity.OrderStatusCancelled, Label: "Cancelled"},
}

// DefaultDeliveryFilter is what the driver sees before touching the filter.
var DefaultDeliveryFilter = []entity.OrderStatus{
	entity.OrderStatusAssigned,
	entity.OrderStatusOnWay,
}

// Options renders the status selector for an order in status as seen by
// actor. The current status is selected; every option is disabled once the
// order is terminal.
func Options(status entity.OrderStatus, actor Actor) []Option {
	var base []Option
	switch actor {
	case ActorStaff:
		base = staffOptions
	case ActorDelivery:
		base = deliveryOptions
	default:
		return nil
	}

	out := make([]Option, len(base))
	for i, opt := range base {
		opt.Selected = opt.Value == status
		switch {
		case status.Terminal():
			opt.Disabled = true
		case opt.Selected:
			opt.Disabled = false
		default:
			opt.Disabled = CanTransition(status, opt.Value, actor) != nil
		}
		out[i] = opt
	}
	return out
}

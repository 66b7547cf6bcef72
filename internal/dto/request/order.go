package request

import "farm-storefront/internal/data/entity"

type StaffOrderFilter struct {
	Status string `json:"status" validate:"omitempty,oneof=pending assigned on_way delivered cancelled"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=pending assigned on_way delivered cancelled"`
}

type AssignDriverRequest struct {
	DriverID int64 `json:"driver_id" validate:"required,gt=0"`
}

type ConfirmOTPRequest struct {
	OTP string `json:"otp"`
}

// DeliveryFilter is the set of checked status boxes; empty means the default
// assigned + on_way.
type DeliveryFilter struct {
	Statuses []entity.OrderStatus `validate:"dive,oneof=pending assigned on_way delivered cancelled"`
}

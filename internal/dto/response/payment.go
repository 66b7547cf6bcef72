package response

import "farm-storefront/internal/data/entity"

type PaymentResponse struct {
	entity.Payment
	CanMarkPaid bool `json:"can_mark_paid"`
}

func PaymentToResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{Payment: p, CanMarkPaid: p.Status == entity.PaymentStatusPending}
}

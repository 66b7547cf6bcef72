package adaptor

import (
	"net/http"
	"strings"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type DeliveryHandler struct {
	service usecase.DeliveryService
	errs    errorMapper
	log     *zap.Logger
}

func NewDeliveryHandler(service usecase.DeliveryService, errs errorMapper, log *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "delivery")),
	}
}

// ListOrders handles GET /api/delivery/orders?status=assigned,on_way
// (repeated status params work too).
func (h *DeliveryHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var filter request.DeliveryFilter
	for _, raw := range r.URL.Query()["status"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				filter.Statuses = append(filter.Statuses, entity.OrderStatus(part))
			}
		}
	}
	if !validateRequest(w, filter) {
		return
	}

	resp, err := h.service.ListOrders(r.Context(), &filter)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "list delivery orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", resp)
}

// UpdateStatus handles PATCH /api/delivery/orders/{id}/status
func (h *DeliveryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req request.UpdateStatusRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "update delivery status")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// RequestOTP handles POST /api/delivery/orders/{id}/otp
func (h *DeliveryHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.RequestOTP(r.Context(), orderID)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "request delivery OTP")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// ConfirmOTP handles POST /api/delivery/orders/{id}/otp/confirm
func (h *DeliveryHandler) ConfirmOTP(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req request.ConfirmOTPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.ConfirmOTP(r.Context(), orderID, &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "confirm delivery OTP")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// Earnings handles GET /api/delivery/earnings
func (h *DeliveryHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	earnings, err := h.service.Earnings(r.Context())
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "get earnings")
		return
	}

	utils.ResponseSuccess(w, "Earnings retrieved successfully", earnings)
}

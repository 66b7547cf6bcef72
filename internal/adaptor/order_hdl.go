package adaptor

import (
	"net/http"

	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

// OrderHandler serves the customer's own orders, plus buy-now.
type OrderHandler struct {
	service usecase.OrderService
	errs    errorMapper
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, errs errorMapper, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Place handles POST /api/orders
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceOrderRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.Place(r.Context(), &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "place order")
		return
	}

	utils.ResponseCreated(w, resp.Message, resp)
}

// List handles GET /api/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// Detail handles GET /api/orders/{id}
func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.service.Detail(r.Context(), orderID)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "get order detail")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", detail)
}

// Cancel handles DELETE /api/orders/{id}
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Cancel(r.Context(), orderID)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "cancel order")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

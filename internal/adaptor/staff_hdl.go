package adaptor

import (
	"net/http"

	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	errs    errorMapper
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, errs errorMapper, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "staff")),
	}
}

// ListOrders handles GET /api/staff/orders?status=&date=YYYY-MM-DD
func (h *StaffHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := request.StaffOrderFilter{
		Status: query.Get("status"),
		Date:   query.Get("date"),
	}
	if !validateRequest(w, filter) {
		return
	}

	orders, err := h.service.ListOrders(r.Context(), &filter)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "list staff orders")
		return
	}

	utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
}

// UpdateStatus handles PATCH /api/staff/orders/{id}/status
func (h *StaffHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
		h.errs.handleServiceError(w, r, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// AssignDriver handles PATCH /api/staff/orders/{id}/driver
func (h *StaffHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	orderID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req request.AssignDriverRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.AssignDriver(r.Context(), orderID, &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "assign driver")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// Drivers handles GET /api/staff/drivers
func (h *StaffHandler) Drivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.Drivers(r.Context())
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "list drivers")
		return
	}

	utils.ResponseSuccess(w, "Drivers retrieved successfully", drivers)
}

package adaptor

import (
	"net/http"

	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

// AdminHandler serves the dashboard and driver payments.
type AdminHandler struct {
	service  usecase.AdminService
	payments usecase.PaymentService
	errs     errorMapper
	log      *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, payments usecase.PaymentService, errs errorMapper, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		payments: payments,
		errs:     errs,
		log:      log.With(zap.String("handler", "admin")),
	}
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "load dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", dashboard)
}

// Payments handles GET /api/admin/payments
func (h *AdminHandler) Payments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.List(r.Context())
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}

// MarkPaid handles POST /api/admin/payments/{id}/mark-paid
func (h *AdminHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	payment, err := h.payments.MarkPaid(r.Context(), paymentID)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "mark payment paid")
		return
	}

	utils.ResponseSuccess(w, "Payment marked as paid", payment)
}

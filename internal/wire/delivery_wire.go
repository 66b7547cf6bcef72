package wire

import (
	"farm-storefront/internal/adaptor"
	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDelivery(r chi.Router, deliveryHandler *adaptor.DeliveryHandler, log *zap.Logger) {
	r.With(
		middleware.RequireSession(log),
		middleware.RequireRole(log, entity.RoleDelivery),
	).Route("/api/delivery", func(r chi.Router) {
		r.Get("/orders", deliveryHandler.ListOrders) // GET /api/delivery/orders?status=assigned,on_way
		r.Patch("/orders/{id}/status", deliveryHandler.UpdateStatus)
		r.Post("/orders/{id}/otp", deliveryHandler.RequestOTP)
		r.Post("/orders/{id}/otp/confirm", deliveryHandler.ConfirmOTP)
		r.Get("/earnings", deliveryHandler.Earnings)
	})
}

package wire

import (
	"farm-storefront/internal/adaptor"
	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAdmin configures the dashboard and driver payment routes
func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(
			middleware.RequireSession(log),
			middleware.RequireRole(log, entity.RoleAdmin),
		)
		r.Get("/api/admin/dashboard", adminHandler.Dashboard)
		r.Get("/api/admin/payments", adminHandler.Payments)
		r.Post("/api/admin/payments/{id}/mark-paid", adminHandler.MarkPaid)
	})
}

package wire

import (
	"farm-storefront/internal/adaptor"
	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireStaff - staff dan admin bisa kelola order
func wireStaff(r chi.Router, staffHandler *adaptor.StaffHandler, catalogHandler *adaptor.CatalogHandler, log *zap.Logger) {
	r.With(
		middleware.RequireSession(log),
		middleware.RequireRole(log, entity.RoleStaff, entity.RoleAdmin),
	).Route("/api/staff", func(r chi.Router) {
		r.Get("/orders", staffHandler.ListOrders) // GET /api/staff/orders?status=pending&date=2024-01-31
		r.Patch("/orders/{id}/status", staffHandler.UpdateStatus)
		r.Patch("/orders/{id}/driver", staffHandler.AssignDriver)
		r.Get("/drivers", staffHandler.Drivers)
		r.Post("/products", catalogHandler.Create)
	})
}

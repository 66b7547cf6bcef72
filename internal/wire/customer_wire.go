package wire

import (
	"farm-storefront/internal/adaptor"
	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCustomer configures cart and order routes; all of them need a verified
// customer account.
func wireCustomer(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	orderHandler *adaptor.OrderHandler,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(
			middleware.RequireSession(log),
			middleware.RequireVerified(log),
			middleware.RequireRole(log, entity.RoleCustomer),
		)

		r.Route("/api/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{id}", cartHandler.UpdateItem)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
			r.Post("/buy-now", cartHandler.BuyNow)
		})

		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", orderHandler.Place)
			r.Get("/", orderHandler.List)
			r.Get("/{id}", orderHandler.Detail)
			r.Delete("/{id}", orderHandler.Cancel)
		})
	})
}

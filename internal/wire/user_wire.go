package wire

import (
	"farm-storefront/internal/adaptor"
	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user management routes with role-based access control
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, log *zap.Logger) {
	// ==================== ADMIN ROUTES ====================
	// Admin user management - requires both a session AND admin role
	r.With(
		middleware.RequireSession(log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)       // GET /api/admin/users?page=1&per_page=10&role=staff
		r.Put("/{id}", userHandler.UpdateUser)    // PUT /api/admin/users/{id}
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/admin/users/{id}
	})
}

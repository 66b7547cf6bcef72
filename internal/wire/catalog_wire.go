package wire

import (
	"farm-storefront/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCatalog - katalog produk bisa dilihat tanpa login
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler, log *zap.Logger) {
	r.Get("/api/products", catalogHandler.List) // GET /api/products?category=milk
	r.Get("/api/products/{id}", catalogHandler.Get)
}

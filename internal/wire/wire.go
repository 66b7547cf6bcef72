// internal/wire/wire.go
package wire

import (
	"net/http"

	"farm-storefront/internal/adaptor"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/middleware"
	"farm-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
	// Limiter guards the login and register routes; its Run loop is owned by
	// the server command.
	Limiter *middleware.RateLimiter
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)
	limiter := middleware.NewRateLimiter(config.HTTP.RateLimitRPS, config.HTTP.RateLimitBurst)

	router := setupRouter(handler, service, limiter, config, logger)

	return &App{
		Router:  router,
		Service: service,
		Limiter: limiter,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSOrigins))
	r.Use(middleware.Session(service.Auth, config.Session.CookieName, logger))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Apply routes
	wireAuth(r, handler.Auth, limiter, logger)
	wireCatalog(r, handler.Catalog, logger)
	wireCustomer(r, handler.Cart, handler.Order, logger)
	wireStaff(r, handler.Staff, handler.Catalog, logger)
	wireDelivery(r, handler.Delivery, logger)
	wireAdmin(r, handler.Admin, logger)
	wireUser(r, handler.User, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

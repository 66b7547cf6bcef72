package wire

import (
	"farm-storefront/internal/adaptor"
	"farm-storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	limiter *middleware.RateLimiter,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/session", authHandler.Session)
	r.Get("/api/navigation", authHandler.Navigation)

	// Login & register dibatasi per IP
	r.With(limiter.Middleware).Post("/api/auth/login", authHandler.Login)
	r.With(limiter.Middleware).Post("/api/auth/register", authHandler.Register)

	// ==================== PROTECTED ROUTES ====================
	requireSession := middleware.RequireSession(log)
	r.With(requireSession).Post("/api/auth/logout", authHandler.Logout)
	r.With(requireSession, limiter.Middleware).Post("/api/auth/email-otp", authHandler.SendEmailOTP)
	r.With(requireSession).Post("/api/auth/verify-email", authHandler.VerifyEmail)
}

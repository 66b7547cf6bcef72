package adaptor

import (
	"net/http"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/dto/response"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/middleware"
	"farm-storefront/pkg/upstream"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	cookie  utils.SessionConfig
	errs    errorMapper
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookie utils.SessionConfig, errs errorMapper, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookie:  cookie,
		errs:    errs,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleCredentialError(w, r, err, "register")
		return
	}

	utils.ResponseCreated(w, resp.Message, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	meta := request.ClientMeta{
		UserAgent: r.UserAgent(),
		IPAddress: middleware.ClientIP(r),
	}

	resp, err := h.service.Login(r.Context(), &req, meta)
	if err != nil {
		h.handleCredentialError(w, r, err, "login")
		return
	}

	h.setCookie(w, resp.Token, resp.ExpiresAt)
	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	if err := h.service.Logout(r.Context(), session); err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "logout")
		return
	}

	h.clearCookie(w)
	utils.ResponseSuccess(w, "Logout successful", response.SessionResponse{})
}

// Session handles GET /api/session; anonymous visitors get is_logged_in=false.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())
	utils.ResponseSuccess(w, "Session retrieved", response.SessionToResponse(session, time.Now()))
}

// Navigation handles GET /api/navigation
func (h *AuthHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	var profile *entity.Profile
	if session, ok := utils.GetSessionFromContext(r.Context()); ok && session.IsLoggedIn(time.Now()) {
		profile = session.Profile
	}

	utils.ResponseSuccess(w, "Navigation retrieved", usecase.Navigation(profile))
}

// SendEmailOTP handles POST /api/auth/email-otp
func (h *AuthHandler) SendEmailOTP(w http.ResponseWriter, r *http.Request) {
	session, _ := utils.GetSessionFromContext(r.Context())

	resp, err := h.service.SendEmailOTP(r.Context(), session)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "send email OTP")
		return
	}

	utils.ResponseSuccess(w, resp.Message, resp)
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}
	session, _ := utils.GetSessionFromContext(r.Context())

	resp, err := h.service.VerifyEmail(r.Context(), session, &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", resp)
}

// handleCredentialError shows the upstream message for a rejected login or
// registration instead of treating the 401 as an expired session.
func (h *AuthHandler) handleCredentialError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if apiErr, ok := upstream.AsAPIError(err); ok && apiErr.Status < 500 {
		message := apiErr.Message
		if message == "" {
			message = "Invalid email or password"
		}
		h.log.Warn(operation+" rejected", zap.Int("status", apiErr.Status), zap.String("message", message))
		utils.ResponseError(w, apiErr.Status, message)
		return
	}
	h.errs.handleServiceError(w, r, h.log, err, operation)
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

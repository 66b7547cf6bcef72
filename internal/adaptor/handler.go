package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/upstream"
	"farm-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Order    *OrderHandler
	Staff    *StaffHandler
	Delivery *DeliveryHandler
	Admin    *AdminHandler
	User     *UserHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	errs := errorMapper{auth: service.Auth}
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config.Session, errs, log),
		Catalog:  NewCatalogHandler(service.Catalog, config.Upstream.UploadMaxMB, errs, log),
		Cart:     NewCartHandler(service.Cart, errs, log),
		Order:    NewOrderHandler(service.Order, errs, log),
		Staff:    NewStaffHandler(service.Staff, errs, log),
		Delivery: NewDeliveryHandler(service.Delivery, errs, log),
		Admin:    NewAdminHandler(service.Admin, service.Payment, errs, log),
		User:     NewUserHandler(service.User, errs, log),
	}
}

const networkErrorMessage = "Network error. Please try again later."

// errorMapper is shared by every handler so an upstream 401 ends the session
// no matter which page triggered it.
type errorMapper struct {
	auth usecase.AuthService
}

// handleServiceError maps usecase and upstream errors to responses
func (m errorMapper) handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		message := validationErr.Message
		if message == "" {
			message = "Validation failed"
		}
		utils.ResponseBadRequest(w, message, validationErr.Fields)

	case errors.Is(err, usecase.ErrNotAuthenticated):
		log.Warn(operation+" failed - not authenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, "Please log in to continue")

	case errors.Is(err, usecase.ErrEmailNotVerified):
		utils.ResponseForbidden(w, "Please verify your email first")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "You are not allowed to do that")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Not found")

	case errors.Is(err, usecase.ErrOTPRequired):
		utils.ResponseUnprocessable(w, "Delivery must be confirmed with the customer's OTP", nil)

	case errors.Is(err, usecase.ErrInvalidTransition):
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	case errors.Is(err, upstream.ErrNetwork):
		log.Error(operation+" failed - upstream unreachable", zap.Error(err))
		utils.ResponseBadGateway(w, networkErrorMessage)

	default:
		apiErr, ok := upstream.AsAPIError(err)
		if !ok {
			log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
			utils.ResponseInternalError(w, "Internal server error")
			return
		}
		m.handleAPIError(w, r, log, apiErr, operation)
	}
}

func (m errorMapper) handleAPIError(w http.ResponseWriter, r *http.Request, log *zap.Logger, apiErr *upstream.APIError, operation string) {
	message := apiErr.Message
	if message == "" {
		message = http.StatusText(apiErr.Status)
	}

	switch {
	case apiErr.Status == http.StatusUnauthorized:
		log.Warn(operation+" failed - upstream rejected token", zap.Error(apiErr))
		if session, ok := utils.GetSessionFromContext(r.Context()); ok {
			m.auth.Invalidate(r.Context(), session)
		}
		utils.ResponseUnauthorized(w, "Your session has expired. Please log in again.")

	case apiErr.Status >= 400 && apiErr.Status < 500:
		log.Warn(operation+" rejected by upstream", zap.Int("status", apiErr.Status), zap.String("message", message))
		utils.ResponseError(w, apiErr.Status, message)

	default:
		log.Error(operation+" failed - upstream error", zap.Int("status", apiErr.Status), zap.String("message", message))
		utils.ResponseBadGateway(w, message)
	}
}

// decodeJSON - decode body, balas 400 kalau gagal
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

func validateRequest(w http.ResponseWriter, v any) bool {
	if validationErrors := utils.ValidateStruct(v); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

// idParam reads a positive integer path parameter.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// parseInt helper untuk parse query parameters
func parseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}

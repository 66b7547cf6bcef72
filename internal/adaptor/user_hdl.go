package adaptor

import (
	"net/http"
	"strings"

	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	errs    errorMapper
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, errs errorMapper, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /api/admin/users?page=&per_page=&role=&search= (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListUsersRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    parseInt(query.Get("page"), 1),
			PerPage: parseInt(query.Get("per_page"), 10),
		},
		Role:   query.Get("role"),
		Search: strings.TrimSpace(query.Get("search")),
	}

	// Validate per_page max
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// UpdateUser handles PUT /api/admin/users/{id} (admin only)
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req request.UpdateUserRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	if err := h.service.UpdateUser(r.Context(), userID, &req); err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", nil)
}

// DeleteUser handles DELETE /api/admin/users/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

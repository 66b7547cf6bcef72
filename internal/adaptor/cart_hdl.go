package adaptor

import (
	"net/http"

	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	errs    errorMapper
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, errs errorMapper, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		errs:    errs,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.Get(r.Context())
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved successfully", cart)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.AddToCartRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "add to cart")
		return
	}

	utils.ResponseCreated(w, resp.Message, resp)
}

// UpdateItem handles PUT /api/cart/items/{id}. Quantity is checked by the
// service so a bad value never reaches the upstream API.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req request.UpdateCartItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cart, err := h.service.UpdateItem(r.Context(), itemID, &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "update cart item")
		return
	}

	utils.ResponseSuccess(w, "Cart updated", cart)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), itemID)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "Item removed from cart", cart)
}

// BuyNow handles POST /api/cart/buy-now
func (h *CartHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	var req request.AddToCartRequest
	if !decodeJSON(w, r, &req) || !validateRequest(w, req) {
		return
	}

	resp, err := h.service.BuyNow(r.Context(), &req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "buy now")
		return
	}

	utils.ResponseCreated(w, resp.Message, resp)
}

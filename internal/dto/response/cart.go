package response

import (
	"farm-storefront/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CartResponse struct {
	Items      []entity.CartItem `json:"items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

func CartToResponse(cart *entity.Cart) CartResponse {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}
	return CartResponse{Items: items, TotalPrice: cart.TotalPrice}
}

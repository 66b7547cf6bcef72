package entity

import (
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Cart is owned by the upstream; local copies are only ever replaced from
// its responses.
type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// LineItem is the {product, quantity} pair add_to_cart and create_order take.
type LineItem struct {
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

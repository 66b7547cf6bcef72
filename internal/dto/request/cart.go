package request

// AddToCartRequest is also the buy-now body.
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"gte=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=1"`
}

type PlaceOrderRequest struct {
	Items []AddToCartRequest `json:"items" validate:"required,min=1,dive"`
}

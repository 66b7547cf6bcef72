package repository

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/upstream"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartRepository interface {
	Get(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, item entity.LineItem) (string, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*CartItemUpdate, error)
	RemoveItem(ctx context.Context, itemID int64) (decimal.Decimal, error)
}

// CartItemUpdate is what PUT /orders/update_item/{id}/ reports back.
type CartItemUpdate struct {
	Item struct {
		Price decimal.Decimal `json:"price"`
	} `json:"item"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type cartRepository struct {
	api *upstream.Client
	log *zap.Logger
}

func NewCartRepository(api *upstream.Client, log *zap.Logger) CartRepository {
	return &cartRepository{
		api: api,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) Get(ctx context.Context) (*entity.Cart, error) {
	var resp struct {
		CartData *entity.Cart `json:"cart_data"`
	}
	if err := r.api.Get(ctx, "/orders/get_cart/", nil, &resp); err != nil {
		logUpstreamError(r.log, "Failed to get cart", err)
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if resp.CartData == nil {
		return &entity.Cart{Items: []entity.CartItem{}}, nil
	}
	if resp.CartData.Items == nil {
		resp.CartData.Items = []entity.CartItem{}
	}
	return resp.CartData, nil
}

func (r *cartRepository) AddItem(ctx context.Context, item entity.LineItem) (string, error) {
	body := map[string][]entity.LineItem{"items": {item}}

	var resp messageResponse
	if err := r.api.Post(ctx, "/orders/add_to_cart/", body, &resp); err != nil {
		logUpstreamError(r.log, "Failed to add to cart", err,
			zap.Int64("product_id", item.Product),
			zap.Int("quantity", item.Quantity),
		)
		return "", fmt.Errorf("add product %d to cart: %w", item.Product, err)
	}
	return resp.Message, nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, itemID int64, quantity int) (*CartItemUpdate, error) {
	path := fmt.Sprintf("/orders/update_item/%d/", itemID)

	var resp CartItemUpdate
	if err := r.api.Put(ctx, path, map[string]int{"quantity": quantity}, &resp); err != nil {
		logUpstreamError(r.log, "Failed to update cart item", err,
			zap.Int64("item_id", itemID),
			zap.Int("quantity", quantity),
		)
		return nil, fmt.Errorf("update cart item %d: %w", itemID, err)
	}
	return &resp, nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID int64) (decimal.Decimal, error) {
	path := fmt.Sprintf("/orders/remove_from_cart/%d/", itemID)

	var resp struct {
		TotalPrice decimal.Decimal `json:"total_price"`
	}
	if err := r.api.Delete(ctx, path, &resp); err != nil {
		logUpstreamError(r.log, "Failed to remove cart item", err, zap.Int64("item_id", itemID))
		return decimal.Zero, fmt.Errorf("remove cart item %d: %w", itemID, err)
	}
	return resp.TotalPrice, nil
}

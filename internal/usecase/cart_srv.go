package usecase

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/dto/response"

	"go.uber.org/zap"
)

const msgQuantityTooLow = "Quantity must be at least 1"

type CartService interface {
	Get(ctx context.Context) (*response.CartResponse, error)
	AddItem(ctx context.Context, req *request.AddToCartRequest) (*response.MessageResponse, error)
	BuyNow(ctx context.Context, req *request.AddToCartRequest) (*response.MessageResponse, error)
	UpdateItem(ctx context.Context, itemID int64, req *request.UpdateCartItemRequest) (*response.CartResponse, error)
	RemoveItem(ctx context.Context, itemID int64) (*response.CartResponse, error)
}

type cartService struct {
	repo *repository.Repository // cart + order
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) Get(ctx context.Context) (*response.CartResponse, error) {
	cart, err := s.repo.Cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	resp := response.CartToResponse(cart)
	return &resp, nil
}

func (s *cartService) AddItem(ctx context.Context, req *request.AddToCartRequest) (*response.MessageResponse, error) {
	if err := checkLineItem(req); err != nil {
		return nil, err
	}

	msg, err := s.repo.Cart.AddItem(ctx, entity.LineItem{Product: req.ProductID, Quantity: req.Quantity})
	if err != nil {
		return nil, err
	}
	if msg == "" {
		msg = "Product added to cart successfully"
	}
	return &response.MessageResponse{Message: msg}, nil
}

// BuyNow places an order for a single product without touching the cart.
func (s *cartService) BuyNow(ctx context.Context, req *request.AddToCartRequest) (*response.MessageResponse, error) {
	if err := checkLineItem(req); err != nil {
		return nil, err
	}

	msg, err := s.repo.Order.Place(ctx, []entity.LineItem{{Product: req.ProductID, Quantity: req.Quantity}})
	if err != nil {
		return nil, err
	}
	if msg == "" {
		msg = "Order placed successfully!"
	}
	return &response.MessageResponse{Message: msg}, nil
}

// UpdateItem patches the cart it just read with the price, quantity and total
// the upstream reports back.
func (s *cartService) UpdateItem(ctx context.Context, itemID int64, req *request.UpdateCartItemRequest) (*response.CartResponse, error) {
	if req.Quantity < 1 {
		return nil, invalid(msgQuantityTooLow)
	}

	cart, err := s.repo.Cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	idx := cartItemIndex(cart, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
	}

	updated, err := s.repo.Cart.UpdateItem(ctx, itemID, req.Quantity)
	if err != nil {
		return nil, err
	}

	cart.Items[idx].Price = updated.Item.Price
	cart.Items[idx].Quantity = req.Quantity
	cart.TotalPrice = updated.TotalPrice

	resp := response.CartToResponse(cart)
	return &resp, nil
}

func (s *cartService) RemoveItem(ctx context.Context, itemID int64) (*response.CartResponse, error) {
	cart, err := s.repo.Cart.Get(ctx)
	if err != nil {
		return nil, err
	}
	idx := cartItemIndex(cart, itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: cart item %d", ErrNotFound, itemID)
	}

	total, err := s.repo.Cart.RemoveItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.TotalPrice = total

	resp := response.CartToResponse(cart)
	return &resp, nil
}

func checkLineItem(req *request.AddToCartRequest) error {
	if req.Quantity < 1 {
		return invalid(msgQuantityTooLow)
	}
	return validate(req)
}

func cartItemIndex(cart *entity.Cart, itemID int64) int {
	for i, item := range cart.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

package usecase

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/dto/response"
	"farm-storefront/internal/workflow"

	"go.uber.org/zap"
)

// OrderService is the customer's side of orders.
type OrderService interface {
	Place(ctx context.Context, req *request.PlaceOrderRequest) (*response.MessageResponse, error)
	List(ctx context.Context) ([]response.CustomerOrderResponse, error)
	Detail(ctx context.Context, orderID int64) (*entity.OrderDetail, error)
	Cancel(ctx context.Context, orderID int64) (*response.StatusChangeResponse, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		log:       log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Place(ctx context.Context, req *request.PlaceOrderRequest) (*response.MessageResponse, error) {
	for i := range req.Items {
		if req.Items[i].Quantity < 1 {
			return nil, invalid(msgQuantityTooLow)
		}
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	items := make([]entity.LineItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = entity.LineItem{Product: it.ProductID, Quantity: it.Quantity}
	}

	msg, err := s.orderRepo.Place(ctx, items)
	if err != nil {
		return nil, err
	}
	if msg == "" {
		msg = "Order placed successfully!"
	}

	s.log.Info("Order placed", zap.Int("item_count", len(items)))
	return &response.MessageResponse{Message: msg}, nil
}

func (s *orderService) List(ctx context.Context) ([]response.CustomerOrderResponse, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.CustomerOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = response.CustomerOrderToResponse(o)
	}
	return out, nil
}

func (s *orderService) Detail(ctx context.Context, orderID int64) (*entity.OrderDetail, error) {
	if orderID <= 0 {
		return nil, invalid("invalid order ID")
	}
	return s.orderRepo.FindDetail(ctx, orderID)
}

// Cancel looks the order up in the customer's own list first so a cancel of
// anything past pending never reaches the upstream.
func (s *orderService) Cancel(ctx context.Context, orderID int64) (*response.StatusChangeResponse, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx)
	if err != nil {
		return nil, err
	}
	order, err := findOrder(orders, orderID)
	if err != nil {
		return nil, err
	}

	if err := workflow.CanTransition(order.Status, entity.OrderStatusCancelled, workflow.ActorCustomer); err != nil {
		s.log.Warn("Cancel rejected", zap.Int64("order_id", orderID), zap.String("status", string(order.Status)))
		return nil, err
	}

	msg, err := s.orderRepo.Cancel(ctx, orderID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Order cancelled", zap.Int64("order_id", orderID))
	return &response.StatusChangeResponse{
		OrderID: orderID,
		Status:  entity.OrderStatusCancelled,
		Message: msg,
	}, nil
}

func findOrder(orders []entity.Order, orderID int64) (*entity.Order, error) {
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
}

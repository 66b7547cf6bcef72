package repository

import (
	"context"
	"fmt"
	"net/url"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/upstream"

	"go.uber.org/zap"
)

// OrderRepository wraps every /orders/ endpoint plus the driver list. Which
// role may call which method is decided by the usecase layer; the upstream
// enforces it again.
type OrderRepository interface {
	// customer
	Place(ctx context.Context, items []entity.LineItem) (string, error)
	FindByCustomer(ctx context.Context) ([]entity.Order, error)
	FindDetail(ctx context.Context, orderID int64) (*entity.OrderDetail, error)
	Cancel(ctx context.Context, orderID int64) (string, error)

	// staff
	FindForStaff(ctx context.Context, filter entity.StatusFilter) ([]entity.Order, error)
	SetStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error
	AssignDriver(ctx context.Context, orderID, driverID int64) error
	FindDrivers(ctx context.Context) ([]entity.Driver, error)

	// delivery
	FindForDriver(ctx context.Context) ([]entity.Order, error)
	SetDeliveryStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error
	GenerateDeliveryOTP(ctx context.Context, orderID int64) (string, error)
	ConfirmDeliveryOTP(ctx context.Context, orderID int64, otp string) (string, error)

	Report(ctx context.Context) (*entity.OrderReport, error)
}

type orderRepository struct {
	api *upstream.Client
	log *zap.Logger
}

func NewOrderRepository(api *upstream.Client, log *zap.Logger) OrderRepository {
	return &orderRepository{
		api: api,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Place(ctx context.Context, items []entity.LineItem) (string, error) {
	body := map[string][]entity.LineItem{"items": items}

	var resp messageResponse
	if err := r.api.Post(ctx, "/orders/create_order/", body, &resp); err != nil {
		logUpstreamError(r.log, "Failed to place order", err, zap.Int("item_count", len(items)))
		return "", fmt.Errorf("place order: %w", err)
	}
	return resp.Message, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.api.Get(ctx, "/orders/customer/orders/", nil, &orders); err != nil {
		logUpstreamError(r.log, "Failed to list customer orders", err)
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return nonNilOrders(orders), nil
}

func (r *orderRepository) FindDetail(ctx context.Context, orderID int64) (*entity.OrderDetail, error) {
	path := fmt.Sprintf("/orders/detail/%d/", orderID)

	var detail entity.OrderDetail
	if err := r.api.Get(ctx, path, nil, &detail); err != nil {
		logUpstreamError(r.log, "Failed to get order detail", err, zap.Int64("order_id", orderID))
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	return &detail, nil
}

func (r *orderRepository) Cancel(ctx context.Context, orderID int64) (string, error) {
	path := fmt.Sprintf("/orders/cancel/%d/", orderID)

	var resp messageResponse
	if err := r.api.Delete(ctx, path, &resp); err != nil {
		logUpstreamError(r.log, "Failed to cancel order", err, zap.Int64("order_id", orderID))
		return "", fmt.Errorf("cancel order %d: %w", orderID, err)
	}
	return resp.Message, nil
}

func (r *orderRepository) FindForStaff(ctx context.Context, filter entity.StatusFilter) ([]entity.Order, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}

	var orders []entity.Order
	if err := r.api.Get(ctx, "/orders/staff/orders/", query, &orders); err != nil {
		logUpstreamError(r.log, "Failed to list staff orders", err,
			zap.String("status", string(filter.Status)),
			zap.String("date", filter.Date),
		)
		return nil, fmt.Errorf("list staff orders: %w", err)
	}
	return nonNilOrders(orders), nil
}

func (r *orderRepository) SetStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	path := fmt.Sprintf("/orders/staff/update/%d/", orderID)
	if err := r.api.Patch(ctx, path, map[string]entity.OrderStatus{"status": status}, nil); err != nil {
		logUpstreamError(r.log, "Failed to update order status", err,
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("set order %d status %s: %w", orderID, status, err)
	}
	return nil
}

func (r *orderRepository) AssignDriver(ctx context.Context, orderID, driverID int64) error {
	path := fmt.Sprintf("/orders/staff/update/%d/", orderID)
	if err := r.api.Patch(ctx, path, map[string]int64{"assigned_driver": driverID}, nil); err != nil {
		logUpstreamError(r.log, "Failed to assign driver", err,
			zap.Int64("order_id", orderID),
			zap.Int64("driver_id", driverID),
		)
		return fmt.Errorf("assign driver %d to order %d: %w", driverID, orderID, err)
	}
	return nil
}

func (r *orderRepository) FindDrivers(ctx context.Context) ([]entity.Driver, error) {
	var drivers []entity.Driver
	if err := r.api.Get(ctx, "/api/drivers/", nil, &drivers); err != nil {
		logUpstreamError(r.log, "Failed to list drivers", err)
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	if drivers == nil {
		drivers = []entity.Driver{}
	}
	return drivers, nil
}

func (r *orderRepository) FindForDriver(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.api.Get(ctx, "/orders/delivery/orders/", nil, &orders); err != nil {
		logUpstreamError(r.log, "Failed to list delivery orders", err)
		return nil, fmt.Errorf("list delivery orders: %w", err)
	}
	return nonNilOrders(orders), nil
}

func (r *orderRepository) SetDeliveryStatus(ctx context.Context, orderID int64, status entity.OrderStatus) error {
	path := fmt.Sprintf("/orders/delivery/update/order/%d/", orderID)
	if err := r.api.Patch(ctx, path, map[string]entity.OrderStatus{"status": status}, nil); err != nil {
		logUpstreamError(r.log, "Failed to update delivery status", err,
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("set delivery order %d status %s: %w", orderID, status, err)
	}
	return nil
}

func (r *orderRepository) GenerateDeliveryOTP(ctx context.Context, orderID int64) (string, error) {
	path := fmt.Sprintf("/orders/delivery/generate_otp/%d/", orderID)

	var resp messageResponse
	if err := r.api.Post(ctx, path, struct{}{}, &resp); err != nil {
		logUpstreamError(r.log, "Failed to generate delivery OTP", err, zap.Int64("order_id", orderID))
		return "", fmt.Errorf("generate otp for order %d: %w", orderID, err)
	}
	return resp.Message, nil
}

func (r *orderRepository) ConfirmDeliveryOTP(ctx context.Context, orderID int64, otp string) (string, error) {
	path := fmt.Sprintf("/orders/delivery/confirm_otp/%d/", orderID)

	var resp messageResponse
	if err := r.api.Post(ctx, path, map[string]string{"otp": otp}, &resp); err != nil {
		logUpstreamError(r.log, "Failed to confirm delivery OTP", err, zap.Int64("order_id", orderID))
		return "", fmt.Errorf("confirm otp for order %d: %w", orderID, err)
	}
	return resp.Message, nil
}

func (r *orderRepository) Report(ctx context.Context) (*entity.OrderReport, error) {
	var report entity.OrderReport
	if err := r.api.Get(ctx, "/orders/order-report/", nil, &report); err != nil {
		logUpstreamError(r.log, "Failed to get order report", err)
		return nil, fmt.Errorf("get order report: %w", err)
	}
	return &report, nil
}

func nonNilOrders(orders []entity.Order) []entity.Order {
	if orders == nil {
		return []entity.Order{}
	}
	return orders
}

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

// StaffService backs the staff order table. Admins use it too.
type StaffService interface {
	ListOrders(ctx context.Context, filter *request.StaffOrderFilter) ([]response.StaffOrderResponse, error)
	UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateStatusRequest) (*response.StatusChangeResponse, error)
	AssignDriver(ctx context.Context, orderID int64, req *request.AssignDriverRequest) (*response.StatusChangeResponse, error)
	Drivers(ctx context.Context) ([]entity.Driver, error)
}

type staffService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

func NewStaffService(orderRepo repository.OrderRepository, log *zap.Logger) StaffService {
	return &staffService{
		orderRepo: orderRepo,
		log:       log.With(zap.String("service", "staff")),
	}
}

func (s *staffService) ListOrders(ctx context.Context, filter *request.StaffOrderFilter) ([]response.StaffOrderResponse, error) {
	if err := validate(filter); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindForStaff(ctx, entity.StatusFilter{
		Status: entity.OrderStatus(filter.Status),
		Date:   filter.Date,
	})
	if err != nil {
		return nil, err
	}

	out := make([]response.StaffOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = response.StaffOrderToResponse(o)
	}
	return out, nil
}

func (s *staffService) UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateStatusRequest) (*response.StatusChangeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	current, err := s.currentStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := workflow.CanTransition(current, req.Status, workflow.ActorStaff); err != nil {
		s.log.Warn("Status change rejected",
			zap.Int64("order_id", orderID),
			zap.String("from", string(current)),
			zap.String("to", string(req.Status)),
		)
		return nil, err
	}

	if err := s.orderRepo.SetStatus(ctx, orderID, req.Status); err != nil {
		return nil, err
	}

	s.log.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("from", string(current)),
		zap.String("to", string(req.Status)),
	)
	return &response.StatusChangeResponse{OrderID: orderID, Status: req.Status}, nil
}

// AssignDriver also moves the order to assigned, which the upstream does on
// its side when assigned_driver is set.
func (s *staffService) AssignDriver(ctx context.Context, orderID int64, req *request.AssignDriverRequest) (*response.StatusChangeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	current, err := s.currentStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.Terminal() {
		return nil, fmt.Errorf("%w: cannot assign a driver to a %s order", ErrInvalidTransition, current)
	}

	if err := s.orderRepo.AssignDriver(ctx, orderID, req.DriverID); err != nil {
		return nil, err
	}

	s.log.Info("Driver assigned", zap.Int64("order_id", orderID), zap.Int64("driver_id", req.DriverID))
	return &response.StatusChangeResponse{OrderID: orderID, Status: entity.OrderStatusAssigned}, nil
}

func (s *staffService) Drivers(ctx context.Context) ([]entity.Driver, error) {
	return s.orderRepo.FindDrivers(ctx)
}

func (s *staffService) currentStatus(ctx context.Context, orderID int64) (entity.OrderStatus, error) {
	if orderID <= 0 {
		return "", invalid("invalid order ID")
	}
	detail, err := s.orderRepo.FindDetail(ctx, orderID)
	if err != nil {
		return "", err
	}
	return detail.Status, nil
}

package usecase

import (
	"context"
	"strings"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/dto/response"
	"farm-storefront/internal/workflow"

	"go.uber.org/zap"
)

const msgEnterOTP = "Enter OTP"

type DeliveryService interface {
	ListOrders(ctx context.Context, filter *request.DeliveryFilter) (*response.DeliveryOrdersResponse, error)
	UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateStatusRequest) (*response.StatusChangeResponse, error)
	RequestOTP(ctx context.Context, orderID int64) (*response.MessageResponse, error)
	ConfirmOTP(ctx context.Context, orderID int64, req *request.ConfirmOTPRequest) (*response.StatusChangeResponse, error)
	Earnings(ctx context.Context) (*entity.Earnings, error)
}

type deliveryService struct {
	repo *repository.Repository // order + payment
	log  *zap.Logger
}

func NewDeliveryService(repo *repository.Repository, log *zap.Logger) DeliveryService {
	return &deliveryService{
		repo: repo,
		log:  log.With(zap.String("service", "delivery")),
	}
}

func (s *deliveryService) ListOrders(ctx context.Context, filter *request.DeliveryFilter) (*response.DeliveryOrdersResponse, error) {
	if err := validate(filter); err != nil {
		return nil, err
	}
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = workflow.DefaultDeliveryFilter
	}

	orders, err := s.repo.Order.FindForDriver(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[entity.OrderStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}

	out := make([]response.DeliveryOrderResponse, 0, len(orders))
	for _, o := range orders {
		if wanted[o.Status] {
			out = append(out, response.DeliveryOrderToResponse(o))
		}
	}

	return &response.DeliveryOrdersResponse{
		Filter:        statuses,
		FilterOptions: workflow.DeliveryFilterOptions,
		Orders:        out,
	}, nil
}

func (s *deliveryService) UpdateStatus(ctx context.Context, orderID int64, req *request.UpdateStatusRequest) (*response.StatusChangeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	order, err := s.ownOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := workflow.CanTransition(order.Status, req.Status, workflow.ActorDelivery); err != nil {
		s.log.Warn("Delivery status change rejected",
			zap.Int64("order_id", orderID),
			zap.String("from", string(order.Status)),
			zap.String("to", string(req.Status)),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.repo.Order.SetDeliveryStatus(ctx, orderID, req.Status); err != nil {
		return nil, err
	}

	s.log.Info("Delivery status updated", zap.Int64("order_id", orderID), zap.String("status", string(req.Status)))
	return &response.StatusChangeResponse{OrderID: orderID, Status: req.Status}, nil
}

// RequestOTP asks the upstream to mail a code to the customer.
func (s *deliveryService) RequestOTP(ctx context.Context, orderID int64) (*response.MessageResponse, error) {
	order, err := s.ownOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := workflow.CanRequestOTP(order.Status); err != nil {
		return nil, err
	}

	msg, err := s.repo.Order.GenerateDeliveryOTP(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if msg == "" {
		msg = "OTP sent to customer's email"
	}
	return &response.MessageResponse{Message: msg}, nil
}

// ConfirmOTP submits the customer's code. Validation is the upstream's job;
// a wrong code leaves the order as it was.
func (s *deliveryService) ConfirmOTP(ctx context.Context, orderID int64, req *request.ConfirmOTPRequest) (*response.StatusChangeResponse, error) {
	otp := strings.TrimSpace(req.OTP)
	if otp == "" {
		return nil, invalid(msgEnterOTP)
	}

	order, err := s.ownOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := workflow.CanConfirmDelivery(order.Status); err != nil {
		return nil, err
	}

	msg, err := s.repo.Order.ConfirmDeliveryOTP(ctx, orderID, otp)
	if err != nil {
		s.log.Warn("Delivery OTP rejected", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.log.Info("Order delivered", zap.Int64("order_id", orderID))
	return &response.StatusChangeResponse{
		OrderID: orderID,
		Status:  entity.OrderStatusDelivered,
		Message: msg,
	}, nil
}

func (s *deliveryService) Earnings(ctx context.Context) (*entity.Earnings, error) {
	return s.repo.Payment.Earnings(ctx)
}

// ownOrder finds the order in the driver's own list; orders assigned to
// someone else come back as not found.
func (s *deliveryService) ownOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	if orderID <= 0 {
		return nil, invalid("invalid order ID")
	}
	orders, err := s.repo.Order.FindForDriver(ctx)
	if err != nil {
		return nil, err
	}
	return findOrder(orders, orderID)
}

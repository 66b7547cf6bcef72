package usecase

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/response"

	"go.uber.org/zap"
)

// PaymentService is the admin view of driver payouts.
type PaymentService interface {
	List(ctx context.Context) ([]response.PaymentResponse, error)
	MarkPaid(ctx context.Context, paymentID int64) (*response.PaymentResponse, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	log         *zap.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, log *zap.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		log:         log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) List(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = response.PaymentToResponse(p)
	}
	return out, nil
}

// MarkPaid only fires for pending payments and returns the row as re-read
// from the upstream.
func (s *paymentService) MarkPaid(ctx context.Context, paymentID int64) (*response.PaymentResponse, error) {
	if paymentID <= 0 {
		return nil, invalid("invalid payment ID")
	}

	payment, err := s.find(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, invalid(fmt.Sprintf("Payment is already %s", payment.Status))
	}

	if err := s.paymentRepo.MarkPaid(ctx, paymentID); err != nil {
		return nil, err
	}

	payment, err = s.find(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment marked paid",
		zap.Int64("payment_id", paymentID),
		zap.Int64("related_order", payment.RelatedOrder),
		zap.String("amount", payment.Amount.String()),
	)
	resp := response.PaymentToResponse(*payment)
	return &resp, nil
}

func (s *paymentService) find(ctx context.Context, paymentID int64) (*entity.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		if payments[i].ID == paymentID {
			return &payments[i], nil
		}
	}
	return nil, fmt.Errorf("%w: payment %d", ErrNotFound, paymentID)
}

package repository

import (
	"context"
	"fmt"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/upstream"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	FindAll(ctx context.Context) ([]entity.Payment, error)
	MarkPaid(ctx context.Context, paymentID int64) error
	Earnings(ctx context.Context) (*entity.Earnings, error)
	Report(ctx context.Context) (*entity.PaymentReport, error)
}

type paymentRepository struct {
	api *upstream.Client
	log *zap.Logger
}

func NewPaymentRepository(api *upstream.Client, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		api: api,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]entity.Payment, error) {
	var payments []entity.Payment
	if err := r.api.Get(ctx, "/payments/api/payments/", nil, &payments); err != nil {
		logUpstreamError(r.log, "Failed to list payments", err)
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if payments == nil {
		payments = []entity.Payment{}
	}
	return payments, nil
}

func (r *paymentRepository) MarkPaid(ctx context.Context, paymentID int64) error {
	path := fmt.Sprintf("/payments/api/payments/%d/mark_paid/", paymentID)
	if err := r.api.Post(ctx, path, struct{}{}, nil); err != nil {
		logUpstreamError(r.log, "Failed to mark payment paid", err, zap.Int64("payment_id", paymentID))
		return fmt.Errorf("mark payment %d paid: %w", paymentID, err)
	}
	return nil
}

// Earnings is scoped to the driver behind the bearer token.
func (r *paymentRepository) Earnings(ctx context.Context) (*entity.Earnings, error) {
	var earnings entity.Earnings
	if err := r.api.Get(ctx, "/payments/delivery-earnings/", nil, &earnings); err != nil {
		logUpstreamError(r.log, "Failed to get delivery earnings", err)
		return nil, fmt.Errorf("get delivery earnings: %w", err)
	}
	if earnings.Payments == nil {
		earnings.Payments = []entity.Payment{}
	}
	return &earnings, nil
}

func (r *paymentRepository) Report(ctx context.Context) (*entity.PaymentReport, error) {
	var report entity.PaymentReport
	if err := r.api.Get(ctx, "/payments/report/", nil, &report); err != nil {
		logUpstreamError(r.log, "Failed to get payment report", err)
		return nil, fmt.Errorf("get payment report: %w", err)
	}
	return &report, nil
}

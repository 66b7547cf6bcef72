package repository

import (
	"farm-storefront/pkg/upstream"

	"go.uber.org/zap"
)

// Repository groups the session table and the upstream-backed data sources.
type Repository struct {
	Session SessionRepository
	Account AccountRepository
	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
	Payment PaymentRepository
	User    UserRepository
}

func NewRepository(sessions SessionRepository, api *upstream.Client, log *zap.Logger) *Repository {
	return &Repository{
		Session: sessions,
		Account: NewAccountRepository(api, log),
		Product: NewProductRepository(api, log),
		Cart:    NewCartRepository(api, log),
		Order:   NewOrderRepository(api, log),
		Payment: NewPaymentRepository(api, log),
		User:    NewUserRepository(api, log),
	}
}

// apiEnvelope is the {"success": true, "data": ...} shape of the product
// endpoints.
type apiEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// logUpstreamError logs server-reported failures at Warn and everything else
// (network, decode) at Error.
func logUpstreamError(log *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if _, ok := upstream.AsAPIError(err); ok {
		log.Warn(msg, fields...)
		return
	}
	log.Error(msg, fields...)
}

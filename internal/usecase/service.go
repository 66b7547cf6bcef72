package usecase

import (
	"farm-storefront/internal/data/repository"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Catalog  CatalogService
	Cart     CartService
	Order    OrderService
	Staff    StaffService
	Delivery DeliveryService
	Payment  PaymentService
	Admin    AdminService
	User     UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Catalog:  NewCatalogService(repo.Product, config, log),
		Cart:     NewCartService(repo, log),
		Order:    NewOrderService(repo.Order, log),
		Staff:    NewStaffService(repo.Order, log),
		Delivery: NewDeliveryService(repo, log),
		Payment:  NewPaymentService(repo.Payment, log),
		Admin:    NewAdminService(repo, log),
		User:     NewUserService(repo.User, log),
	}
}

package usecase

import (
	"context"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*response.DashboardResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

// Dashboard runs the five report calls concurrently; one failure fails the
// whole dashboard.
func (s *adminService) Dashboard(ctx context.Context) (*response.DashboardResponse, error) {
	var (
		products      []entity.Product
		orders        []entity.Order
		users         []entity.User
		orderReport   *entity.OrderReport
		paymentReport *entity.PaymentReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.repo.Product.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.repo.Order.FindForStaff(gctx, entity.StatusFilter{})
		return err
	})
	g.Go(func() (err error) {
		users, err = s.repo.User.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		orderReport, err = s.repo.Order.Report(gctx)
		return err
	})
	g.Go(func() (err error) {
		paymentReport, err = s.repo.Payment.Report(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Warn("Failed to load dashboard stats", zap.Error(err))
		return nil, err
	}

	return &response.DashboardResponse{
		Stats: response.DashboardStats{
			Products:        len(products),
			Orders:          len(orders),
			Users:           len(users),
			PendingPayments: paymentReport.PendingPayments,
		},
		OrderReport:   orderReport,
		PaymentReport: paymentReport,
	}, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/dto/request"
	"farm-storefront/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	List(ctx context.Context, category string) ([]entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	maxUpload   int64
	log         *zap.Logger
}

func NewCatalogService(productRepo repository.ProductRepository, config *utils.Config, log *zap.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		maxUpload:   config.Upstream.UploadMaxMB << 20,
		log:         log.With(zap.String("service", "catalog")),
	}
}

// List always goes to the upstream; the category filter is applied here
// because /products/get/ has none.
func (s *catalogService) List(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return products, nil
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if string(p.Category) == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	if id <= 0 {
		return nil, invalid("invalid product ID")
	}
	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogService) Create(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create product validation failed", zap.Error(err))
		return nil, err
	}
	if !req.Price.IsPositive() {
		return nil, &ValidationError{Fields: map[string]string{"price": "Must be greater than 0"}}
	}

	var image *repository.ImageUpload
	if req.Image != nil {
		if s.maxUpload > 0 && req.Image.Size > s.maxUpload {
			return nil, &ValidationError{Fields: map[string]string{
				"image": fmt.Sprintf("Image must be at most %d MB", s.maxUpload>>20),
			}}
		}
		image = &repository.ImageUpload{Filename: req.Image.Filename, Content: req.Image.Content}
	}

	product, err := s.productRepo.Create(ctx, entity.NewProduct{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		Category:     entity.Category(req.Category),
		DeliveryTime: req.DeliveryTime,
		IsAvailable:  req.IsAvailable,
	}, image)
	if err != nil {
		return nil, err
	}

	s.log.Info("Product created", zap.String("name", req.Name), zap.String("category", req.Category))
	return product, nil
}

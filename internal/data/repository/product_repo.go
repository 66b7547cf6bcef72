package repository

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"farm-storefront/internal/data/entity"
	"farm-storefront/pkg/upstream"

	"go.uber.org/zap"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product entity.NewProduct, image *ImageUpload) (*entity.Product, error)
}

// ImageUpload is the optional product picture forwarded as the "image" part.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

type productRepository struct {
	api *upstream.Client
	log *zap.Logger
}

func NewProductRepository(api *upstream.Client, log *zap.Logger) ProductRepository {
	return &productRepository{
		api: api,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var resp apiEnvelope[[]entity.Product]
	if err := r.api.Get(ctx, "/products/get/", nil, &resp); err != nil {
		logUpstreamError(r.log, "Failed to list products", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	if resp.Data == nil {
		return []entity.Product{}, nil
	}
	return resp.Data, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var resp apiEnvelope[*entity.Product]
	// detail endpoint tidak pakai trailing slash
	path := fmt.Sprintf("/products/detail/%d", id)
	if err := r.api.Get(ctx, path, nil, &resp); err != nil {
		logUpstreamError(r.log, "Failed to get product", err, zap.Int64("product_id", id))
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if resp.Data == nil {
		return nil, &upstream.APIError{Status: 404, Message: "Failed to get product detail"}
	}
	return resp.Data, nil
}

func (r *productRepository) Create(ctx context.Context, product entity.NewProduct, image *ImageUpload) (*entity.Product, error) {
	fields := map[string]string{
		"name":          product.Name,
		"description":   product.Description,
		"price":         product.Price.StringFixed(2),
		"category":      string(product.Category),
		"delivery_time": strconv.Itoa(product.DeliveryTime),
		"is_available":  strconv.FormatBool(product.IsAvailable),
	}

	var files []upstream.FilePart
	if image != nil {
		files = append(files, upstream.FilePart{
			Field:    "image",
			Filename: image.Filename,
			Content:  image.Content,
		})
	}

	var resp apiEnvelope[*entity.Product]
	if err := r.api.DoMultipart(ctx, "/products/create/", fields, files, &resp); err != nil {
		logUpstreamError(r.log, "Failed to create product", err, zap.String("name", product.Name))
		return nil, fmt.Errorf("create product %s: %w", product.Name, err)
	}
	return resp.Data, nil
}

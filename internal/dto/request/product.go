package request

import (
	"io"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Description  string          `json:"description" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category" validate:"required,oneof=milk eggs fertilizer pickle vegetable fruit dairy other"`
	DeliveryTime int             `json:"delivery_time" validate:"gte=0"`
	IsAvailable  bool            `json:"is_available"`

	Image *ImageFile `json:"-"`
}

type ImageFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

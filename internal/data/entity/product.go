package entity

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryMilk       Category = "milk"
	CategoryEggs       Category = "eggs"
	CategoryFertilizer Category = "fertilizer"
	CategoryPickle     Category = "pickle"
	CategoryVegetable  Category = "vegetable"
	CategoryFruit      Category = "fruit"
	CategoryDairy      Category = "dairy"
	CategoryOther      Category = "other"
)

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     Category        `json:"category"`
	Image        *string         `json:"image"`
	DeliveryTime int             `json:"delivery_time"`
	IsAvailable  bool            `json:"is_available"`
}

// NewProduct is the multipart form the staff "add product" page posts.
type NewProduct struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	Category     Category
	DeliveryTime int
	IsAvailable  bool
}

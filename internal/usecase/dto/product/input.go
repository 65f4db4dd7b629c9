package productdto

import (
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	MerchantID          string
	Name                string
	Description         string
	Category            domain.Category
	NetPrice            decimal.Decimal
	VATRate             *decimal.Decimal
	Stock               int64
	StockAlertThreshold *int64
}

// UpdateProductInput carries a partial update; nil means keep the
// stored value. Stock is never edited here, only through UpdateStock.
type UpdateProductInput struct {
	ProductID           string
	Name                *string
	Description         *string
	Category            *domain.Category
	NetPrice            *decimal.Decimal
	VATRate             *decimal.Decimal
	StockAlertThreshold *int64
}

type UpdateStockInput struct {
	ProductID string
	Delta     int64
}

type ListProductsInput struct {
	MerchantID string
	Category   domain.Category
	ActiveOnly bool
	Page       int
	Size       int
}

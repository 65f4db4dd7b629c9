package productdto

import (
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductOutput struct {
	ID                  string
	MerchantID          string
	Name                string
	Description         string
	Category            domain.Category
	NetPrice            decimal.Decimal
	GrossPrice          decimal.Decimal
	VATRate             decimal.Decimal
	Stock               int64
	StockAlertThreshold int64
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func FromDomain(product *domain.Product) *ProductOutput {
	return &ProductOutput{
		ID:                  product.ID,
		MerchantID:          product.MerchantID,
		Name:                product.Name,
		Description:         product.Description,
		Category:            product.Category,
		NetPrice:            product.NetPrice,
		GrossPrice:          domain.GrossUnitPrice(product.NetPrice, product.VATRate),
		VATRate:             product.VATRate,
		Stock:               product.Stock,
		StockAlertThreshold: product.StockAlertThreshold,
		IsActive:            product.IsActive,
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
	}
}

type StockUpdateOutput struct {
	ProductID   string
	ProductName string
	NewStock    int64
}

package mappers

import (
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:                  model.ID,
		MerchantID:          model.MerchantID,
		Name:                model.Name,
		Description:         model.Description,
		Category:            domain.Category(model.Category),
		NetPrice:            model.NetPrice,
		VATRate:             model.VATRate,
		Stock:               model.Stock,
		StockAlertThreshold: model.StockAlertThreshold,
		IsActive:            model.IsActive,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:                  product.ID,
		MerchantID:          product.MerchantID,
		Name:                product.Name,
		Description:         product.Description,
		Category:            string(product.Category),
		NetPrice:            product.NetPrice,
		VATRate:             product.VATRate,
		Stock:               product.Stock,
		StockAlertThreshold: product.StockAlertThreshold,
		IsActive:            product.IsActive,
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
	}
}

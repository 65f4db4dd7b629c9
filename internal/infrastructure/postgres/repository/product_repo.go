package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/mappers"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) Create(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	if err := dbFrom(ctx, r.DB).Create(productModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultProductRepository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := dbFrom(ctx, r.DB).First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultProductRepository) Update(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	result := dbFrom(ctx, r.DB).Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":                  productModel.Name,
			"description":           productModel.Description,
			"category":              productModel.Category,
			"net_price":             productModel.NetPrice,
			"vat_rate":              productModel.VATRate,
			"stock_alert_threshold": productModel.StockAlertThreshold,
			"is_active":             productModel.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LockForUpdate must run inside a GormTxManager scope; the row stays
// locked until the scope commits or rolls back.
func (r *DefaultProductRepository) LockForUpdate(ctx context.Context, productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := dbFrom(ctx, r.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock product: %w", err)
	}
	return mappers.ToDomainProduct(&productModel), nil
}

// ApplyStockDelta pushes the addition into the database so concurrent
// updates on the same row cannot interleave. The guard keeps stock
// non-negative; a rejected update surfaces as ErrInsufficientStock.
func (r *DefaultProductRepository) ApplyStockDelta(ctx context.Context, productID string, delta int64) error {
	result := dbFrom(ctx, r.DB).Model(&models.ProductModel{}).
		Where("id = ? AND stock + ? >= 0", productID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := dbFrom(ctx, r.DB).Model(&models.ProductModel{}).
			Where("id = ?", productID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *DefaultProductRepository) DeactivateByMerchant(ctx context.Context, merchantID string) error {
	return dbFrom(ctx, r.DB).Model(&models.ProductModel{}).
		Where("merchant_id = ?", merchantID).
		Update("is_active", false).Error
}

func (r *DefaultProductRepository) List(ctx context.Context, merchantID string, filters domain.ProductFilters, page, size int) ([]*domain.Product, int64, error) {
	var productModels []models.ProductModel
	var total int64

	baseQuery := dbFrom(ctx, r.DB).Model(&models.ProductModel{}).
		Where("merchant_id = ?", merchantID)
	if filters.ActiveOnly {
		baseQuery = baseQuery.Where("is_active = ?", true)
	}
	if filters.Category != "" {
		baseQuery = baseQuery.Where("category = ?", string(filters.Category))
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * size
	if err := baseQuery.
		Order("name ASC").
		Offset(offset).
		Limit(size).
		Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = mappers.ToDomainProduct(&productModel)
	}

	return products, total, nil
}

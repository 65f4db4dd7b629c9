package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/metrics"
	productdto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/product"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*productdto.ProductOutput, error)
	GetProduct(ctx context.Context, productID string) (*productdto.ProductOutput, error)
	UpdateProduct(ctx context.Context, input *productdto.UpdateProductInput) (*productdto.ProductOutput, error)
	ListProducts(ctx context.Context, input *productdto.ListProductsInput) ([]*productdto.ProductOutput, int64, error)
	UpdateStock(ctx context.Context, input *productdto.UpdateStockInput) (*productdto.StockUpdateOutput, error)
}

type DefaultProductUsecase struct {
	ProductRepo  domain.ProductRepository
	MerchantRepo domain.MerchantRepository
	Tx           domain.TxManager
	Alerter      *StockAlerter
	Metrics      *metrics.CommerceMetrics
	Logger       *zap.Logger

	DefaultAlertThreshold int64
}

func NewDefaultProductUsecase(
	productRepo domain.ProductRepository,
	merchantRepo domain.MerchantRepository,
	tx domain.TxManager,
	alerter *StockAlerter,
	commerceMetrics *metrics.CommerceMetrics,
	logger *zap.Logger,
	defaultAlertThreshold int64) *DefaultProductUsecase {

	if defaultAlertThreshold <= 0 {
		defaultAlertThreshold = domain.DefaultStockAlertThreshold
	}
	return &DefaultProductUsecase{
		ProductRepo:           productRepo,
		MerchantRepo:          merchantRepo,
		Tx:                    tx,
		Alerter:               alerter,
		Metrics:               commerceMetrics,
		Logger:                logger,
		DefaultAlertThreshold: defaultAlertThreshold,
	}
}

// CreateProduct refuses products under a deactivated merchant.
func (uc *DefaultProductUsecase) CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*productdto.ProductOutput, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("product name is required: %w", domain.ErrValidation)
	}
	if input.NetPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("net price must be positive: %w", domain.ErrValidation)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("initial stock cannot be negative: %w", domain.ErrValidation)
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryFood
	}
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q: %w", category, domain.ErrValidation)
	}

	vatRate := domain.VATStandard
	if input.VATRate != nil {
		vatRate = *input.VATRate
		if vatRate.IsNegative() || vatRate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("vat rate must be within [0, 1]: %w", domain.ErrValidation)
		}
	}

	threshold := uc.DefaultAlertThreshold
	if input.StockAlertThreshold != nil {
		if *input.StockAlertThreshold < 0 {
			return nil, fmt.Errorf("stock alert threshold cannot be negative: %w", domain.ErrValidation)
		}
		threshold = *input.StockAlertThreshold
	}

	merchant, err := uc.MerchantRepo.GetByID(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}
	if !merchant.IsActive {
		return nil, domain.ErrInactiveMerchant
	}

	product := &domain.Product{
		ID:                  uuid.NewString(),
		MerchantID:          merchant.ID,
		Name:                input.Name,
		Description:         input.Description,
		Category:            category,
		NetPrice:            input.NetPrice.Round(2),
		VATRate:             vatRate,
		Stock:               input.Stock,
		StockAlertThreshold: threshold,
		IsActive:            true,
	}

	if err := uc.ProductRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return productdto.FromDomain(product), nil
}

func (uc *DefaultProductUsecase) GetProduct(ctx context.Context, productID string) (*productdto.ProductOutput, error) {
	product, err := uc.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return productdto.FromDomain(product), nil
}

// UpdateProduct edits catalog fields. Stock is out of reach here;
// UpdateStock owns it.
func (uc *DefaultProductUsecase) UpdateProduct(ctx context.Context, input *productdto.UpdateProductInput) (*productdto.ProductOutput, error) {
	product, err := uc.ProductRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("product name is required: %w", domain.ErrValidation)
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, fmt.Errorf("unknown category %q: %w", *input.Category, domain.ErrValidation)
		}
		product.Category = *input.Category
	}
	if input.NetPrice != nil {
		if input.NetPrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("net price must be positive: %w", domain.ErrValidation)
		}
		product.NetPrice = input.NetPrice.Round(2)
	}
	if input.VATRate != nil {
		if input.VATRate.IsNegative() || input.VATRate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("vat rate must be within [0, 1]: %w", domain.ErrValidation)
		}
		product.VATRate = *input.VATRate
	}
	if input.StockAlertThreshold != nil {
		if *input.StockAlertThreshold < 0 {
			return nil, fmt.Errorf("stock alert threshold cannot be negative: %w", domain.ErrValidation)
		}
		product.StockAlertThreshold = *input.StockAlertThreshold
	}

	if err := uc.ProductRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return productdto.FromDomain(product), nil
}

func (uc *DefaultProductUsecase) ListProducts(ctx context.Context, input *productdto.ListProductsInput) ([]*productdto.ProductOutput, int64, error) {
	if input.Category != "" && !input.Category.Valid() {
		return nil, 0, fmt.Errorf("unknown category %q: %w", input.Category, domain.ErrValidation)
	}
	products, total, err := uc.ProductRepo.List(ctx, input.MerchantID, domain.ProductFilters{
		Category:   input.Category,
		ActiveOnly: input.ActiveOnly,
	}, input.Page, input.Size)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*productdto.ProductOutput, len(products))
	for i, product := range products {
		outputs[i] = productdto.FromDomain(product)
	}
	return outputs, total, nil
}

// UpdateStock applies a signed delta to one product's stock under a row
// lock. Activation is re-checked under the lock in every path, restock
// included. Delta 0 validates activation and mutates nothing.
func (uc *DefaultProductUsecase) UpdateStock(ctx context.Context, input *productdto.UpdateStockInput) (*productdto.StockUpdateOutput, error) {
	var product *domain.Product

	err := uc.Tx.Do(ctx, func(ctx context.Context) error {
		locked, err := uc.ProductRepo.LockForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if !locked.IsActive {
			return domain.ErrInactiveProduct
		}
		if input.Delta == 0 {
			product = locked
			return nil
		}
		if input.Delta < 0 && -input.Delta > locked.Stock {
			return fmt.Errorf("insufficient stock for %s: %w", locked.Name, domain.ErrInsufficientStock)
		}
		if err := uc.ProductRepo.ApplyStockDelta(ctx, locked.ID, input.Delta); err != nil {
			return err
		}
		locked.Stock += input.Delta
		product = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil && input.Delta != 0 {
		direction := "restock"
		if input.Delta < 0 {
			direction = "debit"
		}
		uc.Metrics.StockUpdatesTotal.WithLabelValues(product.MerchantID, direction).Inc()
	}
	if input.Delta < 0 {
		uc.Alerter.AfterDecrement(product)
	}

	return &productdto.StockUpdateOutput{
		ProductID:   product.ID,
		ProductName: product.Name,
		NewStock:    product.Stock,
	}, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/mappers"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultMerchantRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{DB: db}
}

func (r *DefaultMerchantRepository) Create(ctx context.Context, merchant *domain.Merchant) error {
	merchantModel := mappers.ToGORMMerchant(merchant)
	if err := dbFrom(ctx, r.DB).Create(merchantModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("merchant for user %s: %w", merchant.UserID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *DefaultMerchantRepository) GetByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	var merchantModel models.MerchantModel
	if err := dbFrom(ctx, r.DB).First(&merchantModel, "id = ?", merchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMerchant(&merchantModel), nil
}

func (r *DefaultMerchantRepository) GetByUserID(ctx context.Context, userID string) (*domain.Merchant, error) {
	var merchantModel models.MerchantModel
	if err := dbFrom(ctx, r.DB).First(&merchantModel, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMerchant(&merchantModel), nil
}

func (r *DefaultMerchantRepository) Update(ctx context.Context, merchant *domain.Merchant) error {
	merchantModel := mappers.ToGORMMerchant(merchant)
	result := dbFrom(ctx, r.DB).Model(&models.MerchantModel{}).
		Where("id = ?", merchant.ID).
		Updates(map[string]interface{}{
			"brand_name":  merchantModel.BrandName,
			"description": merchantModel.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultMerchantRepository) SetActive(ctx context.Context, merchantID string, active bool) error {
	result := dbFrom(ctx, r.DB).Model(&models.MerchantModel{}).
		Where("id = ?", merchantID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultMerchantRepository) List(ctx context.Context, filters domain.MerchantFilters, page, size int) ([]*domain.Merchant, int64, error) {
	var merchantModels []models.MerchantModel
	var total int64

	baseQuery := dbFrom(ctx, r.DB).Model(&models.MerchantModel{})
	if filters.ActiveOnly {
		baseQuery = baseQuery.Where("is_active = ?", true)
	}
	if filters.BrandName != "" {
		baseQuery = baseQuery.Where("brand_name = ?", filters.BrandName)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count merchants: %w", err)
	}

	offset := (page - 1) * size
	if err := baseQuery.
		Order("brand_name ASC").
		Offset(offset).
		Limit(size).
		Find(&merchantModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find merchants: %w", err)
	}

	merchants := make([]*domain.Merchant, len(merchantModels))
	for i, merchantModel := range merchantModels {
		merchants[i] = mappers.ToDomainMerchant(&merchantModel)
	}

	return merchants, total, nil
}

package mappers

import (
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
)

func ToDomainMerchant(model *models.MerchantModel) *domain.Merchant {
	return &domain.Merchant{
		ID:               model.ID,
		UserID:           model.UserID,
		BrandName:        model.BrandName,
		Description:      model.Description,
		RegistrationDate: model.RegistrationDate,
		IsActive:         model.IsActive,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMMerchant(merchant *domain.Merchant) *models.MerchantModel {
	return &models.MerchantModel{
		ID:               merchant.ID,
		UserID:           merchant.UserID,
		BrandName:        merchant.BrandName,
		Description:      merchant.Description,
		RegistrationDate: merchant.RegistrationDate,
		IsActive:         merchant.IsActive,
		UpdatedAt:        merchant.UpdatedAt,
	}
}

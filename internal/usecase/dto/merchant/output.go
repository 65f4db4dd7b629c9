package merchantdto

import (
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/shopspring/decimal"
)

type MerchantOutput struct {
	ID               string
	UserID           string
	BrandName        string
	Description      string
	RegistrationDate time.Time
	IsActive         bool
}

func FromDomain(merchant *domain.Merchant) *MerchantOutput {
	return &MerchantOutput{
		ID:               merchant.ID,
		UserID:           merchant.UserID,
		BrandName:        merchant.BrandName,
		Description:      merchant.Description,
		RegistrationDate: merchant.RegistrationDate,
		IsActive:         merchant.IsActive,
	}
}

type RevenueOutput struct {
	MerchantID string
	From       time.Time
	To         time.Time
	Total      decimal.Decimal
}

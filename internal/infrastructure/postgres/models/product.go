package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID                  string        `gorm:"primaryKey;type:uuid"`
	MerchantID          string        `gorm:"type:uuid;not null;index:idx_products_merchant"`
	Merchant            MerchantModel `gorm:"foreignKey:MerchantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name                string        `gorm:"not null;index:idx_products_name"`
	Description         string
	Category            string          `gorm:"not null;default:'FOOD'"`
	NetPrice            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	VATRate             decimal.Decimal `gorm:"type:decimal(4,3);not null"`
	Stock               int64           `gorm:"not null;default:0"`
	StockAlertThreshold int64           `gorm:"not null;default:5"`
	IsActive            bool            `gorm:"default:true;index:idx_products_is_active"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

package models

import "time"

type MerchantModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	UserID           string    `gorm:"type:uuid;uniqueIndex;not null"`
	User             UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	BrandName        string    `gorm:"not null;index:idx_merchants_brand_name"`
	Description      string
	IsActive         bool      `gorm:"default:true;index:idx_merchants_is_active"`
	RegistrationDate time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time
}

func (MerchantModel) TableName() string {
	return "merchants"
}

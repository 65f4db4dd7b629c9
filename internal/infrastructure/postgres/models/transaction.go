package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// A product with transactions cannot be deleted (RESTRICT); a deleted
// customer leaves the transaction orphaned but retained (SET NULL).
type TransactionModel struct {
	ID              string          `gorm:"primaryKey"`
	ProductID       string          `gorm:"type:uuid;not null;index:idx_transactions_product"`
	Product         ProductModel    `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Quantity        int64           `gorm:"not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TransactionDate time.Time       `gorm:"not null;index:idx_transactions_date"`
	CustomerID      *string         `gorm:"type:uuid"`
	Customer        *UserModel      `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CreatedAt       time.Time
}

func (TransactionModel) TableName() string {
	return "transactions"
}

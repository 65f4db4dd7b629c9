package saledto

import (
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionOutput struct {
	ID              string
	ProductID       string
	Quantity        int64
	Amount          decimal.Decimal
	TransactionDate time.Time
	CustomerID      *string
}

func FromDomain(transaction *domain.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:              transaction.ID,
		ProductID:       transaction.ProductID,
		Quantity:        transaction.Quantity,
		Amount:          transaction.Amount,
		TransactionDate: transaction.TransactionDate,
		CustomerID:      transaction.CustomerID,
	}
}

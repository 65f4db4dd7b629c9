package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable record of one sale. Amount is fixed at the
// moment of sale and never recomputed from the product afterwards.
type Transaction struct {
	ID              string
	ProductID       string
	Quantity        int64
	Amount          decimal.Decimal
	TransactionDate time.Time
	CustomerID      *string
}

type TransactionRepository interface {
	Insert(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, transactionID string) (*Transaction, error)
	ListByProduct(ctx context.Context, productID string, page, size int) ([]*Transaction, int64, error)

	// SumAmounts sums transaction amounts for products of the given
	// merchant over the half-open interval [from, to).
	SumAmounts(ctx context.Context, merchantID string, from, to time.Time) (decimal.Decimal, error)
}

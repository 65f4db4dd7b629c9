package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFood        Category = "FOOD"
	CategoryClothing    Category = "CLOTHING"
	CategoryElectronics Category = "ELECTRONICS"
	CategoryOther       Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryClothing, CategoryElectronics, CategoryOther:
		return true
	}
	return false
}

const DefaultStockAlertThreshold = 5

type Product struct {
	ID                  string
	MerchantID          string
	Name                string
	Description         string
	Category            Category
	NetPrice            decimal.Decimal
	VATRate             decimal.Decimal
	Stock               int64
	StockAlertThreshold int64
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ProductFilters struct {
	Category   Category
	ActiveOnly bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, productID string) (*Product, error)
	Update(ctx context.Context, product *Product) error

	// LockForUpdate returns the current row under an exclusive row lock.
	// Valid only inside a TxManager scope; the lock is held until the
	// scope commits or rolls back.
	LockForUpdate(ctx context.Context, productID string) (*Product, error)

	// ApplyStockDelta adds a signed delta to the stock column in a single
	// statement guarded by stock + delta >= 0. Returns ErrInsufficientStock
	// when the guard rejects the update.
	ApplyStockDelta(ctx context.Context, productID string, delta int64) error

	DeactivateByMerchant(ctx context.Context, merchantID string) error
	List(ctx context.Context, merchantID string, filters ProductFilters, page, size int) ([]*Product, int64, error)
}

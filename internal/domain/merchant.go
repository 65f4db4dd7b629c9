package domain

import (
	"context"
	"time"
)

type Merchant struct {
	ID               string
	UserID           string
	BrandName        string
	Description      string
	RegistrationDate time.Time
	IsActive         bool
	UpdatedAt        time.Time
}

type MerchantFilters struct {
	ActiveOnly bool
	BrandName  string
}

type MerchantRepository interface {
	Create(ctx context.Context, merchant *Merchant) error
	GetByID(ctx context.Context, merchantID string) (*Merchant, error)
	GetByUserID(ctx context.Context, userID string) (*Merchant, error)
	Update(ctx context.Context, merchant *Merchant) error
	SetActive(ctx context.Context, merchantID string, active bool) error
	List(ctx context.Context, filters MerchantFilters, page, size int) ([]*Merchant, int64, error)
}

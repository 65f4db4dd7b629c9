package merchantdto

import "time"

type CreateMerchantInput struct {
	UserID      string
	BrandName   string
	Description string
}

type UpdateMerchantInput struct {
	MerchantID  string
	BrandName   *string
	Description *string
}

type ListMerchantsInput struct {
	ActiveOnly bool
	BrandName  string
	Page       int
	Size       int
}

type RevenueInput struct {
	MerchantID string
	From       time.Time
	To         time.Time
}

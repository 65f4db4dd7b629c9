package request

type CreateMerchantRequest struct {
	UserID      string `json:"user_id"`
	BrandName   string `json:"brand_name"`
	Description string `json:"description"`
}

type CreateProductRequest struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	NetPrice            string  `json:"net_price"`
	VATRate             *string `json:"vat_rate"`
	Stock               int64   `json:"stock"`
	StockAlertThreshold *int64  `json:"stock_alert_threshold"`
}

type UpdateMerchantRequest struct {
	BrandName   *string `json:"brand_name"`
	Description *string `json:"description"`
}

type UpdateProductRequest struct {
	Name                *string `json:"name"`
	Description         *string `json:"description"`
	Category            *string `json:"category"`
	NetPrice            *string `json:"net_price"`
	VATRate             *string `json:"vat_rate"`
	StockAlertThreshold *int64  `json:"stock_alert_threshold"`
}

type StockUpdateRequest struct {
	Quantity int64 `json:"quantity"`
}

type SaleRequest struct {
	Quantity int64 `json:"quantity"`
}

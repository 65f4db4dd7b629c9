package response

import (
	"time"

	merchantdto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/merchant"
	productdto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/product"
	saledto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/sale"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// PageResponse is the envelope for list endpoints.
type PageResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

type MerchantResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	BrandName        string    `json:"brand_name"`
	Description      string    `json:"description"`
	RegistrationDate time.Time `json:"registration_date"`
	IsActive         bool      `json:"is_active"`
}

func FromMerchantOutput(output *merchantdto.MerchantOutput) *MerchantResponse {
	return &MerchantResponse{
		ID:               output.ID,
		UserID:           output.UserID,
		BrandName:        output.BrandName,
		Description:      output.Description,
		RegistrationDate: output.RegistrationDate,
		IsActive:         output.IsActive,
	}
}

// Money fields travel as strings with exactly two fractional digits.
type ProductResponse struct {
	ID                  string    `json:"id"`
	MerchantID          string    `json:"merchant_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	NetPrice            string    `json:"net_price"`
	GrossPrice          string    `json:"gross_price"`
	VATRate             string    `json:"vat_rate"`
	Stock               int64     `json:"stock"`
	StockAlertThreshold int64     `json:"stock_alert_threshold"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func FromProductOutput(output *productdto.ProductOutput) *ProductResponse {
	return &ProductResponse{
		ID:                  output.ID,
		MerchantID:          output.MerchantID,
		Name:                output.Name,
		Description:         output.Description,
		Category:            string(output.Category),
		NetPrice:            output.NetPrice.StringFixed(2),
		GrossPrice:          output.GrossPrice.StringFixed(2),
		VATRate:             output.VATRate.String(),
		Stock:               output.Stock,
		StockAlertThreshold: output.StockAlertThreshold,
		IsActive:            output.IsActive,
		CreatedAt:           output.CreatedAt,
		UpdatedAt:           output.UpdatedAt,
	}
}

type StockUpdateResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	NewStock    int64  `json:"new_stock"`
}

type TransactionResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Quantity        int64     `json:"quantity"`
	Amount          string    `json:"amount"`
	TransactionDate time.Time `json:"transaction_date"`
	CustomerID      *string   `json:"customer_id"`
}

func FromTransactionOutput(output *saledto.TransactionOutput) *TransactionResponse {
	return &TransactionResponse{
		ID:              output.ID,
		ProductID:       output.ProductID,
		Quantity:        output.Quantity,
		Amount:          output.Amount.StringFixed(2),
		TransactionDate: output.TransactionDate,
		CustomerID:      output.CustomerID,
	}
}

type RevenueResponse struct {
	MerchantID string    `json:"merchant_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Total      string    `json:"total"`
}

func FromRevenueOutput(output *merchantdto.RevenueOutput) *RevenueResponse {
	return &RevenueResponse{
		MerchantID: output.MerchantID,
		From:       output.From,
		To:         output.To,
		Total:      output.Total.StringFixed(2),
	}
}

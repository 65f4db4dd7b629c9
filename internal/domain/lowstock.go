package domain

import (
	"context"
	"time"
)

type LowStockEvent struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	MerchantID  string    `json:"merchant_id"`
	Stock       int64     `json:"stock"`
	Threshold   int64     `json:"threshold"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// LowStockSink receives low-stock alerts after a stock mutation commits.
// The contract is fire-and-forget: implementations must be safe to call
// from any worker, and their failures never abort the mutation.
type LowStockSink interface {
	NotifyLowStock(ctx context.Context, event LowStockEvent) error
}

package usecase

import (
	"context"
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// StockAlerter emits low-stock events after a stock decrement commits.
// Emission is fire-and-forget: the sale already succeeded, so sink
// failures are logged and swallowed.
type StockAlerter struct {
	Sink    domain.LowStockSink
	Metrics *metrics.CommerceMetrics
	Logger  *zap.Logger
}

func NewStockAlerter(sink domain.LowStockSink, m *metrics.CommerceMetrics, logger *zap.Logger) *StockAlerter {
	return &StockAlerter{Sink: sink, Metrics: m, Logger: logger}
}

// AfterDecrement signals when the committed post-state is below the
// product's alert threshold. Restocks never emit.
func (a *StockAlerter) AfterDecrement(product *domain.Product) {
	if a == nil || a.Sink == nil {
		return
	}
	if product.Stock >= product.StockAlertThreshold {
		return
	}

	event := domain.LowStockEvent{
		ProductID:   product.ID,
		ProductName: product.Name,
		MerchantID:  product.MerchantID,
		Stock:       product.Stock,
		Threshold:   product.StockAlertThreshold,
		OccurredAt:  time.Now().UTC(),
	}

	if a.Metrics != nil {
		a.Metrics.LowStockAlertsTotal.WithLabelValues(product.MerchantID).Inc()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.Sink.NotifyLowStock(ctx, event); err != nil {
			if a.Logger != nil {
				a.Logger.Warn("low-stock alert delivery failed",
					zap.String("product_id", event.ProductID),
					zap.Int64("stock", event.Stock),
					zap.Error(err))
			}
		}
	}()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommerceMetrics covers the stock & sales core.
type CommerceMetrics struct {
	SalesTotal       prometheus.CounterVec
	SalesAmountTotal prometheus.CounterVec
	SaleErrorsTotal  prometheus.CounterVec

	StockUpdatesTotal    prometheus.CounterVec
	LowStockAlertsTotal  prometheus.CounterVec
	MerchantsDeactivated prometheus.Counter

	SaleProcessingDuration prometheus.HistogramVec
}

func NewCommerceMetrics() *CommerceMetrics {
	return &CommerceMetrics{
		SalesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_total",
				Help: "Total number of recorded sales",
			},
			[]string{"merchant_id", "category"},
		),

		SalesAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_amount_total",
				Help: "Total gross amount of recorded sales",
			},
			[]string{"merchant_id"},
		),

		SaleErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sale_errors_total",
				Help: "Total number of rejected sales by reason",
			},
			[]string{"reason"},
		),

		StockUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_updates_total",
				Help: "Total number of direct stock mutations",
			},
			[]string{"merchant_id", "direction"},
		),

		LowStockAlertsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "low_stock_alerts_total",
				Help: "Total number of emitted low-stock alerts",
			},
			[]string{"merchant_id"},
		),

		MerchantsDeactivated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "merchants_deactivated_total",
				Help: "Total number of merchant deactivations",
			},
		),

		SaleProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sale_processing_duration_seconds",
				Help:    "Time spent processing one sale",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"merchant_id"},
		),
	}
}

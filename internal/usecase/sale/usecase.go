package sale

import (
	"context"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/metrics"
	"github.com/kbf-dev/galerie-commerce-service/internal/usecase"
	saledto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/sale"
	"go.uber.org/zap"
)

type SaleUsecase interface {
	ProcessSale(ctx context.Context, input *saledto.ProcessSaleInput) (*saledto.TransactionOutput, error)
	GetTransaction(ctx context.Context, transactionID string) (*saledto.TransactionOutput, error)
	ListProductTransactions(ctx context.Context, input *saledto.ListTransactionsInput) ([]*saledto.TransactionOutput, int64, error)
}

type DefaultSaleUsecase struct {
	ProductRepo     domain.ProductRepository
	TransactionRepo domain.TransactionRepository
	Tx              domain.TxManager
	Alerter         *usecase.StockAlerter
	Metrics         *metrics.CommerceMetrics
	Logger          *zap.Logger
}

func NewDefaultSaleUsecase(
	productRepo domain.ProductRepository,
	transactionRepo domain.TransactionRepository,
	tx domain.TxManager,
	alerter *usecase.StockAlerter,
	commerceMetrics *metrics.CommerceMetrics,
	logger *zap.Logger) *DefaultSaleUsecase {

	return &DefaultSaleUsecase{
		ProductRepo:     productRepo,
		TransactionRepo: transactionRepo,
		Tx:              tx,
		Alerter:         alerter,
		Metrics:         commerceMetrics,
		Logger:          logger,
	}
}

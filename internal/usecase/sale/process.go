package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	saledto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/sale"
	"go.uber.org/zap"
)

// ProcessSale debits stock and records the matching transaction in one
// atomic scope. Concurrent sales of the same product serialize on the
// row lock; on any failure the scope rolls back and stock is unchanged.
func (uc *DefaultSaleUsecase) ProcessSale(ctx context.Context, input *saledto.ProcessSaleInput) (*saledto.TransactionOutput, error) {
	start := time.Now()

	if input.Quantity <= 0 {
		uc.countError("invalid_quantity")
		return nil, domain.ErrInvalidQuantity
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	var (
		product     *domain.Product
		transaction *domain.Transaction
	)

	err = uc.Tx.Do(ctx, func(ctx context.Context) error {
		locked, err := uc.ProductRepo.LockForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if !locked.IsActive {
			return domain.ErrInactiveProduct
		}
		if input.Quantity > locked.Stock {
			return fmt.Errorf("insufficient stock for %s: %w", locked.Name, domain.ErrInsufficientStock)
		}

		// Amount is fixed here; later price or VAT edits never touch it.
		amount := domain.SaleAmount(locked.NetPrice, locked.VATRate, input.Quantity)

		if err := uc.ProductRepo.ApplyStockDelta(ctx, locked.ID, -input.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return fmt.Errorf("insufficient stock for %s: %w", locked.Name, err)
			}
			return err
		}

		transaction = &domain.Transaction{
			ID:              idGenerator(),
			ProductID:       locked.ID,
			Quantity:        input.Quantity,
			Amount:          amount,
			TransactionDate: time.Now().UTC(),
			CustomerID:      input.CustomerID,
		}
		if err := uc.TransactionRepo.Insert(ctx, transaction); err != nil {
			return err
		}

		locked.Stock -= input.Quantity
		product = locked
		return nil
	})
	if err != nil {
		uc.countError(reasonOf(err))
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.SalesTotal.WithLabelValues(product.MerchantID, string(product.Category)).Inc()
		amount, _ := transaction.Amount.Float64()
		uc.Metrics.SalesAmountTotal.WithLabelValues(product.MerchantID).Add(amount)
		uc.Metrics.SaleProcessingDuration.WithLabelValues(product.MerchantID).Observe(time.Since(start).Seconds())
	}
	if uc.Logger != nil {
		uc.Logger.Info("sale recorded",
			zap.String("transaction_id", transaction.ID),
			zap.String("product_id", product.ID),
			zap.Int64("quantity", transaction.Quantity),
			zap.String("amount", transaction.Amount.StringFixed(2)))
	}

	uc.Alerter.AfterDecrement(product)

	return saledto.FromDomain(transaction), nil
}

func (uc *DefaultSaleUsecase) countError(reason string) {
	if uc.Metrics != nil {
		uc.Metrics.SaleErrorsTotal.WithLabelValues(reason).Inc()
	}
}

func reasonOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInactiveProduct):
		return "inactive_product"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}

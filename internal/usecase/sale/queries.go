package sale

import (
	"context"

	saledto "github.com/kbf-dev/galerie-commerce-service/internal/usecase/dto/sale"
)

func (uc *DefaultSaleUsecase) GetTransaction(ctx context.Context, transactionID string) (*saledto.TransactionOutput, error) {
	transaction, err := uc.TransactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return saledto.FromDomain(transaction), nil
}

func (uc *DefaultSaleUsecase) ListProductTransactions(ctx context.Context, input *saledto.ListTransactionsInput) ([]*saledto.TransactionOutput, int64, error) {
	transactions, total, err := uc.TransactionRepo.ListByProduct(ctx, input.ProductID, input.Page, input.Size)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*saledto.TransactionOutput, len(transactions))
	for i, transaction := range transactions {
		outputs[i] = saledto.FromDomain(transaction)
	}
	return outputs, total, nil
}

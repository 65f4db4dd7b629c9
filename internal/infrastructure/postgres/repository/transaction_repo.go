package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/mappers"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) Insert(ctx context.Context, transaction *domain.Transaction) error {
	transactionModel := mappers.ToGORMTransaction(transaction)
	if err := dbFrom(ctx, r.DB).Create(transactionModel).Error; err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var transactionModel models.TransactionModel
	if err := dbFrom(ctx, r.DB).First(&transactionModel, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&transactionModel), nil
}

func (r *DefaultTransactionRepository) ListByProduct(ctx context.Context, productID string, page, size int) ([]*domain.Transaction, int64, error) {
	var transactionModels []models.TransactionModel
	var total int64

	baseQuery := dbFrom(ctx, r.DB).Model(&models.TransactionModel{}).
		Where("product_id = ?", productID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	offset := (page - 1) * size
	if err := baseQuery.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(size).
		Find(&transactionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find transactions: %w", err)
	}

	transactions := make([]*domain.Transaction, len(transactionModels))
	for i, transactionModel := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&transactionModel)
	}

	return transactions, total, nil
}

// SumAmounts aggregates over the half-open interval [from, to).
func (r *DefaultTransactionRepository) SumAmounts(ctx context.Context, merchantID string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := dbFrom(ctx, r.DB).Model(&models.TransactionModel{}).
		Joins("JOIN products ON products.id = transactions.product_id").
		Where("products.merchant_id = ?", merchantID).
		Where("transactions.transaction_date >= ? AND transactions.transaction_date < ?", from, to).
		Select("COALESCE(SUM(transactions.amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transaction amounts: %w", err)
	}
	return total, nil
}

package mappers

import (
	"github.com/kbf-dev/galerie-commerce-service/internal/domain"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		ProductID:       model.ProductID,
		Quantity:        model.Quantity,
		Amount:          model.Amount,
		TransactionDate: model.TransactionDate,
		CustomerID:      model.CustomerID,
	}
}

func ToGORMTransaction(transaction *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              transaction.ID,
		ProductID:       transaction.ProductID,
		Quantity:        transaction.Quantity,
		Amount:          transaction.Amount,
		TransactionDate: transaction.TransactionDate,
		CustomerID:      transaction.CustomerID,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:        model.ID,
		Email:     model.Email,
		Role:      domain.Role(model.Role),
		CreatedAt: model.CreatedAt,
	}
}

package repository

import (
	"cryptomine/api/internal/domain"

	"gorm.io/gorm"
)

type TransactionsRepo struct {
}

func InitTransactionsRepo() *TransactionsRepo {
	return &TransactionsRepo{}
}

func (r *TransactionsRepo) Create(tx *gorm.DB, transaction *domain.Transactions) error {
	return tx.Create(transaction).Error
}

// newest first
func (r *TransactionsRepo) FindAllByUser(tx *gorm.DB, userID uint) ([]domain.Transactions, error) {
	var transactions []domain.Transactions
	return transactions, tx.Where(&domain.Transactions{UserID: userID}).Order("created_at DESC, id DESC").Find(&transactions).Error
}

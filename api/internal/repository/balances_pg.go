package repository

import (
	"cryptomine/api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var lockingUpdate = clause.Locking{Strength: "UPDATE"}

type BalancesRepo struct {
}

func InitBalancesRepo() *BalancesRepo {
	return &BalancesRepo{}
}

func (r *BalancesRepo) Create(tx *gorm.DB, balance *domain.Balances) error {
	return tx.Create(balance).Error
}

func (r *BalancesRepo) Find(tx *gorm.DB, userID uint, crypto string) (*domain.Balances, error) {
	var balance domain.Balances
	return &balance, tx.Where(&domain.Balances{UserID: userID, Crypto: crypto}).First(&balance).Error
}

func (r *BalancesRepo) FindForUpdate(tx *gorm.DB, userID uint, crypto string) (*domain.Balances, error) {
	var balance domain.Balances
	return &balance, forUpdate(tx).Where(&domain.Balances{UserID: userID, Crypto: crypto}).First(&balance).Error
}

func (r *BalancesRepo) FindAllByUser(tx *gorm.DB, userID uint) ([]domain.Balances, error) {
	var balances []domain.Balances
	return balances, tx.Where(&domain.Balances{UserID: userID}).Find(&balances).Error
}

func (r *BalancesRepo) Save(tx *gorm.DB, balance *domain.Balances) error {
	return tx.Save(balance).Error
}

package repository

import (
	"time"

	"cryptomine/api/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletAddressesRepo struct {
}

func InitWalletAddressesRepo() *WalletAddressesRepo {
	return &WalletAddressesRepo{}
}

// Upsert writes the address in a single conditional statement guarded
// by the (user_id, crypto) unique index, then re-reads the row so the
// caller sees the stable id and original created_at.
func (r *WalletAddressesRepo) Upsert(tx *gorm.DB, wallet *domain.WalletAddresses) (*domain.WalletAddresses, error) {
	wallet.UpdatedAt = time.Now()

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "crypto"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "updated_at"}),
	}).Create(wallet).Error
	if err != nil {
		return nil, err
	}

	return r.Find(tx, wallet.UserID, wallet.Crypto)
}

func (r *WalletAddressesRepo) Find(tx *gorm.DB, userID uint, crypto string) (*domain.WalletAddresses, error) {
	var wallet domain.WalletAddresses
	return &wallet, tx.Where(&domain.WalletAddresses{UserID: userID, Crypto: crypto}).First(&wallet).Error
}

// FindMatch requires an exact, case-sensitive address match for that
// user and currency.
func (r *WalletAddressesRepo) FindMatch(tx *gorm.DB, userID uint, crypto string, address string) (*domain.WalletAddresses, error) {
	var wallet domain.WalletAddresses
	return &wallet, tx.Where(&domain.WalletAddresses{UserID: userID, Crypto: crypto, Address: address}).First(&wallet).Error
}

func (r *WalletAddressesRepo) FindAllByUser(tx *gorm.DB, userID uint) ([]domain.WalletAddresses, error) {
	var wallets []domain.WalletAddresses
	return wallets, tx.Where(&domain.WalletAddresses{UserID: userID}).Find(&wallets).Error
}

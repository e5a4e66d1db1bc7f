package domain

import "time"

// WalletAddresses holds at most one saved external address per
// (user, currency); saves overwrite in place.
type WalletAddresses struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wallets_user_crypto" json:"user_id"`
	Crypto    string    `gorm:"type:text;not null;uniqueIndex:idx_wallets_user_crypto" json:"crypto_type"`
	Address   string    `gorm:"not null" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

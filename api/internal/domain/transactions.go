package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType uint8

const (
	TX_MINING_WITHDRAWAL TransactionType = iota
	TX_SWAP_FROM
	TX_SWAP_TO
	TX_WITHDRAWAL_TO_WALLET
)

var TransactionTypes = [...]string{"MINING_WITHDRAWAL", "SWAP_FROM", "SWAP_TO", "WITHDRAWAL_TO_WALLET"}

func (t TransactionType) ToString() string {
	return TransactionTypes[t]
}

// Transactions is the append-only ledger. Rows are never updated or
// deleted; every balance mutation outside account creation leaves one.
type Transactions struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	Type       TransactionType `gorm:"type:int8;not null" json:"-"`
	Crypto     string          `gorm:"type:text;not null" json:"crypto_type"`
	Amount     decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	FromCrypto *string         `gorm:"type:text" json:"from_crypto_type"`
	ToCrypto   *string         `gorm:"type:text" json:"to_crypto_type"`
	CreatedAt  time.Time       `json:"created_at"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EVENT_LEDGER_TRANSACTION = "ledger_transaction"
)

const (
	EVENT_STATUS_NEW  = "new"
	EVENT_STATUS_DONE = "done"
)

// Events is the outbox for the ledger feed: one row per transaction,
// written in the same db transaction, published to NATS later.
type Events struct {
	ID         uint   `gorm:"primaryKey"`
	RelationID uint   `gorm:"not null"`
	Type       string `gorm:"type:varchar(255)"` // const EVENT_*
	Payload    string
	Status     string // new/done
	CreatedAt  time.Time
}

type PayloadLedgerTransaction struct {
	TransactionID uint            `json:"transaction_id"`
	UserID        uint            `json:"user_id"`
	Type          string          `json:"type"`
	Crypto        string          `json:"crypto_type"`
	Amount        decimal.Decimal `json:"amount"`
	FromCrypto    *string         `json:"from_crypto_type"`
	ToCrypto      *string         `json:"to_crypto_type"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Balances struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;uniqueIndex:idx_balances_user_crypto" json:"user_id"`
	Crypto    string          `gorm:"type:text;not null;uniqueIndex:idx_balances_user_crypto" json:"crypto_type"`
	Amount    decimal.Decimal `gorm:"type:numeric;default:0" json:"amount"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BalanceView is what the read path returns: one entry per supported
// currency. Persisted is false for currencies without a stored row,
// in which case ID is 0 and Amount is zero.
type BalanceView struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	Crypto    string          `json:"crypto_type"`
	Amount    decimal.Decimal `json:"amount"`
	Persisted bool            `json:"persisted"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (b *Balances) View() BalanceView {
	return BalanceView{
		ID:        b.ID,
		UserID:    b.UserID,
		Crypto:    b.Crypto,
		Amount:    b.Amount,
		Persisted: true,
		UpdatedAt: b.UpdatedAt,
	}
}

func UnfundedBalance(userID uint, crypto Crypto) BalanceView {
	return BalanceView{
		UserID: userID,
		Crypto: crypto.ToString(),
		Amount: decimal.Zero,
	}
}

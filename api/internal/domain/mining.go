package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MiningStatus uint8

const (
	MINING_STOPPED MiningStatus = iota
	MINING_ACTIVE
)

var MiningStatuses = [...]string{"STOPPED", "ACTIVE"}

func (s MiningStatus) ToString() string {
	return MiningStatuses[s]
}

func (s MiningStatus) IsActive() bool {
	return s == MINING_ACTIVE
}

func StrToMiningStatus(s string) MiningStatus {
	for i, statusName := range MiningStatuses {
		if s == statusName {
			return MiningStatus(i)
		}
	}
	return MINING_STOPPED
}

type MiningSessions struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Status        MiningStatus    `gorm:"type:int8;not null" json:"-"`
	MiningBalance decimal.Decimal `gorm:"type:numeric;default:0" json:"mining_balance"`
	StartedAt     *time.Time      `json:"started_at"`
	StoppedAt     *time.Time      `json:"stopped_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Accrued is the not yet persisted mining income of an ACTIVE session:
// rate per second times whole elapsed seconds since StartedAt.
func (m *MiningSessions) Accrued(rate decimal.Decimal, now time.Time) decimal.Decimal {
	if !m.Status.IsActive() || m.StartedAt == nil {
		return decimal.Zero
	}
	seconds := int64(now.Sub(*m.StartedAt).Seconds())
	if seconds <= 0 {
		return decimal.Zero
	}
	return rate.Mul(decimal.NewFromInt(seconds))
}

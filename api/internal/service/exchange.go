package service

import (
	"fmt"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/infra/postgres"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExchangeService struct {
	balances repository.Balances
	ledger   repository.Transactions
	events   repository.Events
	locker   Locker
	db       *gorm.DB
	log      logger.Logger
}

func NewExchangeService(db *gorm.DB, repos *repository.Repositories, locker Locker, l logger.Logger) *ExchangeService {
	return &ExchangeService{
		balances: repos.Balances,
		ledger:   repos.Transactions,
		events:   repos.Events,
		locker:   locker,
		db:       db,
		log:      l,
	}
}

// Swap moves amount from one currency balance to another at a fixed
// 1:1 rate and appends the SWAP_FROM/SWAP_TO ledger pair, all in one
// transaction.
func (s *ExchangeService) Swap(userID uint, from, to domain.Crypto, amount decimal.Decimal) ([]domain.Transactions, error) {
	if from.IsNone() || to.IsNone() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidCrypto)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgSameCrypto)
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}

	s.locker.Lock(userID)
	defer s.locker.Unlock(userID)

	fromStr, toStr := from.ToString(), to.ToString()
	var pair []domain.Transactions

	err := s.db.Transaction(func(tx *gorm.DB) error {
		fromBalance, err := s.balances.FindForUpdate(tx, userID, fromStr)
		if err != nil {
			if postgres.IsNotFound(err) {
				return fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgBalanceNotFound)
			}
			return err
		}

		if fromBalance.Amount.LessThan(amount) {
			return fmt.Errorf("%w. available: %s", domain.ErrInsufficientBalance, fromBalance.Amount.String())
		}

		fromBalance.Amount = fromBalance.Amount.Sub(amount)
		if err := s.balances.Save(tx, fromBalance); err != nil {
			return err
		}

		toBalance, err := s.balances.FindForUpdate(tx, userID, toStr)
		if err != nil {
			if !postgres.IsNotFound(err) {
				return err
			}
			toBalance = &domain.Balances{UserID: userID, Crypto: toStr, Amount: amount}
			if err := s.balances.Create(tx, toBalance); err != nil {
				return err
			}
		} else {
			toBalance.Amount = toBalance.Amount.Add(amount)
			if err := s.balances.Save(tx, toBalance); err != nil {
				return err
			}
		}

		pair = []domain.Transactions{
			{
				UserID:     userID,
				Type:       domain.TX_SWAP_FROM,
				Crypto:     fromStr,
				Amount:     amount,
				FromCrypto: &fromStr,
				ToCrypto:   &toStr,
			},
			{
				UserID:     userID,
				Type:       domain.TX_SWAP_TO,
				Crypto:     toStr,
				Amount:     amount,
				FromCrypto: &fromStr,
				ToCrypto:   &toStr,
			},
		}

		for i := range pair {
			if err := s.ledger.Create(tx, &pair[i]); err != nil {
				return err
			}
			if err := createLedgerEvent(tx, s.events, &pair[i]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.log.Debug("swap failed", "user_id", userID, "from", fromStr, "to", toStr, "error", err.Error())
		return nil, err
	}

	return pair, nil
}

// validAmount accepts strictly positive values with at most 8 decimal
// places; anything else would drift once persisted as numeric(20,8).
func validAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.Exponent() < -8 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidAmount)
	}
	return nil
}

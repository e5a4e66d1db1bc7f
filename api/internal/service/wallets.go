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

type WalletsService struct {
	users    repository.Users
	wallets  repository.WalletAddresses
	balances repository.Balances
	ledger   repository.Transactions
	events   repository.Events
	locker   Locker
	db       *gorm.DB
	log      logger.Logger
}

func NewWalletsService(db *gorm.DB, repos *repository.Repositories, locker Locker, l logger.Logger) *WalletsService {
	return &WalletsService{
		users:    repos.Users,
		wallets:  repos.WalletAddresses,
		balances: repos.Balances,
		ledger:   repos.Transactions,
		events:   repos.Events,
		locker:   locker,
		db:       db,
		log:      l,
	}
}

// Save upserts the single external address kept per (user, currency).
func (s *WalletsService) Save(userID uint, crypto domain.Crypto, address string) (*domain.WalletAddresses, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgEmptyAddress)
	}
	if crypto.IsNone() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidCrypto)
	}

	if _, err := s.users.FindByID(s.db, userID); err != nil {
		if postgres.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgUserNotFound)
		}
		return nil, err
	}

	wallet := &domain.WalletAddresses{UserID: userID, Crypto: crypto.ToString(), Address: address}
	return s.wallets.Upsert(s.db, wallet)
}

func (s *WalletsService) ListByUser(userID uint) ([]domain.WalletAddresses, error) {
	return s.wallets.FindAllByUser(s.db, userID)
}

// Withdraw debits the balance and records the value leaving the
// system; there is no offsetting credit. The target address must match
// a previously saved address for that exact user and currency.
func (s *WalletsService) Withdraw(userID uint, crypto domain.Crypto, amount decimal.Decimal, address string) (*domain.Transactions, error) {
	if crypto.IsNone() {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidCrypto)
	}
	if err := validAmount(amount); err != nil {
		return nil, err
	}

	s.locker.Lock(userID)
	defer s.locker.Unlock(userID)

	cryptoStr := crypto.ToString()
	var withdrawal *domain.Transactions

	err := s.db.Transaction(func(tx *gorm.DB) error {
		balance, err := s.balances.FindForUpdate(tx, userID, cryptoStr)
		if err != nil {
			if postgres.IsNotFound(err) {
				// a missing row reads as zero funds
				return fmt.Errorf("%w. available: 0", domain.ErrInsufficientBalance)
			}
			return err
		}

		if balance.Amount.LessThan(amount) {
			return fmt.Errorf("%w. available: %s", domain.ErrInsufficientBalance, balance.Amount.String())
		}

		if _, err := s.wallets.FindMatch(tx, userID, cryptoStr, address); err != nil {
			if postgres.IsNotFound(err) {
				return fmt.Errorf("%w: %s", domain.ErrAddressMismatch, domain.ErrMsgNoWalletSaved)
			}
			return err
		}

		balance.Amount = balance.Amount.Sub(amount)
		if err := s.balances.Save(tx, balance); err != nil {
			return err
		}

		withdrawal = &domain.Transactions{
			UserID:     userID,
			Type:       domain.TX_WITHDRAWAL_TO_WALLET,
			Crypto:     cryptoStr,
			Amount:     amount,
			FromCrypto: &cryptoStr,
		}
		if err := s.ledger.Create(tx, withdrawal); err != nil {
			return err
		}

		return createLedgerEvent(tx, s.events, withdrawal)
	})
	if err != nil {
		s.log.Debug("wallet withdrawal failed", "user_id", userID, "currency", cryptoStr, "error", err.Error())
		return nil, err
	}

	return withdrawal, nil
}

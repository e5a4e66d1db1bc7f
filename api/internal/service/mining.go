package service

import (
	"fmt"
	"time"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/infra/postgres"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MiningService struct {
	users    repository.Users
	sessions repository.MiningSessions
	balances repository.Balances
	ledger   repository.Transactions
	events   repository.Events
	locker   Locker
	db       *gorm.DB
	rate     decimal.Decimal
	log      logger.Logger
}

func NewMiningService(db *gorm.DB, repos *repository.Repositories, locker Locker, rate decimal.Decimal, l logger.Logger) *MiningService {
	return &MiningService{
		users:    repos.Users,
		sessions: repos.MiningSessions,
		balances: repos.Balances,
		ledger:   repos.Transactions,
		events:   repos.Events,
		locker:   locker,
		db:       db,
		rate:     rate,
		log:      l,
	}
}

func (s *MiningService) Start(userID uint) (*domain.MiningSessions, error) {
	s.locker.Lock(userID)
	defer s.locker.Unlock(userID)

	var session *domain.MiningSessions

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.users.FindByID(tx, userID); err != nil {
			if postgres.IsNotFound(err) {
				return fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgUserNotFound)
			}
			return err
		}

		now := time.Now()

		found, err := s.sessions.FindLatestForUpdate(tx, userID)
		if err != nil {
			if !postgres.IsNotFound(err) {
				return err
			}

			session = &domain.MiningSessions{
				UserID:        userID,
				Status:        domain.MINING_ACTIVE,
				MiningBalance: decimal.Zero,
				StartedAt:     &now,
			}
			return s.sessions.Create(tx, session)
		}

		if found.Status.IsActive() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidState, domain.ErrMsgMiningAlreadyActive)
		}

		// restart keeps the accumulated mining balance
		found.Status = domain.MINING_ACTIVE
		found.StartedAt = &now
		found.StoppedAt = nil

		session = found
		return s.sessions.Save(tx, found)
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (s *MiningService) Stop(userID uint) (*domain.MiningSessions, error) {
	s.locker.Lock(userID)
	defer s.locker.Unlock(userID)

	var session *domain.MiningSessions

	err := s.db.Transaction(func(tx *gorm.DB) error {
		found, err := s.sessions.FindLatestForUpdate(tx, userID)
		if err != nil {
			if postgres.IsNotFound(err) {
				return fmt.Errorf("%w: %s", domain.ErrInvalidState, domain.ErrMsgMiningNotActive)
			}
			return err
		}

		if !found.Status.IsActive() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidState, domain.ErrMsgMiningNotActive)
		}

		now := time.Now()

		found.MiningBalance = found.MiningBalance.Add(found.Accrued(s.rate, now))
		found.Status = domain.MINING_STOPPED
		found.StoppedAt = &now

		session = found
		return s.sessions.Save(tx, found)
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetCurrent reports the stored mining balance plus the pending accrual
// of an ACTIVE session without persisting anything.
func (s *MiningService) GetCurrent(userID uint) (*domain.MiningSessions, error) {
	session, err := s.sessions.FindLatest(s.db, userID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	session.MiningBalance = session.MiningBalance.Add(session.Accrued(s.rate, time.Now()))
	return session, nil
}

// Withdraw moves the whole mining balance into the user's BITCOIN
// balance. Balance credit, session reset and ledger insert are one
// transaction; partial application would duplicate funds on retry.
func (s *MiningService) Withdraw(userID uint) (*domain.Transactions, error) {
	s.locker.Lock(userID)
	defer s.locker.Unlock(userID)

	var withdrawal *domain.Transactions

	err := s.db.Transaction(func(tx *gorm.DB) error {
		session, err := s.sessions.FindLatestForUpdate(tx, userID)
		if err != nil {
			if postgres.IsNotFound(err) {
				return fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgSessionNotFound)
			}
			return err
		}

		now := time.Now()
		total := session.MiningBalance.Add(session.Accrued(s.rate, now))

		if !total.IsPositive() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidState, domain.ErrMsgZeroMiningBalance)
		}

		primary := domain.PrimaryCrypto.ToString()

		balance, err := s.balances.FindForUpdate(tx, userID, primary)
		if err != nil {
			if !postgres.IsNotFound(err) {
				return err
			}
			balance = &domain.Balances{UserID: userID, Crypto: primary, Amount: total}
			if err := s.balances.Create(tx, balance); err != nil {
				return err
			}
		} else {
			balance.Amount = balance.Amount.Add(total)
			if err := s.balances.Save(tx, balance); err != nil {
				return err
			}
		}

		session.MiningBalance = decimal.Zero
		if session.Status.IsActive() {
			// accrual restarts from the withdrawal instant
			session.StartedAt = &now
		}
		if err := s.sessions.Save(tx, session); err != nil {
			return err
		}

		withdrawal = &domain.Transactions{
			UserID: userID,
			Type:   domain.TX_MINING_WITHDRAWAL,
			Crypto: primary,
			Amount: total,
		}
		if err := s.ledger.Create(tx, withdrawal); err != nil {
			return err
		}

		return createLedgerEvent(tx, s.events, withdrawal)
	})
	if err != nil {
		s.log.Debug("mining withdrawal failed", "user_id", userID, "error", err.Error())
		return nil, err
	}

	s.log.Info("mining withdrawal", "user_id", userID, "amount", withdrawal.Amount.String())
	return withdrawal, nil
}

package service

import (
	"cryptomine/api/internal/config"
	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/infra/cache"
	"cryptomine/api/internal/infra/nats"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Accounts interface {
	CreateUser() (*domain.Users, error)
}

type Mining interface {
	Start(userID uint) (*domain.MiningSessions, error)
	Stop(userID uint) (*domain.MiningSessions, error)
	// GetCurrent returns (nil, nil) when the user has no session yet.
	GetCurrent(userID uint) (*domain.MiningSessions, error)
	Withdraw(userID uint) (*domain.Transactions, error)
}

type Exchange interface {
	Swap(userID uint, from, to domain.Crypto, amount decimal.Decimal) ([]domain.Transactions, error)
}

type Wallets interface {
	Save(userID uint, crypto domain.Crypto, address string) (*domain.WalletAddresses, error)
	ListByUser(userID uint) ([]domain.WalletAddresses, error)
	Withdraw(userID uint, crypto domain.Crypto, amount decimal.Decimal, address string) (*domain.Transactions, error)
}

type Ledger interface {
	Transactions(userID uint) ([]domain.Transactions, error)
	Balances(userID uint) ([]domain.BalanceView, error)
}

type Locker interface {
	Lock(userID uint)
	Unlock(userID uint)
}

type Outbox interface {
	StartProcessEvents()
}

type Services struct {
	Accounts Accounts
	Mining   Mining
	Exchange Exchange
	Wallets  Wallets
	Ledger   Ledger
	Outbox   Outbox
}

func NewServices(natsinfra *nats.NatsInfra, db *gorm.DB, l logger.Logger, config *config.Config) *Services {
	repos := repository.New()
	lockerService := NewLockerService(cache.InitStorage())

	return &Services{
		Accounts: NewAccountsService(db, repos, l),
		Mining:   NewMiningService(db, repos, lockerService, config.Mining.RatePerSecond, l),
		Exchange: NewExchangeService(db, repos, lockerService, l),
		Wallets:  NewWalletsService(db, repos, lockerService, l),
		Ledger:   NewLedgerService(db, repos),
		Outbox:   NewOutboxService(db, repos.Events, natsinfra, l),
	}
}

package repository

import (
	"cryptomine/api/internal/domain"

	"gorm.io/gorm"
)

type Users interface {
	Create(tx *gorm.DB, user *domain.Users) error
	FindByID(tx *gorm.DB, userID uint) (*domain.Users, error)
}

type Balances interface {
	Create(tx *gorm.DB, balance *domain.Balances) error
	Find(tx *gorm.DB, userID uint, crypto string) (*domain.Balances, error)
	FindForUpdate(tx *gorm.DB, userID uint, crypto string) (*domain.Balances, error)
	FindAllByUser(tx *gorm.DB, userID uint) ([]domain.Balances, error)
	Save(tx *gorm.DB, balance *domain.Balances) error
}

type MiningSessions interface {
	Create(tx *gorm.DB, session *domain.MiningSessions) error
	FindLatest(tx *gorm.DB, userID uint) (*domain.MiningSessions, error)
	FindLatestForUpdate(tx *gorm.DB, userID uint) (*domain.MiningSessions, error)
	Save(tx *gorm.DB, session *domain.MiningSessions) error
}

type Transactions interface {
	Create(tx *gorm.DB, transaction *domain.Transactions) error
	FindAllByUser(tx *gorm.DB, userID uint) ([]domain.Transactions, error)
}

type WalletAddresses interface {
	Upsert(tx *gorm.DB, wallet *domain.WalletAddresses) (*domain.WalletAddresses, error)
	Find(tx *gorm.DB, userID uint, crypto string) (*domain.WalletAddresses, error)
	FindMatch(tx *gorm.DB, userID uint, crypto string, address string) (*domain.WalletAddresses, error)
	FindAllByUser(tx *gorm.DB, userID uint) ([]domain.WalletAddresses, error)
}

type Events interface {
	Create(tx *gorm.DB, eventType string, eventRelationID uint, payload string) error
	Done(tx *gorm.DB, eventRelationID uint, eventType string) error
	Find(tx *gorm.DB, eventRelationID uint, eventType string) (*domain.Events, error)
	FindNew(tx *gorm.DB, count int) ([]domain.Events, error)
}

type Repositories struct {
	Users           Users
	Balances        Balances
	MiningSessions  MiningSessions
	Transactions    Transactions
	WalletAddresses WalletAddresses
	Events          Events
}

func New() *Repositories {
	return &Repositories{
		Users:           InitUsersRepo(),
		Balances:        InitBalancesRepo(),
		MiningSessions:  InitMiningSessionsRepo(),
		Transactions:    InitTransactionsRepo(),
		WalletAddresses: InitWalletAddressesRepo(),
		Events:          InitEventsRepo(),
	}
}

// forUpdate adds a row lock on postgres; sqlite (tests) serializes
// writers on its own and rejects the clause.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() != "postgres" {
		return tx
	}
	return tx.Clauses(lockingUpdate)
}

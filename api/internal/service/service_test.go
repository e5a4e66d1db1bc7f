package service

import (
	"testing"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/infra/cache"
	"cryptomine/api/internal/infra/postgres"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	repos    *repository.Repositories
	locker   *LockerService
	accounts *AccountsService
	mining   *MiningService
	exchange *ExchangeService
	wallets  *WalletsService
	ledger   *LedgerService
}

// newTestEnv wires the services against an in-memory database. The
// mining rate is zero so balances only change through explicit writes;
// accrual tests construct their own MiningService.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := postgres.InitTest()
	repos := repository.New()
	locker := NewLockerService(cache.InitStorage())
	l := logger.Logger{}

	return &testEnv{
		db:       db,
		repos:    repos,
		locker:   locker,
		accounts: NewAccountsService(db, repos, l),
		mining:   NewMiningService(db, repos, locker, decimal.Zero, l),
		exchange: NewExchangeService(db, repos, locker, l),
		wallets:  NewWalletsService(db, repos, locker, l),
		ledger:   NewLedgerService(db, repos),
	}
}

func mustUser(t *testing.T, env *testEnv) *domain.Users {
	t.Helper()

	user, err := env.accounts.CreateUser()
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func setBalance(t *testing.T, env *testEnv, userID uint, crypto domain.Crypto, amount string) {
	t.Helper()

	balance, err := env.repos.Balances.Find(env.db, userID, crypto.ToString())
	if err != nil {
		t.Fatalf("find balance: %v", err)
	}
	balance.Amount = decimal.RequireFromString(amount)
	if err := env.repos.Balances.Save(env.db, balance); err != nil {
		t.Fatalf("save balance: %v", err)
	}
}

func getBalance(t *testing.T, env *testEnv, userID uint, crypto domain.Crypto) decimal.Decimal {
	t.Helper()

	balance, err := env.repos.Balances.Find(env.db, userID, crypto.ToString())
	if err != nil {
		t.Fatalf("find balance: %v", err)
	}
	return balance.Amount
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

package service

import (
	"fmt"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/infra/postgres"
	"cryptomine/api/internal/repository"

	"gorm.io/gorm"
)

type LedgerService struct {
	users        repository.Users
	balances     repository.Balances
	transactions repository.Transactions
	db           *gorm.DB
}

func NewLedgerService(db *gorm.DB, repos *repository.Repositories) *LedgerService {
	return &LedgerService{
		users:        repos.Users,
		balances:     repos.Balances,
		transactions: repos.Transactions,
		db:           db,
	}
}

func (s *LedgerService) Transactions(userID uint) ([]domain.Transactions, error) {
	return s.transactions.FindAllByUser(s.db, userID)
}

// Balances always answers with the complete currency set: persisted
// rows as-is, the rest as explicit unfunded entries.
func (s *LedgerService) Balances(userID uint) ([]domain.BalanceView, error) {
	if _, err := s.users.FindByID(s.db, userID); err != nil {
		if postgres.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, domain.ErrMsgUserNotFound)
		}
		return nil, err
	}

	rows, err := s.balances.FindAllByUser(s.db, userID)
	if err != nil {
		return nil, err
	}

	byCrypto := make(map[string]*domain.Balances, len(rows))
	for i := range rows {
		byCrypto[rows[i].Crypto] = &rows[i]
	}

	views := make([]domain.BalanceView, 0, len(domain.Cryptos)-1)
	for _, crypto := range domain.SupportedCryptos() {
		if row, ok := byCrypto[crypto.ToString()]; ok {
			views = append(views, row.View())
			continue
		}
		views = append(views, domain.UnfundedBalance(userID, crypto))
	}

	return views, nil
}

package service

import (
	"fmt"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountsService struct {
	users    repository.Users
	balances repository.Balances
	db       *gorm.DB
	log      logger.Logger
}

func NewAccountsService(db *gorm.DB, repos *repository.Repositories, l logger.Logger) *AccountsService {
	return &AccountsService{users: repos.Users, balances: repos.Balances, db: db, log: l}
}

// CreateUser inserts the user row and one zero balance per supported
// currency. All-or-nothing: a failed seed rolls back the user too.
func (s *AccountsService) CreateUser() (*domain.Users, error) {
	var user domain.Users

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.users.Create(tx, &user); err != nil {
			return err
		}

		for _, crypto := range domain.SupportedCryptos() {
			balance := domain.Balances{
				UserID: user.ID,
				Crypto: crypto.ToString(),
				Amount: decimal.Zero,
			}
			if err := s.balances.Create(tx, &balance); err != nil {
				return fmt.Errorf("%s: %w", domain.ErrMsgInitBalances, err)
			}
		}

		return nil
	})
	if err != nil {
		s.log.Error("create user failed", "error", err.Error())
		return nil, err
	}

	return &user, nil
}

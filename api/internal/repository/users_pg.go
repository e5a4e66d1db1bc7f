package repository

import (
	"cryptomine/api/internal/domain"

	"gorm.io/gorm"
)

type UsersRepo struct {
}

func InitUsersRepo() *UsersRepo {
	return &UsersRepo{}
}

func (r *UsersRepo) Create(tx *gorm.DB, user *domain.Users) error {
	return tx.Create(user).Error
}

func (r *UsersRepo) FindByID(tx *gorm.DB, userID uint) (*domain.Users, error) {
	var user domain.Users
	return &user, tx.First(&user, userID).Error
}

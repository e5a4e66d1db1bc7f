package repository

import (
	"cryptomine/api/internal/domain"

	"gorm.io/gorm"
)

type MiningSessionsRepo struct {
}

func InitMiningSessionsRepo() *MiningSessionsRepo {
	return &MiningSessionsRepo{}
}

func (r *MiningSessionsRepo) Create(tx *gorm.DB, session *domain.MiningSessions) error {
	return tx.Create(session).Error
}

// FindLatest returns the most recently created session; control logic
// always targets this one.
func (r *MiningSessionsRepo) FindLatest(tx *gorm.DB, userID uint) (*domain.MiningSessions, error) {
	var session domain.MiningSessions
	return &session, tx.Where(&domain.MiningSessions{UserID: userID}).Order("created_at DESC, id DESC").First(&session).Error
}

func (r *MiningSessionsRepo) FindLatestForUpdate(tx *gorm.DB, userID uint) (*domain.MiningSessions, error) {
	var session domain.MiningSessions
	return &session, forUpdate(tx).Where(&domain.MiningSessions{UserID: userID}).Order("created_at DESC, id DESC").First(&session).Error
}

func (r *MiningSessionsRepo) Save(tx *gorm.DB, session *domain.MiningSessions) error {
	return tx.Save(session).Error
}

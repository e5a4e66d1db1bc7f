package service

import (
	"sync"

	"cryptomine/api/internal/infra/cache"
)

// LockerService hands out one mutex per user id so mutating operations
// for the same user never interleave; different users stay independent.
type LockerService struct {
	cache *cache.Cache
}

func NewLockerService(cache *cache.Cache) *LockerService {
	return &LockerService{cache: cache}
}

func (s *LockerService) Lock(userID uint) {
	s.mutex(userID).Lock()
}

func (s *LockerService) Unlock(userID uint) {
	s.mutex(userID).Unlock()
}

func (s *LockerService) mutex(userID uint) *sync.Mutex {
	return s.cache.LoadOrSetNoExp(userID, &sync.Mutex{}).(*sync.Mutex)
}

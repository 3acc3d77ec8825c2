package stores

import (
	"context"
	"sync"

	"driver-tips/internal/models"
)

type memoryDriverStore struct {
	mu      sync.RWMutex
	drivers map[string]*models.Driver
}

// NewMemoryDriverStore creates an in-memory DriverStore for tests and local
// development.
func NewMemoryDriverStore() DriverStore {
	return &memoryDriverStore{drivers: make(map[string]*models.Driver)}
}

func (s *memoryDriverStore) Create(ctx context.Context, driver *models.Driver) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drivers[driver.DriverID]; exists {
		return ErrDriverAlreadyExists
	}
	copied := *driver
	s.drivers[driver.DriverID] = &copied
	return nil
}

func (s *memoryDriverStore) Get(ctx context.Context, driverID string) (*models.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	driver, exists := s.drivers[driverID]
	if !exists {
		return nil, ErrDriverNotFound
	}
	copied := *driver
	return &copied, nil
}

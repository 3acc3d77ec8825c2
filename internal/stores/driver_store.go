package stores

import (
	"context"
	"errors"

	"driver-tips/internal/models"
)

var (
	ErrDriverNotFound      = errors.New("driver not found")
	ErrDriverAlreadyExists = errors.New("driver already exists")
)

// DriverStore is the driver repository consumed by the HTTP surface and the
// query service's existence check.
//
//go:generate mockgen -source=driver_store.go -destination=./mocks/driver_store_mock.go -package=mocks
type DriverStore interface {
	Create(ctx context.Context, driver *models.Driver) error
	Get(ctx context.Context, driverID string) (*models.Driver, error)
}

package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"driver-tips/internal/models"
	"driver-tips/internal/shared/loggers"
	"driver-tips/internal/stores"

	"github.com/google/uuid"
)

// CreateDriverInput carries the fields accepted when registering a driver.
// DriverID is optional; when empty a UUID is assigned.
type CreateDriverInput struct {
	DriverID string
	Name     string
	Phone    string
}

//go:generate mockgen -source=driver_service.go -destination=./mocks/driver_service_mock.go -package=mocks
type DriverService interface {
	CreateDriver(ctx context.Context, input CreateDriverInput) (*models.Driver, error)
	GetDriver(ctx context.Context, driverID string) (*models.Driver, error)
}

type driverService struct {
	driverStore stores.DriverStore
}

func NewDriverService(driverStore stores.DriverStore) DriverService {
	return &driverService{driverStore: driverStore}
}

func (s *driverService) CreateDriver(ctx context.Context, input CreateDriverInput) (*models.Driver, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errDriverNameRequired()
	}

	driverID := strings.TrimSpace(input.DriverID)
	if driverID == "" {
		driverID = uuid.NewString()
	}

	driver := &models.Driver{
		DriverID:  driverID,
		Name:      name,
		Phone:     strings.TrimSpace(input.Phone),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.driverStore.Create(ctx, driver); err != nil {
		if errors.Is(err, stores.ErrDriverAlreadyExists) {
			return nil, errDriverAlreadyExists(err)
		}
		return nil, errInternalDriverStoreFailed(err)
	}

	loggers.Ctx(ctx).Info().Str(loggers.FieldDriverID, driver.DriverID).Msg("driver created")
	metricDriverCreatedTotal.Inc()
	return driver, nil
}

func (s *driverService) GetDriver(ctx context.Context, driverID string) (*models.Driver, error) {
	driver, err := s.driverStore.Get(ctx, driverID)
	if err != nil {
		if errors.Is(err, stores.ErrDriverNotFound) {
			return nil, errDriverNotFound(err)
		}
		return nil, errInternalDriverStoreFailed(err)
	}
	return driver, nil
}

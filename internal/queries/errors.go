package queries

import (
	"errors"
	"fmt"

	"driver-tips/internal/shared/svcerrors"
	"driver-tips/internal/stores"
)

const (
	codeDriverNameRequired  = "DRV_1000"
	codeDriverAlreadyExists = "DRV_1001"
	codeDriverNotFound      = "DRV_1002"

	codeInternalDriverStoreFailed = "DRV_9000"

	codeInternalAggregateStoreFailed = "QRY_9000"
	codeAggregateStoreUnavailable    = "QRY_9001"
	codeAggregateStoreThrottled      = "QRY_9002"
)

func errDriverNameRequired() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDriverNameRequired, "name is required", nil)
}

func errDriverAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeDriverAlreadyExists, "driver already exists", cause)
}

func errDriverNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeDriverNotFound, "driver not found", cause)
}

func errInternalDriverStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDriverStoreFailed, fmt.Errorf("driverStoreFailed: %w", cause))
}

// errAggregateStoreFailed keeps the retryable store failures typed on the
// read path as well, so HTTP callers see 503/429 rather than a blanket 500.
func errAggregateStoreFailed(cause error) *svcerrors.ServiceError {
	switch {
	case errors.Is(cause, stores.ErrStoreThrottled):
		return svcerrors.NewResourceExhaustedError(codeAggregateStoreThrottled, cause)
	case errors.Is(cause, stores.ErrStoreUnavailable):
		return svcerrors.NewUnavailableError(codeAggregateStoreUnavailable, cause)
	default:
		return svcerrors.NewInternalError(codeInternalAggregateStoreFailed, fmt.Errorf("aggregateStoreFailed: %w", cause))
	}
}

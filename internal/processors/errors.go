package processors

import (
	"errors"
	"fmt"

	"driver-tips/internal/shared/svcerrors"
	"driver-tips/internal/stores"
)

const (
	codeInvalidAmount = "TIP_1000"

	codeInternalStoreFailed = "TIP_9000"
	codeStoreUnavailable    = "TIP_9001"
	codeStoreThrottled      = "TIP_9002"
)

// errStoreFailed converts aggregate store failures into typed service errors
// so the retry policy stays visible to callers: unavailable and throttled are
// retryable, a non-representable amount is a permanent rejection.
func errStoreFailed(cause error) *svcerrors.ServiceError {
	switch {
	case errors.Is(cause, stores.ErrStoreThrottled):
		return svcerrors.NewResourceExhaustedError(codeStoreThrottled, cause)
	case errors.Is(cause, stores.ErrStoreUnavailable):
		return svcerrors.NewUnavailableError(codeStoreUnavailable, cause)
	case errors.Is(cause, stores.ErrAmountNotRepresentable):
		return svcerrors.NewInvalidArgumentError(codeInvalidAmount, "amount must have at most two fractional digits", cause)
	default:
		return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("aggregateStoreFailed: %w", cause))
	}
}

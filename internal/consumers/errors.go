package consumers

import (
	"driver-tips/internal/shared/svcerrors"
)

const (
	codeParseFailed      = "CON_1000"
	codeValidationFailed = "CON_1001"
)

// errParseFailed returns an error for payloads that are not valid JSON.
func errParseFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeParseFailed, "invalid tip event payload", cause)
}

// errValidationFailed returns an error for payloads that parse but violate
// the tip event contract.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

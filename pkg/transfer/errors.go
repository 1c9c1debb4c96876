package transfer

import (
	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

// ErrorCode is a registered Transfer Family error discriminator.
type ErrorCode string

const (
	ErrCodeAccessDeniedException       ErrorCode = "AccessDeniedException"
	ErrCodeConflictException           ErrorCode = "ConflictException"
	ErrCodeInternalServiceError        ErrorCode = "InternalServiceError"
	ErrCodeInvalidNextTokenException   ErrorCode = "InvalidNextTokenException"
	ErrCodeInvalidRequestException     ErrorCode = "InvalidRequestException"
	ErrCodeResourceExistsException     ErrorCode = "ResourceExistsException"
	ErrCodeResourceNotFoundException   ErrorCode = "ResourceNotFoundException"
	ErrCodeServiceUnavailableException ErrorCode = "ServiceUnavailableException"
	ErrCodeThrottlingException         ErrorCode = "ThrottlingException"
)

var errorCodes = []ErrorCode{
	ErrCodeAccessDeniedException,
	ErrCodeConflictException,
	ErrCodeInternalServiceError,
	ErrCodeInvalidNextTokenException,
	ErrCodeInvalidRequestException,
	ErrCodeResourceExistsException,
	ErrCodeResourceNotFoundException,
	ErrCodeServiceUnavailableException,
	ErrCodeThrottlingException,
}

var errorRegistry = newErrorRegistry()

func newErrorRegistry() awsjson.ErrorRegistry {
	codes := make([]string, 0, len(errorCodes))
	for _, code := range errorCodes {
		codes = append(codes, string(code))
	}
	return awsjson.NewErrorRegistry(codes...)
}

func (e ErrorCode) String() string {
	return string(e)
}

func (e ErrorCode) IsValid() bool {
	_, ok := errorRegistry.Lookup(string(e))
	return ok
}

// ErrorCodeOf returns the Transfer Family error code carried by err.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	svcErr := pkgerrors.AsService(err)
	if svcErr == nil || svcErr.Service != ServiceName || !svcErr.Known() {
		return "", false
	}
	return ErrorCode(svcErr.Code), true
}

func IsErrorCode(err error, code ErrorCode) bool {
	got, ok := ErrorCodeOf(err)
	return ok && got == code
}

package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// ServiceError is returned when a service answered with an error response.
//
// Code holds the registered error code when the discriminator matched the
// service's registry; otherwise Code is empty and Known reports false. The raw
// discriminator is always preserved in Type.
type ServiceError struct {
	Service    string
	Code       string
	Type       string
	Message    string
	StatusCode int
	RequestID  string
}

// NewServiceError builds a typed service error for a registered code.
func NewServiceError(service, code, message string, status int, requestID string) *ServiceError {
	return &ServiceError{
		Service:    service,
		Code:       code,
		Type:       code,
		Message:    message,
		StatusCode: status,
		RequestID:  requestID,
	}
}

// NewUnknownServiceError builds the fallback error for unregistered discriminators.
func NewUnknownServiceError(service, discriminator, message string, status int, requestID string) *ServiceError {
	return &ServiceError{
		Service:    service,
		Type:       discriminator,
		Message:    message,
		StatusCode: status,
		RequestID:  requestID,
	}
}

// Known reports whether the discriminator matched a registered error code.
func (e *ServiceError) Known() bool {
	return e != nil && e.Code != ""
}

// Throttled reports whether the service rejected the call for rate reasons.
func (e *ServiceError) Throttled() bool {
	if e == nil {
		return false
	}
	return e.StatusCode == http.StatusTooManyRequests || e.Type == "ThrottlingException"
}

// ServerFault reports whether the failure is on the service side (5xx).
func (e *ServiceError) ServerFault() bool {
	return e != nil && e.StatusCode >= http.StatusInternalServerError
}

func (e *ServiceError) Error() string {
	if e == nil {
		return ""
	}
	kind := e.Type
	if kind == "" {
		kind = "UnknownError"
	}
	msg := fmt.Sprintf("%s: %s (status %d", e.Service, kind, e.StatusCode)
	if e.RequestID != "" {
		msg += ", request id " + e.RequestID
	}
	msg += ")"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// AsService extracts a *ServiceError from err.
func AsService(err error) *ServiceError {
	if err == nil {
		return nil
	}
	var typed *ServiceError
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

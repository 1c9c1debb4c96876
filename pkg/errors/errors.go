package errors

import (
	stdErrors "errors"
	"fmt"
)

// Code classifies client-side failures: anything that went wrong before a
// service produced an error response.
type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeCredentials Code = "CREDENTIALS_ERROR"
	CodeMarshal     Code = "MARSHAL_ERROR"
	CodeSigning     Code = "SIGNING_ERROR"
	CodeTransport   Code = "TRANSPORT_ERROR"
	CodeUnmarshal   Code = "UNMARSHAL_ERROR"
	CodeConfig      Code = "CONFIG_ERROR"
	CodeWaiter      Code = "WAITER_ERROR"
	CodeInternal    Code = "INTERNAL_ERROR"
)

type Metadata struct {
	Retryable     bool
	PublicMessage string
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:     false,
		PublicMessage: "request validation failed",
	},
	CodeCredentials: {
		Retryable:     false,
		PublicMessage: "unable to resolve credentials",
	},
	CodeMarshal: {
		Retryable:     false,
		PublicMessage: "unable to marshal request",
	},
	CodeSigning: {
		Retryable:     false,
		PublicMessage: "unable to sign request",
	},
	CodeTransport: {
		Retryable:     true,
		PublicMessage: "unable to reach service endpoint",
	},
	CodeUnmarshal: {
		Retryable:     false,
		PublicMessage: "unable to unmarshal response",
	},
	CodeConfig: {
		Retryable:     false,
		PublicMessage: "invalid client configuration",
	},
	CodeWaiter: {
		Retryable:     false,
		PublicMessage: "resource did not reach the desired state",
	},
	CodeInternal: {
		Retryable:     false,
		PublicMessage: "internal client error",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// Error is a client-side failure.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// Retryable reports whether the code is flagged retryable. The client never
// retries on its own; this is a hint for callers.
func (e *Error) Retryable() bool {
	return MetadataFor(e.Code()).Retryable
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

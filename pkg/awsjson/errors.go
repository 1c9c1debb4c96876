package awsjson

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

const (
	headerErrorType = "X-Amzn-Errortype"
	headerRequestID = "X-Amzn-Requestid"

	errorBodyReadLimit int64 = 64 * 1024
)

// ErrorRegistry maps a normalised error discriminator to a registered code.
type ErrorRegistry interface {
	Lookup(discriminator string) (string, bool)
}

type errorSet map[string]struct{}

// NewErrorRegistry builds an exact-match registry over codes.
func NewErrorRegistry(codes ...string) ErrorRegistry {
	set := make(errorSet, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func (s errorSet) Lookup(discriminator string) (string, bool) {
	if _, ok := s[discriminator]; ok {
		return discriminator, true
	}
	return "", false
}

type errorBody struct {
	Type         string `json:"__type"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

// NormalizeDiscriminator strips the namespace prefix ("aws.protocoltests#")
// and any trailing metadata (":http://...") from a raw error type.
func NormalizeDiscriminator(raw string) string {
	value := strings.TrimSpace(raw)
	if idx := strings.LastIndex(value, "#"); idx >= 0 {
		value = value[idx+1:]
	}
	if idx := strings.Index(value, ":"); idx >= 0 {
		value = value[:idx]
	}
	return value
}

// DecodeError turns a non-2xx response into a *errors.ServiceError. A
// discriminator the registry does not know yields the fallback error with
// Known() == false.
func DecodeError(resp *http.Response, registry ErrorRegistry, service string) error {
	if resp == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "nil error response")
	}
	requestID := resp.Header.Get(headerRequestID)

	var raw []byte
	if resp.Body != nil {
		data, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "read error response")
		}
		raw = bytes.TrimSpace(data)
	}

	var body errorBody
	parsed := len(raw) > 0 && json.Unmarshal(raw, &body) == nil

	// x-amzn-ErrorType wins, then __type, then code.
	discriminator := resp.Header.Get(headerErrorType)
	if discriminator == "" {
		discriminator = body.Type
	}
	if discriminator == "" {
		discriminator = body.Code
	}
	discriminator = NormalizeDiscriminator(discriminator)

	message := body.Message
	if message == "" {
		message = body.MessageUpper
	}
	if message == "" && !parsed && len(raw) > 0 {
		message = string(raw)
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	if registry != nil && discriminator != "" {
		if code, ok := registry.Lookup(discriminator); ok {
			return pkgerrors.NewServiceError(service, code, message, resp.StatusCode, requestID)
		}
	}
	return pkgerrors.NewUnknownServiceError(service, discriminator, message, resp.StatusCode, requestID)
}

// unknownErrorLabel is the metrics code for discriminators outside the
// service's registry. The raw value stays in ServiceError.Type and the log.
const unknownErrorLabel = "UnknownError"

func failureCode(err error) string {
	if svcErr := pkgerrors.AsService(err); svcErr != nil {
		if svcErr.Known() {
			return svcErr.Code
		}
		return unknownErrorLabel
	}
	if typed := pkgerrors.As(err); typed != nil {
		return string(typed.Code())
	}
	return string(pkgerrors.CodeInternal)
}

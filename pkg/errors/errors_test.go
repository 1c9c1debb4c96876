package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		publicMsg string
		retryable bool
	}{
		{code: CodeValidation, publicMsg: "request validation failed"},
		{code: CodeCredentials, publicMsg: "unable to resolve credentials"},
		{code: CodeMarshal, publicMsg: "unable to marshal request"},
		{code: CodeSigning, publicMsg: "unable to sign request"},
		{code: CodeTransport, publicMsg: "unable to reach service endpoint", retryable: true},
		{code: CodeUnmarshal, publicMsg: "unable to unmarshal response"},
		{code: CodeConfig, publicMsg: "invalid client configuration"},
		{code: CodeInternal, publicMsg: "internal client error"},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "internal client error" {
		t.Fatalf("expected internal metadata, got %+v", meta)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing applicationName")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing applicationName" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "applicationName"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeTransport, cause, "send request")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("Wrap did not preserve cause")
	}
	if !wrapped.Retryable() {
		t.Fatalf("transport errors should be flagged retryable")
	}
	if !strings.Contains(wrapped.Error(), "connection refused") {
		t.Fatalf("error string should include cause, got %q", wrapped.Error())
	}
}

func TestAsReturnsTypedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeSigning, "no region"))
	if got := As(err); got == nil || got.Code() != CodeSigning {
		t.Fatalf("As failed to return typed error")
	}
	if As(nil) != nil {
		t.Fatalf("As(nil) should return nil")
	}
}

func TestServiceErrorKnownAndFallback(t *testing.T) {
	known := NewServiceError("codedeploy", "ApplicationDoesNotExistException", "no such app", http.StatusBadRequest, "req-1")
	if !known.Known() {
		t.Fatalf("registered code should be known")
	}
	if known.Type != "ApplicationDoesNotExistException" {
		t.Fatalf("type should mirror code, got %q", known.Type)
	}

	unknown := NewUnknownServiceError("codedeploy", "SomethingNewException", "surprise", http.StatusBadRequest, "")
	if unknown.Known() {
		t.Fatalf("fallback error should not be known")
	}
	if unknown.Code != "" {
		t.Fatalf("fallback error should not carry a code, got %q", unknown.Code)
	}
	if !strings.Contains(unknown.Error(), "SomethingNewException") {
		t.Fatalf("fallback error should keep discriminator, got %q", unknown.Error())
	}
}

func TestServiceErrorClassification(t *testing.T) {
	throttled := NewServiceError("transfer", "ThrottlingException", "slow down", http.StatusBadRequest, "")
	if !throttled.Throttled() {
		t.Fatalf("ThrottlingException should be throttled")
	}
	fault := NewUnknownServiceError("transfer", "", "", http.StatusServiceUnavailable, "")
	if !fault.ServerFault() {
		t.Fatalf("5xx should be a server fault")
	}
	var nilErr *ServiceError
	if nilErr.Known() || nilErr.Throttled() || nilErr.ServerFault() {
		t.Fatalf("nil service error should report false everywhere")
	}
}

func TestAsServiceAndDump(t *testing.T) {
	se := NewServiceError("codedeploy", "DeploymentDoesNotExistException", "gone", http.StatusBadRequest, "req-9")
	err := fmt.Errorf("get deployment: %w", se)

	if got := AsService(err); got != se {
		t.Fatalf("AsService should unwrap to the service error")
	}
	if AsService(stdErrors.New("plain")) != nil {
		t.Fatalf("AsService on plain error should be nil")
	}

	d := Dump(err)
	if d.ServiceCode != "DeploymentDoesNotExistException" || d.RequestID != "req-9" || d.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected dump %+v", d)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected two chain entries, got %d", len(d.Chain))
	}
	if Dump(nil).TopMessage != "" {
		t.Fatalf("dump of nil should be empty")
	}
}

package awsjson

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/codedeploy-go/internal/fakeaws"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
	"github.com/angelmondragon/codedeploy-go/pkg/metrics"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

var testService = ServiceInfo{
	Name:           "codedeploy",
	EndpointPrefix: "codedeploy",
	TargetPrefix:   "CodeDeploy_20141006",
	APIVersion:     "2014-10-06",
}

type getThingInput struct {
	Name string `json:"name" validate:"required,min=1,max=10"`
}

type getThingOutput struct {
	Thing struct {
		Name string `json:"name"`
	} `json:"thing"`
}

func newTestClient(t *testing.T, srv *fakeaws.Server, opts ...Option) *Client {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	base := []Option{
		WithEndpoint(ts.URL),
		WithCredentialsProvider(credentials.NewStaticCredentials("AKIDCLIENT", "secret", "")),
	}
	client, err := New(Config{Service: testService, Errors: NewErrorRegistry("ThingNotFoundException")}, append(base, opts...)...)
	require.NoError(t, err)
	return client
}

func TestInvokeSignsAndDecodes(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(req fakeaws.Request) fakeaws.Response {
		var in getThingInput
		require.NoError(t, req.Decode(&in))
		return fakeaws.Respond(http.StatusOK, map[string]any{"thing": map[string]string{"name": in.Name}})
	})
	client := newTestClient(t, srv)

	var out getThingOutput
	err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: "demo"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "demo", out.Thing.Name)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "CodeDeploy_20141006.GetThing", last.Header.Get("X-Amz-Target"))
	assert.Equal(t, "application/x-amz-json-1.1", last.Header.Get("Content-Type"))
	assert.NotEmpty(t, last.Header.Get("Amz-Sdk-Invocation-Id"))
	assert.True(t, strings.HasPrefix(last.Header.Get("User-Agent"), "codedeploy-go/"))
	auth := last.Header.Get("Authorization")
	assert.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 Credential=AKIDCLIENT/"), auth)
	assert.Contains(t, auth, "/us-east-1/codedeploy/aws4_request")
	assert.JSONEq(t, `{"name":"demo"}`, string(last.Body))
}

func TestInvokePerCallCredentialsWin(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, nil)
	})
	client := newTestClient(t, srv)

	override := credentials.NewStaticCredentials("AKIDCALL", "other", "session")
	err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: "a"}, nil, WithCredentials(override))
	require.NoError(t, err)

	last, _ := srv.LastRequest()
	assert.Contains(t, last.Header.Get("Authorization"), "Credential=AKIDCALL/")
	assert.Equal(t, "session", last.Header.Get("X-Amz-Security-Token"))
}

func TestInvokeAnonymousSkipsSigning(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, nil)
	})
	client := newTestClient(t, srv, WithCredentialsProvider(credentials.AnonymousCredentials))

	require.NoError(t, client.Invoke(context.Background(), Operation{Name: "GetThing"}, nil, nil))
	last, _ := srv.LastRequest()
	assert.Empty(t, last.Header.Get("Authorization"))
	assert.Equal(t, "{}", string(last.Body))
}

func TestInvokeRegisteredServiceError(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusBadRequest, "ThingNotFoundException", "no such thing")
	})
	client := newTestClient(t, srv)

	err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: "x"}, nil)
	svcErr := pkgerrors.AsService(err)
	require.NotNil(t, svcErr)
	assert.True(t, svcErr.Known())
	assert.Equal(t, "ThingNotFoundException", svcErr.Code)
	assert.Equal(t, "no such thing", svcErr.Message)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "codedeploy", svcErr.Service)
	assert.NotEmpty(t, svcErr.RequestID)
}

func TestInvokeUnregisteredServiceErrorFallsBack(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusInternalServerError, "com.amazon.coral#SomethingOddException:http://internal", "odd")
	})
	client := newTestClient(t, srv)

	err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: "x"}, nil)
	svcErr := pkgerrors.AsService(err)
	require.NotNil(t, svcErr)
	assert.False(t, svcErr.Known())
	assert.Equal(t, "SomethingOddException", svcErr.Type)
	assert.Equal(t, "odd", svcErr.Message)
	assert.True(t, svcErr.ServerFault())
}

func TestDecodeErrorUsesHeaderDiscriminator(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header: http.Header{
			"X-Amzn-Errortype": []string{"ThingNotFoundException:http://internal.amazon.com/"},
			"X-Amzn-Requestid": []string{"req-1"},
		},
		Body: io.NopCloser(strings.NewReader(`{"Message":"upper case message"}`)),
	}
	err := DecodeError(resp, NewErrorRegistry("ThingNotFoundException"), "codedeploy")
	svcErr := pkgerrors.AsService(err)
	require.NotNil(t, svcErr)
	assert.Equal(t, "ThingNotFoundException", svcErr.Code)
	assert.Equal(t, "upper case message", svcErr.Message)
	assert.Equal(t, "req-1", svcErr.RequestID)
}

func TestDecodeErrorNonJSONBody(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadGateway,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("<html>bad gateway</html>")),
	}
	svcErr := pkgerrors.AsService(DecodeError(resp, NewErrorRegistry(), "transfer"))
	require.NotNil(t, svcErr)
	assert.False(t, svcErr.Known())
	assert.Equal(t, "<html>bad gateway</html>", svcErr.Message)
}

func TestNormalizeDiscriminator(t *testing.T) {
	cases := map[string]string{
		"ThrottlingException":                                  "ThrottlingException",
		"aws.protocoltests.restjson#FooError":                  "FooError",
		"FooError:http://internal.amazon.com/coral/com.amazon": "FooError",
		"  com.amazon#Bar:http://x  ":                          "Bar",
		"":                                                     "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeDiscriminator(raw), raw)
	}
}

func TestInvokeValidationRunsBeforeSend(t *testing.T) {
	calls := 0
	httpClient := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("should not be called")
	})}
	client, err := New(Config{Service: testService}, WithHTTPClient(httpClient), WithValidation(true),
		WithCredentialsProvider(credentials.AnonymousCredentials))
	require.NoError(t, err)

	err = client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: "this name is far too long"}, nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be at most 10", details["name"])
	assert.Zero(t, calls)
}

func TestInvokeValidationDisabledByDefault(t *testing.T) {
	httpClient := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: io.NopCloser(strings.NewReader(""))}, nil
	})}
	client, err := New(Config{Service: testService}, WithHTTPClient(httpClient),
		WithCredentialsProvider(credentials.AnonymousCredentials))
	require.NoError(t, err)
	require.NoError(t, client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{}, nil))
}

func TestInvokeTransportError(t *testing.T) {
	httpClient := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	client, err := New(Config{Service: testService}, WithHTTPClient(httpClient),
		WithCredentialsProvider(credentials.AnonymousCredentials))
	require.NoError(t, err)

	err = client.Invoke(context.Background(), Operation{Name: "GetThing"}, nil, nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeTransport, typed.Code())
	assert.True(t, typed.Retryable())
}

func TestInvokeCredentialsError(t *testing.T) {
	client, err := New(Config{Service: testService},
		WithCredentialsProvider(credentials.NewStaticCredentials("", "", "")))
	require.NoError(t, err)

	err = client.Invoke(context.Background(), Operation{Name: "GetThing"}, nil, nil)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeCredentials, typed.Code())
}

func TestInvokeUnmarshalError(t *testing.T) {
	httpClient := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: io.NopCloser(strings.NewReader("{not json"))}, nil
	})}
	client, err := New(Config{Service: testService}, WithHTTPClient(httpClient),
		WithCredentialsProvider(credentials.AnonymousCredentials))
	require.NoError(t, err)

	var out getThingOutput
	err = client.Invoke(context.Background(), Operation{Name: "GetThing"}, nil, &out)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnmarshal, typed.Code())
}

func TestInvokeRecordsMetadata(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Response{Status: http.StatusOK, Header: http.Header{"X-Amzn-Requestid": []string{"req-42"}}}
	})
	client := newTestClient(t, srv)

	var captured ResponseMetadata
	err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, nil, nil,
		WithInvocationID("inv-1"), CaptureMetadata(&captured))
	require.NoError(t, err)
	assert.Equal(t, "req-42", captured.RequestID)
	assert.Equal(t, "GetThing", captured.Operation)

	stored, ok, err := client.ResponseMetadata(context.Background(), "inv-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, captured, stored)

	last, _ := srv.LastRequest()
	assert.Equal(t, "inv-1", last.Header.Get("Amz-Sdk-Invocation-Id"))
}

func TestInvokeRecordsMetrics(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusBadRequest, "ThingNotFoundException", "missing")
	})
	reg := prometheus.NewRegistry()
	client := newTestClient(t, srv, WithMetrics(metrics.NewClientMetrics(reg)))

	_ = client.Invoke(context.Background(), Operation{Name: "GetThing"}, nil, nil)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range mfs {
		if mf.GetName() != "awsjson_request_failure_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" && label.GetValue() == "ThingNotFoundException" {
					found = metric.GetCounter().GetValue() == 1
				}
			}
		}
	}
	assert.True(t, found, "expected failure counter for ThingNotFoundException")
}

func TestNewRejectsIncompleteService(t *testing.T) {
	_, err := New(Config{Service: ServiceInfo{Name: "x"}})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConfig, typed.Code())
}

func TestNewDefaultsEndpointFromRegion(t *testing.T) {
	client, err := New(Config{Service: testService})
	require.NoError(t, err)
	assert.Equal(t, "https://codedeploy.us-east-1.amazonaws.com", client.Endpoint())

	client, err = New(Config{Service: testService}, WithRegion("cn-north-1"))
	require.NoError(t, err)
	assert.Equal(t, "https://codedeploy.cn-north-1.amazonaws.com.cn", client.Endpoint())
	assert.Equal(t, "cn-north-1", client.Region())
}

func TestInvokeUnknownErrorsShareOneMetricsCode(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(req fakeaws.Request) fakeaws.Response {
		var in getThingInput
		require.NoError(t, req.Decode(&in))
		return fakeaws.Fail(http.StatusBadRequest, "Surprise"+in.Name+"Exception", "odd")
	})
	reg := prometheus.NewRegistry()
	client := newTestClient(t, srv, WithMetrics(metrics.NewClientMetrics(reg)))

	for _, name := range []string{"A", "B", "C"} {
		err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: name}, nil)
		svcErr := pkgerrors.AsService(err)
		require.NotNil(t, svcErr)
		assert.Equal(t, "Surprise"+name+"Exception", svcErr.Type)
	}

	mfs, err := reg.Gather()
	require.NoError(t, err)
	codes := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "awsjson_request_failure_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" {
					codes[label.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}
	assert.Equal(t, map[string]float64{unknownErrorLabel: 3}, codes)
}

func TestDecodeErrorPrefersHeaderDiscriminator(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"X-Amzn-Errortype": []string{"ThingNotFoundException"}},
		Body:       io.NopCloser(strings.NewReader(`{"__type":"com.amazon#OtherException","message":"gone"}`)),
	}
	svcErr := pkgerrors.AsService(DecodeError(resp, NewErrorRegistry("ThingNotFoundException", "OtherException"), "codedeploy"))
	require.NotNil(t, svcErr)
	assert.Equal(t, "ThingNotFoundException", svcErr.Code)
	assert.Equal(t, "gone", svcErr.Message)

	resp = &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(`{"__type":"com.amazon#OtherException","code":"ThingNotFoundException"}`)),
	}
	svcErr = pkgerrors.AsService(DecodeError(resp, NewErrorRegistry("ThingNotFoundException", "OtherException"), "codedeploy"))
	require.NotNil(t, svcErr)
	assert.Equal(t, "OtherException", svcErr.Code)
}

func TestWithHeaderCannotOverrideProtocolHeaders(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation("CodeDeploy_20141006", "GetThing", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, nil)
	})
	client := newTestClient(t, srv)

	err := client.Invoke(context.Background(), Operation{Name: "GetThing"}, &getThingInput{Name: "a"}, nil,
		WithHeader("X-Amz-Target", "CodeDeploy_20141006.DeleteThing"),
		WithHeader("content-type", "text/plain"),
		WithHeader("X-Trace", "one"),
		WithHeader("X-Trace", "two"),
	)
	require.NoError(t, err)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, []string{"CodeDeploy_20141006.GetThing"}, last.Header.Values("X-Amz-Target"))
	assert.Equal(t, []string{"application/x-amz-json-1.1"}, last.Header.Values("Content-Type"))
	assert.Equal(t, []string{"two"}, last.Header.Values("X-Trace"))
}

func TestSharedCallOptionsDropsPerCallOptions(t *testing.T) {
	var meta ResponseMetadata
	creds := credentials.NewStaticCredentials("AKIDCALL", "secret", "")
	shared, capture := SharedCallOptions(
		WithCredentials(creds),
		WithHeader("X-Team", "a"),
		WithInvocationID("fixed"),
		CaptureMetadata(&meta),
		nil,
	)
	assert.Same(t, &meta, capture)

	var call callOptions
	for _, opt := range shared {
		opt(&call)
	}
	assert.Same(t, creds, call.credentials)
	assert.Equal(t, "a", call.headers.Get("X-Team"))
	assert.Empty(t, call.invocationID)
	assert.Nil(t, call.metadata)

	shared, capture = SharedCallOptions()
	assert.Empty(t, shared)
	assert.Nil(t, capture)
}

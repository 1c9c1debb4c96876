package awsjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
	"github.com/google/uuid"

	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
	"github.com/angelmondragon/codedeploy-go/pkg/logger"
	"github.com/angelmondragon/codedeploy-go/pkg/metrics"
)

const (
	// Version is reported in the User-Agent header.
	Version = "0.4.0"

	defaultTimeout = 30 * time.Second

	headerTarget       = "X-Amz-Target"
	headerInvocationID = "Amz-Sdk-Invocation-Id"
)

// Config is frozen into a Client by New.
type Config struct {
	Service  ServiceInfo
	Region   string
	Endpoint string
	// Credentials sign every call unless a call overrides them. Use
	// credentials.AnonymousCredentials to send unsigned requests.
	Credentials *credentials.Credentials
	HTTPClient  *http.Client
	Errors      ErrorRegistry
	Logger      *logger.Logger
	Metrics     *metrics.ClientMetrics
	Metadata    MetadataStore
	// Validate enables validate-tag checks before a request is sent.
	Validate  bool
	UserAgent string
}

// Option adjusts the Config passed to New.
type Option func(*Config)

func WithRegion(region string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(region); trimmed != "" {
			c.Region = trimmed
		}
	}
}

// WithEndpoint points the client at a custom endpoint such as a local fake.
func WithEndpoint(endpoint string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			c.Endpoint = trimmed
		}
	}
}

func WithCredentialsProvider(creds *credentials.Credentials) Option {
	return func(c *Config) {
		if creds != nil {
			c.Credentials = creds
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		if client != nil {
			c.HTTPClient = client
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Config) { c.Logger = log }
}

func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Config) { c.Metrics = m }
}

func WithMetadataStore(store MetadataStore) Option {
	return func(c *Config) {
		if store != nil {
			c.Metadata = store
		}
	}
}

func WithValidation(enabled bool) Option {
	return func(c *Config) { c.Validate = enabled }
}

func WithUserAgent(ua string) Option {
	return func(c *Config) {
		if trimmed := strings.TrimSpace(ua); trimmed != "" {
			c.UserAgent = trimmed
		}
	}
}

// Client executes JSON-protocol operations. Its configuration is immutable
// after New, so a Client may be shared between goroutines.
type Client struct {
	service     ServiceInfo
	region      string
	endpoint    string
	credentials *credentials.Credentials
	httpClient  *http.Client
	errors      ErrorRegistry
	logger      *logger.Logger
	metrics     *metrics.ClientMetrics
	metadata    MetadataStore
	validate    bool
	userAgent   string
}

// New validates cfg, fills in defaults and returns a ready client.
func New(cfg Config, opts ...Option) (*Client, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.Service.validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "invalid service info")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = DefaultRegion
	}
	endpoint := strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if endpoint == "" {
		endpoint = ResolveEndpoint(cfg.Service.EndpointPrefix, region)
	}
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, pkgerrors.New(pkgerrors.CodeConfig, fmt.Sprintf("invalid endpoint %q", endpoint))
	}

	creds := cfg.Credentials
	if creds == nil {
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvProvider{},
			&credentials.SharedCredentialsProvider{},
		})
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	metadata := cfg.Metadata
	if metadata == nil {
		metadata = NewMemoryMetadataStore(DefaultMetadataCapacity)
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("codedeploy-go/%s (%s; %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}

	return &Client{
		service:     cfg.Service,
		region:      region,
		endpoint:    endpoint,
		credentials: creds,
		httpClient:  httpClient,
		errors:      cfg.Errors,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		metadata:    metadata,
		validate:    cfg.Validate,
		userAgent:   userAgent,
	}, nil
}

func (c *Client) Region() string { return c.region }

func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) Service() ServiceInfo { return c.service }

// Operation describes one remote call.
type Operation struct {
	Name string
	// Method defaults to POST.
	Method string
	// Path defaults to "/".
	Path string
}

// CallOption adjusts a single Invoke.
type CallOption func(*callOptions)

type callOptions struct {
	credentials  *credentials.Credentials
	headers      http.Header
	invocationID string
	metadata     *ResponseMetadata
}

// WithCredentials signs this call with creds instead of the client's provider.
func WithCredentials(creds *credentials.Credentials) CallOption {
	return func(o *callOptions) { o.credentials = creds }
}

// WithHeader sets a header on this call. The protocol headers (Content-Type,
// X-Amz-Target, the invocation id and User-Agent) cannot be overridden.
func WithHeader(key, value string) CallOption {
	return func(o *callOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Set(key, value)
	}
}

// WithInvocationID fixes the invocation id instead of generating one.
func WithInvocationID(id string) CallOption {
	return func(o *callOptions) { o.invocationID = id }
}

// CaptureMetadata stores the response metadata of this call in dst.
func CaptureMetadata(dst *ResponseMetadata) CallOption {
	return func(o *callOptions) { o.metadata = dst }
}

// SharedCallOptions splits opts for calls that run concurrently. It keeps the
// options that are safe to repeat on every call (credentials and headers) and
// drops the per-call ones: each call generates its own invocation id, and the
// CaptureMetadata destination, if any, is returned for the caller to fill once.
func SharedCallOptions(opts ...CallOption) ([]CallOption, *ResponseMetadata) {
	var call callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&call)
		}
	}
	var shared []CallOption
	if call.credentials != nil {
		shared = append(shared, WithCredentials(call.credentials))
	}
	for key, values := range call.headers {
		for _, value := range values {
			shared = append(shared, WithHeader(key, value))
		}
	}
	return shared, call.metadata
}

// ResponseMetadata returns what was recorded for a past call.
func (c *Client) ResponseMetadata(ctx context.Context, invocationID string) (ResponseMetadata, bool, error) {
	return c.metadata.Get(ctx, invocationID)
}

// Invoke runs one request/response cycle: marshal in, sign, send, and decode
// either into out or into an error. It never retries.
func (c *Client) Invoke(ctx context.Context, op Operation, in, out any, opts ...CallOption) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeConfig, "client not configured")
	}
	call := callOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&call)
		}
	}
	if call.invocationID == "" {
		call.invocationID = uuid.NewString()
	}

	ctx = c.logger.WithOperation(ctx, c.service.Name, op.Name)
	ctx = c.logger.WithInvocationID(ctx, call.invocationID)

	start := time.Now()
	err := c.invoke(ctx, op, in, out, call)
	elapsed := time.Since(start)
	c.metrics.ObserveDuration(c.service.Name, op.Name, elapsed)
	if err != nil {
		c.metrics.IncFailure(c.service.Name, op.Name, failureCode(err))
		fields := map[string]any{"error": err, "duration_ms": elapsed.Milliseconds()}
		if svcErr := pkgerrors.AsService(err); svcErr != nil {
			fields["error_type"] = svcErr.Type
		}
		c.log(ctx, "error", op.Name, fields)
		return err
	}
	c.metrics.IncSuccess(c.service.Name, op.Name)
	c.log(ctx, "response", op.Name, map[string]any{"duration_ms": elapsed.Milliseconds()})
	return nil
}

func (c *Client) invoke(ctx context.Context, op Operation, in, out any, call callOptions) error {
	if c.validate {
		if err := ValidateRequest(in); err != nil {
			return err
		}
	}

	marshalStart := time.Now()
	payload, err := marshalPayload(in)
	c.metrics.ObserveMarshal(c.service.Name, op.Name, time.Since(marshalStart))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeMarshal, err, fmt.Sprintf("marshal %s request", op.Name))
	}

	req, err := c.newRequest(ctx, op, payload, call)
	if err != nil {
		return err
	}

	creds := c.credentials
	if call.credentials != nil {
		creds = call.credentials
	}
	if err := c.sign(ctx, op, req, payload, creds); err != nil {
		return err
	}

	c.log(ctx, "request", op.Name, map[string]any{"endpoint": c.endpoint, "bytes": len(payload)})
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("execute %s request", op.Name))
	}
	defer func() { _ = resp.Body.Close() }()

	c.recordMetadata(ctx, op, resp, call)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return DecodeError(resp, c.errors, c.service.Name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, fmt.Sprintf("read %s response", op.Name))
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnmarshal, err, fmt.Sprintf("decode %s response", op.Name))
	}
	return nil
}

func marshalPayload(in any) ([]byte, error) {
	if in == nil {
		return []byte("{}"), nil
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(payload, []byte("null")) {
		return []byte("{}"), nil
	}
	return payload, nil
}

func (c *Client) newRequest(ctx context.Context, op Operation, payload []byte, call callOptions) (*http.Request, error) {
	method := op.Method
	if method == "" {
		method = http.MethodPost
	}
	path := op.Path
	if path == "" {
		path = "/"
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("build %s request", op.Name))
	}
	for key, values := range call.headers {
		req.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	req.Header.Set("Content-Type", c.service.contentType())
	req.Header.Set(headerTarget, c.service.target(op.Name))
	req.Header.Set(headerInvocationID, call.invocationID)
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func (c *Client) sign(ctx context.Context, op Operation, req *http.Request, payload []byte, creds *credentials.Credentials) error {
	if creds == credentials.AnonymousCredentials {
		return nil
	}
	credStart := time.Now()
	value, err := creds.GetWithContext(ctx)
	c.metrics.ObserveCredentials(c.service.Name, op.Name, time.Since(credStart))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeCredentials, err, "resolve credentials")
	}
	signer := v4.NewSigner(credentials.NewStaticCredentialsFromCreds(value))
	if _, err := signer.Sign(req, bytes.NewReader(payload), c.service.signingName(), c.region, time.Now()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeSigning, err, fmt.Sprintf("sign %s request", op.Name))
	}
	return nil
}

func (c *Client) recordMetadata(ctx context.Context, op Operation, resp *http.Response, call callOptions) {
	meta := ResponseMetadata{
		InvocationID: call.invocationID,
		RequestID:    resp.Header.Get(headerRequestID),
		Service:      c.service.Name,
		Operation:    op.Name,
		StatusCode:   resp.StatusCode,
		ReceivedAt:   time.Now().UTC(),
	}
	if call.metadata != nil {
		*call.metadata = meta
	}
	if meta.RequestID != "" {
		ctx = c.logger.WithRequestID(ctx, meta.RequestID)
	}
	if err := c.metadata.Put(ctx, meta); err != nil {
		c.logger.Warn(c.logger.WithField(ctx, "error", err.Error()), "store response metadata failed")
	}
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c.logger == nil {
		return
	}
	logFields := map[string]any{
		"phase": phase,
	}
	for k, v := range fields {
		if k == "error" {
			continue
		}
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		err, _ := fields["error"].(error)
		c.logger.Error(ctx, fmt.Sprintf("%s %s failed", c.service.Name, op), err)
	default:
		c.logger.Debug(ctx, fmt.Sprintf("%s %s %s", c.service.Name, op, phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"secret", "token", "password", "authorization", "credential", "signature"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}

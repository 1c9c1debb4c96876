// Package fakeaws serves JSON-protocol operations from registered handlers so
// clients can be exercised without reaching AWS.
package fakeaws

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/angelmondragon/codedeploy-go/pkg/logger"
)

const (
	headerTarget    = "X-Amz-Target"
	headerRequestID = "X-Amzn-Requestid"
	contentType     = "application/x-amz-json-1.1"

	maxBodyBytes int64 = 1 << 20
)

// Request is a call received by the server.
type Request struct {
	Target    string
	Operation string
	Header    http.Header
	Body      []byte
}

// Decode unmarshals the request body into dst.
func (r Request) Decode(dst any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, dst)
}

// Response is what a Handler answers with.
type Response struct {
	Status int
	Body   any
	Header http.Header
}

// Handler answers one operation.
type Handler func(Request) Response

// Respond returns status with body encoded as JSON. A nil body sends "{}".
func Respond(status int, body any) Response {
	return Response{Status: status, Body: body}
}

// Fail returns an error response carrying the given discriminator.
func Fail(status int, errType, message string) Response {
	return Response{
		Status: status,
		Body: map[string]string{
			"__type":  errType,
			"message": message,
		},
	}
}

// Server routes POST / by X-Amz-Target.
type Server struct {
	mu       sync.Mutex
	handlers map[string]Handler
	requests []Request
	logger   *logger.Logger
	router   chi.Router
}

func New(logg *logger.Logger) *Server {
	s := &Server{
		handlers: make(map[string]Handler),
		logger:   logg,
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Post("/", s.dispatch)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.router = r
	return s
}

// Handle registers h for a full target such as "TransferService.ListServers".
func (s *Server) Handle(target string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[target] = h
}

// HandleOperation registers h for prefix.operation.
func (s *Server) HandleOperation(prefix, operation string, h Handler) {
	s.Handle(prefix+"."+operation, h)
}

// Mount serves h at pattern alongside the operation route, e.g. /metrics.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.router.Handle(pattern, h)
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.write(w, Fail(http.StatusBadRequest, "SerializationException", "unable to read body"))
		return
	}
	target := r.Header.Get(headerTarget)
	req := Request{
		Target:    target,
		Operation: operationName(target),
		Header:    r.Header.Clone(),
		Body:      body,
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	handler, ok := s.handlers[target]
	s.mu.Unlock()

	ctx := s.logger.WithField(r.Context(), "target", target)
	if !ok {
		s.logger.Warn(ctx, "no handler registered")
		s.write(w, Fail(http.StatusBadRequest, "UnknownOperationException", "unknown operation "+target))
		return
	}
	s.logger.Debug(ctx, "dispatching")
	s.write(w, handler(req))
}

func (s *Server) write(w http.ResponseWriter, resp Response) {
	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	if w.Header().Get(headerRequestID) == "" {
		w.Header().Set(headerRequestID, uuid.NewString())
	}
	w.Header().Set("Content-Type", contentType)
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	body := resp.Body
	if body == nil {
		body = struct{}{}
	}
	if raw, ok := body.(json.RawMessage); ok {
		_, _ = w.Write(raw)
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func operationName(target string) string {
	if idx := strings.LastIndex(target, "."); idx >= 0 {
		return target[idx+1:]
	}
	return target
}

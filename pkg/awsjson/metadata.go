package awsjson

import (
	"context"
	"sync"
	"time"
)

// DefaultMetadataCapacity bounds the in-memory metadata store.
const DefaultMetadataCapacity = 50

// ResponseMetadata describes one completed HTTP exchange.
type ResponseMetadata struct {
	InvocationID string    `json:"invocationId"`
	RequestID    string    `json:"requestId"`
	Service      string    `json:"service"`
	Operation    string    `json:"operation"`
	StatusCode   int       `json:"statusCode"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

// MetadataStore keeps response metadata keyed by invocation id.
type MetadataStore interface {
	Put(ctx context.Context, meta ResponseMetadata) error
	Get(ctx context.Context, invocationID string) (ResponseMetadata, bool, error)
}

// MemoryMetadataStore is a bounded store that evicts the oldest entry first.
// It is safe for concurrent use.
type MemoryMetadataStore struct {
	mu       sync.Mutex
	capacity int
	order    []string
	entries  map[string]ResponseMetadata
}

// NewMemoryMetadataStore returns a store holding at most capacity entries.
// A non-positive capacity falls back to DefaultMetadataCapacity.
func NewMemoryMetadataStore(capacity int) *MemoryMetadataStore {
	if capacity <= 0 {
		capacity = DefaultMetadataCapacity
	}
	return &MemoryMetadataStore{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		entries:  make(map[string]ResponseMetadata, capacity),
	}
}

func (s *MemoryMetadataStore) Put(_ context.Context, meta ResponseMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[meta.InvocationID]; exists {
		s.entries[meta.InvocationID] = meta
		return nil
	}
	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
	s.order = append(s.order, meta.InvocationID)
	s.entries[meta.InvocationID] = meta
	return nil
}

func (s *MemoryMetadataStore) Get(_ context.Context, invocationID string) (ResponseMetadata, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.entries[invocationID]
	return meta, ok, nil
}

// Len reports how many entries are held.
func (s *MemoryMetadataStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

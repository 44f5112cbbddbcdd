package services

import (
	"context"
	"errors"
	"sync"
)

// memStore is an in-memory StoreRepositoryInterface with optional write
// fault injection for the history eviction path.
type memStore struct {
	mu         sync.Mutex
	data       map[string]string
	failWrites int
	writes     int
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Read(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Write(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.failWrites > 0 {
		m.failWrites--
		return errors.New("store unavailable")
	}
	m.data[key] = value
	return nil
}

func (m *memStore) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *memStore) get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// stubAI returns a canned response, an error, or blocks until released.
type stubAI struct {
	mu       sync.Mutex
	response string
	err      error
	block    chan struct{}
	calls    int
}

func (s *stubAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubAI) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

package testutil

import (
	"context"
	"sync"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/model"
)

// MockSource is a scriptable service.Source for testing.
type MockSource struct {
	FetchFunc  func(ctx context.Context) ([]model.Record, error)
	Records    []model.Record
	FetchCalls int
	mu         sync.Mutex
}

// NewMockSource returns a source that serves records on every fetch.
func NewMockSource(records []model.Record) *MockSource {
	return &MockSource{Records: records}
}

// FetchAll implements service.Source.
func (m *MockSource) FetchAll(ctx context.Context) ([]model.Record, error) {
	m.mu.Lock()
	m.FetchCalls++
	fetch := m.FetchFunc
	records := m.Records
	m.mu.Unlock()

	if fetch != nil {
		return fetch(ctx)
	}
	if len(records) == 0 {
		return nil, common.ErrEmptyDataset
	}
	return records, nil
}

// SetError configures the mock to fail every fetch with err.
func (m *MockSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchFunc = func(context.Context) ([]model.Record, error) {
		return nil, err
	}
}

// Calls returns how many times FetchAll ran.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCalls
}

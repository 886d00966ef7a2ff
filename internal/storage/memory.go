package storage

import (
	"context"
	"sync"
)

// MemoryHistory is an in-memory HistoryStore holding the most recent
// maxEntries evaluations. Safe for concurrent use.
type MemoryHistory struct {
	mu         sync.Mutex
	entries    []Evaluation
	maxEntries int
}

// NewMemoryHistory creates an in-memory history store capped at maxEntries
// (a non-positive cap falls back to 1000).
func NewMemoryHistory(maxEntries int) *MemoryHistory {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &MemoryHistory{maxEntries: maxEntries}
}

// Save appends the evaluation, dropping the oldest entry when full.
func (m *MemoryHistory) Save(_ context.Context, ev Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, ev)
	if len(m.entries) > m.maxEntries {
		m.entries = m.entries[len(m.entries)-m.maxEntries:]
	}
	return nil
}

// Recent returns up to limit evaluations, newest first.
func (m *MemoryHistory) Recent(_ context.Context, limit int) ([]Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}

	out := make([]Evaluation, 0, limit)
	for i := len(m.entries) - 1; i >= len(m.entries)-limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryHistory) Close() error { return nil }

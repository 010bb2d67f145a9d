package storage

import (
	"encoding/json"
	"sync"

	"github.com/samber/oops"
)

// Memory keeps encoded tables in process memory. Values are stored as JSON
// so callers never share maps with the backend.
type Memory struct {
	tables map[string][]byte
	mu     sync.RWMutex
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{tables: make(map[string][]byte)}
}

func (m *Memory) Read(table string, v any) (bool, error) {
	m.mu.RLock()
	data, ok := m.tables[table]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, oops.With("table", table, "context", "failed to decode table").Wrap(err)
	}
	return true, nil
}

func (m *Memory) Write(table string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return oops.With("table", table, "context", "failed to encode table").Wrap(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = data
	return nil
}

func (m *Memory) Close() error {
	return nil
}

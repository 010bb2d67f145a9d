package storage

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/samber/oops"
)

// Flushable is a component holding state that must reach its backend.
type Flushable interface {
	Flush() error
}

// Flusher saves every registered component on demand (periodic tick and shutdown).
type Flusher struct {
	names      []string
	components map[string]Flushable
	mu         sync.Mutex
}

func NewFlusher() *Flusher {
	return &Flusher{components: make(map[string]Flushable)}
}

// Register adds a component under name; registering a name twice replaces it
func (f *Flusher) Register(name string, c Flushable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.components[name]; !ok {
		f.names = append(f.names, name)
	}
	f.components[name] = c
}

// FlushAll flushes components in registration order and keeps going past
// failures; the returned error joins all of them.
func (f *Flusher) FlushAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for _, name := range f.names {
		if err := f.components[name].Flush(); err != nil {
			slog.Error("Failed to flush state", "component", name, "error", err)
			errs = append(errs, oops.With("component", name).Wrap(err))
		}
	}
	return errors.Join(errs...)
}

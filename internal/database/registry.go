package database

import (
	"context"
	"sync"
)

// Registry hands out shared Database handles keyed by connection URL. Two
// memories opened on the same backing file must share one handle: SQLite
// serializes writers at the engine level, and a second independent pool on
// the same file would only add lock contention. The registry makes that
// sharing an explicit object with a lifecycle instead of package-level
// state: construct one at startup, Close it at shutdown.
type Registry struct {
	mu      sync.Mutex
	handles map[string]Database
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]Database)}
}

// Open returns the shared Database for url, dialing it on first use.
// Subsequent calls with the same url return the same handle.
func (r *Registry) Open(ctx context.Context, url string) (Database, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.handles[url]; ok {
		return db, nil
	}

	db, err := NewDatabase(ctx, url)
	if err != nil {
		return Database{}, err
	}
	r.handles[url] = db
	return db, nil
}

// Close closes every handle the registry opened. The registry is reusable
// afterwards; handles are re-dialed on demand.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for url, db := range r.handles {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.handles, url)
	}
	return firstErr
}

// Len returns the number of open handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

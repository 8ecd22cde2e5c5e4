// Package store owns the in-memory product collection for a session.
// The collection is replace-only: a reload builds a complete new snapshot
// and swaps it in atomically, so readers never observe a partial update
// and no locks are needed on the read path.
package store

import (
	"sync/atomic"
	"time"

	"github.com/achadinhos/catalog-service/internal/app/catalog/domain"
)

// Snapshot is one immutable load generation. Err is the terminal load
// failure message when the collection is the empty-state result of a
// failed database load; Sample marks the built-in fallback dataset.
type Snapshot struct {
	Products   []domain.Product
	Generation string
	Source     string
	LoadedAt   time.Time
	Sample     bool
	Err        string
}

// Count returns the collection size.
func (s *Snapshot) Count() int {
	return len(s.Products)
}

// Failed reports whether this generation is a terminal empty state.
func (s *Snapshot) Failed() bool {
	return s.Err != ""
}

// FindByID returns the product with the given id, or nil.
func (s *Snapshot) FindByID(id string) *domain.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// Store holds the current snapshot. Constructed once in main and passed
// to every consumer explicitly; there is no package-level collection.
type Store struct {
	cur atomic.Pointer[Snapshot]
}

// NewStore creates a Store holding an empty pre-load snapshot.
func NewStore() *Store {
	s := &Store{}
	s.cur.Store(&Snapshot{Products: []domain.Product{}})
	return s
}

// Replace swaps in a new generation wholesale. Merging is intentionally
// not supported.
func (s *Store) Replace(snap *Snapshot) {
	if snap.Products == nil {
		snap.Products = []domain.Product{}
	}
	s.cur.Store(snap)
}

// Snapshot returns the current generation; never nil.
func (s *Store) Snapshot() *Snapshot {
	return s.cur.Load()
}

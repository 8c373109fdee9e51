package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/masthead/internal/domain"
)

// Counts reports the size of each registry sequence.
type Counts struct {
	Writers       int
	Publications  int
	Contributions int
}

// Registry is the in-memory, append-only index of every writer,
// publication, and contribution built against it.
//
// Appends are serialized by a single mutex; reads copy the sequence under the
// lock so callers never iterate a slice that is still being extended.
type Registry struct {
	mu            sync.RWMutex
	writers       []*domain.Writer
	publications  []*domain.Publication
	contributions []*domain.Contribution
	ids           map[uuid.UUID]struct{}
}

var _ domain.Catalog = (*Registry)(nil)

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[uuid.UUID]struct{}),
	}
}

// RegisterWriter appends w. It fails if w is nil or already registered.
func (r *Registry) RegisterWriter(w *domain.Writer) error {
	if w == nil {
		return NewStoreError("writer", "register", "writer cannot be nil", ErrInvalidEntity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.claim("writer", w.ID(), ErrWriterExists); err != nil {
		return err
	}
	r.writers = append(r.writers, w)
	return nil
}

// RegisterPublication appends p. It fails if p is nil or already registered.
func (r *Registry) RegisterPublication(p *domain.Publication) error {
	if p == nil {
		return NewStoreError("publication", "register", "publication cannot be nil", ErrInvalidEntity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.claim("publication", p.ID(), ErrPublicationExists); err != nil {
		return err
	}
	r.publications = append(r.publications, p)
	return nil
}

// RegisterContribution appends c. It fails if c is nil or already registered.
func (r *Registry) RegisterContribution(c *domain.Contribution) error {
	if c == nil {
		return NewStoreError("contribution", "register", "contribution cannot be nil", ErrInvalidEntity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.claim("contribution", c.ID(), ErrContributionExists); err != nil {
		return err
	}
	r.contributions = append(r.contributions, c)
	return nil
}

// claim records id as taken. Callers must hold r.mu for writing.
func (r *Registry) claim(entity string, id uuid.UUID, exists error) error {
	if id == uuid.Nil {
		return NewStoreError(entity, "register", "entity has no ID", ErrInvalidEntity)
	}
	if _, ok := r.ids[id]; ok {
		return NewStoreError(entity, "register", "already registered", exists)
	}
	r.ids[id] = struct{}{}
	return nil
}

// Writers returns a snapshot of every registered writer in insertion order.
func (r *Registry) Writers() []*domain.Writer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.writers)
}

// Publications returns a snapshot of every registered publication in insertion order.
func (r *Registry) Publications() []*domain.Publication {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.publications)
}

// Contributions returns a snapshot of every registered contribution in insertion order.
func (r *Registry) Contributions() []*domain.Contribution {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.contributions)
}

// Len returns the number of entries in each sequence.
func (r *Registry) Len() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Counts{
		Writers:       len(r.writers),
		Publications:  len(r.publications),
		Contributions: len(r.contributions),
	}
}

func snapshot[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

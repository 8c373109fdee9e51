package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Writer-specific validation errors
var (
	// ErrWriterNameEmpty is returned when a writer's name is empty.
	ErrWriterNameEmpty = errors.New("writer name cannot be empty")

	// ErrInvalidWriter is returned when a writer reference is nil or was not
	// built by NewWriter.
	ErrInvalidWriter = errors.New("writer must be a registered writer")
)

// Writer is a named party that contributes to publications.
// The name is fixed for the writer's lifetime.
type Writer struct {
	id      uuid.UUID
	name    string
	catalog Catalog
}

// NewWriter creates a new Writer with the given name and registers it with
// the catalog. Nothing is registered if validation fails.
func NewWriter(catalog Catalog, name string) (*Writer, error) {
	if catalog == nil {
		return nil, NewValidationError("writer", "catalog", "catalog is required", ErrNilCatalog)
	}

	if err := checkField("writer", "name", name, writerNameTag,
		"name cannot be empty", ErrWriterNameEmpty); err != nil {
		return nil, err
	}

	w := &Writer{
		id:      uuid.New(),
		name:    name,
		catalog: catalog,
	}

	if err := catalog.RegisterWriter(w); err != nil {
		return nil, err
	}

	return w, nil
}

// ID returns the writer's unique ID.
func (w *Writer) ID() uuid.UUID {
	return w.id
}

// Name returns the writer's name.
func (w *Writer) Name() string {
	return w.name
}

// SetName always fails: a writer's name can only be set through NewWriter.
func (w *Writer) SetName(string) error {
	return &ImmutableFieldError{Entity: "writer", Field: "name"}
}

// Contributions returns every contribution in the catalog currently
// attributed to this writer, in registration order.
func (w *Writer) Contributions() []*Contribution {
	if w == nil || w.catalog == nil {
		return nil
	}

	var out []*Contribution
	for _, c := range w.catalog.Contributions() {
		if c.Writer() == w {
			out = append(out, c)
		}
	}
	return out
}

// Publications returns the distinct publications this writer has contributed to.
func (w *Writer) Publications() []*Publication {
	contributions := w.Contributions()
	pubs := make([]*Publication, 0, len(contributions))
	for _, c := range contributions {
		pubs = append(pubs, c.Publication())
	}
	return distinct(pubs)
}

// AddContribution creates and registers a contribution by this writer to p.
// It validates exactly as NewContribution does.
func (w *Writer) AddContribution(p *Publication, title string) (*Contribution, error) {
	if !w.valid() {
		return nil, NewValidationError("contribution", "writer", "writer must be a registered writer", ErrInvalidWriter)
	}
	return NewContribution(w.catalog, w, p, title)
}

// ContributionCount returns how many of this writer's contributions went to p.
func (w *Writer) ContributionCount(p *Publication) int {
	n := 0
	for _, c := range w.Contributions() {
		if c.Publication() == p {
			n++
		}
	}
	return n
}

// TopicAreas returns the distinct categories of the publications this writer
// has contributed to. The second result is false when the writer has no
// contributions at all.
func (w *Writer) TopicAreas() ([]string, bool) {
	pubs := w.Publications()
	if len(pubs) == 0 {
		return nil, false
	}

	categories := make([]string, 0, len(pubs))
	for _, p := range pubs {
		categories = append(categories, p.Category())
	}
	return distinct(categories), true
}

// String implements fmt.Stringer.
func (w *Writer) String() string {
	if w == nil {
		return "Writer(<nil>)"
	}
	return fmt.Sprintf("Writer(%q)", w.name)
}

func (w *Writer) valid() bool {
	return w != nil && w.id != uuid.Nil && w.catalog != nil
}

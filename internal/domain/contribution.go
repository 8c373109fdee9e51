package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Contribution-specific validation errors
var (
	// ErrContributionTitleLength is returned when a contribution's title is
	// shorter than 5 or longer than 50 characters.
	ErrContributionTitleLength = errors.New("contribution title must be between 5 and 50 characters")
)

// Contribution joins one Writer to one Publication under a title.
// The title is fixed; the writer and publication may be reassigned.
type Contribution struct {
	id          uuid.UUID
	writer      *Writer
	publication *Publication
	title       string
	catalog     Catalog
}

// NewContribution creates a new Contribution and registers it with the
// catalog. The writer and publication must both belong to that catalog.
// Nothing is registered if validation fails.
func NewContribution(catalog Catalog, w *Writer, p *Publication, title string) (*Contribution, error) {
	if catalog == nil {
		return nil, NewValidationError("contribution", "catalog", "catalog is required", ErrNilCatalog)
	}

	if err := validateContributionWriter(catalog, w); err != nil {
		return nil, err
	}

	if err := validateContributionPublication(catalog, p); err != nil {
		return nil, err
	}

	if err := checkField("contribution", "title", title, contributionTitleTag,
		"title must be between 5 and 50 characters", ErrContributionTitleLength); err != nil {
		return nil, err
	}

	c := &Contribution{
		id:          uuid.New(),
		writer:      w,
		publication: p,
		title:       title,
		catalog:     catalog,
	}

	if err := catalog.RegisterContribution(c); err != nil {
		return nil, err
	}

	return c, nil
}

func validateContributionWriter(catalog Catalog, w *Writer) error {
	if !w.valid() {
		return NewValidationError("contribution", "writer", "writer must be a registered writer", ErrInvalidWriter)
	}
	if w.catalog != catalog {
		return NewValidationError("contribution", "writer", "writer belongs to another catalog", ErrCatalogMismatch)
	}
	return nil
}

func validateContributionPublication(catalog Catalog, p *Publication) error {
	if !p.valid() {
		return NewValidationError("contribution", "publication",
			"publication must be a registered publication", ErrInvalidPublication)
	}
	if p.catalog != catalog {
		return NewValidationError("contribution", "publication",
			"publication belongs to another catalog", ErrCatalogMismatch)
	}
	return nil
}

// ID returns the contribution's unique ID.
func (c *Contribution) ID() uuid.UUID {
	return c.id
}

// Title returns the contribution's title.
func (c *Contribution) Title() string {
	return c.title
}

// SetTitle always fails: a contribution's title is fixed at creation.
func (c *Contribution) SetTitle(string) error {
	return &ImmutableFieldError{Entity: "contribution", Field: "title"}
}

// Writer returns the writer the contribution is attributed to.
func (c *Contribution) Writer() *Writer {
	return c.writer
}

// SetWriter reattributes the contribution to w, which must belong to the
// contribution's catalog.
func (c *Contribution) SetWriter(w *Writer) error {
	if err := validateContributionWriter(c.catalog, w); err != nil {
		return err
	}
	c.writer = w
	return nil
}

// Publication returns the publication the contribution appears in.
func (c *Contribution) Publication() *Publication {
	return c.publication
}

// SetPublication moves the contribution to p, which must belong to the
// contribution's catalog.
func (c *Contribution) SetPublication(p *Publication) error {
	if err := validateContributionPublication(c.catalog, p); err != nil {
		return err
	}
	c.publication = p
	return nil
}

// String implements fmt.Stringer.
func (c *Contribution) String() string {
	if c == nil {
		return "Contribution(<nil>)"
	}
	return fmt.Sprintf("Contribution(%q by %s in %s)", c.title, c.writer, c.publication)
}

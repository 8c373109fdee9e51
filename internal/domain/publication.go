package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Publication-specific validation errors
var (
	// ErrPublicationNameLength is returned when a publication's name is
	// shorter than 2 or longer than 16 characters.
	ErrPublicationNameLength = errors.New("publication name must be between 2 and 16 characters")

	// ErrPublicationCategoryEmpty is returned when a publication's category is empty.
	ErrPublicationCategoryEmpty = errors.New("publication category cannot be empty")

	// ErrInvalidPublication is returned when a publication reference is nil
	// or was not built by NewPublication.
	ErrInvalidPublication = errors.New("publication must be a registered publication")
)

// FrequentContributorThreshold is the number of contributions a writer must
// exceed to count as a frequent contributor of a publication.
const FrequentContributorThreshold = 2

// Publication is a named, categorized venue writers contribute to.
// Name and category may change, but always hold valid values.
type Publication struct {
	id       uuid.UUID
	name     string
	category string
	catalog  Catalog
}

// NewPublication creates a new Publication and registers it with the catalog.
// Both fields are validated before anything is assigned; when both are
// invalid the returned error joins both failures.
func NewPublication(catalog Catalog, name, category string) (*Publication, error) {
	if catalog == nil {
		return nil, NewValidationError("publication", "catalog", "catalog is required", ErrNilCatalog)
	}

	if err := joinErrors(validatePublicationName(name), validatePublicationCategory(category)); err != nil {
		return nil, err
	}

	p := &Publication{
		id:       uuid.New(),
		name:     name,
		category: category,
		catalog:  catalog,
	}

	if err := catalog.RegisterPublication(p); err != nil {
		return nil, err
	}

	return p, nil
}

func validatePublicationName(name string) error {
	return checkField("publication", "name", name, publicationNameTag,
		"name must be between 2 and 16 characters", ErrPublicationNameLength)
}

func validatePublicationCategory(category string) error {
	return checkField("publication", "category", category, publicationCategoryTag,
		"category cannot be empty", ErrPublicationCategoryEmpty)
}

// ID returns the publication's unique ID.
func (p *Publication) ID() uuid.UUID {
	return p.id
}

// Name returns the publication's name.
func (p *Publication) Name() string {
	return p.name
}

// SetName replaces the name. On error the previous name is kept.
func (p *Publication) SetName(name string) error {
	if err := validatePublicationName(name); err != nil {
		return err
	}
	p.name = name
	return nil
}

// Category returns the publication's category.
func (p *Publication) Category() string {
	return p.category
}

// SetCategory replaces the category. On error the previous category is kept.
func (p *Publication) SetCategory(category string) error {
	if err := validatePublicationCategory(category); err != nil {
		return err
	}
	p.category = category
	return nil
}

// Contributions returns every contribution in the catalog currently placed
// in this publication, in registration order.
func (p *Publication) Contributions() []*Contribution {
	if p == nil || p.catalog == nil {
		return nil
	}

	var out []*Contribution
	for _, c := range p.catalog.Contributions() {
		if c.Publication() == p {
			out = append(out, c)
		}
	}
	return out
}

// Contributors returns the distinct writers of this publication's contributions.
func (p *Publication) Contributors() []*Writer {
	contributions := p.Contributions()
	writers := make([]*Writer, 0, len(contributions))
	for _, c := range contributions {
		writers = append(writers, c.Writer())
	}
	return distinct(writers)
}

// ContributionTitles returns the titles of this publication's contributions.
// The second result is false when there are none.
func (p *Publication) ContributionTitles() ([]string, bool) {
	contributions := p.Contributions()
	if len(contributions) == 0 {
		return nil, false
	}

	titles := make([]string, 0, len(contributions))
	for _, c := range contributions {
		titles = append(titles, c.Title())
	}
	return titles, true
}

// FrequentContributors returns the writers with more than
// FrequentContributorThreshold contributions to this publication.
// The second result is false when no writer qualifies.
func (p *Publication) FrequentContributors() ([]*Writer, bool) {
	return p.FrequentContributorsAbove(FrequentContributorThreshold)
}

// FrequentContributorsAbove returns the writers with strictly more than
// threshold contributions to this publication, in first-contribution order.
// The second result is false when no writer qualifies.
func (p *Publication) FrequentContributorsAbove(threshold int) ([]*Writer, bool) {
	counts := make(map[*Writer]int)
	var order []*Writer
	for _, c := range p.Contributions() {
		w := c.Writer()
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}

	var frequent []*Writer
	for _, w := range order {
		if counts[w] > threshold {
			frequent = append(frequent, w)
		}
	}

	if len(frequent) == 0 {
		return nil, false
	}
	return frequent, true
}

// TopPublisher returns the publication with the most contributions in the
// catalog. Ties go to the publication whose first contribution was
// registered earliest. The second result is false when the catalog holds no
// contributions.
func TopPublisher(catalog Catalog) (*Publication, bool) {
	if catalog == nil {
		return nil, false
	}

	counts := make(map[*Publication]int)
	var order []*Publication
	for _, c := range catalog.Contributions() {
		p := c.Publication()
		if _, ok := counts[p]; !ok {
			order = append(order, p)
		}
		counts[p]++
	}

	var top *Publication
	best := 0
	for _, p := range order {
		if counts[p] > best {
			top, best = p, counts[p]
		}
	}

	return top, top != nil
}

// String implements fmt.Stringer.
func (p *Publication) String() string {
	if p == nil {
		return "Publication(<nil>)"
	}
	return fmt.Sprintf("Publication(%q, %q)", p.name, p.category)
}

func (p *Publication) valid() bool {
	return p != nil && p.id != uuid.Nil && p.catalog != nil
}

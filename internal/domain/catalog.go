package domain

// Catalog is the index every entity registers with and reads back from.
// Entities keep a reference to the Catalog they were built against, and all
// relationship queries scan it.
//
// Implementations must be comparable (typically a pointer type), since
// entities compare catalogs to reject cross-catalog joins.
type Catalog interface {
	// RegisterWriter appends a successfully constructed writer.
	RegisterWriter(w *Writer) error

	// RegisterPublication appends a successfully constructed publication.
	RegisterPublication(p *Publication) error

	// RegisterContribution appends a successfully constructed contribution.
	RegisterContribution(c *Contribution) error

	// Writers returns every registered writer in insertion order.
	Writers() []*Writer

	// Publications returns every registered publication in insertion order.
	Publications() []*Publication

	// Contributions returns every registered contribution in insertion order.
	Contributions() []*Contribution
}

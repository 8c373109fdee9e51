package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/masthead/internal/domain"
)

// CatalogService provides catalog-related operations
type CatalogService interface {
	// CreateWriter creates and registers a new writer
	CreateWriter(ctx context.Context, name string) (*domain.Writer, error)

	// CreatePublication creates and registers a new publication
	CreatePublication(ctx context.Context, name, category string) (*domain.Publication, error)

	// Contribute records a contribution by w to p
	Contribute(
		ctx context.Context,
		w *domain.Writer,
		p *domain.Publication,
		title string,
	) (*domain.Contribution, error)

	// RenamePublication changes a publication's name
	RenamePublication(ctx context.Context, p *domain.Publication, name string) error

	// RecategorizePublication changes a publication's category
	RecategorizePublication(ctx context.Context, p *domain.Publication, category string) error

	// FrequentContributors returns the writers above the configured threshold for p
	FrequentContributors(ctx context.Context, p *domain.Publication) ([]*domain.Writer, bool)

	// TopPublisher returns the publication with the most contributions
	TopPublisher(ctx context.Context) (*domain.Publication, bool)

	// Report summarizes the whole catalog
	Report(ctx context.Context) Report
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	catalog   domain.Catalog
	threshold int
	logger    *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// threshold is the contribution count a writer must exceed to be reported as
// a frequent contributor. It returns an error if catalog is nil or threshold
// is negative.
func NewCatalogService(
	catalog domain.Catalog,
	threshold int,
	logger *slog.Logger,
) (CatalogService, error) {
	if catalog == nil {
		return nil, &CatalogServiceError{
			Operation: "create_service",
			Message:   "catalog cannot be nil",
			Err:       ErrNilCatalog,
		}
	}
	if threshold < 0 {
		return nil, &CatalogServiceError{
			Operation: "create_service",
			Message:   "threshold cannot be negative",
			Err:       ErrInvalidThreshold,
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		catalog:   catalog,
		threshold: threshold,
		logger:    logger.With("component", "catalog_service"),
	}, nil
}

// CreateWriter creates and registers a new writer
func (s *catalogServiceImpl) CreateWriter(ctx context.Context, name string) (*domain.Writer, error) {
	w, err := domain.NewWriter(s.catalog, name)
	if err != nil {
		s.logFailure(ctx, "failed to create writer", err, "name", name)
		return nil, NewCatalogServiceError("create_writer", "failed to create writer", err)
	}

	s.logger.InfoContext(ctx, "writer created",
		"writer_id", w.ID().String(),
		"name", w.Name())
	return w, nil
}

// CreatePublication creates and registers a new publication
func (s *catalogServiceImpl) CreatePublication(
	ctx context.Context,
	name, category string,
) (*domain.Publication, error) {
	p, err := domain.NewPublication(s.catalog, name, category)
	if err != nil {
		s.logFailure(ctx, "failed to create publication", err,
			"name", name,
			"category", category)
		return nil, NewCatalogServiceError("create_publication", "failed to create publication", err)
	}

	s.logger.InfoContext(ctx, "publication created",
		"publication_id", p.ID().String(),
		"name", p.Name(),
		"category", p.Category())
	return p, nil
}

// Contribute records a contribution by w to p
func (s *catalogServiceImpl) Contribute(
	ctx context.Context,
	w *domain.Writer,
	p *domain.Publication,
	title string,
) (*domain.Contribution, error) {
	c, err := domain.NewContribution(s.catalog, w, p, title)
	if err != nil {
		s.logFailure(ctx, "failed to create contribution", err,
			"writer", w.String(),
			"publication", p.String(),
			"title", title)
		return nil, NewCatalogServiceError("contribute", "failed to create contribution", err)
	}

	s.logger.InfoContext(ctx, "contribution created",
		"contribution_id", c.ID().String(),
		"writer_id", w.ID().String(),
		"publication_id", p.ID().String(),
		"title", c.Title())
	return c, nil
}

// RenamePublication changes a publication's name
func (s *catalogServiceImpl) RenamePublication(ctx context.Context, p *domain.Publication, name string) error {
	if p == nil {
		return s.nilPublication(ctx, "rename_publication")
	}

	previous := p.Name()
	if err := p.SetName(name); err != nil {
		s.logFailure(ctx, "failed to rename publication", err,
			"publication_id", p.ID().String(),
			"name", name)
		return NewCatalogServiceError("rename_publication", "failed to rename publication", err)
	}

	s.logger.InfoContext(ctx, "publication renamed",
		"publication_id", p.ID().String(),
		"previous_name", previous,
		"name", name)
	return nil
}

// RecategorizePublication changes a publication's category
func (s *catalogServiceImpl) RecategorizePublication(
	ctx context.Context,
	p *domain.Publication,
	category string,
) error {
	if p == nil {
		return s.nilPublication(ctx, "recategorize_publication")
	}

	previous := p.Category()
	if err := p.SetCategory(category); err != nil {
		s.logFailure(ctx, "failed to recategorize publication", err,
			"publication_id", p.ID().String(),
			"category", category)
		return NewCatalogServiceError("recategorize_publication", "failed to recategorize publication", err)
	}

	s.logger.InfoContext(ctx, "publication recategorized",
		"publication_id", p.ID().String(),
		"previous_category", previous,
		"category", category)
	return nil
}

// FrequentContributors returns the writers above the configured threshold for p
func (s *catalogServiceImpl) FrequentContributors(
	ctx context.Context,
	p *domain.Publication,
) ([]*domain.Writer, bool) {
	writers, ok := p.FrequentContributorsAbove(s.threshold)

	s.logger.DebugContext(ctx, "frequent contributors computed",
		"publication", p.String(),
		"threshold", s.threshold,
		"count", len(writers))
	return writers, ok
}

// TopPublisher returns the publication with the most contributions
func (s *catalogServiceImpl) TopPublisher(ctx context.Context) (*domain.Publication, bool) {
	p, ok := domain.TopPublisher(s.catalog)
	if !ok {
		s.logger.DebugContext(ctx, "no contributions registered, no top publisher")
		return nil, false
	}

	s.logger.DebugContext(ctx, "top publisher computed",
		"publication_id", p.ID().String(),
		"name", p.Name())
	return p, true
}

// logFailure logs validation problems at warn level and anything else at error level.
func (s *catalogServiceImpl) logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err)
	if domain.IsValidationError(err) || domain.IsImmutableFieldError(err) {
		s.logger.WarnContext(ctx, msg, attrs...)
		return
	}
	s.logger.ErrorContext(ctx, msg, attrs...)
}

func (s *catalogServiceImpl) nilPublication(ctx context.Context, operation string) error {
	err := domain.NewValidationError("publication", "publication",
		"publication must be a registered publication", domain.ErrInvalidPublication)
	s.logFailure(ctx, "publication is required", err, "operation", operation)
	return err
}

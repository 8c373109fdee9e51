package main

import (
	"context"

	"github.com/phrazzld/masthead/internal/domain"
	"github.com/phrazzld/masthead/internal/service"
)

// sampleContribution is one entry of the built-in sample catalog.
type sampleContribution struct {
	writer      string
	publication string
	title       string
}

var samplePublications = []struct {
	name     string
	category string
}{
	{name: "Byte Weekly", category: "Tech"},
	{name: "Circuit Digest", category: "Tech"},
	{name: "Field Notes", category: "Nature"},
}

var sampleWriters = []string{"Ada Reyes", "Miles Okafor", "Quiet Contributor"}

var sampleContributions = []sampleContribution{
	{writer: "Ada Reyes", publication: "Byte Weekly", title: "Compilers for Everyone"},
	{writer: "Ada Reyes", publication: "Byte Weekly", title: "The Quiet Cost of Caching"},
	{writer: "Ada Reyes", publication: "Byte Weekly", title: "Reading Stack Traces"},
	{writer: "Ada Reyes", publication: "Circuit Digest", title: "Soldering at Home"},
	{writer: "Miles Okafor", publication: "Field Notes", title: "Birdsong in the City"},
	{writer: "Miles Okafor", publication: "Byte Weekly", title: "Sensors in the Wild"},
}

// seedSample fills the catalog with a small fixed set of entities.
func seedSample(ctx context.Context, svc service.CatalogService) error {
	writers := make(map[string]*domain.Writer, len(sampleWriters))
	for _, name := range sampleWriters {
		w, err := svc.CreateWriter(ctx, name)
		if err != nil {
			return err
		}
		writers[name] = w
	}

	pubs := make(map[string]*domain.Publication, len(samplePublications))
	for _, sp := range samplePublications {
		p, err := svc.CreatePublication(ctx, sp.name, sp.category)
		if err != nil {
			return err
		}
		pubs[sp.name] = p
	}

	for _, sc := range sampleContributions {
		if _, err := svc.Contribute(ctx, writers[sc.writer], pubs[sc.publication], sc.title); err != nil {
			return err
		}
	}

	return nil
}

package service

import (
	"context"

	"github.com/phrazzld/masthead/internal/domain"
)

// WriterSummary describes one writer in a Report.
type WriterSummary struct {
	Name          string   `json:"name"`
	Contributions int      `json:"contributions"`
	TopicAreas    []string `json:"topic_areas,omitempty"`
}

// PublicationSummary describes one publication in a Report.
type PublicationSummary struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Titles               []string `json:"titles,omitempty"`
	FrequentContributors []string `json:"frequent_contributors,omitempty"`
}

// Report is a point-in-time summary of a catalog.
// Empty slices and an empty TopPublisher mean the query had no data.
type Report struct {
	Writers       []WriterSummary      `json:"writers"`
	Publications  []PublicationSummary `json:"publications"`
	Contributions int                  `json:"contributions"`
	TopPublisher  string               `json:"top_publisher,omitempty"`
}

// Report summarizes the whole catalog
func (s *catalogServiceImpl) Report(ctx context.Context) Report {
	writers := s.catalog.Writers()
	publications := s.catalog.Publications()

	report := Report{
		Writers:       make([]WriterSummary, 0, len(writers)),
		Publications:  make([]PublicationSummary, 0, len(publications)),
		Contributions: len(s.catalog.Contributions()),
	}

	for _, w := range writers {
		areas, _ := w.TopicAreas()
		report.Writers = append(report.Writers, WriterSummary{
			Name:          w.Name(),
			Contributions: len(w.Contributions()),
			TopicAreas:    areas,
		})
	}

	for _, p := range publications {
		titles, _ := p.ContributionTitles()
		frequent, _ := s.FrequentContributors(ctx, p)
		report.Publications = append(report.Publications, PublicationSummary{
			Name:                 p.Name(),
			Category:             p.Category(),
			Titles:               titles,
			FrequentContributors: writerNames(frequent),
		})
	}

	if top, ok := s.TopPublisher(ctx); ok {
		report.TopPublisher = top.Name()
	}

	s.logger.InfoContext(ctx, "catalog report generated",
		"writers", len(report.Writers),
		"publications", len(report.Publications),
		"contributions", report.Contributions,
		"top_publisher", report.TopPublisher)
	return report
}

func writerNames(writers []*domain.Writer) []string {
	if len(writers) == 0 {
		return nil
	}
	names := make([]string, 0, len(writers))
	for _, w := range writers {
		names = append(names, w.Name())
	}
	return names
}

// Package service contains the application-level use cases of the catalog.
// It orchestrates domain entity construction and aggregate queries against a
// domain.Catalog, adding structured logging and translating unexpected
// failures into service errors.
//
// Error handling principles:
//  1. Domain validation and immutability errors are returned unchanged so
//     callers can branch on them with errors.Is/errors.As
//  2. Unexpected errors (e.g. registry failures) are wrapped in CatalogServiceError
//  3. Every failure is logged at the point it is detected
package service

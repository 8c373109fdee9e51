// Package store provides the in-memory Registry that implements
// domain.Catalog. The registry is the only index of writers, publications,
// and contributions: it is append-only and lives as long as its owner keeps
// it, with no persistence behind it.
package store

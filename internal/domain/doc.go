// Package domain contains the core entities of the catalog: writers,
// publications, and the contributions that join them. Entities validate
// themselves at construction, register with the Catalog they were built
// against, and answer relationship and aggregate queries by reading that
// Catalog back.
package domain

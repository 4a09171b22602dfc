// Package gnfixture loads reproducible database fixtures for integration
// tests.
package gnfixture

var (
	// Version of GNfixture, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)

//go:build tools

package tools

// Mocks are generated by an installed mockery binary from .mockery.yaml.
// Run: go generate -tags tools . (from the module root).

//go:generate mockery

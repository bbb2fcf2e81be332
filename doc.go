// Package manifestregistry implements the registry-aware manifest
// transformation core of a package manager's workspace subsystem.
//
// A parsed package manifest mixes source-control (VCS URL) and registry
// (scoped identifier) dependency declarations. This package wraps an
// underlying manifest loader, consults a registry client to discover the
// registry identity of each VCS-addressed dependency, memoizes the answer
// with a time-bounded cache, and rewrites the manifest so that two
// declarations of the same logical package converge on a single identity.
//
// The public entry point is New, which constructs a Loader decorator around
// an existing Loader. Everything else in this package (the identity cache,
// the identity mapper, and the concurrent dispatcher) is internal machinery
// the decorator threads into every Load call.
package manifestregistry

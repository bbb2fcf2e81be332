// Package manifest holds the data model the manifest registry core operates
// on: a parsed package manifest whose dependency declarations mix
// source-control and registry origins. The loader/parser that produces this
// data and the registry client that resolves it are external collaborators;
// this package only defines the shapes they exchange.
package manifest

import (
	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
)

// Location is a closed variant over where a source-control dependency's
// contents live. Only RemoteLocation is eligible for registry-identity
// resolution; LocalLocation dependencies are always carried through
// unchanged.
type Location interface {
	location()
}

// LocalLocation denotes a source-control dependency vendored at a local
// filesystem path.
type LocalLocation struct {
	Path string
}

func (LocalLocation) location() {}

// RemoteLocation denotes a source-control dependency cloned from a VCS URL.
// The URL is the cache key used throughout the core.
type RemoteLocation struct {
	URL string
}

func (RemoteLocation) location() {}

// Dependency is a closed variant over the declaration kinds a manifest can
// carry. Only SourceControlDependency is ever rewritten by this core;
// RegistryDependency and OpaqueDependency values are either an output of a
// rewrite or pass through untouched.
type Dependency interface {
	dependency()
}

// SourceControlDependency is resolved by cloning a VCS URL at some ref.
type SourceControlDependency struct {
	Identity      identity.Identity
	DeclaredName  string
	Location      Location
	Requirement   Requirement
	ProductFilter []string
	Traits        []string
}

func (*SourceControlDependency) dependency() {}

// Clone returns a shallow, independent copy safe to mutate without aliasing
// the original dependency's exported fields (slices excepted, since the
// rewriter never mutates them in place).
func (d *SourceControlDependency) Clone() *SourceControlDependency {
	clone := *d
	return &clone
}

// RegistryDependency is resolved by fetching a named package at a version
// from a registry service.
type RegistryDependency struct {
	Identity      identity.Identity
	Requirement   Requirement
	ProductFilter []string
	Traits        []string
}

func (*RegistryDependency) dependency() {}

// OpaqueDependency represents a dependency kind this core does not model
// (e.g. a plain local filesystem dependency). It is carried through
// bit-for-bit; Raw holds whatever representation the loader produced.
type OpaqueDependency struct {
	Kind string
	Raw  any
}

func (*OpaqueDependency) dependency() {}

// TargetDependency is a closed variant over the ways a build target can
// reference a declaring package. Only Product and ByName carry a
// cross-reference that may need rewriting when a dependency's declared name
// changes; TargetRef never does.
type TargetDependency interface {
	targetDependency()
}

// Product references a product by name, optionally qualified with the
// package that declares it.
type Product struct {
	Name string
	// PackageName is nil when the target-dependency did not qualify the
	// product with a declaring package.
	PackageName   *string
	ModuleAliases map[string]string
	Condition     string
}

func (*Product) targetDependency() {}

// ByName references a declaring package by name alone, with no product
// qualification. It is promoted to a Product when its name resolves through
// the cross-reference table built during a swizzle rewrite.
type ByName struct {
	Name      string
	Condition string
}

func (*ByName) targetDependency() {}

// TargetRef is a direct target-to-target dependency. It carries no package
// cross-reference and is never mutated by this core.
type TargetRef struct {
	Raw any
}

func (*TargetRef) targetDependency() {}

// Target is a build target description. Only Dependencies is inspected by
// this core; every other field is opaque carry-through state.
type Target struct {
	Name         string
	Dependencies []TargetDependency
	// Extra carries any additional fields the loader attached to the target
	// that this core does not need to interpret.
	Extra map[string]any
}

// Manifest is a parsed package manifest. Dependencies and Targets are the
// only fields this core inspects or rewrites; every other field is opaque
// carry-through state preserved bit-for-bit across a rewrite.
type Manifest struct {
	DisplayName  string
	Identity     identity.Identity
	Path         string
	Kind         string
	Location     string
	Platforms    []string
	Version      string
	Revision     string
	ToolsVersion string
	Dependencies []Dependency
	Products     []string
	Targets      []Target
	Traits       []string
	// Extra carries any additional scalar/collection fields the loader
	// attached to the manifest that this core does not need to interpret.
	Extra map[string]any
}

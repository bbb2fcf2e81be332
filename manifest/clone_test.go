package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
	"ocm.software/open-component-model/bindings/go/manifestregistry/manifest"
)

func TestWithReplacedDependenciesAndTargets_PreservesOpaqueFields(t *testing.T) {
	original := &manifest.Manifest{
		DisplayName:  "swift-nio",
		Identity:     identity.Identity("swift-nio"),
		Path:         "/workspace/swift-nio",
		Kind:         "root",
		Platforms:    []string{"macos", "linux"},
		ToolsVersion: "5.9",
		Products:     []string{"NIO"},
		Traits:       []string{"supports-api-evolution"},
		Extra:        map[string]any{"cCompilerFlags": []string{"-DFOO"}},
		Dependencies: []manifest.Dependency{&manifest.OpaqueDependency{Kind: "fileSystem"}},
		Targets:      []manifest.Target{{Name: "NIO"}},
	}

	replaced := original.WithReplacedDependenciesAndTargets(
		[]manifest.Dependency{&manifest.OpaqueDependency{Kind: "fileSystem", Raw: "rewritten"}},
		[]manifest.Target{{Name: "NIOCore"}},
	)

	require.NotSame(t, original, replaced)
	assert.Equal(t, original.DisplayName, replaced.DisplayName)
	assert.Equal(t, original.Identity, replaced.Identity)
	assert.Equal(t, original.Path, replaced.Path)
	assert.Equal(t, original.Platforms, replaced.Platforms)
	assert.Equal(t, original.Products, replaced.Products)
	assert.Equal(t, original.Traits, replaced.Traits)
	assert.Equal(t, original.Extra, replaced.Extra)
	assert.Equal(t, "NIOCore", replaced.Targets[0].Name)

	// Mutating the clone's slices must not alias the original's.
	replaced.Platforms[0] = "windows"
	assert.Equal(t, "macos", original.Platforms[0])
}

func TestSourceControlDependencyClone_IsIndependent(t *testing.T) {
	dep := &manifest.SourceControlDependency{
		Identity:     identity.Identity("swift-nio"),
		DeclaredName: "swift-nio",
		Location:     &manifest.RemoteLocation{URL: "https://github.com/apple/swift-nio"},
	}
	clone := dep.Clone()
	clone.Identity = identity.Identity("apple.swift-nio")

	assert.Equal(t, identity.Identity("swift-nio"), dep.Identity)
	assert.Equal(t, identity.Identity("apple.swift-nio"), clone.Identity)
	assert.Equal(t, dep.Location, clone.Location)
}

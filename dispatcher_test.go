package manifestregistry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
	"ocm.software/open-component-model/bindings/go/manifestregistry/manifest"
	"ocm.software/open-component-model/bindings/go/manifestregistry/registryclient"
)

func newTestDispatcher(client RegistryClient) *dispatcher {
	return newDispatcher(newIdentityMapper(newIdentityCache(time.Minute), client))
}

func TestDispatcher_SkipsLocalAndOpaqueDependencies(t *testing.T) {
	client := registryclient.NewStatic()
	deps := []manifest.Dependency{
		&manifest.SourceControlDependency{
			Location: &manifest.LocalLocation{Path: "/local/pkg"},
		},
		&manifest.OpaqueDependency{Kind: "fileSystem"},
	}

	resolved, err := newTestDispatcher(client).dispatch(t.Context(), deps)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestDispatcher_PartialFailureTolerance(t *testing.T) {
	client := registryclient.NewStatic()
	client.Set("https://good.example/pkg", "good.pkg")
	client.SetError("https://bad.example/pkg", errors.New("registry unavailable"))

	deps := []manifest.Dependency{
		&manifest.SourceControlDependency{
			Location: &manifest.RemoteLocation{URL: "https://good.example/pkg"},
		},
		&manifest.SourceControlDependency{
			Location: &manifest.RemoteLocation{URL: "https://bad.example/pkg"},
		},
	}

	resolved, err := newTestDispatcher(client).dispatch(t.Context(), deps)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, identity.Identity("good.pkg"), resolved[0])
	_, hasFailed := resolved[1]
	assert.False(t, hasFailed)
}

func TestDispatcher_OrderStability(t *testing.T) {
	client := registryclient.NewStatic()
	urls := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}
	deps := make([]manifest.Dependency, len(urls))
	for i, url := range urls {
		client.Set(url, identity.Identity("resolved."+url))
		deps[i] = &manifest.SourceControlDependency{Location: &manifest.RemoteLocation{URL: url}}
	}

	resolved, err := newTestDispatcher(client).dispatch(t.Context(), deps)
	require.NoError(t, err)
	require.Len(t, resolved, len(urls))
	for i, url := range urls {
		assert.Equal(t, identity.Identity("resolved."+url), resolved[i])
	}
}

func TestDispatcher_CancellationPropagatesAndLeavesCacheUntouched(t *testing.T) {
	client := registryclient.NewStatic()
	client.SetError("https://example.com/slow", context.Canceled)

	deps := []manifest.Dependency{
		&manifest.SourceControlDependency{Location: &manifest.RemoteLocation{URL: "https://example.com/slow"}},
	}

	cache := newIdentityCache(time.Minute)
	d := newDispatcher(newIdentityMapper(cache, client))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := d.dispatch(ctx, deps)
	require.Error(t, err)

	_, ok := cache.lookup("https://example.com/slow")
	assert.False(t, ok)
}

package manifestregistry

import (
	"context"
	"fmt"
	"slices"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
	"ocm.software/open-component-model/bindings/go/manifestregistry/internal/log"
)

// RegistryClient resolves a source-control URL to the set of registry
// identities that claim it. It is declared here, at its point of use,
// rather than next to an implementation.
type RegistryClient interface {
	// LookupIdentities returns every registry identity known to originate
	// from url. An empty, nil-error result means the registry has no
	// opinion about url.
	LookupIdentities(ctx context.Context, url string) ([]identity.Identity, error)
}

// identityMapper resolves a single URL to at most one registry identity,
// consulting the cache before ever calling out to the registry.
type identityMapper struct {
	cache  *identityCache
	client RegistryClient
}

func newIdentityMapper(cache *identityCache, client RegistryClient) *identityMapper {
	return &identityMapper{cache: cache, client: client}
}

// mapURL resolves url to at most one registry identity. It never coalesces
// concurrent in-flight lookups for the same URL: duplicate requests are
// tolerated, and whichever finishes last wins the cache entry. All writers
// compute equivalent results modulo transient registry disagreement, and the
// cache TTL bounds how long such a disagreement can persist, so coalescing
// (e.g. with golang.org/x/sync/singleflight, as
// kubernetes/controller/internal/resolution/service.go uses for an
// analogous shape) would suppress a property this core is required to have.
func (m *identityMapper) mapURL(ctx context.Context, url string) (*identity.Identity, error) {
	logger := log.Base("identitymapper")

	if outcome, ok := m.cache.lookup(url); ok {
		if outcome.failed {
			logger.DebugContext(ctx, "returning cached lookup failure as no identity", "url", url)
			return nil, nil
		}
		return outcome.identity, nil
	}

	ids, err := m.client.LookupIdentities(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation: the cache must stay untouched for in-flight lookups.
			return nil, err
		}
		m.cache.store(url, lookupOutcome{failed: true})
		return nil, fmt.Errorf("querying registry identities for %q: %w", url, err)
	}

	sorted := slices.Clone(ids)
	slices.SortStableFunc(sorted, func(a, b identity.Identity) int {
		return identity.Compare(a, b)
	})

	var picked *identity.Identity
	if len(sorted) > 0 {
		picked = &sorted[0]
	}

	m.cache.store(url, lookupOutcome{identity: picked})
	return picked, nil
}

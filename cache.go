package manifestregistry

import (
	"sync"
	"time"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
)

// DefaultCacheTTL is the memoization window for both positive and negative
// identity-lookup outcomes. A prior failure is cached with the same TTL as a
// success, so within the window a flaky registry cannot be amplified by
// repeated loads.
const DefaultCacheTTL = 300 * time.Second

// lookupOutcome is the memoized result of a single registry lookup: either a
// discovered identity (possibly none) or a failure.
type lookupOutcome struct {
	failed   bool
	identity *identity.Identity
}

type cacheEntry struct {
	outcome   lookupOutcome
	expiresAt time.Time
}

// identityCache is a time-bounded memoization of URL -> lookup outcome,
// shared across every concurrent Load call made through a single decorator.
// It is the only mutable state owned by this core; everything else is
// constructed once and never mutated. Modeled on the RWMutex-guarded map of
// kubernetes/controller/internal/resolution's InMemoryCache, minus that
// cache's periodic sweep: entries here are never removed. lookup ignores an
// expired entry and the next store for the same key overwrites it, which is
// all a decorator-scoped cache needs.
type identityCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newIdentityCache(ttl time.Duration) *identityCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &identityCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// lookup returns the cached outcome for url if it exists and has not
// expired. The second return value reports whether a live entry was found.
func (c *identityCache) lookup(url string) (lookupOutcome, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[url]
	if !ok || !entry.expiresAt.After(time.Now()) {
		return lookupOutcome{}, false
	}
	return entry.outcome, true
}

// store records outcome for url, resetting its expiry to now+ttl. Last
// writer wins: concurrent stores for the same url are benign because all
// writers compute equivalent results modulo transient registry disagreement,
// and the TTL bounds how long a disagreement can persist.
func (c *identityCache) store(url string, outcome lookupOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = cacheEntry{outcome: outcome, expiresAt: time.Now().Add(c.ttl)}
}

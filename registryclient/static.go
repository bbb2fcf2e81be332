// Package registryclient provides a minimal in-memory RegistryClient used by
// the manifest registry core's own tests and examples. The production
// registry client lives outside this module; it is consumed only through the
// RegistryClient interface declared at its point of use in mapper.go.
package registryclient

import (
	"context"
	"fmt"
	"sync"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
)

// Static is a RegistryClient backed by a fixed, caller-populated table. It
// never mutates itself, so concurrent lookups never contend beyond a shared
// read lock. It is not wired into any production code path in this module.
type Static struct {
	mu      sync.RWMutex
	results map[string][]identity.Identity
	errs    map[string]error
}

// NewStatic creates an empty Static registry client.
func NewStatic() *Static {
	return &Static{
		results: make(map[string][]identity.Identity),
		errs:    make(map[string]error),
	}
}

// Set registers the identities a lookup for url should return.
func (s *Static) Set(url string, ids ...identity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[url] = ids
}

// SetError registers an error a lookup for url should return.
func (s *Static) SetError(url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[url] = err
}

// LookupIdentities returns the identities registered for url, or the
// registered error.
func (s *Static) LookupIdentities(_ context.Context, url string) ([]identity.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	if ids, ok := s.results[url]; ok {
		return ids, nil
	}
	return nil, fmt.Errorf("no identities registered for %q", url)
}

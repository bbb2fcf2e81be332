package manifestregistry

import (
	"context"
	"fmt"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
	"ocm.software/open-component-model/bindings/go/manifestregistry/internal/log"
	"ocm.software/open-component-model/bindings/go/manifestregistry/manifest"
)

// LoadRequest carries the parameters the underlying loader needs to produce
// a manifest: a manifest path, tools version, identity, kind, location and
// optional version. Whatever other collaborators the concrete Loader
// implementation needs (a filesystem, observability, a delegate queue) are
// opaque to this core and are expected to be closed over by the Loader
// implementation rather than threaded through this struct.
type LoadRequest struct {
	ManifestPath string
	ToolsVersion string
	Identity     identity.Identity
	Kind         string
	Location     string
	Version      string
}

// Loader is the three-operation contract this core decorates. The
// underlying implementation (the manifest parser) is an external
// collaborator; this core only ever calls it through this interface.
type Loader interface {
	Load(ctx context.Context, req LoadRequest) (*manifest.Manifest, error)
	ResetCache(ctx context.Context) error
	PurgeCache(ctx context.Context) error
}

// RegistryAwareLoader wraps an underlying Loader and rewrites every manifest
// it produces so that source-control and registry declarations of the same
// logical package converge on a single identity. It implements the same
// three-operation contract as the Loader it wraps, the way
// kubernetes/controller/internal/resolution/cached_repository.go wraps
// repository.ComponentVersionRepository: unspecialized methods (ResetCache,
// PurgeCache) forward verbatim to the delegate.
type RegistryAwareLoader struct {
	underlying Loader
	dispatcher *dispatcher
	mode       Mode
}

var _ Loader = (*RegistryAwareLoader)(nil)

// New constructs a decorator bound to underlying, client and mode for the
// lifetime of a workspace session. The identity cache lives for the
// decorator's lifetime and is shared by every Load call made through it.
//
// Constructing the decorator with ModeDisabled is a static error: callers
// configured to skip registry-aware rewriting are expected to bypass the
// decorator entirely rather than construct one that does nothing.
func New(underlying Loader, client RegistryClient, mode ConfiguredMode) (*RegistryAwareLoader, error) {
	rewriteMode, err := mode.rewriteMode()
	if err != nil {
		return nil, err
	}

	cache := newIdentityCache(DefaultCacheTTL)
	mapper := newIdentityMapper(cache, client)

	return &RegistryAwareLoader{
		underlying: underlying,
		dispatcher: newDispatcher(mapper),
		mode:       rewriteMode,
	}, nil
}

// Load delegates to the underlying loader, resolves the registry identity of
// every eligible dependency in the resulting manifest, and rewrites the
// manifest according to the configured mode. A registry lookup failure never
// fails the load; only an underlying loader error, an internal invariant
// violation, or cancellation of ctx does.
func (l *RegistryAwareLoader) Load(ctx context.Context, req LoadRequest) (*manifest.Manifest, error) {
	logger := log.Base("loader")

	loaded, err := l.underlying.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "resolving dependency identities", "manifest", req.ManifestPath, "dependencies", len(loaded.Dependencies))
	resolved, err := l.dispatcher.dispatch(ctx, loaded.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("resolving registry identities for %q: %w", req.ManifestPath, err)
	}

	rewritten, err := rewriteManifest(loaded, resolved, l.mode)
	if err != nil {
		return nil, fmt.Errorf("rewriting manifest %q: %w", req.ManifestPath, err)
	}

	return rewritten, nil
}

// ResetCache forwards to the underlying loader verbatim. The identity cache
// is workspace-scoped state, not manifest-content-derived, so it is not
// cleared here.
func (l *RegistryAwareLoader) ResetCache(ctx context.Context) error {
	return l.underlying.ResetCache(ctx)
}

// PurgeCache forwards to the underlying loader verbatim, for the same reason
// ResetCache does.
func (l *RegistryAwareLoader) PurgeCache(ctx context.Context) error {
	return l.underlying.PurgeCache(ctx)
}

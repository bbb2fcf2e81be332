package manifestregistry

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
	"ocm.software/open-component-model/bindings/go/manifestregistry/internal/log"
	"ocm.software/open-component-model/bindings/go/manifestregistry/manifest"
)

// dispatcher fans out one identity lookup per eligible dependency and gathers
// the results. It never fails a load because of a single lookup failure;
// only cancellation of the surrounding context is allowed to propagate.
type dispatcher struct {
	mapper *identityMapper
}

func newDispatcher(mapper *identityMapper) *dispatcher {
	return &dispatcher{mapper: mapper}
}

// dispatch resolves the registry identity of every eligible dependency in
// deps concurrently. The returned map is keyed by dependency index so that
// result collection stays deterministic by manifest position even though
// the underlying lookups complete in an arbitrary order. A dependency absent
// from the map should be carried through unchanged by the rewriter.
//
// Modeled on bindings/go/constructor/construct.go's newConcurrencyGroup /
// eg.Go / index-addressed-slice-plus-mutex pattern: each child task writes
// to its own slot, so no lock is needed beyond the implicit happens-before
// relationship errgroup.Wait establishes.
func (d *dispatcher) dispatch(ctx context.Context, deps []manifest.Dependency) (map[int]identity.Identity, error) {
	logger := log.Base("dispatcher")
	resolved := make([]*identity.Identity, len(deps))

	eg, egctx := errgroup.WithContext(ctx)
	for i, dep := range deps {
		scDep, ok := dep.(*manifest.SourceControlDependency)
		if !ok {
			continue
		}
		remote, ok := scDep.Location.(*manifest.RemoteLocation)
		if !ok {
			continue
		}

		i, url := i, remote.URL
		eg.Go(func() error {
			id, err := d.mapper.mapURL(egctx, url)
			if err != nil {
				if egctx.Err() != nil {
					return err
				}
				logger.WarnContext(egctx, fmt.Sprintf("failed querying registry identity for '%s'", url), "url", url, "error", err)
				return nil
			}
			if id != nil {
				resolved[i] = id
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("resolving dependency identities: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(map[int]identity.Identity, len(deps))
	for i, id := range resolved {
		if id != nil {
			out[i] = *id
		}
	}
	return out, nil
}

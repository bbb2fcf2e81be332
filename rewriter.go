package manifestregistry

import (
	"fmt"
	"log/slog"
	"strings"

	"ocm.software/open-component-model/bindings/go/manifestregistry/identity"
	"ocm.software/open-component-model/bindings/go/manifestregistry/internal/log"
	"ocm.software/open-component-model/bindings/go/manifestregistry/manifest"
)

// Mode selects the transformation the rewriter applies to a resolved
// source-control dependency.
type Mode int

const (
	// ModeIdentity replaces only a dependency's identity field, keeping its
	// source-control kind and requirement untouched.
	ModeIdentity Mode = iota
	// ModeSwizzle fully replaces an exact- or range-pinned source-control
	// dependency with a registry dependency; branch- and revision-pinned
	// dependencies fall back to an identity-only rewrite.
	ModeSwizzle
)

func (m Mode) String() string {
	switch m {
	case ModeIdentity:
		return "identity"
	case ModeSwizzle:
		return "swizzle"
	default:
		return "unknown"
	}
}

// rewriteManifest applies mode to every dependency resolved has an entry for,
// then fixes up any target-dependency cross-reference a declared-name change
// left stale. It produces a new Manifest; m is never modified.
func rewriteManifest(m *manifest.Manifest, resolved map[int]identity.Identity, mode Mode) (*manifest.Manifest, error) {
	logger := log.Base("rewriter")

	newDeps := make([]manifest.Dependency, len(m.Dependencies))
	crossRefs := make(map[string]string) // lowercased declared name -> canonical identity string

	for i, dep := range m.Dependencies {
		id, has := resolved[i]
		if !has {
			newDeps[i] = dep
			continue
		}

		scDep, ok := dep.(*manifest.SourceControlDependency)
		if !ok {
			return nil, fmt.Errorf("%w: dispatcher assigned identity %q to non-source-control dependency at index %d", manifest.ErrInternalInvariant, id, i)
		}
		if _, ok := scDep.Location.(*manifest.RemoteLocation); !ok {
			return nil, fmt.Errorf("%w: dispatcher assigned identity %q to a non-remote dependency at index %d", manifest.ErrInternalInvariant, id, i)
		}

		rewritten, recordedName, err := rewriteDependency(scDep, id, mode, logger)
		if err != nil {
			return nil, err
		}
		newDeps[i] = rewritten
		if recordedName != "" {
			crossRefs[strings.ToLower(recordedName)] = id.String()
		}
	}

	newTargets := rewriteTargets(m.Targets, crossRefs)

	return m.WithReplacedDependenciesAndTargets(newDeps, newTargets), nil
}

// rewriteDependency applies mode to a single eligible dependency. It returns
// the replacement dependency and, if the rewrite should also update target
// cross-references (swizzle with an exact or range requirement), the
// declared name that now maps to id.
func rewriteDependency(dep *manifest.SourceControlDependency, id identity.Identity, mode Mode, logger *slog.Logger) (manifest.Dependency, string, error) {
	location := locationString(dep.Location)

	if mode == ModeSwizzle && manifest.IsRegistryRepresentable(dep.Requirement) {
		requirement, err := manifest.ConvertToRegistryRequirement(dep.Requirement)
		if err != nil {
			return nil, "", err
		}
		logger.Info(fmt.Sprintf("swizzling '%s' with registry dependency '%s'.", location, id))
		return &manifest.RegistryDependency{
			Identity:      id,
			Requirement:   requirement,
			ProductFilter: dep.ProductFilter,
			Traits:        dep.Traits,
		}, dep.DeclaredName, nil
	}

	// Either ModeIdentity, or a swizzle that hit a branch/revision
	// requirement: both fall back to an identity-only rewrite with no
	// cross-reference recorded.
	logger.Info(fmt.Sprintf("adjusting '%s' identity to registry identity of '%s'.", location, id))
	clone := dep.Clone()
	clone.Identity = id
	return clone, "", nil
}

func locationString(loc manifest.Location) string {
	switch l := loc.(type) {
	case *manifest.RemoteLocation:
		return l.URL
	case *manifest.LocalLocation:
		return l.Path
	default:
		return ""
	}
}

// rewriteTargets returns a copy of targets with every product/by-name
// cross-reference whose lowercased name appears in crossRefs updated to the
// table's mapped identity. target(...) dependency items are never mutated.
func rewriteTargets(targets []manifest.Target, crossRefs map[string]string) []manifest.Target {
	out := make([]manifest.Target, len(targets))
	for i, t := range targets {
		out[i] = rewriteTarget(t, crossRefs)
	}
	return out
}

func rewriteTarget(t manifest.Target, crossRefs map[string]string) manifest.Target {
	newDeps := make([]manifest.TargetDependency, len(t.Dependencies))
	for i, td := range t.Dependencies {
		newDeps[i] = rewriteTargetDependency(td, crossRefs)
	}
	out := t
	out.Dependencies = newDeps
	return out
}

func rewriteTargetDependency(td manifest.TargetDependency, crossRefs map[string]string) manifest.TargetDependency {
	switch v := td.(type) {
	case *manifest.Product:
		clone := *v
		if v.PackageName != nil {
			if mapped, ok := crossRefs[strings.ToLower(*v.PackageName)]; ok {
				clone.PackageName = &mapped
			}
		}
		return &clone
	case *manifest.ByName:
		if mapped, ok := crossRefs[strings.ToLower(v.Name)]; ok {
			return &manifest.Product{
				Name:          v.Name,
				PackageName:   &mapped,
				ModuleAliases: map[string]string{},
				Condition:     v.Condition,
			}
		}
		clone := *v
		return &clone
	case *manifest.TargetRef:
		clone := *v
		return &clone
	default:
		return td
	}
}

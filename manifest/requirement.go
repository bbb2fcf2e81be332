package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Requirement is a closed variant over the four ways a dependency's version
// constraint can be declared. The set is fixed and process-internal, so a
// sealed interface with an unexported marker method is used instead of a
// registry/Scheme lookup, which is only worth its indirection when a variant
// set is open and plugin-extensible (see descriptor/v2's Access types).
type Requirement interface {
	requirement()
}

// ExactRequirement pins a dependency to a single version.
type ExactRequirement struct {
	Version *semver.Version
}

func (ExactRequirement) requirement() {}

// RangeRequirement constrains a dependency to a half-open version interval
// [Low, High).
type RangeRequirement struct {
	Low, High *semver.Version
}

func (RangeRequirement) requirement() {}

// BranchRequirement pins a dependency to a VCS branch. It is not
// representable in a registry dependency.
type BranchRequirement struct {
	Name string
}

func (BranchRequirement) requirement() {}

// RevisionRequirement pins a dependency to a VCS revision id. It is not
// representable in a registry dependency.
type RevisionRequirement struct {
	ID string
}

func (RevisionRequirement) requirement() {}

// IsRegistryRepresentable reports whether r can be carried by a registry
// dependency. Only exact and range requirements qualify; branch and revision
// requirements have no registry equivalent.
func IsRegistryRepresentable(r Requirement) bool {
	switch r.(type) {
	case ExactRequirement, RangeRequirement:
		return true
	default:
		return false
	}
}

// ConvertToRegistryRequirement converts a source-control requirement into the
// requirement carried by a registry dependency. It is defined only for exact
// and range requirements; any other input indicates the caller failed to
// guard with IsRegistryRepresentable first, which is an internal error.
func ConvertToRegistryRequirement(r Requirement) (Requirement, error) {
	switch v := r.(type) {
	case ExactRequirement:
		return v, nil
	case RangeRequirement:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: requirement %T has no registry representation", ErrInternalInvariant, r)
	}
}

package manifestregistry

import (
	"errors"
	"fmt"
)

// ConfiguredMode is the outer configuration variant a user picks before a
// Loader decorator is ever constructed: whether the manifest registry core
// should run at all, and if so, which rewrite it should apply. There are no
// per-load overrides.
type ConfiguredMode int

const (
	// ModeDisabled means the decorator must not be constructed at all;
	// callers are expected to bypass it entirely and use the underlying
	// loader directly.
	ModeDisabled ConfiguredMode = iota
	// ModeConfiguredIdentity selects Mode = ModeIdentity.
	ModeConfiguredIdentity
	// ModeConfiguredSwizzle selects Mode = ModeSwizzle.
	ModeConfiguredSwizzle
)

// ErrDisabledMode is returned by New when it is asked to construct a
// decorator for ModeDisabled. Disabled is a static configuration error, not
// a runtime state the decorator can represent: there is no rewrite mode for
// "do nothing," so there is nothing a constructed decorator could do.
var ErrDisabledMode = errors.New("manifestregistry: cannot construct a decorator configured as disabled")

// rewriteMode converts the outer configuration variant into the Mode the
// rewriter understands. For ModeDisabled, or any value outside the defined
// modes, it returns an error wrapping ErrDisabledMode; New calls it first and
// returns that error, so no decorator is constructed for those values.
func (c ConfiguredMode) rewriteMode() (Mode, error) {
	switch c {
	case ModeConfiguredIdentity:
		return ModeIdentity, nil
	case ModeConfiguredSwizzle:
		return ModeSwizzle, nil
	default:
		return 0, fmt.Errorf("%w: unconfigured mode %d", ErrDisabledMode, c)
	}
}

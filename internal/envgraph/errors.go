package envgraph

import (
	"errors"
	"fmt"
)

// Kind classifies a configuration defect. All kinds are fatal for the
// current export; none is recoverable.
type Kind string

const (
	// KindUndefinedReference means a use or reset reference names an id
	// absent from the model.
	KindUndefinedReference Kind = "undefined-reference"
	// KindMissingCounterRoot means a use chain or symbolic reset target
	// ends at an environment that owns no counter.
	KindMissingCounterRoot Kind = "missing-counter-root"
	// KindConflictingSpec means both use and reset are set on a single
	// environment.
	KindConflictingSpec Kind = "conflicting-spec"
	// KindCyclicDependency means a cycle was found while resolving counter
	// roots or while ordering declarations.
	KindCyclicDependency Kind = "cyclic-dependency"
)

// ConfigError reports an invalid environment configuration. Env is the
// environment on which the defect was detected; Ref, when non-empty, is the
// reference involved.
type ConfigError struct {
	Kind Kind
	Env  string
	Ref  string
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case KindUndefinedReference:
		return fmt.Sprintf("environment %q references undefined environment %q", e.Env, e.Ref)
	case KindMissingCounterRoot:
		if e.Ref != "" {
			return fmt.Sprintf("environment %q references %q, which owns no counter", e.Env, e.Ref)
		}
		return fmt.Sprintf("environment %q shares a counter but its chain reaches no counter owner", e.Env)
	case KindConflictingSpec:
		return fmt.Sprintf("environment %q sets both 'use' and 'reset'", e.Env)
	case KindCyclicDependency:
		return fmt.Sprintf("cyclic dependency involving environment %q", e.Env)
	default:
		return fmt.Sprintf("invalid configuration for environment %q", e.Env)
	}
}

// IsKind reports whether err is a *ConfigError of the given kind, directly
// or anywhere along its wrap chain.
func IsKind(err error, kind Kind) bool {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

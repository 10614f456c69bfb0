package envgraph

import (
	"context"
	"errors"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/ctxlog"
)

// ErrUnnumbered is returned when a counter root is requested for an
// environment that has neither a reset rule nor a shared counter.
var ErrUnnumbered = errors.New("environment is not numbered")

// Graph is the validated view of a configuration model. It is immutable
// after New and safe to share across export runs.
type Graph struct {
	model *config.Model
	// roots maps every numbered environment id to the id of the
	// environment owning its counter. Filled during New.
	roots map[string]string
}

// New validates the model and resolves a counter root for every numbered
// environment. It fails on the first configuration defect found, in
// declaration order.
func New(ctx context.Context, model *config.Model) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("envgraph: validating configuration.", "environment_count", len(model.Environments))

	g := &Graph{
		model: model,
		roots: make(map[string]string, len(model.Environments)),
	}

	for _, spec := range model.Environments {
		if err := g.checkSpec(spec); err != nil {
			return nil, err
		}
	}

	// Root resolution is a separate pass so that structural defects on any
	// environment surface before chain-level ones.
	for _, spec := range model.Environments {
		if !spec.Numbered() {
			continue
		}
		if _, err := g.resolveRoot(spec.ID); err != nil {
			return nil, err
		}
	}

	logger.Debug("envgraph: validation passed.", "root_count", len(g.roots))
	return g, nil
}

// checkSpec enforces the per-environment invariants that need no chain
// walking.
func (g *Graph) checkSpec(spec *config.EnvironmentSpec) error {
	if spec.Use != "" && spec.Reset != nil {
		return &ConfigError{Kind: KindConflictingSpec, Env: spec.ID}
	}

	if spec.Use != "" {
		if _, ok := g.model.Lookup(spec.Use); !ok {
			return &ConfigError{Kind: KindUndefinedReference, Env: spec.ID, Ref: spec.Use}
		}
	}

	if spec.Reset != nil && spec.Reset.Kind == config.ResetOtherEnv {
		target, ok := g.model.Lookup(spec.Reset.Ref)
		if !ok {
			return &ConfigError{Kind: KindUndefinedReference, Env: spec.ID, Ref: spec.Reset.Ref}
		}
		// A symbolic reset target must own its counter directly; pointing
		// at a counter-sharing environment is ambiguous.
		if target.Reset == nil {
			return &ConfigError{Kind: KindMissingCounterRoot, Env: spec.ID, Ref: spec.Reset.Ref}
		}
	}

	return nil
}

// resolveRoot walks the use chain from id until it reaches an environment
// owning a reset rule, caching the result for every link on the way.
func (g *Graph) resolveRoot(id string) (string, error) {
	if root, ok := g.roots[id]; ok {
		return root, nil
	}

	seen := make(map[string]bool)
	var chain []string
	cur, prev := id, id
	for {
		if seen[cur] {
			return "", &ConfigError{Kind: KindCyclicDependency, Env: cur}
		}
		seen[cur] = true
		chain = append(chain, cur)

		spec, ok := g.model.Lookup(cur)
		if !ok {
			return "", &ConfigError{Kind: KindUndefinedReference, Env: prev, Ref: cur}
		}

		if spec.Reset != nil {
			for _, link := range chain {
				g.roots[link] = cur
			}
			return cur, nil
		}

		if spec.Use == "" {
			if cur == id {
				return "", ErrUnnumbered
			}
			return "", &ConfigError{Kind: KindMissingCounterRoot, Env: prev, Ref: cur}
		}

		cur, prev = spec.Use, cur
	}
}

// Spec returns the specification for an environment id.
func (g *Graph) Spec(id string) (*config.EnvironmentSpec, bool) {
	return g.model.Lookup(id)
}

// Numbered reports whether occurrences of the environment receive numbers.
// Unknown ids are not numbered.
func (g *Graph) Numbered(id string) bool {
	spec, ok := g.model.Lookup(id)
	return ok && spec.Numbered()
}

// Root returns the id of the environment owning the counter that id counts
// on. For an environment with its own reset rule, that is id itself.
func (g *Graph) Root(id string) (string, error) {
	if root, ok := g.roots[id]; ok {
		return root, nil
	}
	spec, ok := g.model.Lookup(id)
	if !ok {
		return "", &ConfigError{Kind: KindUndefinedReference, Env: id, Ref: id}
	}
	if !spec.Numbered() {
		return "", ErrUnnumbered
	}
	return g.resolveRoot(id)
}

// EffectiveReset returns the reset rule of the resolved counter root.
func (g *Graph) EffectiveReset(id string) (*config.ResetRule, error) {
	root, err := g.Root(id)
	if err != nil {
		return nil, err
	}
	spec, _ := g.model.Lookup(root)
	return spec.Reset, nil
}

// DependsOn returns the ids this environment's declaration depends on: its
// immediate use target and, for a symbolic reset, the referenced
// environment. The declaration orderer restricts these edges to its working
// set.
func (g *Graph) DependsOn(id string) []string {
	spec, ok := g.model.Lookup(id)
	if !ok {
		return nil
	}
	var deps []string
	if spec.Use != "" {
		deps = append(deps, spec.Use)
	}
	if spec.Reset != nil && spec.Reset.Kind == config.ResetOtherEnv {
		deps = append(deps, spec.Reset.Ref)
	}
	return deps
}

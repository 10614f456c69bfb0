// Package declorder computes the order in which environment declarations
// are emitted: a dependency-respecting topological order that keeps
// environments of the same style adjacent wherever possible, collapsed into
// style groups so a backend can switch style once per group.
package declorder

import (
	"context"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/ctxlog"
	"github.com/vk/theoremgo/internal/envgraph"
)

// Group is a maximal run of consecutive environments sharing one style in
// the final declaration order.
type Group struct {
	Style string
	Envs  []string
}

// Flatten concatenates the groups back into the flat declaration order.
func Flatten(groups []Group) []string {
	var order []string
	for _, g := range groups {
		order = append(order, g.Envs...)
	}
	return order
}

// Order computes the declaration order for the environments named in used,
// restricted to that working set. Dependency edges come from the graph; the
// stable tie-break is the model's original declaration order.
//
// The sort is greedy: at each step it prefers a ready environment whose
// style matches the most recently placed one, minimizing the number of
// style switches in the output. A cycle in the working-set-restricted graph
// is a configuration defect and fails the export.
func Order(ctx context.Context, model *config.Model, graph *envgraph.Graph, used map[string]bool) ([]Group, error) {
	logger := ctxlog.FromContext(ctx)

	// Candidates in original declaration order; this is the tie-break
	// everywhere below.
	var candidates []*config.EnvironmentSpec
	for _, spec := range model.Environments {
		if used[spec.ID] {
			candidates = append(candidates, spec)
		}
	}
	logger.Debug("declorder: ordering declarations.", "candidate_count", len(candidates))

	placed := make(map[string]bool, len(candidates))
	var order []*config.EnvironmentSpec

	for len(order) < len(candidates) {
		var ready []*config.EnvironmentSpec
		for _, spec := range candidates {
			if placed[spec.ID] {
				continue
			}
			if depsPlaced(graph, spec.ID, used, placed) {
				ready = append(ready, spec)
			}
		}

		if len(ready) == 0 {
			// Every unplaced environment waits on another unplaced one.
			for _, spec := range candidates {
				if !placed[spec.ID] {
					return nil, &envgraph.ConfigError{Kind: envgraph.KindCyclicDependency, Env: spec.ID}
				}
			}
		}

		next := ready[0]
		if len(order) > 0 {
			lastStyle := order[len(order)-1].Style
			for _, spec := range ready {
				if spec.Style == lastStyle {
					next = spec
					break
				}
			}
		}

		placed[next.ID] = true
		order = append(order, next)
	}

	groups := collapse(order)
	logger.Debug("declorder: ordering complete.", "group_count", len(groups))
	return groups, nil
}

// depsPlaced reports whether every working-set dependency of id is already
// placed.
func depsPlaced(graph *envgraph.Graph, id string, used, placed map[string]bool) bool {
	for _, dep := range graph.DependsOn(id) {
		if used[dep] && !placed[dep] {
			return false
		}
	}
	return true
}

// collapse folds the flat order into maximal consecutive same-style runs.
func collapse(order []*config.EnvironmentSpec) []Group {
	var groups []Group
	for _, spec := range order {
		if len(groups) > 0 && groups[len(groups)-1].Style == spec.Style {
			last := &groups[len(groups)-1]
			last.Envs = append(last.Envs, spec.ID)
			continue
		}
		groups = append(groups, Group{Style: spec.Style, Envs: []string{spec.ID}})
	}
	return groups
}

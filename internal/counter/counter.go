// Package counter assigns hierarchical numbers to environment occurrences
// observed in document traversal order.
//
// An Engine holds the mutable counting state for exactly one export run.
// Reusing an Engine across independent runs would leak counts between
// documents, so callers construct a fresh one per export.
package counter

import (
	"context"
	"fmt"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/ctxlog"
	"github.com/vk/theoremgo/internal/envgraph"
)

// Key identifies one counting scope: the counter-owning environment plus
// the scope prefix its count is currently running under.
type Key struct {
	Root  string
	Scope string
}

// Engine is the per-run counting state. The zero value is not usable; use
// New.
type Engine struct {
	graph *envgraph.Graph

	// scopeCounts holds the running count per counting scope.
	scopeCounts map[Key]int
	// lastRoot holds the most recent number assigned to each counter
	// root, which environment-chained resets scope themselves under.
	lastRoot map[string]Number
}

// New creates a fresh engine for one export run.
func New(graph *envgraph.Graph) *Engine {
	return &Engine{
		graph:       graph,
		scopeCounts: make(map[Key]int),
		lastRoot:    make(map[string]Number),
	}
}

// Process assigns the next number to one occurrence of a numbered
// environment. Occurrences must be handed in strict document order; section
// is the enclosing section-number path at that point, nil or empty outside
// any section.
func (e *Engine) Process(ctx context.Context, envID string, section []int) (Number, error) {
	root, err := e.graph.Root(envID)
	if err != nil {
		return nil, fmt.Errorf("cannot number environment %q: %w", envID, err)
	}
	rule, err := e.graph.EffectiveReset(envID)
	if err != nil {
		return nil, fmt.Errorf("cannot number environment %q: %w", envID, err)
	}

	prefix := e.scopePrefix(rule, section)

	key := Key{Root: root, Scope: scopeKey(prefix)}
	n := e.scopeCounts[key] + 1
	e.scopeCounts[key] = n

	number := make(Number, 0, len(prefix)+1)
	number = append(number, prefix...)
	number = append(number, n)

	// Only the counter owner advances the root number; environments merely
	// sharing the counter via use do not.
	if envID == root {
		e.lastRoot[root] = number
	}

	ctxlog.FromContext(ctx).Debug("counter: numbered occurrence.",
		"env", envID, "root", root, "number", number.String())
	return number, nil
}

// scopePrefix derives the counting scope from the effective reset rule and
// the enclosing section path.
func (e *Engine) scopePrefix(rule *config.ResetRule, section []int) []int {
	switch rule.Kind {
	case config.ResetGlobal:
		return nil
	case config.ResetSectionLevel:
		if len(section) == 0 {
			// Outside any section the counter runs in the fallback scope.
			return []int{0}
		}
		if len(section) > rule.Level {
			return section[:rule.Level]
		}
		return section
	case config.ResetSectionDeepest:
		if len(section) == 0 {
			return []int{0}
		}
		return section
	case config.ResetOtherEnv:
		// An environment referenced before its root has ever fired counts
		// from scratch; that forward reference is defined behavior, not an
		// error.
		if last, ok := e.lastRoot[rule.Ref]; ok {
			return last
		}
		return []int{0}
	default:
		return nil
	}
}

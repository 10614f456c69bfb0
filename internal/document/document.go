// Package document drives the counter engine over a document-ordered event
// stream. It tracks the current section path from section-boundary events
// and hands every block occurrence, numbered or not, to a visitor callback.
package document

import (
	"context"
	"fmt"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/counter"
	"github.com/vk/theoremgo/internal/ctxlog"
	"github.com/vk/theoremgo/internal/envgraph"
)

// Block is one processed occurrence of an environment block.
type Block struct {
	Env   string
	Label string
	Body  string

	// Section is the enclosing section path at the occurrence, empty
	// outside any section.
	Section []int

	// Number is the assigned number; Numbered is false for environments
	// that carry no counter.
	Number   counter.Number
	Numbered bool
}

// Visitor receives each processed block occurrence in document order.
type Visitor func(*Block) error

// Walk processes the event stream in order, numbering each occurrence of a
// numbered environment through the engine. It returns the set of
// environment ids used by the document, which feeds the declaration
// orderer.
func Walk(ctx context.Context, doc *config.Document, graph *envgraph.Graph, engine *counter.Engine, visit Visitor) (map[string]bool, error) {
	logger := ctxlog.FromContext(ctx)

	used := make(map[string]bool)
	var section []int

	for _, ev := range doc.Events {
		switch ev.Kind {
		case config.EventSection:
			section = ev.Section

		case config.EventBlock:
			if _, ok := graph.Spec(ev.Env); !ok {
				return nil, &envgraph.ConfigError{
					Kind: envgraph.KindUndefinedReference,
					Env:  ev.Env,
					Ref:  ev.Env,
				}
			}
			used[ev.Env] = true

			block := &Block{
				Env:     ev.Env,
				Label:   ev.Label,
				Body:    ev.Body,
				Section: section,
			}
			if graph.Numbered(ev.Env) {
				number, err := engine.Process(ctx, ev.Env, section)
				if err != nil {
					return nil, fmt.Errorf("numbering block of %q: %w", ev.Env, err)
				}
				block.Number = number
				block.Numbered = true
			}

			if visit != nil {
				if err := visit(block); err != nil {
					return nil, err
				}
			}
		}
	}

	logger.Debug("document: traversal complete.", "environments_used", len(used))
	return used, nil
}

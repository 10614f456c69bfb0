// Package render defines the backend strategy surface: a Formatter turns
// processed block occurrences into backend text, a DeclareFunc produces one
// declaration line per environment, and an optional SwitchFunc produces a
// per-style switch line. The Emitter combines them with the declaration
// orderer's grouped output: one switch per group, then the group's declare
// lines in order.
package render

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/declorder"
	"github.com/vk/theoremgo/internal/document"
	"github.com/vk/theoremgo/internal/envgraph"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Formatter renders one processed block occurrence into backend text. It
// must be a pure function of its arguments.
type Formatter interface {
	Format(spec *config.EnvironmentSpec, block *document.Block) (string, error)
}

// DeclareFunc produces the declaration line for one environment.
type DeclareFunc func(spec *config.EnvironmentSpec, graph *envgraph.Graph) (string, error)

// SwitchFunc produces the style-switch line preceding a declaration group.
// A nil SwitchFunc on a Backend means the backend emits no switches.
type SwitchFunc func(style string) string

// Backend bundles the strategies for one output format.
type Backend struct {
	Name      string
	Formatter Formatter
	Declare   DeclareFunc
	Switch    SwitchFunc
}

// Emitter produces preamble text from ordered declaration groups.
type Emitter struct {
	backend *Backend
	graph   *envgraph.Graph
}

// NewEmitter creates an emitter for one backend and validated graph.
func NewEmitter(backend *Backend, graph *envgraph.Graph) *Emitter {
	return &Emitter{backend: backend, graph: graph}
}

// Preamble emits, for each group, the optional style switch followed by one
// declaration line per environment, preserving group order.
func (em *Emitter) Preamble(groups []declorder.Group) (string, error) {
	var b strings.Builder
	for _, group := range groups {
		if em.backend.Switch != nil {
			b.WriteString(em.backend.Switch(group.Style))
			b.WriteByte('\n')
		}
		for _, id := range group.Envs {
			spec, ok := em.graph.Spec(id)
			if !ok {
				return "", fmt.Errorf("declaration order names unknown environment %q", id)
			}
			line, err := em.declareLine(spec)
			if err != nil {
				return "", err
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// declareLine picks the per-environment custom declaration when one is
// configured, falling back to the backend default.
func (em *Emitter) declareLine(spec *config.EnvironmentSpec) (string, error) {
	if spec.Declare != nil {
		return evalDeclare(spec)
	}
	return em.backend.Declare(spec, em.graph)
}

// evalDeclare evaluates a configured declare template with the
// environment's own attributes in scope.
func evalDeclare(spec *config.EnvironmentSpec) (string, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"name":    cty.StringVal(spec.Name()),
			"display": cty.StringVal(displayOf(spec)),
			"style":   cty.StringVal(spec.Style),
		},
	}
	val, diags := spec.Declare.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("evaluating declare template for %q: %w", spec.ID, diags)
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("declare template for %q must produce a string: %w", spec.ID, err)
	}
	return val.AsString(), nil
}

// displayOf returns the heading text, falling back to the render name.
func displayOf(spec *config.EnvironmentSpec) string {
	if spec.Display != "" {
		return spec.Display
	}
	return spec.Name()
}

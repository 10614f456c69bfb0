package render

import (
	"fmt"
	"strings"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/document"
	"github.com/vk/theoremgo/internal/envgraph"
)

// LaTeX returns the backend producing amsthm-style output: theoremstyle
// switches, newtheorem declarations, and begin/end block bodies. Numbers
// stay implicit; the declarations reproduce the counter semantics through
// LaTeX's own counter machinery.
func LaTeX() *Backend {
	return &Backend{
		Name:      "latex",
		Formatter: latexFormatter{},
		Declare:   latexDeclare,
		Switch:    latexSwitch,
	}
}

type latexFormatter struct{}

func (latexFormatter) Format(spec *config.EnvironmentSpec, block *document.Block) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "\\begin{%s}\n", spec.Name())
	if block.Label != "" {
		fmt.Fprintf(&b, "\\label{%s}\n", block.Label)
	}
	if block.Body != "" {
		b.WriteString(block.Body)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\\end{%s}\n", spec.Name())
	return b.String(), nil
}

func latexSwitch(style string) string {
	return fmt.Sprintf("\\theoremstyle{%s}", style)
}

// latexDeclare maps one environment spec onto the matching newtheorem form.
func latexDeclare(spec *config.EnvironmentSpec, graph *envgraph.Graph) (string, error) {
	name := spec.Name()
	display := displayOf(spec)

	if !spec.Numbered() {
		return fmt.Sprintf("\\newtheorem*{%s}{%s}", name, display), nil
	}

	if spec.Use != "" {
		root, err := graph.Root(spec.ID)
		if err != nil {
			return "", err
		}
		rootSpec, _ := graph.Spec(root)
		return fmt.Sprintf("\\newtheorem{%s}[%s]{%s}", name, rootSpec.Name(), display), nil
	}

	switch spec.Reset.Kind {
	case config.ResetGlobal:
		return fmt.Sprintf("\\newtheorem{%s}{%s}", name, display), nil
	case config.ResetSectionLevel:
		return fmt.Sprintf("\\newtheorem{%s}{%s}[%s]", name, display, sectionCounter(spec.Reset.Level)), nil
	case config.ResetSectionDeepest:
		// LaTeX has no per-deepest-level counter; section is the closest
		// native parent.
		return fmt.Sprintf("\\newtheorem{%s}{%s}[section]", name, display), nil
	case config.ResetOtherEnv:
		refSpec, ok := graph.Spec(spec.Reset.Ref)
		if !ok {
			return "", fmt.Errorf("declaration for %q references unknown environment %q", spec.ID, spec.Reset.Ref)
		}
		return fmt.Sprintf("\\newtheorem{%s}{%s}[%s]", name, display, refSpec.Name()), nil
	default:
		return "", fmt.Errorf("declaration for %q: unsupported reset kind", spec.ID)
	}
}

// sectionCounter names the LaTeX sectioning counter for a depth.
func sectionCounter(level int) string {
	switch level {
	case 1:
		return "section"
	case 2:
		return "subsection"
	default:
		return "subsubsection"
	}
}

package render

import (
	"fmt"
	"strings"

	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/document"
	"github.com/vk/theoremgo/internal/envgraph"
)

// Markdown returns a declarative backend: computed numbers are written
// directly into the block text and no style switches are emitted, so the
// preamble degrades to one comment line per environment.
func Markdown() *Backend {
	return &Backend{
		Name:      "markdown",
		Formatter: markdownFormatter{},
		Declare:   markdownDeclare,
		Switch:    nil,
	}
}

type markdownFormatter struct{}

func (markdownFormatter) Format(spec *config.EnvironmentSpec, block *document.Block) (string, error) {
	var b strings.Builder
	if block.Label != "" {
		fmt.Fprintf(&b, "<a id=%q></a>", block.Label)
	}
	heading := displayOf(spec)
	if block.Numbered {
		heading = fmt.Sprintf("%s %s", heading, block.Number)
	}
	fmt.Fprintf(&b, "**%s.**", heading)
	if block.Body != "" {
		b.WriteByte(' ')
		b.WriteString(block.Body)
	}
	b.WriteByte('\n')
	return b.String(), nil
}

func markdownDeclare(spec *config.EnvironmentSpec, _ *envgraph.Graph) (string, error) {
	return fmt.Sprintf("<!-- environment %s: %s (style %s) -->", spec.Name(), displayOf(spec), spec.Style), nil
}

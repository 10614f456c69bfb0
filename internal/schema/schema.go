// Package schema defines the HCL block structures for environment
// configuration files and document event files. The hcl package translates
// these into the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Environment represents an `environment` block from a configuration file.
//
//	environment "thm" {
//	  display = "Theorem"
//	  style   = "plain"
//	  reset   = "section"
//	}
type Environment struct {
	ID         string `hcl:"id,label"`
	Display    string `hcl:"display,optional"`
	RenderName string `hcl:"render_name,optional"`
	Style      string `hcl:"style,optional"`

	// Reset is one of "none", "global", "section", "subsection",
	// "subsubsection", "deepest", or the id of another environment.
	Reset string `hcl:"reset,optional"`

	// Use shares the counter of another environment.
	Use string `hcl:"use,optional"`

	// Declare overrides the backend declaration line; kept as an
	// expression so backends can evaluate it with their own variables.
	Declare hcl.Expression `hcl:"declare,optional"`
}

// EnvironmentsFile is the top-level structure of an environment
// configuration file.
type EnvironmentsFile struct {
	Environments []*Environment `hcl:"environment,block"`
	Remain       hcl.Body       `hcl:",remain"`
}

// Document event files interleave `section` and `block` blocks, and their
// relative order is the document order. They are decoded block by block
// from the body content rather than through gohcl, which would regroup the
// blocks by type and lose the interleaving.

// BlockEvent is the body of a `block "thm" { ... }` occurrence; the
// environment id is the block label. The section boundary blocks carry the
// section number as their label and have empty bodies.
type BlockEvent struct {
	Label string `hcl:"label,optional"`
	Body  string `hcl:"body,optional"`
}

// DocumentSchema describes the two block types a document file may contain.
var DocumentSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "section", LabelNames: []string{"number"}},
		{Type: "block", LabelNames: []string{"env"}},
	},
}

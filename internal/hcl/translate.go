// This file translates HCL schema structs into the format-agnostic
// configuration model defined in the config package.

package hcl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/theoremgo/internal/config"
	"github.com/vk/theoremgo/internal/schema"
)

// translateEnvironment converts an HCL environment block into the agnostic
// model, mapping the reset string onto a ResetRule.
func translateEnvironment(s *schema.Environment) (*config.EnvironmentSpec, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("environment block with empty id")
	}

	reset, err := parseReset(s.Reset)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", s.ID, err)
	}

	spec := &config.EnvironmentSpec{
		ID:         s.ID,
		Display:    s.Display,
		RenderName: s.RenderName,
		Style:      s.Style,
		Reset:      reset,
		Use:        s.Use,
		Declare:    declareExpr(s.Declare),
	}
	return spec, nil
}

// declareExpr normalizes an absent declare attribute to nil. gohcl fills
// absent optional expression fields with a synthetic null expression rather
// than leaving them nil.
func declareExpr(expr hcl.Expression) hcl.Expression {
	if expr == nil {
		return nil
	}
	if val, diags := expr.Value(nil); !diags.HasErrors() && val.IsNull() {
		return nil
	}
	return expr
}

// parseReset maps the configuration surface onto reset rules. Any string
// that is not a known keyword names another environment, whose existence
// the envgraph validates later.
func parseReset(value string) (*config.ResetRule, error) {
	switch value {
	case "", "none":
		return nil, nil
	case "global":
		return &config.ResetRule{Kind: config.ResetGlobal}, nil
	case "section":
		return &config.ResetRule{Kind: config.ResetSectionLevel, Level: 1}, nil
	case "subsection":
		return &config.ResetRule{Kind: config.ResetSectionLevel, Level: 2}, nil
	case "subsubsection":
		return &config.ResetRule{Kind: config.ResetSectionLevel, Level: 3}, nil
	case "deepest":
		return &config.ResetRule{Kind: config.ResetSectionDeepest}, nil
	default:
		return &config.ResetRule{Kind: config.ResetOtherEnv, Ref: value}, nil
	}
}

// parseSectionNumber converts a dotted section label like "2.1" into its
// component path.
func parseSectionNumber(label string) ([]int, error) {
	parts := strings.Split(label, ".")
	number := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid section number %q", label)
		}
		number[i] = n
	}
	return number, nil
}

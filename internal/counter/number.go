package counter

import (
	"strconv"
	"strings"
)

// Number is a hierarchical number as an ordered sequence of components,
// e.g. [2, 1] for "item 1 of section 2".
type Number []int

// String renders the number in dotted form, e.g. "2.1".
func (n Number) String() string {
	if len(n) == 0 {
		return ""
	}
	parts := make([]string, len(n))
	for i, c := range n {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// scopeKey encodes a scope prefix into a stable map key.
func scopeKey(prefix []int) string {
	return Number(prefix).String()
}

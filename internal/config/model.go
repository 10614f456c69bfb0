// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"github.com/hashicorp/hcl/v2"
)

// ResetKind enumerates the structural boundaries at which an environment's
// counter restarts.
type ResetKind int

const (
	// ResetGlobal counts through the whole document without restarting.
	ResetGlobal ResetKind = iota
	// ResetSectionLevel restarts the counter whenever the first Level
	// components of the enclosing section number change.
	ResetSectionLevel
	// ResetSectionDeepest restarts the counter at every section boundary,
	// however deep.
	ResetSectionDeepest
	// ResetOtherEnv restarts the counter whenever the referenced
	// environment's own counter is incremented.
	ResetOtherEnv
)

// String returns a short human-readable name for the reset kind.
func (k ResetKind) String() string {
	switch k {
	case ResetGlobal:
		return "global"
	case ResetSectionLevel:
		return "section-level"
	case ResetSectionDeepest:
		return "deepest"
	case ResetOtherEnv:
		return "environment"
	default:
		return "unknown"
	}
}

// ResetRule describes when an environment's counter restarts. A nil
// *ResetRule on an EnvironmentSpec means the environment does not own a
// counter at all.
type ResetRule struct {
	Kind ResetKind
	// Level is the section depth for ResetSectionLevel, starting at 1.
	Level int
	// Ref is the referenced environment id for ResetOtherEnv.
	Ref string
}

// EnvironmentSpec describes one theorem-like environment kind. Reset and
// Use are mutually exclusive; an environment with neither is unnumbered.
type EnvironmentSpec struct {
	// ID is the unique configuration key, e.g. "thm".
	ID string
	// Display is the human-facing heading, e.g. "Theorem". May be empty.
	Display string
	// RenderName is the name handed to the backend. Defaults to ID.
	RenderName string
	// Style is the rendering category used to batch declarations.
	Style string
	// Reset, when set, makes this environment the owner of a counter.
	Reset *ResetRule
	// Use, when non-empty, shares the counter of another environment.
	Use string
	// Declare optionally overrides the backend's declaration line. It is
	// evaluated per backend with name/display/style variables in scope.
	Declare hcl.Expression
}

// Name returns the backend-facing name, falling back to the ID when no
// explicit render name was configured.
func (s *EnvironmentSpec) Name() string {
	if s.RenderName != "" {
		return s.RenderName
	}
	return s.ID
}

// Numbered reports whether occurrences of this environment receive numbers.
func (s *EnvironmentSpec) Numbered() bool {
	return s.Reset != nil || s.Use != ""
}

// Model is the immutable, declaration-ordered set of environment
// specifications for one configuration.
type Model struct {
	// Environments preserves the original declaration order, which the
	// declaration orderer uses as its stable tie-break.
	Environments []*EnvironmentSpec

	index map[string]*EnvironmentSpec
}

// NewModel builds a Model from specs in declaration order. Duplicate ids
// keep the first occurrence.
func NewModel(specs []*EnvironmentSpec) *Model {
	m := &Model{index: make(map[string]*EnvironmentSpec, len(specs))}
	for _, spec := range specs {
		if _, ok := m.index[spec.ID]; ok {
			continue
		}
		m.Environments = append(m.Environments, spec)
		m.index[spec.ID] = spec
	}
	return m
}

// Lookup returns the spec for an environment id.
func (m *Model) Lookup(id string) (*EnvironmentSpec, bool) {
	spec, ok := m.index[id]
	return spec, ok
}

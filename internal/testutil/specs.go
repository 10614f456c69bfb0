// Package testutil provides shared builders for environment specifications
// used across the engine's test suites.
package testutil

import (
	"github.com/vk/theoremgo/internal/config"
)

// GlobalEnv builds a spec counting through the whole document.
func GlobalEnv(id, style string) *config.EnvironmentSpec {
	return &config.EnvironmentSpec{
		ID:    id,
		Style: style,
		Reset: &config.ResetRule{Kind: config.ResetGlobal},
	}
}

// SectionEnv builds a spec whose counter restarts at the given section
// depth.
func SectionEnv(id, style string, level int) *config.EnvironmentSpec {
	return &config.EnvironmentSpec{
		ID:    id,
		Style: style,
		Reset: &config.ResetRule{Kind: config.ResetSectionLevel, Level: level},
	}
}

// DeepestEnv builds a spec whose counter restarts at every section
// boundary.
func DeepestEnv(id, style string) *config.EnvironmentSpec {
	return &config.EnvironmentSpec{
		ID:    id,
		Style: style,
		Reset: &config.ResetRule{Kind: config.ResetSectionDeepest},
	}
}

// UseEnv builds a spec sharing the counter of target.
func UseEnv(id, style, target string) *config.EnvironmentSpec {
	return &config.EnvironmentSpec{ID: id, Style: style, Use: target}
}

// EnvResetEnv builds a spec whose counter restarts whenever ref's counter
// is incremented.
func EnvResetEnv(id, style, ref string) *config.EnvironmentSpec {
	return &config.EnvironmentSpec{
		ID:    id,
		Style: style,
		Reset: &config.ResetRule{Kind: config.ResetOtherEnv, Ref: ref},
	}
}

// Unnumbered builds a spec carrying no counter at all.
func Unnumbered(id, style string) *config.EnvironmentSpec {
	return &config.EnvironmentSpec{ID: id, Style: style}
}

// Model assembles specs, in the given declaration order, into a model.
func Model(specs ...*config.EnvironmentSpec) *config.Model {
	return config.NewModel(specs)
}

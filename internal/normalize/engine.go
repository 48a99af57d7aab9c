// Package normalize masks machine-specific content in descriptors so they can be
// compared against golden files recorded on another machine.
package normalize

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"selfhostlit/internal/suite"
)

// Placeholders written in place of machine-specific values
const (
	SourceRootPlaceholder   = "<source_root>"
	ExecRootPlaceholder     = "<exec_root>"
	CompilerPathPlaceholder = "<compiler_path>"
)

// FieldMask replaces one machine-specific field of a descriptor with a placeholder.
type FieldMask struct {
	Name  string
	Apply func(cfg *suite.Config)
}

// NormalizationEngine masks descriptor fields and cleans rendered output.
type NormalizationEngine struct {
	masks []FieldMask
}

// NewNormalizationEngine creates an engine masking the source root, the exec root
// and the compiler substitution.
func NewNormalizationEngine() *NormalizationEngine {
	return &NormalizationEngine{
		masks: []FieldMask{
			{
				Name: "source_root",
				Apply: func(cfg *suite.Config) {
					if cfg.SourceRoot != "" {
						cfg.SourceRoot = SourceRootPlaceholder
					}
				},
			},
			{
				Name: "exec_root",
				Apply: func(cfg *suite.Config) {
					if cfg.ExecRoot != "" {
						cfg.ExecRoot = ExecRootPlaceholder
					}
				},
			},
			{
				Name: "compiler_path",
				Apply: func(cfg *suite.Config) {
					for i, sub := range cfg.Substitutions {
						if sub.Token == suite.CompilerToken {
							cfg.Substitutions[i].Replacement = CompilerPathPlaceholder
						}
					}
				},
			},
		},
	}
}

// Masks returns the mask names in application order.
func (ne *NormalizationEngine) Masks() []string {
	names := make([]string, len(ne.masks))
	for i, m := range ne.masks {
		names[i] = m.Name
	}
	return names
}

// NormalizeDescriptor returns a copy of cfg with machine-specific fields replaced by
// placeholders. cfg itself is not modified.
func (ne *NormalizationEngine) NormalizeDescriptor(cfg *suite.Config) *suite.Config {
	masked := *cfg
	masked.Site = suite.Site{}
	masked.Substitutions = slices.Clone(cfg.Substitutions)
	masked.Suffixes = slices.Clone(cfg.Suffixes)
	masked.AvailableFeatures = suite.NewFeatureSet(cfg.AvailableFeatures.List()...)

	for _, m := range ne.masks {
		m.Apply(&masked)
	}
	return &masked
}

// NormalizeOutput strips terminal escapes and trailing newlines.
func (ne *NormalizationEngine) NormalizeOutput(output string) string {
	return strings.TrimRight(ansi.Strip(output), "\n")
}

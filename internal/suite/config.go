// Package suite describes the SelfhostCompiler test suite to a lit-style test engine.
// It builds the suite descriptor from the values the engine injects (compiler path and
// execution root) and exposes the queries the descriptor defines: substitution,
// suffix matching and feature checks.
package suite

import (
	"fmt"
	"slices"
)

// Suite-wide literals
const (
	SuiteName          = "SelfhostCompiler"
	CompilerToken      = "%compiler"
	GCCToken           = "%gcc"
	GCCCommand         = "gcc"
	ShellFeature       = "shell"
	CSourceSuffix      = ".c"
	DefaultSuiteSuffix = ".test"
)

// FormatKind selects how the engine executes each discovered test file.
type FormatKind int

// Supported test formats
const (
	FormatUnknown FormatKind = iota
	FormatShell
)

// String returns the format name used in encoded descriptors.
func (k FormatKind) String() string {
	switch k {
	case FormatShell:
		return "sh"
	default:
		return "unknown"
	}
}

// TestFormat is the (kind, flag) pair handed to the engine.
// Flag is opaque here: its meaning belongs to the engine's shell format.
type TestFormat struct {
	Kind FormatKind
	Flag bool
}

// Substitution replaces Token with Replacement in a test command line.
type Substitution struct {
	Token       string `json:"token" yaml:"token"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// Site holds the values the engine injects before the suite is configured.
type Site struct {
	CompilerPath   string `mapstructure:"compiler_path" validate:"required"`
	MyTestExecRoot string `mapstructure:"my_test_exec_root" validate:"required"`
}

// Config is the suite descriptor.
type Config struct {
	Site Site

	Name              string
	Format            TestFormat
	SourceRoot        string
	ExecRoot          string
	Substitutions     []Substitution
	AvailableFeatures FeatureSet
	Suffixes          []string
}

// NewConfig returns a partially populated descriptor carrying the injected site
// values and the engine defaults, ready for Configure.
func NewConfig(site Site) *Config {
	return &Config{
		Site:              site,
		AvailableFeatures: NewFeatureSet(),
		Suffixes:          []string{DefaultSuiteSuffix},
	}
}

// Validate reports whether the descriptor is complete enough to hand to the engine.
func (c *Config) Validate() error {
	if c.ExecRoot == "" {
		return &MissingDependencyError{Field: "my_test_exec_root"}
	}
	if c.SourceRoot == "" {
		return &InvalidPathError{Path: c.SourceRoot, Err: errEmptyPath}
	}
	if c.Format.Kind == FormatUnknown {
		return fmt.Errorf("test format not set")
	}
	return nil
}

// Equal reports whether two descriptors are field-for-field identical.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Site == other.Site &&
		c.Name == other.Name &&
		c.Format == other.Format &&
		c.SourceRoot == other.SourceRoot &&
		c.ExecRoot == other.ExecRoot &&
		slices.Equal(c.Substitutions, other.Substitutions) &&
		slices.Equal(c.AvailableFeatures.List(), other.AvailableFeatures.List()) &&
		slices.Equal(c.Suffixes, other.Suffixes)
}

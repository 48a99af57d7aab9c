package suite

import (
	"path/filepath"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Substitute applies the substitutions to line in order. Each substitution sees the
// output of the ones before it.
func (c *Config) Substitute(line string) string {
	for _, sub := range c.Substitutions {
		line = strings.ReplaceAll(line, sub.Token, sub.Replacement)
	}
	return line
}

// ExpandRunLine substitutes line and checks that the result parses as a shell command.
// The command is never run.
func (c *Config) ExpandRunLine(line string) (string, error) {
	expanded := c.Substitute(strings.TrimSpace(line))

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(strings.NewReader(expanded), ""); err != nil {
		return "", &CommandError{Line: expanded, Err: err}
	}
	return expanded, nil
}

// IsTestFile reports whether path names a test file according to the suite suffixes.
// Hidden files never match, and only the final extension is compared.
func (c *Config) IsTestFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return slices.Contains(c.Suffixes, filepath.Ext(base))
}

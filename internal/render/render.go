// Package render writes the suite descriptor for humans and for the test engine.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"selfhostlit/internal/suite"
)

// Format is an output format for the descriptor.
type Format string

// Supported output formats
const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected yaml, json or markdown)", s)
	}
}

// Write renders cfg to w in the given format.
func Write(w io.Writer, cfg *suite.Config, format Format) error {
	switch format {
	case FormatYAML:
		data, err := cfg.EncodeYAML()
		if err != nil {
			return fmt.Errorf("failed to encode descriptor: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode descriptor: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatMarkdown:
		rendered, err := RenderMarkdown(Markdown(cfg), styleFor(w))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, rendered)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Markdown returns a markdown summary of the descriptor.
func Markdown(cfg *suite.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "- **Format:** `%s` (flag: %t)\n", cfg.Format.Kind, cfg.Format.Flag)
	fmt.Fprintf(&b, "- **Source root:** `%s`\n", cfg.SourceRoot)
	fmt.Fprintf(&b, "- **Exec root:** `%s`\n", cfg.ExecRoot)
	fmt.Fprintf(&b, "- **Suffixes:** %s\n", codeList(cfg.Suffixes))
	fmt.Fprintf(&b, "- **Features:** %s\n\n", codeList(cfg.AvailableFeatures.List()))

	b.WriteString("## Substitutions\n\n")
	b.WriteString("| # | Token | Replacement |\n")
	b.WriteString("|---|-------|-------------|\n")
	for i, sub := range cfg.Substitutions {
		fmt.Fprintf(&b, "| %d | `%s` | `%s` |\n", i+1, sub.Token, sub.Replacement)
	}

	return b.String()
}

// RenderMarkdown renders markdown with a glamour standard style ("dark", "light", "notty", "ascii").
func RenderMarkdown(markdown string, style string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// styleFor picks a glamour style matching the terminal behind w.
func styleFor(w io.Writer) string {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return "notty"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

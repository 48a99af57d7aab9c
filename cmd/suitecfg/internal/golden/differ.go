package golden

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sergi/go-diff/diffmatchpatch"

	"selfhostlit/cmd/suitecfg/shared"
	"selfhostlit/internal/logger"
	"selfhostlit/internal/suite"
)

// ErrMismatch is returned when a descriptor differs from its golden file
var ErrMismatch = errors.New("descriptor does not match golden file")

// Differ compares descriptors with golden files
type Differ struct {
	config *shared.Config
	out    io.Writer
	log    *log.Logger
}

// NewDiffer creates a new golden file differ writing reports to out
func NewDiffer(config *shared.Config, out io.Writer) *Differ {
	return &Differ{
		config: config,
		out:    out,
		log:    logger.NewStyledLogger("golden"),
	}
}

// Check compares desc with goldenPath, printing a diff on mismatch
func (d *Differ) Check(desc *suite.Config, goldenPath string) error {
	expectedContent, err := os.ReadFile(goldenPath)
	if err != nil {
		return fmt.Errorf("failed to read golden file %s: %w", goldenPath, err)
	}
	expected := strings.TrimRight(string(expectedContent), "\n")

	actual, err := Snapshot(desc)
	if err != nil {
		return err
	}

	if expected == actual {
		if d.config.Verbose {
			d.log.Info("Descriptor matches golden file", "path", goldenPath)
		}
		return nil
	}

	d.ShowDetailedDiff(expected, actual, goldenPath)
	return fmt.Errorf("%w: %s", ErrMismatch, goldenPath)
}

// ShowDetailedDiff writes a line-oriented diff between expected and actual
func (d *Differ) ShowDetailedDiff(expected, actual, name string) {
	fmt.Fprintf(d.out, "=== Golden: %s ===\n", name)

	dmp := diffmatchpatch.New()
	expectedChars, actualChars, lines := dmp.DiffLinesToChars(expected+"\n", actual+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(expectedChars, actualChars, false), lines)

	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffEqual:
			if !d.config.Verbose {
				continue
			}
		}
		for _, line := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			fmt.Fprintf(d.out, "%s%s\n", prefix, line)
		}
	}
}

// Package golden records and checks suite descriptors against golden files.
package golden

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"selfhostlit/cmd/suitecfg/shared"
	"selfhostlit/internal/logger"
	"selfhostlit/internal/normalize"
	"selfhostlit/internal/render"
	"selfhostlit/internal/suite"
)

// Recorder writes normalized descriptors to golden files
type Recorder struct {
	config *shared.Config
	log    *log.Logger
}

// NewRecorder creates a new golden file recorder
func NewRecorder(config *shared.Config) *Recorder {
	return &Recorder{
		config: config,
		log:    logger.NewStyledLogger("golden"),
	}
}

// Record renders desc and saves it to goldenPath
func (r *Recorder) Record(desc *suite.Config, goldenPath string) error {
	content, err := Snapshot(desc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(goldenPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create golden directory: %w", err)
		}
	}

	if err := os.WriteFile(goldenPath, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}

	if r.config.Verbose {
		r.log.Info("Recorded descriptor", "path", goldenPath)
	}
	return nil
}

// Snapshot returns the normalized YAML form of desc as stored in golden files
func Snapshot(desc *suite.Config) (string, error) {
	ne := normalize.NewNormalizationEngine()

	var buf bytes.Buffer
	if err := render.Write(&buf, ne.NormalizeDescriptor(desc), render.FormatYAML); err != nil {
		return "", err
	}
	return ne.NormalizeOutput(buf.String()), nil
}

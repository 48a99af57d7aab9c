package suite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Build returns a fully populated descriptor for the given site values.
// anchor is the location of the suite description (a file or its directory).
func Build(site Site, anchor string) (*Config, error) {
	cfg := NewConfig(site)
	if err := Configure(cfg, anchor); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Configure populates cfg in place. The site values must already be set; when one is
// missing Configure returns a *MissingDependencyError and leaves cfg untouched.
// Running Configure again on the same descriptor yields the same fields.
func Configure(cfg *Config, anchor string) error {
	if cfg == nil {
		return fmt.Errorf("configure suite: nil config")
	}

	if err := validateSite(cfg.Site); err != nil {
		return err
	}

	sourceRoot, err := ResolveSourceRoot(anchor)
	if err != nil {
		return err
	}

	cfg.Name = SuiteName
	cfg.Format = TestFormat{Kind: FormatShell, Flag: true}

	cfg.SourceRoot = sourceRoot
	cfg.ExecRoot = cfg.Site.MyTestExecRoot

	// %compiler must come before %gcc
	cfg.Substitutions = []Substitution{
		{Token: CompilerToken, Replacement: cfg.Site.CompilerPath},
		{Token: GCCToken, Replacement: GCCCommand},
	}

	cfg.AvailableFeatures = NewFeatureSet(ShellFeature)

	cfg.Suffixes = []string{CSourceSuffix}

	return nil
}

// ResolveSourceRoot returns the absolute directory of the suite description at anchor.
// A directory anchor is used as is; a file anchor resolves to its parent directory.
func ResolveSourceRoot(anchor string) (string, error) {
	if strings.TrimSpace(anchor) == "" {
		return "", &InvalidPathError{Err: errEmptyPath}
	}

	abs, err := filepath.Abs(anchor)
	if err != nil {
		return "", &InvalidPathError{Path: anchor, Err: err}
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", &InvalidPathError{Path: abs, Err: err}
	}
	if info.IsDir() {
		return abs, nil
	}
	return filepath.Dir(abs), nil
}

func validateSite(site Site) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" {
			return field.Name
		}
		return name
	})

	err := validate.Struct(site)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MissingDependencyError{Field: fieldErrs[0].Field()}
	}
	return fmt.Errorf("validate site values: %w", err)
}

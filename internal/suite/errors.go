package suite

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrInvalidPath       = errors.New("invalid path")
	ErrInvalidCommand    = errors.New("invalid command")

	errEmptyPath = errors.New("path is empty")
)

// MissingDependencyError reports an injected value that was not set before configuration.
type MissingDependencyError struct {
	Field string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing dependency: %s must be set before the suite is configured", e.Field)
}

// Is matches ErrMissingDependency.
func (e *MissingDependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// InvalidPathError reports a source root that cannot be resolved.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid source root: %v", e.Err)
	}
	return fmt.Sprintf("invalid source root %q: %v", e.Path, e.Err)
}

// Is matches ErrInvalidPath.
func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// CommandError reports a RUN line that is not a valid shell command after substitution.
type CommandError struct {
	Line string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("invalid command %q: %v", e.Line, e.Err)
}

// Is matches ErrInvalidCommand.
func (e *CommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

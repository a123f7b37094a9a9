package stache

import (
	"errors"
	"fmt"
)

var (
	ErrTemplateNotFound   = errors.New("template not found")
	ErrPartialLoad        = errors.New("partial load failed")
	ErrInvalidHelperInput = errors.New("invalid helper input")
	ErrUnknownPackage     = errors.New("unknown asset package")
)

// TemplateError is returned when a top-level template cannot be resolved
// or read. It matches ErrTemplateNotFound.
type TemplateError struct {
	Name string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Name, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// PartialLoadError is returned when a partial root cannot be searched or a
// matched partial file cannot be read. A partial that simply does not
// exist is not an error.
type PartialLoadError struct {
	Name string
	Path string
	Err  error
}

func (e *PartialLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("partial %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("partial %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *PartialLoadError) Unwrap() error { return e.Err }

func (e *PartialLoadError) Is(target error) bool {
	return target == ErrPartialLoad
}

// HelperInputError reports malformed input passed to a template helper.
type HelperInputError struct {
	Helper string
	Input  string
	Reason string
}

func (e *HelperInputError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Helper, e.Reason, e.Input)
}

func (e *HelperInputError) Is(target error) bool {
	return target == ErrInvalidHelperInput
}

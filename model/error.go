package model

import (
	"errors"
	"fmt"
)

// Error definitions for the model package.
var (
	ErrMissingSParameters = errors.New("s_parameters cannot be nil if cachable")
	ErrMissingType        = errors.New("component_type cannot be empty")
	ErrNotImplemented     = errors.New("no s-parameter computation attached")
	ErrCachableCompute    = errors.New("cachable model cannot take a computation")
)

// DuplicateModelError reports a component type name that is already taken in
// its registry. Copying a model reports the same error, since any copy would
// collide on the name.
type DuplicateModelError struct {
	ComponentType string
}

func (e *DuplicateModelError) Error() string {
	return fmt.Sprintf("duplicate model name %q", e.ComponentType)
}

// Package model holds the component-model layer of an s-parameter
// simulation pipeline: device types, their scattering responses, and the
// registry that keeps device type names globally unique.
package model

import (
	"fmt"
	"hash/fnv"
)

// ComputeFunc calculates a scattering response from instance extras. A
// computation attached to a model must accept the named parameters that
// instances will pass and return the frequency/matrix pair shape.
type ComputeFunc func(extras map[string]any) (*SParameters, error)

// Model describes a reusable device type, but not a placed device. A ring
// resonator is a Model; the three ring resonators on a layout are
// circuit.Instance values referencing it.
//
// A cachable model carries its static s-parameters and serves them as-is. A
// non-cachable model computes its response on demand through a ComputeFunc
// attached after construction; until one is attached, retrieval fails with
// ErrNotImplemented.
//
// Models are built through Registry.NewModel (or model.New), never directly:
// taking the component type name is an atomic step of construction.
type Model struct {
	componentType string
	cachable      bool
	sparams       *SParameters
	compute       ComputeFunc
}

// ComponentType returns the model's unique name.
func (m *Model) ComponentType() string {
	return m.componentType
}

// Cachable reports whether the model serves static s-parameters.
func (m *Model) Cachable() bool {
	return m.cachable
}

// GetSParameters returns the model's scattering response. Cachable models
// return the pair supplied at construction unconditionally; extras are
// accepted for interface uniformity and ignored. Non-cachable models
// delegate to their attached computation, or fail with ErrNotImplemented if
// none was attached.
func (m *Model) GetSParameters(extras map[string]any) (*SParameters, error) {
	if m.cachable {
		return m.sparams, nil
	}
	if m.compute != nil {
		return m.compute(extras)
	}

	return nil, fmt.Errorf("model %q: %w", m.componentType, ErrNotImplemented)
}

// SetCompute attaches the computation a non-cachable model uses to produce
// its response. Cachable models are refused: their retrieval is defined to
// return the stored pair unconditionally.
func (m *Model) SetCompute(fn ComputeFunc) error {
	if m.cachable {
		return fmt.Errorf("model %q: %w", m.componentType, ErrCachableCompute)
	}

	m.compute = fn
	return nil
}

// Equal reports whether two models share component type and cachability.
// Names are globally unique per registry, so the name alone already
// discriminates; cachability is checked as well.
func (m *Model) Equal(other *Model) bool {
	if other == nil {
		return false
	}

	return m.componentType == other.componentType && m.cachable == other.cachable
}

// Hash returns a hash of the model's identity, derived from the component
// type alone so it is consistent with Equal's strongest discriminant.
func (m *Model) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(m.componentType))
	return h.Sum64()
}

// Clone always fails. A copy of a model would either collide with the
// original's registered name or silently diverge from it, so duplication is
// treated as a name collision outright.
func (m *Model) Clone() (*Model, error) {
	return nil, &DuplicateModelError{ComponentType: m.componentType}
}

func (m *Model) String() string {
	return fmt.Sprintf("model(component_type=%s, cachable=%t)", m.componentType, m.cachable)
}

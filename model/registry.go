package model

import (
	"sort"
	"sync"
)

// Registry maps component type names to models and enforces that a name,
// once taken, is never reused for the registry's lifetime (until Reset).
//
// The reserved-name set is tracked separately from the model map so that the
// two can only ever be cleared together: uniqueness bookkeeping and lookup
// must not fall out of sync.
type Registry struct {
	models   map[string]*Model
	reserved map[string]struct{}
	mu       sync.Mutex
}

// Default is the process-wide registry used by the package-level
// conveniences. Models of different device types share one namespace here
// unless an embedder scopes its own registry.
var Default = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models:   make(map[string]*Model),
		reserved: make(map[string]struct{}),
	}
}

// NewModel constructs a model and registers it under componentType as one
// atomic step. The cachable/data check runs before the name is reserved, so
// a failed construction leaves the name free.
func (r *Registry) NewModel(componentType string, sparams *SParameters, cachable bool) (*Model, error) {
	if componentType == "" {
		return nil, ErrMissingType
	}
	if cachable && sparams == nil {
		return nil, ErrMissingSParameters
	}

	m := &Model{
		componentType: componentType,
		cachable:      cachable,
	}
	if cachable {
		m.sparams = sparams
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.reserved[componentType]; taken {
		return nil, &DuplicateModelError{ComponentType: componentType}
	}

	r.reserved[componentType] = struct{}{}
	r.models[componentType] = m

	return m, nil
}

// Lookup returns the model registered under componentType.
func (r *Registry) Lookup(componentType string) (*Model, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.models[componentType]
	return m, ok
}

// List returns all registered models, sorted by component type.
func (r *Registry) List() []*Model {
	r.mu.Lock()
	defer r.mu.Unlock()

	models := make([]*Model, 0, len(r.models))
	for _, m := range r.models {
		models = append(models, m)
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].componentType < models[j].componentType
	})

	return models
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.models)
}

// Reset clears the model map and the reserved-name set together, freeing
// every name for re-registration. Models already captured by instances stay
// usable; a reset only empties the namespace.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.models = make(map[string]*Model)
	r.reserved = make(map[string]struct{})
}

// New constructs a model in the Default registry.
func New(componentType string, sparams *SParameters, cachable bool) (*Model, error) {
	return Default.NewModel(componentType, sparams, cachable)
}

// Lookup returns the model registered under componentType in the Default
// registry.
func Lookup(componentType string) (*Model, bool) {
	return Default.Lookup(componentType)
}

// Reset clears the Default registry.
func Reset() {
	Default.Reset()
}

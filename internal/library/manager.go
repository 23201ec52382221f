// Package library fills a model registry from a library config and keeps it
// in sync across reloads.
package library

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/lightpath-sim/lightpath/internal/config"
	"github.com/lightpath-sim/lightpath/model"
)

// Manager owns the registry a library config is loaded into.
type Manager struct {
	registry *model.Registry
	mu       sync.RWMutex
}

// NewManager creates a manager filling the given registry. A nil registry
// means the process-wide default.
func NewManager(registry *model.Registry) *Manager {
	if registry == nil {
		registry = model.Default
	}

	return &Manager{registry: registry}
}

// Registry returns the managed registry.
func (m *Manager) Registry() *model.Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// LoadFromConfig resets the registry and registers every model in the
// config. A reload is a full replacement of the namespace; models captured
// by existing instances stay usable. Static data is validated before the
// model is registered, so a bad entry never takes its name.
func (m *Manager) LoadFromConfig(cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registry.Reset()

	for name, mc := range cfg.Models {
		var sparams *model.SParameters
		if mc.SParameters != nil {
			sparams = mc.SParameters.ToSParameters()
			if err := sparams.Validate(); err != nil {
				return fmt.Errorf("library: model %q: %w", name, err)
			}
		}

		registered, err := m.registry.NewModel(name, sparams, mc.Cachable)
		if err != nil {
			return fmt.Errorf("library: model %q: %w", name, err)
		}

		slog.Info("Model registered", "component_type", registered.ComponentType(), "cachable", registered.Cachable())
	}

	return nil
}

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightpath-sim/lightpath/internal/config"
	"github.com/lightpath-sim/lightpath/model"
)

func testConfig(models map[string]config.ModelConfig) *config.Config {
	return &config.Config{Version: "1", Models: models}
}

func staticEntry() config.ModelConfig {
	return config.ModelConfig{
		Cachable: true,
		Ports:    1,
		SParameters: &config.SParamData{
			Frequencies: []float64{1e14, 2e14},
			Matrices: [][][]config.Complex{
				{{{0.1, 0}}},
				{{{0.2, 0.05}}},
			},
		},
	}
}

func TestManager_LoadFromConfig(t *testing.T) {
	reg := model.NewRegistry()
	manager := NewManager(reg)

	err := manager.LoadFromConfig(testConfig(map[string]config.ModelConfig{
		"wg1":       staticEntry(),
		"waveguide": {Cachable: false},
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	m, ok := reg.Lookup("wg1")
	require.True(t, ok)
	require.True(t, m.Cachable())

	sp, err := m.GetSParameters(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1e14, 2e14}, sp.Freqs)
	assert.Equal(t, complex(0.2, 0.05), sp.Matrices[1][0][0])

	// Non-cachable entries register without a computation.
	wg, ok := reg.Lookup("waveguide")
	require.True(t, ok)
	_, err = wg.GetSParameters(nil)
	assert.ErrorIs(t, err, model.ErrNotImplemented)
}

func TestManager_ReloadReplacesNamespace(t *testing.T) {
	reg := model.NewRegistry()
	manager := NewManager(reg)

	err := manager.LoadFromConfig(testConfig(map[string]config.ModelConfig{
		"wg1": staticEntry(),
	}))
	require.NoError(t, err)

	old, ok := reg.Lookup("wg1")
	require.True(t, ok)

	// Same name again: a reload is a full replacement, not an append.
	err = manager.LoadFromConfig(testConfig(map[string]config.ModelConfig{
		"wg1":  staticEntry(),
		"ring": {Cachable: false},
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	// The pre-reload reference stays usable.
	sp, err := old.GetSParameters(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sp.Points())
}

func TestManager_CachableWithoutDataFails(t *testing.T) {
	reg := model.NewRegistry()
	manager := NewManager(reg)

	err := manager.LoadFromConfig(testConfig(map[string]config.ModelConfig{
		"broken": {Cachable: true},
	}))
	require.ErrorIs(t, err, model.ErrMissingSParameters)
	assert.Equal(t, 0, reg.Len())
}

func TestManager_InconsistentDataFails(t *testing.T) {
	reg := model.NewRegistry()
	manager := NewManager(reg)

	err := manager.LoadFromConfig(testConfig(map[string]config.ModelConfig{
		"mismatched": {
			Cachable: true,
			SParameters: &config.SParamData{
				Frequencies: []float64{1e14, 2e14},
				Matrices:    [][][]config.Complex{{{{0.1, 0}}}},
			},
		},
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "2 frequency points but 1 matrices")

	// The bad entry never took its name.
	_, ok := reg.Lookup("mismatched")
	assert.False(t, ok)
}

func TestManager_NilRegistryUsesDefault(t *testing.T) {
	manager := NewManager(nil)
	assert.Same(t, model.Default, manager.Registry())
}

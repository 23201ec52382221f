// Package config loads and validates model library files: the YAML
// description of the component models a session registers.
package config

import "github.com/lightpath-sim/lightpath/model"

// Config is a model library: the set of component models to register.
type Config struct {
	Version string                 `json:"version" yaml:"version"`
	Models  map[string]ModelConfig `json:"models"  yaml:"models"`
}

// ModelConfig describes one component model in a library.
type ModelConfig struct {
	Cachable    bool        `json:"cachable"               yaml:"cachable"`
	Ports       int         `json:"ports,omitempty"        yaml:"ports,omitempty"`
	SParameters *SParamData `json:"s_parameters,omitempty" yaml:"s_parameters,omitempty"`
}

// Complex is a complex value on the wire: a [real, imaginary] pair.
type Complex [2]float64

// SParamData is the serialized form of a static scattering response.
// Matrices is indexed [frequency point][output port][input port].
type SParamData struct {
	Frequencies []float64     `json:"frequencies" yaml:"frequencies"`
	Matrices    [][][]Complex `json:"matrices"    yaml:"matrices"`
}

// ToSParameters converts the serialized data into the model layer's
// representation.
func (d *SParamData) ToSParameters() *model.SParameters {
	matrices := make([]model.Matrix, len(d.Matrices))
	for i, m := range d.Matrices {
		matrix := make(model.Matrix, len(m))
		for j, row := range m {
			matrix[j] = make([]complex128, len(row))
			for k, c := range row {
				matrix[j][k] = complex(c[0], c[1])
			}
		}
		matrices[i] = matrix
	}

	return &model.SParameters{
		Freqs:    append([]float64(nil), d.Frequencies...),
		Matrices: matrices,
	}
}

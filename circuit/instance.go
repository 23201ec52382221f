// Package circuit places component models in a layout. It knows nothing
// about solving circuits; it only binds models to nets, coordinates and
// instance parameters, and hands out s-parameters on behalf of its models.
package circuit

import (
	"errors"

	"github.com/lightpath-sim/lightpath/model"
)

// ErrNoModel reports a retrieval on an instance with no model attached.
var ErrNoModel = errors.New("instance has no model attached")

// Instance is one placed device: a reference to a Model plus everything
// specific to the placement. While a waveguide is a model, wg1, wg2 and wg3
// on a layout are instances of it. Many instances may share one model; the
// model holds no reference back.
//
// Extras are passed to the model's s-parameter retrieval by name. A
// non-cachable waveguide model might expect, for example, "length", "width"
// and "height" values here.
type Instance struct {
	// Model is the referenced device type. May be nil until assigned.
	Model *model.Model

	// Nets holds the instance's port connections, in port order.
	Nets []int

	// LayX and LayY are the placement coordinates in the overall layout.
	LayX float64
	LayY float64

	// Extras holds instance-specific parameters, keyed by name.
	Extras map[string]any
}

// NewInstance places a model. Nets and extras may be nil; they default to
// empty. Nets lengths are not checked against the model's port count here;
// that is the circuit builder's concern.
func NewInstance(m *model.Model, nets []int, layX, layY float64, extras map[string]any) *Instance {
	if nets == nil {
		nets = []int{}
	}
	if extras == nil {
		extras = map[string]any{}
	}

	return &Instance{
		Model:  m,
		Nets:   nets,
		LayX:   layX,
		LayY:   layY,
		Extras: extras,
	}
}

// GetSParameters retrieves the s-parameters from the linked model, passing
// the instance's extras. Errors from the model's retrieval propagate
// unmodified.
func (i *Instance) GetSParameters() (*model.SParameters, error) {
	if i.Model == nil {
		return nil, ErrNoModel
	}

	return i.Model.GetSParameters(i.Extras)
}

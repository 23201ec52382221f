package model

import "fmt"

// Matrix is one square scattering matrix, indexed [output port][input port].
type Matrix [][]complex128

// SParameters is a device's frequency-domain scattering response: a frequency
// vector and one scattering matrix per frequency point. Consumers expect the
// two sequences to have matching length; Validate checks that, but direct
// constructions are not forced through it.
type SParameters struct {
	// Freqs holds the frequency points, in Hz.
	Freqs []float64

	// Matrices holds one square matrix per entry in Freqs.
	Matrices []Matrix
}

// Points returns the number of frequency points.
func (sp *SParameters) Points() int {
	return len(sp.Freqs)
}

// Validate checks that the frequency and matrix sequences have matching
// length and that every matrix is square.
func (sp *SParameters) Validate() error {
	if len(sp.Freqs) != len(sp.Matrices) {
		return fmt.Errorf("s-parameters: %d frequency points but %d matrices", len(sp.Freqs), len(sp.Matrices))
	}

	for i, m := range sp.Matrices {
		for _, row := range m {
			if len(row) != len(m) {
				return fmt.Errorf("s-parameters: matrix at point %d is not square", i)
			}
		}
	}

	return nil
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSParameters_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sp      SParameters
		wantErr string
	}{
		{
			name: "matching lengths, square matrices",
			sp: SParameters{
				Freqs: []float64{1e14, 2e14},
				Matrices: []Matrix{
					{{0, 1}, {1, 0}},
					{{0, 1}, {1, 0}},
				},
			},
		},
		{
			name:    "empty",
			sp:      SParameters{},
			wantErr: "",
		},
		{
			name: "length mismatch",
			sp: SParameters{
				Freqs:    []float64{1e14, 2e14},
				Matrices: []Matrix{{{0}}},
			},
			wantErr: "2 frequency points but 1 matrices",
		},
		{
			name: "non-square matrix",
			sp: SParameters{
				Freqs:    []float64{1e14},
				Matrices: []Matrix{{{0, 1}}},
			},
			wantErr: "matrix at point 0 is not square",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sp.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSParameters_Points(t *testing.T) {
	sp := SParameters{Freqs: []float64{1e14, 2e14, 3e14}}
	assert.Equal(t, 3, sp.Points())
}

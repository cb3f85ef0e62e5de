package network

import (
	"fmt"
)

// SMatrixSource is the capability shared by stored-data networks and
// equation-defined networks: a scattering matrix at a given frequency.
type SMatrixSource interface {
	Ports() int
	Z0() complex128
	SMatrixAt(freq float64) ([][]complex128, error)
}

// EquationNetwork defines scattering parameters in closed form as a
// function of frequency instead of stored samples.
type EquationNetwork struct {
	ports int
	z0    complex128
	fn    func(freq float64) [][]complex128
}

// equationTrialFreq is the frequency used to shape-check the generator
// at construction time.
const equationTrialFreq = 1.0

// NewEquation validates the generator by evaluating it once and
// checking the result is ports times ports.
func NewEquation(ports int, z0 complex128, fn func(freq float64) [][]complex128) (*EquationNetwork, error) {
	if ports <= 0 {
		return nil, fmt.Errorf("port count must be positive, got %d", ports)
	}
	if fn == nil {
		return nil, fmt.Errorf("generator function must not be nil")
	}

	trial := fn(equationTrialFreq)
	if len(trial) != ports {
		return nil, fmt.Errorf("generator produced %d rows, want %d", len(trial), ports)
	}
	for r, row := range trial {
		if len(row) != ports {
			return nil, fmt.Errorf("generator row %d has %d columns, want %d", r, len(row), ports)
		}
	}

	return &EquationNetwork{ports: ports, z0: z0, fn: fn}, nil
}

func (e *EquationNetwork) Ports() int { return e.ports }

func (e *EquationNetwork) Z0() complex128 { return e.z0 }

func (e *EquationNetwork) SMatrixAt(freq float64) ([][]complex128, error) {
	s := e.fn(freq)
	if len(s) != e.ports {
		return nil, fmt.Errorf("generator produced %d rows at f=%g, want %d", len(s), freq, e.ports)
	}
	return s, nil
}

// Sample materializes the equation network into a stored-data Network
// at the given frequencies.
func (e *EquationNetwork) Sample(freqs []float64) (*Network, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("sampling needs at least one frequency")
	}

	sparams := make([][][]complex128, len(freqs))
	for i, f := range freqs {
		s, err := e.SMatrixAt(f)
		if err != nil {
			return nil, fmt.Errorf("sampling at f=%g: %v", f, err)
		}
		sparams[i] = s
	}

	return New(e.z0, freqs, sparams)
}

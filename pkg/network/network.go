// Package network holds the canonical frequency-indexed scattering
// parameter data model shared by the Touchstone format engine and the
// analysis routines.
package network

import (
	"fmt"
	"math/cmplx"
)

// Network is an n-port network sampled at a list of frequencies. Row
// index is the output port, column index the input port. A Network is
// read-only once built; use Builder or New to construct one.
type Network struct {
	ports   int
	z0      complex128
	freqs   []float64
	sparams [][][]complex128
}

// New builds a Network from explicit frequency and matrix slices.
// Every matrix must be square with the same dimension.
func New(z0 complex128, freqs []float64, sparams [][][]complex128) (*Network, error) {
	if len(freqs) != len(sparams) {
		return nil, fmt.Errorf("frequency count %d does not match matrix count %d", len(freqs), len(sparams))
	}
	if len(sparams) == 0 {
		return nil, fmt.Errorf("network needs at least one frequency point")
	}

	ports := len(sparams[0])
	for i, m := range sparams {
		if len(m) != ports {
			return nil, fmt.Errorf("matrix %d has %d rows, want %d", i, len(m), ports)
		}
		for r, row := range m {
			if len(row) != ports {
				return nil, fmt.Errorf("matrix %d row %d has %d columns, want %d", i, r, len(row), ports)
			}
		}
	}

	return &Network{
		ports:   ports,
		z0:      z0,
		freqs:   freqs,
		sparams: sparams,
	}, nil
}

// NewOnePort builds a 1-port Network from a flat list of reflection
// coefficients, one per frequency.
func NewOnePort(z0 complex128, freqs []float64, s11 []complex128) (*Network, error) {
	sparams := make([][][]complex128, len(s11))
	for i, v := range s11 {
		sparams[i] = [][]complex128{{v}}
	}
	return New(z0, freqs, sparams)
}

func (n *Network) Ports() int { return n.ports }

func (n *Network) Z0() complex128 { return n.z0 }

func (n *Network) NumPoints() int { return len(n.freqs) }

// Frequencies returns a copy of the frequency list in sample order.
func (n *Network) Frequencies() []float64 {
	out := make([]float64, len(n.freqs))
	copy(out, n.freqs)
	return out
}

// Frequency returns the i-th sample frequency.
func (n *Network) Frequency(i int) float64 { return n.freqs[i] }

// SMatrix returns the scattering matrix at sample index i. Callers
// must not modify the returned slices.
func (n *Network) SMatrix(i int) [][]complex128 { return n.sparams[i] }

// S returns entry S(row,col) at sample index i, ports numbered from 1.
func (n *Network) S(i, row, col int) complex128 { return n.sparams[i][row-1][col-1] }

// SMatrixAt returns the scattering matrix stored for frequency freq.
// Only exact stored frequencies are available; no interpolation.
func (n *Network) SMatrixAt(freq float64) ([][]complex128, error) {
	for i, f := range n.freqs {
		if f == freq {
			return n.sparams[i], nil
		}
	}
	return nil, fmt.Errorf("no sample at frequency %g", freq)
}

// Equal reports exact element-wise equality of all fields. No
// tolerance is applied.
func (n *Network) Equal(o *Network) bool {
	if n.ports != o.ports || n.z0 != o.z0 || len(n.freqs) != len(o.freqs) {
		return false
	}
	for i := range n.freqs {
		if n.freqs[i] != o.freqs[i] {
			return false
		}
	}
	for i := range n.sparams {
		for r := range n.sparams[i] {
			for c := range n.sparams[i][r] {
				if n.sparams[i][r][c] != o.sparams[i][r][c] {
					return false
				}
			}
		}
	}
	return true
}

// IsPassive reports whether every scattering entry across all
// frequencies has magnitude at most one.
func (n *Network) IsPassive() bool {
	for _, m := range n.sparams {
		for _, row := range m {
			for _, v := range row {
				if cmplx.Abs(v) > 1 {
					return false
				}
			}
		}
	}
	return true
}

// Builder accumulates parsed rows before freezing them into a Network.
// The Touchstone reader appends one row per data line; ports and the
// reference impedance track the most recent row.
type Builder struct {
	ports   int
	z0      complex128
	freqs   []float64
	sparams [][][]complex128
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AppendRow records one frequency sample. The port count and reference
// impedance are overwritten on every call; only frequencies and
// matrices accumulate.
func (b *Builder) AppendRow(freq float64, s [][]complex128, z0 complex128) {
	b.ports = len(s)
	b.z0 = z0
	b.freqs = append(b.freqs, freq)
	b.sparams = append(b.sparams, s)
}

func (b *Builder) Len() int { return len(b.freqs) }

// Build freezes the accumulated rows into a read-only Network.
func (b *Builder) Build() *Network {
	return &Network{
		ports:   b.ports,
		z0:      b.z0,
		freqs:   b.freqs,
		sparams: b.sparams,
	}
}

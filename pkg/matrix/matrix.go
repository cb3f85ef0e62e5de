package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// ComplexMatrix wraps a sparse complex matrix for the small dense
// linear systems that show up in parameter-space conversion.
// Indices are 1-based, matching the underlying solver.
type ComplexMatrix struct {
	Size    int
	matrix  *sparse.Matrix
	rhs     []float64
	rhsImag []float64
	config  *sparse.Configuration
}

func NewComplex(size int) (*ComplexMatrix, error) {
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	vectorSize := size + 1 // 1-based indexing
	return &ComplexMatrix{
		Size:    size,
		matrix:  mat,
		rhs:     make([]float64, vectorSize),
		rhsImag: make([]float64, vectorSize),
		config:  config,
	}, nil
}

func (m *ComplexMatrix) Set(i, j int, value complex128) error {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return fmt.Errorf("matrix index out of bounds (i=%d, j=%d, size=%d)", i, j, m.Size)
	}

	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real = real(value)
	element.Imag = imag(value)
	return nil
}

func (m *ComplexMatrix) Add(i, j int, value complex128) error {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return fmt.Errorf("matrix index out of bounds (i=%d, j=%d, size=%d)", i, j, m.Size)
	}

	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real(value)
	element.Imag += imag(value)
	return nil
}

func (m *ComplexMatrix) Factor() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}
	return nil
}

// Solve solves the factored system for one right-hand side. The input
// slice is 0-based with length Size; Factor must have succeeded first.
func (m *ComplexMatrix) Solve(rhs []complex128) ([]complex128, error) {
	if len(rhs) != m.Size {
		return nil, fmt.Errorf("rhs size %d does not match matrix size %d", len(rhs), m.Size)
	}

	for i, v := range rhs {
		m.rhs[i+1] = real(v)
		m.rhsImag[i+1] = imag(v)
	}

	solReal, solImag, err := m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return nil, fmt.Errorf("matrix solve failed: %v", err)
	}

	solution := make([]complex128, m.Size)
	for i := range solution {
		solution[i] = complex(solReal[i+1], solImag[i+1])
	}
	return solution, nil
}

func (m *ComplexMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
		m.rhsImag[i] = 0
	}
}

func (m *ComplexMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
	}
}

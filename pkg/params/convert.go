// Package params converts impedance and admittance parameter matrices
// into scattering form at a uniform reference impedance.
package params

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"rfnet/pkg/matrix"
)

// ErrSingular indicates the matrix to invert has no inverse.
var ErrSingular = errors.New("params: conversion matrix is singular")

// ZToS converts an n-by-n impedance matrix to scattering parameters:
// S = (Z - Z0*I)(Z + Z0*I)^-1.
func ZToS(z [][]complex128, z0 complex128) ([][]complex128, error) {
	n, err := squareDim(z)
	if err != nil {
		return nil, err
	}

	a := mat.NewCDense(n, n, nil) // Z - Z0*I
	b := mat.NewCDense(n, n, nil) // Z + Z0*I
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, z[i][j])
			b.Set(i, j, z[i][j])
		}
		a.Set(i, i, z[i][i]-z0)
		b.Set(i, i, z[i][i]+z0)
	}

	return mulInverse(a, b, n)
}

// YToS converts an n-by-n admittance matrix to scattering parameters:
// S = (I - Z0*Y)(I + Z0*Y)^-1.
func YToS(y [][]complex128, z0 complex128) ([][]complex128, error) {
	n, err := squareDim(y)
	if err != nil {
		return nil, err
	}

	a := mat.NewCDense(n, n, nil) // I - Z0*Y
	b := mat.NewCDense(n, n, nil) // I + Z0*Y
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, -z0*y[i][j])
			b.Set(i, j, z0*y[i][j])
		}
		a.Set(i, i, 1-z0*y[i][i])
		b.Set(i, i, 1+z0*y[i][i])
	}

	return mulInverse(a, b, n)
}

func squareDim(m [][]complex128) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, fmt.Errorf("empty parameter matrix")
	}
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("parameter matrix row %d has %d columns, want %d", i, len(row), n)
		}
	}
	return n, nil
}

// mulInverse computes A * B^-1 via a complex LU factorization of B,
// solving one unit column at a time.
func mulInverse(a, b *mat.CDense, n int) ([][]complex128, error) {
	lu, err := matrix.NewComplex(n)
	if err != nil {
		return nil, err
	}
	defer lu.Destroy()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := lu.Set(i+1, j+1, b.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	if err := lu.Factor(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	binv := mat.NewCDense(n, n, nil)
	rhs := make([]complex128, n)
	for col := 0; col < n; col++ {
		for i := range rhs {
			rhs[i] = 0
		}
		rhs[col] = 1

		x, err := lu.Solve(rhs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		for row := 0; row < n; row++ {
			binv.Set(row, col, x[row])
		}
	}

	s := make([][]complex128, n)
	for i := 0; i < n; i++ {
		s[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			var sum complex128
			for k := 0; k < n; k++ {
				sum += a.At(i, k) * binv.At(k, j)
			}
			s[i][j] = sum
		}
	}
	return s, nil
}

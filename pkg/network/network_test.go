package network

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoByTwo(a, b, c, d complex128) [][]complex128 {
	return [][]complex128{{a, b}, {c, d}}
}

func TestNewValidatesShapes(t *testing.T) {
	_, err := New(50, []float64{1, 2}, [][][]complex128{twoByTwo(0, 0, 0, 0)})
	require.Error(t, err, "frequency/matrix count mismatch")

	_, err = New(50, nil, nil)
	require.Error(t, err, "empty network")

	ragged := [][]complex128{{0, 0}, {0}}
	_, err = New(50, []float64{1}, [][][]complex128{ragged})
	require.Error(t, err, "non-square matrix")

	mixed := [][][]complex128{twoByTwo(0, 0, 0, 0), {{0}}}
	_, err = New(50, []float64{1, 2}, mixed)
	require.Error(t, err, "port count changes between matrices")
}

func TestNewOnePortNormalizes(t *testing.T) {
	net, err := NewOnePort(50, []float64{1, 2}, []complex128{0.5, 0.25})
	require.NoError(t, err)

	require.Equal(t, 1, net.Ports())
	require.Equal(t, complex128(0.5), net.S(0, 1, 1))
	require.Equal(t, complex128(0.25), net.S(1, 1, 1))
}

func TestEqualIsExact(t *testing.T) {
	build := func(v complex128) *Network {
		n, err := New(50, []float64{1}, [][][]complex128{twoByTwo(v, 0, 0, 0)})
		require.NoError(t, err)
		return n
	}

	a := build(0.5)
	require.True(t, a.Equal(build(0.5)))
	require.False(t, a.Equal(build(0.5+1e-16i)), "no tolerance")

	b, err := New(75, []float64{1}, [][][]complex128{twoByTwo(0.5, 0, 0, 0)})
	require.NoError(t, err)
	require.False(t, a.Equal(b), "reference impedance differs")

	c, err := New(50, []float64{2}, [][][]complex128{twoByTwo(0.5, 0, 0, 0)})
	require.NoError(t, err)
	require.False(t, a.Equal(c), "frequency differs")
}

func TestIsPassive(t *testing.T) {
	passive, err := New(50, []float64{1}, [][][]complex128{twoByTwo(0.5, 1, 0.2, -0.9)})
	require.NoError(t, err)
	require.True(t, passive.IsPassive())

	active, err := New(50, []float64{1}, [][][]complex128{twoByTwo(0.5, 1.5, 0.2, -0.9)})
	require.NoError(t, err)
	require.False(t, active.IsPassive())
}

func TestBuilderTracksLastRow(t *testing.T) {
	b := NewBuilder()
	b.AppendRow(1, [][]complex128{{0.5}}, 50)
	b.AppendRow(2, [][]complex128{{0.25}}, 75)
	require.Equal(t, 2, b.Len())

	net := b.Build()
	require.Equal(t, 1, net.Ports())
	require.Equal(t, complex128(75), net.Z0(), "impedance reflects the last row")
	require.Equal(t, []float64{1, 2}, net.Frequencies())
}

func TestSMatrixAtExactLookup(t *testing.T) {
	net, err := NewOnePort(50, []float64{1e9, 2e9}, []complex128{0.5, 0.25})
	require.NoError(t, err)

	m, err := net.SMatrixAt(2e9)
	require.NoError(t, err)
	require.Equal(t, complex128(0.25), m[0][0])

	_, err = net.SMatrixAt(1.5e9)
	require.Error(t, err, "no interpolation")
}

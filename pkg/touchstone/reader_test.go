package touchstone

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTwoPortMA(t *testing.T) {
	input := `! sample amplifier data
# GHz S MA R 50
1.000000 0.5 30 0.01 170 0.01 170 0.6 -30
`
	net, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, net.Ports())
	require.Equal(t, 1, net.NumPoints())
	require.Equal(t, 1e9, net.Frequency(0))
	require.Equal(t, complex(50, 0), net.Z0())

	// Expectations mirror the reader's arithmetic: degree values held
	// in float64 variables, not folded constant expressions.
	inPolar := func(got complex128, mag, deg float64) {
		t.Helper()
		require.InDelta(t, mag*math.Cos(deg*math.Pi/180), real(got), 1e-15)
		require.InDelta(t, mag*math.Sin(deg*math.Pi/180), imag(got), 1e-15)
	}
	inPolar(net.S(0, 1, 1), 0.5, 30)
	inPolar(net.S(0, 2, 1), 0.01, 170)
	inPolar(net.S(0, 1, 2), 0.01, 170)
	inPolar(net.S(0, 2, 2), 0.6, -30)
}

func TestReadDefaultsWithoutOptionLine(t *testing.T) {
	// No option line at all: GHz, S, MA, 50 ohm.
	net, err := Read(strings.NewReader("2.5 0.8 0\n"))
	require.NoError(t, err)

	require.Equal(t, 1, net.Ports())
	require.Equal(t, 2.5e9, net.Frequency(0))
	require.Equal(t, complex(50, 0), net.Z0())
	require.Equal(t, complex(0.8, 0), net.S(0, 1, 1))
}

func TestReadEmptyOptionLine(t *testing.T) {
	net, err := Read(strings.NewReader("#\n1 0.5 0\n"))
	require.NoError(t, err)
	require.Equal(t, 1e9, net.Frequency(0))
	require.Equal(t, complex(50, 0), net.Z0())
}

func TestReadFrequencyUnits(t *testing.T) {
	cases := []struct {
		unit string
		want float64
	}{
		{"Hz", 1},
		{"KHz", 1e3},
		{"mhz", 1e6},
		{"GHZ", 1e9},
	}
	for _, tc := range cases {
		net, err := Read(strings.NewReader("# " + tc.unit + " S RI R 50\n3 0.1 0\n"))
		require.NoError(t, err, "unit %s", tc.unit)
		require.Equal(t, 3*tc.want, net.Frequency(0), "unit %s", tc.unit)
	}
}

func TestReadLenientOptionTokens(t *testing.T) {
	// Unrecognized unit, type and format keep the previous settings.
	input := "# parsec Q XY R 75\n1 0.5 0\n"
	net, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 1e9, net.Frequency(0), "unknown unit keeps GHz")
	require.Equal(t, complex(75, 0), net.Z0())
	require.Equal(t, complex(0.5, 0), net.S(0, 1, 1), "unknown format keeps MA")
}

func TestReadMultipleOptionLines(t *testing.T) {
	input := `# Hz S RI R 50
1 0.25 0.25
# MHz S RI R 50
1 0.5 -0.5
`
	net, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, net.NumPoints())
	require.Equal(t, 1.0, net.Frequency(0))
	require.Equal(t, 1e6, net.Frequency(1))
	require.Equal(t, complex(0.25, 0.25), net.S(0, 1, 1))
	require.Equal(t, complex(0.5, -0.5), net.S(1, 1, 1))
}

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	input := "! header\n\n# Hz S RI R 50\n! mid-file comment\n1 0.1 0\n\n2 0.2 0\n"
	net, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, net.NumPoints())
}

func TestReadPortInference(t *testing.T) {
	// 9 tokens: 2 ports.
	net, err := Read(strings.NewReader("# Hz S RI R 50\n1 1 0 2 0 3 0 4 0\n"))
	require.NoError(t, err)
	require.Equal(t, 2, net.Ports())

	// 8 tokens: (8-1)/2 is not an integer square.
	_, err = Read(strings.NewReader("# Hz S RI R 50\n1 1 0 2 0 3 0 4\n"))
	require.ErrorIs(t, err, ErrBadRow)
	require.Contains(t, err.Error(), "8 tokens")
}

func TestReadBadNumberToken(t *testing.T) {
	_, err := Read(strings.NewReader("# Hz S RI R 50\n1 0.5 bogus\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestReadImpedanceRow(t *testing.T) {
	// Z = 75 ohm at Z0 = 50 gives S11 = (75-50)/(75+50) = 0.2.
	net, err := Read(strings.NewReader("# Hz Z RI R 50\n1 75 0\n"))
	require.NoError(t, err)

	require.InDelta(t, 0.2, real(net.S(0, 1, 1)), 1e-12)
	require.InDelta(t, 0, imag(net.S(0, 1, 1)), 1e-12)
}

func TestReadAdmittanceRow(t *testing.T) {
	// Y = 1/75 S at Z0 = 50 is the same 75 ohm load: S11 = 0.2.
	y := 1.0 / 75.0
	net, err := Read(strings.NewReader("# Hz Y RI R 50\n1 " + ftoa(y) + " 0\n"))
	require.NoError(t, err)

	require.InDelta(t, 0.2, real(net.S(0, 1, 1)), 1e-12)
}

func TestReadUnsupportedParamType(t *testing.T) {
	for _, pt := range []string{"H", "G"} {
		_, err := Read(strings.NewReader("# GHz " + pt + " MA R 50\n1 0.5 0\n"))
		require.ErrorIs(t, err, ErrUnsupportedType, "type %s", pt)
	}
}

func TestReadRowErrorReturnsNoPartialNetwork(t *testing.T) {
	input := "# Hz S RI R 50\n1 0.1 0\n2 0.2 0 0.3\n"
	net, err := Read(strings.NewReader(input))
	require.ErrorIs(t, err, ErrBadRow)
	require.Nil(t, net)
}

package analysis

import (
	"math"
	"math/cmplx"

	"rfnet/pkg/network"
)

// MUG returns the maximum unilateral gain at every frequency:
// |S21|^2 / ((1 - |S11|^2)(1 - |S22|^2)).
func MUG(net *network.Network) ([]float64, error) {
	if err := checkTwoPort(net); err != nil {
		return nil, err
	}

	out := make([]float64, net.NumPoints())
	for i := range out {
		out[i] = mugAt(net, i)
	}
	return out, nil
}

// MUGAt returns the maximum unilateral gain at one frequency index.
func MUGAt(net *network.Network, i int) (float64, error) {
	if err := checkTwoPort(net); err != nil {
		return 0, err
	}
	return mugAt(net, i), nil
}

func mugAt(net *network.Network, i int) float64 {
	s11 := cmplx.Abs(net.S(i, 1, 1))
	s21 := cmplx.Abs(net.S(i, 2, 1))
	s22 := cmplx.Abs(net.S(i, 2, 2))
	return s21 * s21 / ((1 - s11*s11) * (1 - s22*s22))
}

// MSG returns the maximum stable gain |S21| / |S12| at every frequency.
func MSG(net *network.Network) ([]float64, error) {
	if err := checkTwoPort(net); err != nil {
		return nil, err
	}

	out := make([]float64, net.NumPoints())
	for i := range out {
		out[i] = msgAt(net, i)
	}
	return out, nil
}

// MSGAt returns the maximum stable gain at one frequency index.
func MSGAt(net *network.Network, i int) (float64, error) {
	if err := checkTwoPort(net); err != nil {
		return 0, err
	}
	return msgAt(net, i), nil
}

func msgAt(net *network.Network, i int) float64 {
	return cmplx.Abs(net.S(i, 2, 1)) / cmplx.Abs(net.S(i, 1, 2))
}

// MAG returns the maximum available gain at every frequency. Where the
// device is not unconditionally stable (K <= 1) the gain is undefined
// and reported as NaN rather than an error.
func MAG(net *network.Network) ([]float64, error) {
	if err := checkTwoPort(net); err != nil {
		return nil, err
	}

	out := make([]float64, net.NumPoints())
	for i := range out {
		out[i] = magAt(net, i)
	}
	return out, nil
}

// MAGAt returns the maximum available gain at one frequency index.
func MAGAt(net *network.Network, i int) (float64, error) {
	if err := checkTwoPort(net); err != nil {
		return 0, err
	}
	return magAt(net, i), nil
}

func magAt(net *network.Network, i int) float64 {
	k := kAt(net, i)
	if !(k > 1) {
		return math.NaN()
	}
	return msgAt(net, i) / (k + math.Sqrt(k*k-1))
}

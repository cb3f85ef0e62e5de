// Package analysis derives stability and gain figures of merit from a
// two-port scattering parameter network.
package analysis

import (
	"errors"
	"fmt"
	"math/cmplx"

	"rfnet/pkg/network"
)

// ErrNotTwoPort indicates a metric was requested for a network whose
// port count is not two.
var ErrNotTwoPort = errors.New("analysis: network must have exactly two ports")

func checkTwoPort(net *network.Network) error {
	if net.Ports() != 2 {
		return fmt.Errorf("%w, got %d", ErrNotTwoPort, net.Ports())
	}
	return nil
}

// Delta returns the scattering matrix determinant at every frequency.
func Delta(net *network.Network) ([]complex128, error) {
	if err := checkTwoPort(net); err != nil {
		return nil, err
	}

	out := make([]complex128, net.NumPoints())
	for i := range out {
		out[i] = deltaAt(net, i)
	}
	return out, nil
}

// DeltaAt returns the determinant at one frequency index.
func DeltaAt(net *network.Network, i int) (complex128, error) {
	if err := checkTwoPort(net); err != nil {
		return 0, err
	}
	return deltaAt(net, i), nil
}

func deltaAt(net *network.Network, i int) complex128 {
	return net.S(i, 1, 1)*net.S(i, 2, 2) - net.S(i, 1, 2)*net.S(i, 2, 1)
}

// K returns the Rollet stability factor at every frequency:
// (1 - |S11|^2 - |S22|^2 + |D|^2) / (2 |S12| |S21|).
func K(net *network.Network) ([]float64, error) {
	if err := checkTwoPort(net); err != nil {
		return nil, err
	}

	out := make([]float64, net.NumPoints())
	for i := range out {
		out[i] = kAt(net, i)
	}
	return out, nil
}

// KAt returns the Rollet stability factor at one frequency index.
func KAt(net *network.Network, i int) (float64, error) {
	if err := checkTwoPort(net); err != nil {
		return 0, err
	}
	return kAt(net, i), nil
}

func kAt(net *network.Network, i int) float64 {
	s11 := cmplx.Abs(net.S(i, 1, 1))
	s22 := cmplx.Abs(net.S(i, 2, 2))
	d := cmplx.Abs(deltaAt(net, i))
	denom := 2 * cmplx.Abs(net.S(i, 1, 2)) * cmplx.Abs(net.S(i, 2, 1))
	return (1 - s11*s11 - s22*s22 + d*d) / denom
}

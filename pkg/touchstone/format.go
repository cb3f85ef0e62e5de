// Package touchstone reads and writes Touchstone network-parameter
// files into the rfnet network data model.
package touchstone

import (
	"math"
	"math/cmplx"
)

// Format is one of the three numeric encodings a Touchstone file can
// use for complex values. It is the single source of numeric-format
// semantics for both the reader and the writer.
type Format int

const (
	FormatMA Format = iota // magnitude / angle (degrees)
	FormatDB               // dB magnitude / angle (degrees)
	FormatRI               // real / imaginary
)

func (f Format) String() string {
	switch f {
	case FormatMA:
		return "MA"
	case FormatDB:
		return "DB"
	case FormatRI:
		return "RI"
	}
	return "??"
}

// Decode turns a token pair into a complex value. Any two finite reals
// are valid input; the format fully determines the transform.
func (f Format) Decode(a, b float64) complex128 {
	switch f {
	case FormatMA:
		return cmplx.Rect(a, b*math.Pi/180)
	case FormatDB:
		return cmplx.Rect(math.Pow(10, a/20), b*math.Pi/180)
	default: // FormatRI
		return complex(a, b)
	}
}

// Encode is the inverse of Decode.
func (f Format) Encode(v complex128) (a, b float64) {
	switch f {
	case FormatMA:
		return cmplx.Abs(v), cmplx.Phase(v) * 180 / math.Pi
	case FormatDB:
		return 20 * math.Log10(cmplx.Abs(v)), cmplx.Phase(v) * 180 / math.Pi
	default: // FormatRI
		return real(v), imag(v)
	}
}

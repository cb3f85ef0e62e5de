package util

import (
	"fmt"
	"math"
)

func FormatFrequency(freq float64) string {
	switch {
	case freq >= 1e9:
		return fmt.Sprintf("%8.4f GHz", freq/1e9)
	case freq >= 1e6:
		return fmt.Sprintf("%8.4f MHz", freq/1e6)
	case freq >= 1e3:
		return fmt.Sprintf("%8.4f kHz", freq/1e3)
	default:
		return fmt.Sprintf("%8.4f Hz ", freq)
	}
}

func FormatMagnitude(value float64) string {
	if math.IsNaN(value) {
		return "     n/a"
	}
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", value) // "  90.0"
}

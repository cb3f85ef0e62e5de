package touchstone

import (
	"strconv"
	"strings"

	"rfnet/internal/consts"
)

// ParamType is the network parameter kind named on an option line.
type ParamType int

const (
	ParamS ParamType = iota
	ParamY
	ParamZ
	ParamG
	ParamH
)

func (p ParamType) String() string {
	return [...]string{"S", "Y", "Z", "G", "H"}[p]
}

// options is the active option set for subsequent data lines. An
// option line fully overwrites it; unrecognized tokens keep the
// previous value (lenient, for compatibility with real-world files).
type options struct {
	freqMul   float64
	paramType ParamType
	format    Format
	z0        float64
}

func defaultOptions() options {
	return options{
		freqMul:   consts.DefaultFreqMul,
		paramType: ParamS,
		format:    FormatMA,
		z0:        consts.DefaultZ0,
	}
}

var freqUnits = map[string]float64{
	"HZ":  1,
	"KHZ": 1e3,
	"MHZ": 1e6,
	"GHZ": 1e9,
}

var paramTypes = map[string]ParamType{
	"S": ParamS,
	"Y": ParamY,
	"Z": ParamZ,
	"G": ParamG,
	"H": ParamH,
}

var formats = map[string]Format{
	"MA": FormatMA,
	"DB": FormatDB,
	"RI": FormatRI,
}

// parseOptions interprets the remainder of a "#" line positionally:
// frequency unit, parameter type, numeric format, the literal "R"
// (assumed present, not validated), then the reference impedance.
// An empty remainder means all defaults.
func (o *options) parseOptions(rest string) error {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		*o = defaultOptions()
		return nil
	}

	if mul, ok := freqUnits[strings.ToUpper(fields[0])]; ok {
		o.freqMul = mul
	}
	if len(fields) > 1 {
		if pt, ok := paramTypes[strings.ToUpper(fields[1])]; ok {
			o.paramType = pt
		}
	}
	if len(fields) > 2 {
		if f, ok := formats[strings.ToUpper(fields[2])]; ok {
			o.format = f
		}
	}
	// fields[3] is taken to be the "R" keyword.
	if len(fields) > 4 {
		z0, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return err
		}
		o.z0 = z0
	}

	return nil
}

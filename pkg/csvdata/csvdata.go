// Package csvdata ingests simulator CSV exports into the network data
// model. The expected layout is a header row followed by one row per
// frequency: a frequency column in Hz, then two columns per scattering
// entry in row-major order. Column name suffixes select the encoding:
// "_re"/"_im" pairs are rectangular, "_mag"/"_deg" polar and
// "_db"/"_deg" polar with dB magnitude.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"rfnet/internal/consts"
	"rfnet/pkg/network"
	"rfnet/pkg/touchstone"
)

// ReadFile loads a CSV export into a Network at the default reference
// impedance.
func ReadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening csv file: %v", err)
	}
	defer f.Close()

	net, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, err)
	}
	return net, nil
}

func Read(r io.Reader) (*network.Network, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %v", err)
	}

	ports, format, err := headerLayout(header)
	if err != nil {
		return nil, err
	}

	builder := network.NewBuilder()
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv record: %v", err)
		}

		values := make([]float64, len(record))
		for i, field := range record {
			values[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q in csv record: %v", field, err)
			}
		}

		m := make([][]complex128, ports)
		k := 1
		for i := 0; i < ports; i++ {
			m[i] = make([]complex128, ports)
			for j := 0; j < ports; j++ {
				m[i][j] = format.Decode(values[k], values[k+1])
				k += 2
			}
		}
		builder.AppendRow(values[0], m, complex(consts.DefaultZ0, 0))
	}

	if builder.Len() == 0 {
		return nil, fmt.Errorf("csv input has no data records")
	}
	return builder.Build(), nil
}

// headerLayout derives the port count and numeric encoding from the
// header row. The first column is the frequency; the rest must be an
// even number of value columns forming a square matrix.
func headerLayout(header []string) (int, touchstone.Format, error) {
	pairs := len(header) - 1
	if pairs <= 0 || pairs%2 != 0 {
		return 0, 0, fmt.Errorf("csv header has %d value columns, want an even count", pairs)
	}

	ports := int(math.Sqrt(float64(pairs / 2)))
	if ports*ports != pairs/2 {
		return 0, 0, fmt.Errorf("csv header implies %g matrix entries, want a square count", float64(pairs)/2)
	}

	first := strings.ToLower(strings.TrimSpace(header[1]))
	var format touchstone.Format
	switch {
	case strings.HasSuffix(first, "_re"):
		format = touchstone.FormatRI
	case strings.HasSuffix(first, "_mag"):
		format = touchstone.FormatMA
	case strings.HasSuffix(first, "_db"):
		format = touchstone.FormatDB
	default:
		return 0, 0, fmt.Errorf("cannot infer value encoding from column %q", header[1])
	}

	return ports, format, nil
}

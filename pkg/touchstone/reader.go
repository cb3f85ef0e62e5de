package touchstone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"rfnet/pkg/network"
	"rfnet/pkg/params"
)

var (
	// ErrBadRow indicates a data row whose token count does not yield
	// an integer port count.
	ErrBadRow = errors.New("touchstone: data row token count does not match any port count")
	// ErrUnsupportedType indicates H or G parameter data, which the
	// engine does not convert to scattering form.
	ErrUnsupportedType = errors.New("touchstone: unsupported parameter type")
)

// ReadFile parses a Touchstone file into a Network.
func ReadFile(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening touchstone file: %v", err)
	}
	defer f.Close()

	net, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return net, nil
}

// Read parses Touchstone text in a single pass. Comment lines start
// with "!", option lines with "#"; everything else non-empty is a data
// row interpreted under the active option set. Any row error aborts
// the read with no partial network.
func Read(r io.Reader) (*network.Network, error) {
	scanner := bufio.NewScanner(r)
	opt := defaultOptions()
	builder := network.NewBuilder()

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || strings.HasPrefix(line, "!") {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if err := opt.parseOptions(strings.TrimPrefix(line, "#")); err != nil {
				return nil, fmt.Errorf("line %d: invalid option line %q: %v", lineNum, line, err)
			}
			continue
		}

		if err := parseDataRow(builder, &opt, line, lineNum); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %v", err)
	}

	return builder.Build(), nil
}

// parseDataRow decodes one frequency sample: a frequency token
// followed by 2*ports^2 value tokens in row-major entry order.
func parseDataRow(builder *network.Builder, opt *options, line string, lineNum int) error {
	fields := strings.Fields(line)

	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid number %q in data row %q", lineNum, field, line)
		}
		values[i] = v
	}

	ports, err := inferPorts(len(values))
	if err != nil {
		return fmt.Errorf("line %d: %w: row %q has %d tokens", lineNum, err, line, len(values))
	}

	freq := values[0] * opt.freqMul

	m := make([][]complex128, ports)
	k := 1
	for i := 0; i < ports; i++ {
		m[i] = make([]complex128, ports)
		for j := 0; j < ports; j++ {
			m[i][j] = opt.format.Decode(values[k], values[k+1])
			k += 2
		}
	}

	z0 := complex(opt.z0, 0)
	switch opt.paramType {
	case ParamS:
		// Already scattering parameters.
	case ParamZ:
		if m, err = params.ZToS(m, z0); err != nil {
			return fmt.Errorf("line %d: converting Z parameters: %w", lineNum, err)
		}
	case ParamY:
		if m, err = params.YToS(m, z0); err != nil {
			return fmt.Errorf("line %d: converting Y parameters: %w", lineNum, err)
		}
	default:
		return fmt.Errorf("line %d: %w: %s parameters cannot be converted to scattering form", lineNum, ErrUnsupportedType, opt.paramType)
	}

	builder.AppendRow(freq, m, z0)
	return nil
}

// inferPorts derives the port count from a row's token count. A valid
// row has 1 + 2*ports^2 tokens.
func inferPorts(tokens int) (int, error) {
	pairs := tokens - 1
	if pairs <= 0 || pairs%2 != 0 {
		return 0, ErrBadRow
	}

	ports := int(math.Sqrt(float64(pairs / 2)))
	if ports*ports != pairs/2 {
		return 0, ErrBadRow
	}
	return ports, nil
}

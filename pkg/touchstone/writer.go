package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"rfnet/pkg/network"
)

// pairsPerLine is the Touchstone convention of at most four complex
// values per data line for networks with three or more ports.
const pairsPerLine = 4

// WriteFile serializes a Network to path in the fixed canonical form
// "# Hz S RI R 50". The network's own reference impedance and unit
// settings are not consulted.
func WriteFile(path string, net *network.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating touchstone file: %v", err)
	}
	defer f.Close()

	if err := Write(f, net); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Write serializes a Network as Touchstone text. One- and two-port
// rows use the conventional layouts (S21 before S12 for two ports);
// larger networks use the general block format, wrapped four complex
// values per line.
func Write(w io.Writer, net *network.Network) error {
	if net.Ports() < 1 {
		return fmt.Errorf("cannot write network with %d ports", net.Ports())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "! %d-port S-parameter data\n", net.Ports())
	fmt.Fprintln(bw, "# Hz S RI R 50")

	for i := 0; i < net.NumPoints(); i++ {
		writeRow(bw, net, i)
	}

	return bw.Flush()
}

func writeRow(bw *bufio.Writer, net *network.Network, i int) {
	bw.WriteString(ftoa(net.Frequency(i)))

	switch ports := net.Ports(); ports {
	case 1:
		writePair(bw, net.S(i, 1, 1))
		bw.WriteByte('\n')
	case 2:
		// VNA calibration order: S11 S21 S12 S22.
		writePair(bw, net.S(i, 1, 1))
		writePair(bw, net.S(i, 2, 1))
		writePair(bw, net.S(i, 1, 2))
		writePair(bw, net.S(i, 2, 2))
		bw.WriteByte('\n')
	default:
		pairs := 0
		for r := 1; r <= ports; r++ {
			for c := 1; c <= ports; c++ {
				if pairs > 0 && pairs%pairsPerLine == 0 {
					bw.WriteByte('\n')
				}
				writePair(bw, net.S(i, r, c))
				pairs++
			}
		}
		bw.WriteByte('\n')
	}
}

func writePair(bw *bufio.Writer, v complex128) {
	a, b := FormatRI.Encode(v)
	bw.WriteByte(' ')
	bw.WriteString(ftoa(a))
	bw.WriteByte(' ')
	bw.WriteString(ftoa(b))
}

// ftoa prints the shortest decimal string that parses back to the same
// float64, keeping write-then-read round trips exact.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

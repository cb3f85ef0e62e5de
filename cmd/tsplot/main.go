// Command tsplot renders forward gain and stability of a two-port
// Touchstone file as a PNG chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"rfnet/pkg/analysis"
	"rfnet/pkg/touchstone"
)

func main() {
	inputFile := flag.String("i", "", "Touchstone input file (2-port)")
	outputFile := flag.String("o", "network.png", "output PNG file")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Usage: tsplot -i <file.s2p> [-o <out.png>]")
		os.Exit(1)
	}

	net, err := touchstone.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Error reading network: %v", err)
	}

	k, err := analysis.K(net)
	if err != nil {
		log.Fatalf("Error computing stability: %v", err)
	}

	freqs := net.Frequencies()
	s21 := make(plotter.XYs, len(freqs))
	kPts := make(plotter.XYs, len(freqs))
	for i, f := range freqs {
		s21[i].X = f
		s21[i].Y = 20 * math.Log10(cmplx.Abs(net.S(i, 2, 1)))
		kPts[i].X = f
		kPts[i].Y = k[i]
	}

	p := plot.New()
	p.Title.Text = "Forward gain and stability"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "|S21| (dB) / K"

	gainLine, err := plotter.NewLine(s21)
	if err != nil {
		log.Fatalf("Error building gain line: %v", err)
	}
	kLine, err := plotter.NewLine(kPts)
	if err != nil {
		log.Fatalf("Error building stability line: %v", err)
	}
	kLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(gainLine, kLine)
	p.Legend.Add("|S21| (dB)", gainLine)
	p.Legend.Add("K", kLine)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, *outputFile); err != nil {
		log.Fatalf("Error saving plot: %v", err)
	}
	fmt.Printf("Wrote %s\n", *outputFile)
}

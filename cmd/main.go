package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"os"

	"rfnet/pkg/analysis"
	"rfnet/pkg/network"
	"rfnet/pkg/touchstone"
	"rfnet/pkg/util"
)

func main() {
	inputFile := flag.String("i", "", "Touchstone input file")
	outputFile := flag.String("o", "", "rewrite network to this Touchstone file")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Usage: rfnet -i <file.s2p> [-o <out.s2p>]")
		os.Exit(1)
	}

	net, err := touchstone.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Error reading network: %v", err)
	}

	printNetwork(net)

	if net.Ports() == 2 {
		printMetrics(net)
	}

	if *outputFile != "" {
		if err := touchstone.WriteFile(*outputFile, net); err != nil {
			log.Fatalf("Error writing network: %v", err)
		}
		fmt.Printf("\nWrote %s\n", *outputFile)
	}
}

func printNetwork(net *network.Network) {
	fmt.Printf("%d-port network, %d frequency points, Z0 = %g ohm\n",
		net.Ports(), net.NumPoints(), real(net.Z0()))
	passive := "no"
	if net.IsPassive() {
		passive = "yes"
	}
	fmt.Printf("Passive: %s\n", passive)

	fmt.Println("\nScattering Parameters (Magnitude/Phase):")
	fmt.Println("----------------------------------------")
	for i := 0; i < net.NumPoints(); i++ {
		fmt.Printf("%-13s", util.FormatFrequency(net.Frequency(i)))
		for r := 1; r <= net.Ports(); r++ {
			for c := 1; c <= net.Ports(); c++ {
				v := net.S(i, r, c)
				mag := util.FormatMagnitude(cmplx.Abs(v))
				phase := util.FormatPhase(cmplx.Phase(v) * 180 / math.Pi)
				fmt.Printf("S%d%d=%s<%sdeg  ", r, c, mag, phase)
			}
		}
		fmt.Println()
	}
}

func printMetrics(net *network.Network) {
	k, err := analysis.K(net)
	if err != nil {
		log.Fatalf("Error computing stability: %v", err)
	}
	mug, _ := analysis.MUG(net)
	msg, _ := analysis.MSG(net)
	mag, _ := analysis.MAG(net)

	fmt.Println("\nStability and Gain:")
	fmt.Println("Frequency          K       MUG(dB)  MSG(dB)  MAG(dB)")
	fmt.Println("-----------------------------------------------------")
	for i := 0; i < net.NumPoints(); i++ {
		fmt.Printf("%-13s %s  %s  %s  %s\n",
			util.FormatFrequency(net.Frequency(i)),
			util.FormatMagnitude(k[i]),
			gainDB(mug[i]), gainDB(msg[i]), gainDB(mag[i]))
	}
}

// gainDB prints a power gain in decibels, or n/a where undefined.
func gainDB(g float64) string {
	if math.IsNaN(g) || g <= 0 {
		return "    n/a"
	}
	return fmt.Sprintf("%7.2f", 10*math.Log10(g))
}

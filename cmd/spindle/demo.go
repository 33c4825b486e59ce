package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spindle-qc/spindle/analysis"
	"github.com/spindle-qc/spindle/orbitals"
	"github.com/spindle-qc/spindle/pointgroup"
	"github.com/spindle-qc/spindle/tensor"
)

// runDemo walks through the blocked workflow on STO-3G water: orbital
// spaces, a blocked Fock matrix, a similarity transform, pair spaces,
// and an amplitude report.
func runDemo(cmd *cobra.Command, args []string) {
	g := pointgroup.C2v
	spaces, err := orbitals.NewSpaces(g,
		tensor.Dimension{3, 0, 1, 1},
		tensor.Dimension{1, 0, 0, 1})
	if err != nil {
		log.Fatalf("demo: %v", err)
	}

	fmt.Println("Orbital spaces (water, C2v):")
	spaces.Print(os.Stdout)
	fmt.Println()

	nmopi := spaces.NMOPi()
	f, err := tensor.NewMatrix[float64]("Fock", 0, nmopi, nmopi)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	eps := [][]float64{
		{-20.55, -1.35, -0.58, 0.61},
		{},
		{-0.51},
		{-0.68, 0.74},
	}
	for h, vals := range eps {
		for i, e := range vals {
			f.Set(h, i, i, e)
		}
	}
	f.Set(0, 1, 2, 0.012)
	f.Set(0, 2, 1, 0.012)
	f.Print(os.Stdout)
	fmt.Println()

	c, err := tensor.NewMatrix[float64]("C", 0, nmopi, nmopi)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	if err := c.Identity(); err != nil {
		log.Fatalf("demo: %v", err)
	}
	ft, err := tensor.Triplet(c.Tensor, f.Tensor, c.Tensor, true, false, false)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	slog.Debug("similarity transform complete", "label", ft.Label(), "dim", ft.Dim())

	cache := orbitals.NewCache(slog.Default())
	defer cache.Close()
	cache.Put("Fock(MO)", ft)
	slog.Debug("cached transform", "entries", cache.Len())

	pair, err := orbitals.PairDim(spaces.OccPi(), spaces.VirtPi(), g)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	fmt.Printf("OV pair dimensions: %s (total %d)\n\n", pair, pair.Sum())

	t1, err := tensor.NewVector("T1", pair)
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
	t1.Set(0, 0, 0.0523)
	t1.Set(0, 1, -0.0117)
	t1.Set(0, 3, 0.0042)
	t1.Set(1, 0, -0.0251)
	t1.Set(2, 0, 0.0188)
	t1.Set(3, 1, -0.0706)
	t1.Set(3, 3, 0.0015)

	amps := analysis.TopAmplitudes(t1, amplitudeRank)
	analysis.PrintAmplitudes(os.Stdout, fmt.Sprintf("Largest %d amplitudes", len(amps)), amps)
}

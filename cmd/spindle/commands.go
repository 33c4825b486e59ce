package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spindle-qc/spindle/pointgroup"
)

var (
	verbose       bool
	showProducts  bool
	amplitudeRank int

	rootCmd = &cobra.Command{
		Use:   "spindle",
		Short: "A workbench for symmetry-blocked tensor algebra",
		Long: `Spindle manipulates tensors blocked by the irreducible
representations of abelian point groups: per-irrep dimensions, blocked
matrices and vectors, and blockwise contractions.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Spindle %s\n", version)
		},
	}

	groupsCmd = &cobra.Command{
		Use:   "groups [name]",
		Short: "Print the abelian point-group tables",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGroups,
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Walk through blocked matrices on a water-like system",
		Run:   runDemo,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(groupsCmd)
	groupsCmd.Flags().BoolVar(&showProducts, "products", false, "Also print the direct-product table")

	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVar(&amplitudeRank, "top", 5, "How many leading amplitudes to report")
}

func runGroups(cmd *cobra.Command, args []string) error {
	groups := pointgroup.All()
	if len(args) == 1 {
		g, err := pointgroup.Parse(args[0])
		if err != nil {
			return err
		}
		groups = []pointgroup.Group{g}
	}

	for _, g := range groups {
		printGroup(g)
	}
	return nil
}

func printGroup(g pointgroup.Group) {
	fmt.Printf("%s (%d irreps)\n", g, g.Nirrep())
	for h, label := range g.IrrepLabels() {
		fmt.Printf("  %d  %s\n", h, label)
	}
	if showProducts {
		fmt.Println("  direct products:")
		for a := 0; a < g.Nirrep(); a++ {
			fmt.Print("   ")
			for b := 0; b < g.Nirrep(); b++ {
				fmt.Printf(" %-4s", g.IrrepLabel(g.Product(a, b)))
			}
			fmt.Println()
		}
	}
	fmt.Println()
}

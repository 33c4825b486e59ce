// Package analysis provides reporting over blocked tensors: dominant
// amplitude tables, pairwise energy assembly, and one-electron
// properties of blocked density matrices.
package analysis

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/spindle-qc/spindle/tensor"
)

// minCoeff is the smallest coefficient magnitude worth reporting.
const minCoeff = 1.0e-13

// Amplitude is one reported coefficient: its irrep block, the index
// within the block, and the value.
type Amplitude struct {
	Irrep int
	Index int
	Value float64
}

// TopAmplitudes returns the n largest coefficients of v by magnitude,
// in descending order, dropping everything below the reporting cutoff.
// Ties break by irrep, then index. n <= 0 returns all survivors.
func TopAmplitudes(v *tensor.Vector, n int) []Amplitude {
	var amps []Amplitude
	for h := 0; h < v.Nirrep(); h++ {
		for m, val := range v.Block(h) {
			if math.Abs(val) > minCoeff {
				amps = append(amps, Amplitude{Irrep: h, Index: m, Value: val})
			}
		}
	}
	sort.Slice(amps, func(i, j int) bool {
		ai, aj := math.Abs(amps[i].Value), math.Abs(amps[j].Value)
		if ai != aj {
			return ai > aj
		}
		if amps[i].Irrep != amps[j].Irrep {
			return amps[i].Irrep < amps[j].Irrep
		}
		return amps[i].Index < amps[j].Index
	})
	if n > 0 && len(amps) > n {
		amps = amps[:n]
	}
	return amps
}

// PrintAmplitudes writes a titled coefficient table.
func PrintAmplitudes(w io.Writer, title string, amps []Amplitude) {
	fmt.Fprintf(w, "  %s\n", title)
	if len(amps) == 0 {
		fmt.Fprintln(w, "    (no coefficients above threshold)")
		return
	}
	for _, a := range amps {
		fmt.Fprintf(w, "    %4d %6d   % .10f\n", a.Irrep, a.Index, a.Value)
	}
}

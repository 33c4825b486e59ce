package tensor

import (
	"fmt"
	"io"
	"strings"
)

// String returns a one-line summary of the tensor.
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor[%s] %q sym %d", t.DType(), t.label, t.symmetry)
	for _, ax := range t.axes {
		sb.WriteByte(' ')
		sb.WriteString(ax.String())
	}
	fmt.Fprintf(&sb, " dim %d", t.Dim())
	return sb.String()
}

// Format renders the summary line followed by every stored block. verb
// overrides the per-element format, e.g. "%8.3f"; the empty string
// selects "%v". Blocks are flattened into rows of the last axis.
func (t *Tensor[T]) Format(verb string) string {
	if verb == "" {
		verb = "%v"
	}
	var sb strings.Builder
	sb.WriteString(t.String())
	sb.WriteByte('\n')
	for o := 0; o < t.numBlocks(); o++ {
		irreps := t.blockIrreps(o)
		fmt.Fprintf(&sb, "block %v", irreps)
		rowLen := t.axes[t.Rank()-1][irreps[t.Rank()-1]]
		data := t.blockAt(o)
		if len(data) == 0 || rowLen == 0 {
			sb.WriteString(" (empty)\n")
			continue
		}
		sb.WriteByte('\n')
		for i := 0; i < len(data); i += rowLen {
			for j := 0; j < rowLen; j++ {
				sb.WriteByte(' ')
				fmt.Fprintf(&sb, verb, data[i+j])
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Print writes a block-by-block dump of the matrix in fixed-point
// format.
func (m *Matrix[T]) Print(w io.Writer) {
	fmt.Fprintf(w, "  ## %s (sym %d) ##\n", m.label, m.symmetry)
	for h := 0; h < m.Nirrep(); h++ {
		nr := m.axes[0].At(h)
		nc := m.axes[1].At(h ^ m.symmetry)
		fmt.Fprintf(w, "  block %d (%d x %d)\n", h, nr, nc)
		block := m.blockAt(h)
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				fmt.Fprintf(w, " %12.7f", block[i*nc+j])
			}
			fmt.Fprintln(w)
		}
	}
}

// Print writes a block-by-block dump of the vector in fixed-point
// format.
func (v *Vector) Print(w io.Writer) {
	fmt.Fprintf(w, "  ## %s ##\n", v.name)
	for h := 0; h < v.Nirrep(); h++ {
		fmt.Fprintf(w, "  block %d (%d)\n", h, v.dimpi[h])
		for _, val := range v.Block(h) {
			fmt.Fprintf(w, " %12.7f\n", val)
		}
	}
}

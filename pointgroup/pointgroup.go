// Package pointgroup provides the eight abelian point groups and their
// irreducible representation tables.
//
// Blocked tensors combine irreps with bitwise XOR, which is the direct
// product for every abelian group in the conventional (Cotton) irrep
// ordering. This package supplies the group identity drivers need on
// top of that rule: irrep counts, labels, and the product itself.
package pointgroup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGroup reports a name outside the abelian point groups.
var ErrUnknownGroup = errors.New("pointgroup: unknown group")

// Group identifies an abelian point group.
type Group int

// The abelian point groups, in conventional order.
const (
	C1 Group = iota
	Ci
	Cs
	C2
	C2h
	C2v
	D2
	D2h
)

// groups tabulates per-group identity: the display name and the irrep
// labels in Cotton ordering. XOR of label positions is the direct
// product.
var groups = [...]struct {
	name   string
	irreps []string
}{
	C1:  {"C1", []string{"A"}},
	Ci:  {"Ci", []string{"Ag", "Au"}},
	Cs:  {"Cs", []string{"A'", "A''"}},
	C2:  {"C2", []string{"A", "B"}},
	C2h: {"C2h", []string{"Ag", "Bg", "Au", "Bu"}},
	C2v: {"C2v", []string{"A1", "A2", "B1", "B2"}},
	D2:  {"D2", []string{"A", "B1", "B2", "B3"}},
	D2h: {"D2h", []string{"Ag", "B1g", "B2g", "B3g", "Au", "B1u", "B2u", "B3u"}},
}

// All returns the groups in conventional order.
func All() []Group {
	out := make([]Group, len(groups))
	for i := range out {
		out[i] = Group(i)
	}
	return out
}

// Parse resolves a case-insensitive group name.
func Parse(name string) (Group, error) {
	want := strings.ToLower(name)
	for g, entry := range groups {
		if strings.ToLower(entry.name) == want {
			return Group(g), nil
		}
	}
	return 0, fmt.Errorf("parse %q (valid: %s): %w", name, validNames(), ErrUnknownGroup)
}

func validNames() string {
	names := make([]string, len(groups))
	for g, entry := range groups {
		names[g] = entry.name
	}
	return strings.Join(names, ", ")
}

// String returns the conventional group symbol.
func (g Group) String() string {
	if g < 0 || int(g) >= len(groups) {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groups[g].name
}

// Nirrep returns the number of irreducible representations.
func (g Group) Nirrep() int {
	return len(groups[g].irreps)
}

// IrrepLabels returns the irrep labels in Cotton ordering.
func (g Group) IrrepLabels() []string {
	return append([]string(nil), groups[g].irreps...)
}

// IrrepLabel returns the label of irrep h.
// Panics if h is out of range.
func (g Group) IrrepLabel(h int) string {
	if h < 0 || h >= g.Nirrep() {
		panic(fmt.Sprintf("irrep %d out of range for %s with %d irreps", h, g, g.Nirrep()))
	}
	return groups[g].irreps[h]
}

// Product returns the direct product of two irreps, the bitwise XOR of
// their positions in Cotton ordering.
// Panics if either irrep is out of range.
func (g Group) Product(a, b int) int {
	n := g.Nirrep()
	if a < 0 || a >= n || b < 0 || b >= n {
		panic(fmt.Sprintf("irreps %d x %d out of range for %s with %d irreps", a, b, g, n))
	}
	return a ^ b
}

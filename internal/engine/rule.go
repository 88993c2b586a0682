package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Kernel holds the 3×3 weights applied to a cell and its eight neighbours.
// Kernel[0][0] weighs the north-west neighbour, Kernel[1][1] the cell itself.
type Kernel [3][3]int

// Bounds returns the smallest and largest score the kernel can produce.
func (k Kernel) Bounds() (lo, hi int) {
	for _, row := range k {
		for _, w := range row {
			if w < 0 {
				lo += w
			} else {
				hi += w
			}
		}
	}
	return lo, hi
}

func (k Kernel) String() string {
	rows := make([]string, 0, 3)
	for _, row := range k {
		rows = append(rows, fmt.Sprintf("[%d,%d,%d]", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(rows, ",") + "]"
}

// Rule pairs a kernel with the set of scores that produce a live cell. A Rule
// is immutable after NewRule and safe to share between goroutines.
type Rule struct {
	name   string
	kernel Kernel
	accept []int

	// alive[s-lo] reports membership for every reachable score s. It is nil
	// when the score range is too wide, and Accepts searches accept instead.
	lo    int
	alive []bool
}

// maxTableSpan bounds the score range covered by the dense lookup table.
const maxTableSpan = 4096

// NewRule builds a rule. Accepted scores the kernel can never produce are
// kept in Accept but have no effect.
func NewRule(name string, kernel Kernel, accept ...int) Rule {
	set := slices.Clone(accept)
	slices.Sort(set)
	set = slices.Compact(set)

	r := Rule{name: name, kernel: kernel, accept: set}
	lo, hi := kernel.Bounds()
	if hi-lo > maxTableSpan {
		return r
	}
	r.lo = lo
	r.alive = make([]bool, hi-lo+1)
	for _, s := range set {
		if s >= lo && s <= hi {
			r.alive[s-lo] = true
		}
	}
	return r
}

// Name returns the catalog name of the rule.
func (r Rule) Name() string { return r.name }

// Kernel returns the neighbourhood weights.
func (r Rule) Kernel() Kernel { return r.kernel }

// Accept returns the sorted acceptance set.
func (r Rule) Accept() []int { return slices.Clone(r.accept) }

// Accepts reports whether a cell with the given score is alive next
// generation.
func (r Rule) Accepts(score int) bool {
	if r.alive == nil {
		_, found := slices.BinarySearch(r.accept, score)
		return found
	}
	i := score - r.lo
	return i >= 0 && i < len(r.alive) && r.alive[i]
}

func (r Rule) String() string {
	return fmt.Sprintf("%s kernel=%s accept=%v", r.name, r.kernel, r.accept)
}

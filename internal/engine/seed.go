package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"kernel-life/internal/core"
)

// Cell addresses an interior cell using 1-indexed coordinates.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string { return fmt.Sprintf("%d:%d", c.Row, c.Col) }

func checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return nil
}

// FromCells returns a grid with exactly the listed interior cells alive.
// Duplicate positions collapse. Positions outside [1,rows]×[1,cols] are
// rejected before anything is allocated.
func FromCells(rows, cols int, cells []Cell) (*core.Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	for _, c := range cells {
		if c.Row < 1 || c.Row > rows || c.Col < 1 || c.Col > cols {
			return nil, fmt.Errorf("%w: %s not in [1,%d]x[1,%d]", ErrOutOfRangeSeed, c, rows, cols)
		}
	}
	g := core.NewGrid(rows, cols)
	for _, c := range cells {
		g.Set(c.Row, c.Col, true)
	}
	return g, nil
}

// Random returns a grid with count positions drawn uniformly with
// replacement from the interior. Repeated draws land on the same cell, so
// the population can be lower than count.
func Random(rows, cols, count int, rng *core.RNG) (*core.Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeedCount, count)
	}
	g := core.NewGrid(rows, cols)
	for n := 0; n < count; n++ {
		i := rng.Between(1, rows)
		j := rng.Between(1, cols)
		g.Set(i, j, true)
	}
	return g, nil
}

// ParseCells reads a seed list such as "2:3;2:4;2:5". Commas are accepted as
// separators too, and blank entries are skipped.
func ParseCells(s string) ([]Cell, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ',' || unicode.IsSpace(r)
	})
	cells := make([]Cell, 0, len(fields))
	for _, f := range fields {
		rs, cs, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("cell %q: want row:col", f)
		}
		row, err := strconv.Atoi(rs)
		if err != nil {
			return nil, fmt.Errorf("cell %q: row: %w", f, err)
		}
		col, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("cell %q: col: %w", f, err)
		}
		cells = append(cells, Cell{Row: row, Col: col})
	}
	return cells, nil
}

// FormatCells is the inverse of ParseCells.
func FormatCells(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, ";")
}

package core

// Grid stores a bordered boolean grid in row-major order. Rows and Cols are
// the interior dimensions; the backing slice holds (Rows+2)*(Cols+2) cells and
// the outer ring is always dead.
type Grid struct {
	Rows, Cols int
	data       []bool
}

// NewGrid allocates an all-dead grid with the given interior dimensions.
// Non-positive dimensions are clamped to 1; callers validate beforehand.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]bool, (rows+2)*(cols+2))}
}

// Cells exposes the backing slice, border included.
func (g *Grid) Cells() []bool { return g.data }

// Stride is the length of one bordered row.
func (g *Grid) Stride() int { return g.Cols + 2 }

// Index returns the linear slice index for bordered coordinates (i, j).
func (g *Grid) Index(i, j int) int { return i*(g.Cols+2) + j }

// Interior reports whether (i, j) lies inside the border.
func (g *Grid) Interior(i, j int) bool {
	return i >= 1 && i <= g.Rows && j >= 1 && j <= g.Cols
}

// At reports the state of cell (i, j).
func (g *Grid) At(i, j int) bool { return g.data[g.Index(i, j)] }

// Set updates an interior cell. Border coordinates are ignored so the margin
// stays dead.
func (g *Grid) Set(i, j int, alive bool) {
	if !g.Interior(i, j) {
		return
	}
	g.data[g.Index(i, j)] = alive
}

// SameShape reports whether both grids have identical interior dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.Rows == o.Rows && g.Cols == o.Cols
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameShape(o) {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts live interior cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// BorderDead reports whether every border cell is false.
func (g *Grid) BorderDead() bool {
	last := g.Rows + 1
	for j := 0; j < g.Stride(); j++ {
		if g.At(0, j) || g.At(last, j) {
			return false
		}
	}
	for i := 1; i <= g.Rows; i++ {
		if g.At(i, 0) || g.At(i, g.Cols+1) {
			return false
		}
	}
	return true
}

// FillInterior writes the interior as 0/1 values into dst (Rows*Cols long,
// row-major) and returns it. A nil or short dst is reallocated.
func (g *Grid) FillInterior(dst []uint8) []uint8 {
	total := g.Rows * g.Cols
	if len(dst) != total {
		dst = make([]uint8, total)
	}
	k := 0
	for i := 1; i <= g.Rows; i++ {
		row := g.data[g.Index(i, 1) : g.Index(i, 1)+g.Cols]
		for _, v := range row {
			if v {
				dst[k] = 1
			} else {
				dst[k] = 0
			}
			k++
		}
	}
	return dst
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

package systems

import "sort"

// SpatialGrid is an optional broad-phase index over the unit square.
// Particles are binned by cell; candidate pairs come only from the same
// or adjacent cells. With a cell size of at least the largest particle
// diameter this visits a superset of the overlapping pairs, so the
// narrow-phase result is identical to the full O(n^2) scan — including
// pair order, since candidates are deduplicated and sorted ascending.
type SpatialGrid struct {
	cellSize float64
	cols     int
	cells    [][]int
}

// NewSpatialGrid creates a grid covering [0,1]^2. cellSize is clamped so
// the grid has at least one cell per axis.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	cols := int(1 / cellSize)
	if cols < 1 {
		cols = 1
	}
	cells := make([][]int, cols*cols)
	return &SpatialGrid{cellSize: 1 / float64(cols), cols: cols, cells: cells}
}

// Clear removes all particles from the grid, keeping cell capacity.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert bins particle index i at position (x, y).
func (g *SpatialGrid) Insert(i int, x, y float64) {
	g.cells[g.cellIndex(x, y)] = append(g.cells[g.cellIndex(x, y)], i)
}

// CandidatePairs appends to dst every unordered index pair sharing a
// cell neighborhood, sorted ascending by (lo, hi) and deduplicated.
// Reuse dst across ticks to avoid allocations.
func (g *SpatialGrid) CandidatePairs(dst [][2]int) [][2]int {
	for row := 0; row < g.cols; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]

			// Pairs within the cell.
			for a := 0; a < len(cell); a++ {
				for b := a + 1; b < len(cell); b++ {
					dst = append(dst, orderPair(cell[a], cell[b]))
				}
			}

			// Pairs against forward neighbor cells only, so each cell
			// adjacency is visited once.
			for _, d := range [][2]int{{1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
				nc, nr := col+d[0], row+d[1]
				if nc < 0 || nc >= g.cols || nr >= g.cols {
					continue
				}
				other := g.cells[nr*g.cols+nc]
				for _, a := range cell {
					for _, b := range other {
						dst = append(dst, orderPair(a, b))
					}
				}
			}
		}
	}

	sort.Slice(dst, func(i, j int) bool {
		if dst[i][0] != dst[j][0] {
			return dst[i][0] < dst[j][0]
		}
		return dst[i][1] < dst[j][1]
	})

	// Dedup in place.
	out := dst[:0]
	for i, p := range dst {
		if i == 0 || p != dst[i-1] {
			out = append(out, p)
		}
	}
	return out
}

func (g *SpatialGrid) cellIndex(x, y float64) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.cols {
		row = g.cols - 1
	}
	return row*g.cols + col
}

func orderPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

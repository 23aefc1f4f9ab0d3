// Package field provides scalar and vector fields sampled on a fixed
// grid over the unit square. The simulation core only consumes point
// samples via nearest-grid-point lookup; the generators in this package
// stand in for an external field supplier.
package field

import "math"

// Scalar is a scalar field over [0,1]^2.
type Scalar interface {
	Sample(x, y float64) float64
}

// Vector is a 2-vector field over [0,1]^2.
type Vector interface {
	SampleVector(x, y float64) (float64, float64)
}

// Grid is a scalar field stored on an n-by-n grid spanning [0,1]^2.
// Sampling snaps to the nearest grid point; there is no interpolation.
type Grid struct {
	n    int
	data []float64 // row-major, indexed [ix*n + iy]
}

// NewGrid creates an n-by-n grid with the given values. data must have
// n*n elements, laid out with the x index outermost.
func NewGrid(n int, data []float64) *Grid {
	if len(data) != n*n {
		panic("field: grid data length does not match grid size")
	}
	return &Grid{n: n, data: data}
}

// Size returns the grid resolution per axis.
func (g *Grid) Size() int { return g.n }

// Sample returns the value at the grid point nearest to (x, y).
// Coordinates outside [0,1] clamp to the boundary.
func (g *Grid) Sample(x, y float64) float64 {
	return g.data[g.index(x)*g.n+g.index(y)]
}

// At returns the raw grid value at integer indices (ix, iy).
func (g *Grid) At(ix, iy int) float64 {
	return g.data[ix*g.n+iy]
}

func (g *Grid) index(v float64) int {
	i := int(math.Round(v * float64(g.n-1)))
	if i < 0 {
		return 0
	}
	if i >= g.n {
		return g.n - 1
	}
	return i
}

// VectorGrid pairs two scalar grids as the components of a vector field.
type VectorGrid struct {
	U, V *Grid
}

// SampleVector returns the nearest-grid-point vector at (x, y).
func (vg *VectorGrid) SampleVector(x, y float64) (float64, float64) {
	return vg.U.Sample(x, y), vg.V.Sample(x, y)
}

package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// NewSimplexField generates a scalar field from OpenSimplex noise, an
// alternative to the Bessel model with smoother, blobbier structure.
// Noise output in [-1,1] is scaled to the requested variance.
func NewSimplexField(seed int64, opts BesselOptions) *Grid {
	opts.defaults()
	noise := opensimplex.New(seed)
	amp := math.Sqrt(opts.Variance)

	n := opts.GridSize
	data := make([]float64, n*n)
	for ix := 0; ix < n; ix++ {
		x := float64(ix) / float64(n-1)
		for iy := 0; iy < n; iy++ {
			y := float64(iy) / float64(n-1)
			data[ix*n+iy] = amp * noise.Eval2(x/opts.LengthScale, y/opts.LengthScale)
		}
	}
	return NewGrid(n, data)
}

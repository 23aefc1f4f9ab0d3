package field

import (
	"math"
	"math/rand"
)

// BesselOptions configures the random-field generators.
type BesselOptions struct {
	GridSize    int     // grid resolution per axis (100 by default)
	LengthScale float64 // correlation length of the field
	Variance    float64 // pointwise variance of the field
	Modes       int     // number of random harmonics to superpose
}

func (o *BesselOptions) defaults() {
	if o.GridSize <= 0 {
		o.GridSize = 100
	}
	if o.LengthScale <= 0 {
		o.LengthScale = 0.05
	}
	if o.Variance <= 0 {
		o.Variance = 5
	}
	if o.Modes <= 0 {
		o.Modes = 256
	}
}

// NewBesselField generates a stationary Gaussian random field whose
// covariance follows a J-Bessel model, cov(r) = variance * J0(r/len).
// The spectral measure of that covariance is a ring of radius 1/len in
// wavenumber space, so the field is synthesized by superposing Modes
// cosine harmonics with wave vectors on that ring, uniform directions,
// and uniform random phases. Deterministic for a given seed.
func NewBesselField(seed int64, opts BesselOptions) *Grid {
	opts.defaults()
	rng := rand.New(rand.NewSource(seed))

	kappa := 1 / opts.LengthScale
	amp := math.Sqrt(2 * opts.Variance / float64(opts.Modes))

	kx := make([]float64, opts.Modes)
	ky := make([]float64, opts.Modes)
	phase := make([]float64, opts.Modes)
	for i := 0; i < opts.Modes; i++ {
		theta := 2 * math.Pi * rng.Float64()
		kx[i] = kappa * math.Cos(theta)
		ky[i] = kappa * math.Sin(theta)
		phase[i] = 2 * math.Pi * rng.Float64()
	}

	n := opts.GridSize
	data := make([]float64, n*n)
	for ix := 0; ix < n; ix++ {
		x := float64(ix) / float64(n-1)
		for iy := 0; iy < n; iy++ {
			y := float64(iy) / float64(n-1)
			var sum float64
			for i := 0; i < opts.Modes; i++ {
				sum += math.Cos(kx[i]*x + ky[i]*y + phase[i])
			}
			data[ix*n+iy] = amp * sum
		}
	}
	return NewGrid(n, data)
}

// NewBesselVectorField generates a divergence-free random vector field
// as the curl of a stream-function realization: u = dpsi/dy,
// v = -dpsi/dx, taken by central differences on the grid. Scaled so the
// component variance roughly matches Variance.
func NewBesselVectorField(seed int64, opts BesselOptions) *VectorGrid {
	opts.defaults()
	psi := NewBesselField(seed, opts)

	n := opts.GridSize
	h := 1 / float64(n-1)
	// The curl scales amplitudes by ~kappa; normalize it back out.
	scale := opts.LengthScale / 2

	u := make([]float64, n*n)
	v := make([]float64, n*n)
	for ix := 0; ix < n; ix++ {
		for iy := 0; iy < n; iy++ {
			u[ix*n+iy] = scale * (psi.At(ix, clampIndex(iy+1, n)) - psi.At(ix, clampIndex(iy-1, n))) / (2 * h)
			v[ix*n+iy] = -scale * (psi.At(clampIndex(ix+1, n), iy) - psi.At(clampIndex(ix-1, n), iy)) / (2 * h)
		}
	}
	return &VectorGrid{U: NewGrid(n, u), V: NewGrid(n, v)}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

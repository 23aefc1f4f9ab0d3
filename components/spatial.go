package components

// Position represents a particle's world position inside the unit square.
type Position struct {
	X, Y float64
}

// Velocity represents a particle's velocity.
type Velocity struct {
	X, Y float64
}

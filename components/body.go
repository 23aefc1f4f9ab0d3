package components

// Body holds the physical properties of a circular particle.
// Mass is always Radius squared; use NewBody or SetRadius to keep the
// two in sync.
type Body struct {
	Radius float64
	Mass   float64
}

// NewBody creates a body with mass derived from the radius.
func NewBody(radius float64) Body {
	return Body{Radius: radius, Mass: radius * radius}
}

// SetRadius updates the radius and recomputes the derived mass.
func (b *Body) SetRadius(radius float64) {
	b.Radius = radius
	b.Mass = radius * radius
}

package components

// Tombstone marks a particle for removal. A dead particle takes no
// further part in physics and is reaped from the world at the start of
// the next tick; flagging instead of removing in place keeps the
// collection stable while it is being iterated.
type Tombstone struct {
	Dead bool
}

package rigid

import "errors"

// Sentinel errors for diagram construction and evaluation. All failures
// are synchronous and local: an error leaves every previously built
// value untouched.
var (
	// ErrTypeMismatch is returned when an operation receives a value of
	// the wrong shape, such as asking for the winding number of a type
	// with more than one object.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrAxiom is returned when a construction would violate the rigid
	// axioms, such as a cup whose half-types are not mutual adjoints.
	ErrAxiom = errors.New("axiom violation")

	// ErrComposition is returned when sequential composition is applied
	// to diagrams whose codomain and domain disagree.
	ErrComposition = errors.New("composition mismatch")

	// ErrIndexRange is returned when a wire index falls outside a
	// diagram's codomain, or indices are given in an invalid order.
	ErrIndexRange = errors.New("index out of range")

	// ErrUnsupported is returned when a functor is applied to a
	// generator it has no mapping for, or when a target category lacks
	// a capability the application needs.
	ErrUnsupported = errors.New("unsupported mapping")

	// ErrInterchange is returned when two adjacent layers cannot be
	// exchanged because their boxes share wires.
	ErrInterchange = errors.New("interchange blocked")
)

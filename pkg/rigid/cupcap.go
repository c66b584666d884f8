package rigid

import "fmt"

// Cups builds the nested cups witnessing adjointness of two composite
// types of equal length: a diagram from left @ right to the unit made
// of atomic cups only. The outermost pair is cupped last, so the
// result for a @ b against (a @ b).R() is
//
//	Id(a) @ Cup(b, b.R()) @ Id(a.R()) >> Cup(a, a.R())
//
// The diagram has one cup per object, so its size is linear in the
// length of the types.
func Cups(left, right Ty) (Diagram, error) {
	return nesting(Cup, left, right)
}

// Caps is the dual of Cups: a diagram from the unit to left @ right,
// with the outermost pair capped first.
func Caps(left, right Ty) (Diagram, error) {
	return nesting(Cap, left, right)
}

// MustCups is like Cups but panics on invalid half-types.
func MustCups(left, right Ty) Diagram {
	d, err := Cups(left, right)
	if err != nil {
		panic(err)
	}
	return d
}

// MustCaps is like Caps but panics on invalid half-types.
func MustCaps(left, right Ty) Diagram {
	d, err := Caps(left, right)
	if err != nil {
		panic(err)
	}
	return d
}

// nesting extends an atomic cup or cap factory to composite types:
// the outermost pair (x[0], y[last]) is built atomically and combined
// with the nested result for the interior. Cup nesting consumes wires,
// so the interior runs first; cap nesting produces wires, so the
// outer generator runs first.
func nesting(factory func(Ty, Ty) (Box, error), x, y Ty) (Diagram, error) {
	if x.Len() != y.Len() {
		return Diagram{}, fmt.Errorf("%w: cannot nest %s against %s: lengths differ",
			ErrAxiom, x, y)
	}
	if x.Len() == 0 {
		return Id(Ty{}), nil
	}
	if x.Len() == 1 {
		head, err := factory(x, y)
		if err != nil {
			return Diagram{}, err
		}
		return head.Diagram(), nil
	}
	first, last := x.Slice(0, 1), y.Slice(y.Len()-1, y.Len())
	head, err := factory(first, last)
	if err != nil {
		return Diagram{}, err
	}
	inner, err := nesting(factory, x.Slice(1, x.Len()), y.Slice(0, y.Len()-1))
	if err != nil {
		return Diagram{}, err
	}
	wrapped := Id(first).Tensor(inner, Id(last))
	if head.Dom.Len() > 0 {
		return wrapped.then(head.Diagram()), nil
	}
	return head.Diagram().then(wrapped), nil
}

// CupAt inserts an atomic cup on wires i and j of the codomain. The
// wires must be adjacent (j == i+1): bending non-adjacent wires
// together needs the symmetric structure, which the rigid core does
// not carry. Out-of-range or reversed indices fail with ErrIndexRange.
func (d Diagram) CupAt(i, j int) (Diagram, error) {
	if i < 0 || j >= d.cod.Len() || i >= j {
		return Diagram{}, fmt.Errorf("%w: cup indices (%d, %d) on codomain of length %d",
			ErrIndexRange, i, j, d.cod.Len())
	}
	if j != i+1 {
		return Diagram{}, fmt.Errorf("%w: wires %d and %d are not adjacent", ErrUnsupported, i, j)
	}
	c, err := Cup(d.cod.Slice(i, i+1), d.cod.Slice(j, j+1))
	if err != nil {
		return Diagram{}, err
	}
	bent := Id(d.cod.Slice(0, i)).Tensor(c.Diagram(), Id(d.cod.Slice(j+1, d.cod.Len())))
	return d.Then(bent)
}

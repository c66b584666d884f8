package rigid

import "fmt"

// BoxKind is the closed set of generator shapes a layer can hold.
// Functor application dispatches exhaustively on this tag.
type BoxKind int

const (
	KindBox BoxKind = iota // named generator
	KindCup                // adjunction counit: left @ right -> unit
	KindCap                // adjunction unit: unit -> left @ right
)

func (k BoxKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCup:
		return "cup"
	case KindCap:
		return "cap"
	default:
		return "unknown"
	}
}

// Box is a generator of the free rigid category: a named arrow from
// Dom to Cod, graded by a winding number. Two boxes are equal only if
// name, domain, codomain, winding and kind all match; boxes that
// differ in winding are distinct generators even when their domains
// and codomains coincide.
type Box struct {
	Name string
	Dom  Ty
	Cod  Ty
	Z    int
	Kind BoxKind
}

// NewBox returns a named generator with the given domain and codomain.
func NewBox(name string, dom, cod Ty) Box {
	return Box{Name: name, Dom: dom, Cod: cod}
}

// Cup builds the counit of the adjunction between two atomic types:
// a box from left @ right to the unit. Both half-types must have
// length one (ErrTypeMismatch) and be mutual adjoints in at least one
// direction (ErrAxiom).
func Cup(left, right Ty) (Box, error) {
	if left.Len() != 1 || right.Len() != 1 {
		return Box{}, fmt.Errorf("%w: cup wants atomic types, got %s and %s (use Cups for composite types)",
			ErrTypeMismatch, left, right)
	}
	if !left.R().Equal(right) && !left.Equal(right.R()) {
		return Box{}, fmt.Errorf("%w: %s and %s are not adjoints", ErrAxiom, left, right)
	}
	return cup(left, right), nil
}

// Cap builds the unit of the adjunction between two atomic types:
// a box from the unit to left @ right. Same constraints as Cup.
func Cap(left, right Ty) (Box, error) {
	if left.Len() != 1 || right.Len() != 1 {
		return Box{}, fmt.Errorf("%w: cap wants atomic types, got %s and %s (use Caps for composite types)",
			ErrTypeMismatch, left, right)
	}
	if !left.Equal(right.R()) && !left.R().Equal(right) {
		return Box{}, fmt.Errorf("%w: %s and %s are not adjoints", ErrAxiom, left, right)
	}
	return cap(left, right), nil
}

// MustCup is like Cup but panics on invalid half-types.
func MustCup(left, right Ty) Box {
	b, err := Cup(left, right)
	if err != nil {
		panic(err)
	}
	return b
}

// MustCap is like Cap but panics on invalid half-types.
func MustCap(left, right Ty) Box {
	b, err := Cap(left, right)
	if err != nil {
		panic(err)
	}
	return b
}

// cup and cap build validated instances directly. Adjoints of valid
// cups and caps are always valid, so L and R use these.
func cup(left, right Ty) Box {
	return Box{
		Name: fmt.Sprintf("Cup(%s, %s)", left, right),
		Dom:  left.Tensor(right),
		Cod:  Ty{},
		Kind: KindCup,
	}
}

func cap(left, right Ty) Box {
	return Box{
		Name: fmt.Sprintf("Cap(%s, %s)", left, right),
		Dom:  Ty{},
		Cod:  left.Tensor(right),
		Kind: KindCap,
	}
}

// Left returns the left half-type of a cup or cap.
func (b Box) Left() Ty {
	if b.Kind == KindCap {
		return b.Cod.Slice(0, 1)
	}
	return b.Dom.Slice(0, 1)
}

// Right returns the right half-type of a cup or cap.
func (b Box) Right() Ty {
	if b.Kind == KindCap {
		return b.Cod.Slice(1, 2)
	}
	return b.Dom.Slice(1, 2)
}

// L returns the left adjoint of the box. For a named generator this
// decrements the winding and adjoints both ends; a cup or cap maps to
// the cup or cap on the adjoint pair with the halves exchanged.
func (b Box) L() Box {
	switch b.Kind {
	case KindCup:
		return cup(b.Right().L(), b.Left().L())
	case KindCap:
		return cap(b.Right().L(), b.Left().L())
	default:
		return Box{Name: b.Name, Dom: b.Dom.L(), Cod: b.Cod.L(), Z: b.Z - 1}
	}
}

// R returns the right adjoint of the box.
func (b Box) R() Box {
	switch b.Kind {
	case KindCup:
		return cup(b.Right().R(), b.Left().R())
	case KindCap:
		return cap(b.Right().R(), b.Left().R())
	default:
		return Box{Name: b.Name, Dom: b.Dom.R(), Cod: b.Cod.R(), Z: b.Z + 1}
	}
}

// Equal reports structural equality of two boxes.
func (b Box) Equal(c Box) bool {
	return b.Name == c.Name && b.Z == c.Z && b.Kind == c.Kind &&
		b.Dom.Equal(c.Dom) && b.Cod.Equal(c.Cod)
}

// Diagram returns the box as a one-layer diagram.
func (b Box) Diagram() Diagram {
	return Diagram{
		layers: []Layer{{Box: b}},
		dom:    b.Dom,
		cod:    b.Cod,
	}
}

func (b Box) String() string {
	if b.Kind != KindBox {
		return b.Name
	}
	return fmt.Sprintf("%s : %s -> %s", Ob{Name: b.Name, Z: b.Z}, b.Dom, b.Cod)
}

// key is the canonical identifier used by functor arrow mappings.
// Only zero-winding named generators are ever used as keys.
func (b Box) key() string {
	return fmt.Sprintf("%s:%s->%s", b.Name, b.Dom, b.Cod)
}

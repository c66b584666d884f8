package rigid

import "fmt"

// Sum is a formal sum of diagrams sharing a domain and codomain. It
// carries no numeric semantics of its own; a functor into a target
// with addition gives it meaning.
type Sum struct {
	terms []Diagram
	dom   Ty
	cod   Ty
}

// NewSum builds a formal sum. All terms must share the given domain
// and codomain; a mismatch fails with ErrComposition. A sum with no
// terms is the zero arrow from dom to cod.
func NewSum(dom, cod Ty, terms ...Diagram) (Sum, error) {
	for i, t := range terms {
		if !t.Dom().Equal(dom) || !t.Cod().Equal(cod) {
			return Sum{}, fmt.Errorf("%w: term %d has shape %s -> %s, want %s -> %s",
				ErrComposition, i, t.Dom(), t.Cod(), dom, cod)
		}
	}
	return Sum{terms: append([]Diagram(nil), terms...), dom: dom, cod: cod}, nil
}

// Dom returns the shared domain of the terms.
func (s Sum) Dom() Ty { return s.dom }

// Cod returns the shared codomain of the terms.
func (s Sum) Cod() Ty { return s.cod }

// Terms returns a copy of the summands in order.
func (s Sum) Terms() []Diagram { return append([]Diagram(nil), s.terms...) }

// L returns the left conjugate, taken term by term.
func (s Sum) L() Sum {
	terms := make([]Diagram, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.L()
	}
	return Sum{terms: terms, dom: s.dom.L(), cod: s.cod.L()}
}

// R returns the right conjugate, taken term by term.
func (s Sum) R() Sum {
	terms := make([]Diagram, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.R()
	}
	return Sum{terms: terms, dom: s.dom.R(), cod: s.cod.R()}
}

// Equal reports structural equality of the two sums, respecting term
// order.
func (s Sum) Equal(t Sum) bool {
	if !s.dom.Equal(t.dom) || !s.cod.Equal(t.cod) || len(s.terms) != len(t.terms) {
		return false
	}
	for i := range s.terms {
		if !s.terms[i].Equal(t.terms[i]) {
			return false
		}
	}
	return true
}

func (s Sum) String() string {
	if len(s.terms) == 0 {
		return fmt.Sprintf("Sum(%s -> %s)", s.dom, s.cod)
	}
	out := s.terms[0].String()
	for _, t := range s.terms[1:] {
		out += " + " + t.String()
	}
	return out
}

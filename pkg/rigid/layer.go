package rigid

import "fmt"

// Layer is one horizontal slice of a diagram: a box together with the
// identity wires flanking it on either side.
type Layer struct {
	Left  Ty
	Box   Box
	Right Ty
}

// Dom returns the full input type of the layer, wires included.
func (l Layer) Dom() Ty {
	return l.Left.Tensor(l.Box.Dom, l.Right)
}

// Cod returns the full output type of the layer, wires included.
func (l Layer) Cod() Ty {
	return l.Left.Tensor(l.Box.Cod, l.Right)
}

// Offset returns the number of wires to the left of the box.
func (l Layer) Offset() int {
	return l.Left.Len()
}

// L returns the left adjoint of the layer: the sides swap and every
// part is adjointed.
func (l Layer) L() Layer {
	return Layer{Left: l.Right.L(), Box: l.Box.L(), Right: l.Left.L()}
}

// R returns the right adjoint of the layer.
func (l Layer) R() Layer {
	return Layer{Left: l.Right.R(), Box: l.Box.R(), Right: l.Left.R()}
}

// Equal reports structural equality.
func (l Layer) Equal(m Layer) bool {
	return l.Left.Equal(m.Left) && l.Box.Equal(m.Box) && l.Right.Equal(m.Right)
}

func (l Layer) String() string {
	return fmt.Sprintf("Layer(%s | %s | %s)", l.Left, l.Box, l.Right)
}

package rigid

import (
	"fmt"
	"strings"
)

// Diagram is an immutable sequence of layers with a fixed domain and
// codomain. The zero value is the identity on the unit type.
//
// Diagrams form a category: Then concatenates layer sequences, Id
// builds the zero-layer diagram on a type, and Tensor places diagrams
// side by side.
type Diagram struct {
	layers []Layer
	dom    Ty
	cod    Ty
}

// Id returns the identity diagram on the given type.
func Id(t Ty) Diagram {
	return Diagram{dom: t, cod: t}
}

// NewDiagram builds a diagram from explicit layers, checking that the
// layers chain: each layer's input must equal the running scan type,
// starting at dom and ending at cod. A broken chain fails with
// ErrComposition.
func NewDiagram(layers []Layer, dom, cod Ty) (Diagram, error) {
	scan := dom
	for i, l := range layers {
		if !l.Dom().Equal(scan) {
			return Diagram{}, fmt.Errorf("%w: layer %d expects %s but the wires carry %s",
				ErrComposition, i, l.Dom(), scan)
		}
		scan = l.Cod()
	}
	if !scan.Equal(cod) {
		return Diagram{}, fmt.Errorf("%w: layers end at %s, codomain is %s",
			ErrComposition, scan, cod)
	}
	inside := make([]Layer, len(layers))
	copy(inside, layers)
	return Diagram{layers: inside, dom: dom, cod: cod}, nil
}

// Dom returns the domain (input type) of the diagram.
func (d Diagram) Dom() Ty { return d.dom }

// Cod returns the codomain (output type) of the diagram.
func (d Diagram) Cod() Ty { return d.cod }

// Len returns the number of layers.
func (d Diagram) Len() int { return len(d.layers) }

// LayerAt returns the i-th layer.
func (d Diagram) LayerAt(i int) Layer { return d.layers[i] }

// Layers returns a copy of the layer sequence.
func (d Diagram) Layers() []Layer {
	inside := make([]Layer, len(d.layers))
	copy(inside, d.layers)
	return inside
}

// Then composes diagrams sequentially. The codomain of each diagram
// must equal the domain of the next; otherwise ErrComposition.
func (d Diagram) Then(others ...Diagram) (Diagram, error) {
	result := d
	for _, e := range others {
		if !result.cod.Equal(e.dom) {
			return Diagram{}, fmt.Errorf("%w: cannot compose codomain %s with domain %s",
				ErrComposition, result.cod, e.dom)
		}
		layers := make([]Layer, 0, len(result.layers)+len(e.layers))
		layers = append(layers, result.layers...)
		layers = append(layers, e.layers...)
		result = Diagram{layers: layers, dom: result.dom, cod: e.cod}
	}
	return result, nil
}

// then is Then for compositions that are correct by construction.
func (d Diagram) then(others ...Diagram) Diagram {
	result, err := d.Then(others...)
	if err != nil {
		panic(err)
	}
	return result
}

// Tensor places diagrams side by side: the layers of d are widened by
// the domains of the others on the right, and each following diagram's
// layers are widened by the accumulated codomain on the left.
func (d Diagram) Tensor(others ...Diagram) Diagram {
	result := d
	for _, e := range others {
		layers := make([]Layer, 0, len(result.layers)+len(e.layers))
		for _, l := range result.layers {
			layers = append(layers, Layer{Left: l.Left, Box: l.Box, Right: l.Right.Tensor(e.dom)})
		}
		for _, l := range e.layers {
			layers = append(layers, Layer{Left: result.cod.Tensor(l.Left), Box: l.Box, Right: l.Right})
		}
		result = Diagram{
			layers: layers,
			dom:    result.dom.Tensor(e.dom),
			cod:    result.cod.Tensor(e.cod),
		}
	}
	return result
}

// L returns the left conjugate: the per-layer left adjoint applied to
// every layer with the order preserved. This is not the categorical
// transpose; see Transpose for the cup/cap construction.
func (d Diagram) L() Diagram {
	return d.conjugate(true)
}

// R returns the right conjugate.
func (d Diagram) R() Diagram {
	return d.conjugate(false)
}

func (d Diagram) conjugate(useLeft bool) Diagram {
	layers := make([]Layer, len(d.layers))
	for i, l := range d.layers {
		if useLeft {
			layers[i] = l.L()
		} else {
			layers[i] = l.R()
		}
	}
	if useLeft {
		return Diagram{layers: layers, dom: d.dom.L(), cod: d.cod.L()}
	}
	return Diagram{layers: layers, dom: d.dom.R(), cod: d.cod.R()}
}

// Equal reports structural equality: same domain, codomain and layer
// sequence. Equality up to the rigid axioms is Equiv.
func (d Diagram) Equal(e Diagram) bool {
	if !d.dom.Equal(e.dom) || !d.cod.Equal(e.cod) || len(d.layers) != len(e.layers) {
		return false
	}
	for i, l := range d.layers {
		if !l.Equal(e.layers[i]) {
			return false
		}
	}
	return true
}

// String renders the diagram as its boxes joined by ">>", with
// identities spelled out.
func (d Diagram) String() string {
	if len(d.layers) == 0 {
		return fmt.Sprintf("Id(%s)", d.dom)
	}
	parts := make([]string, len(d.layers))
	for i, l := range d.layers {
		parts[i] = l.String()
	}
	return strings.Join(parts, " >> ")
}

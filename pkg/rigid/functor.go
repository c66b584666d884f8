package rigid

import "fmt"

// Target bundles the operations a functor needs from its codomain
// category: objects of type O and arrows of type A. The first seven
// fields are mandatory; the remaining ones describe capabilities the
// target may lack, signalled by a nil field. Functor application fails
// with ErrUnsupported when it needs a capability the target does not
// provide.
type Target[O, A any] struct {
	Unit     func() O
	TensorOb func(x, y O) O
	Id       func(x O) A
	Then     func(f, g A) (A, error)
	TensorAr func(f, g A) A
	Cups     func(x, y O) (A, error)
	Caps     func(x, y O) (A, error)

	// ObL and ObR are the adjoints of the target, when it has them.
	ObL func(x O) O
	ObR func(x O) O
	// ObReverse serves self-dual targets where both adjoints coincide
	// with reversal, such as tensor-network dimensions.
	ObReverse func(x O) O
	// ArL and ArR conjugate arrows, used to transport images of boxes
	// carrying a nonzero winding.
	ArL func(f A) A
	ArR func(f A) A
	// Add combines the terms of a formal sum.
	Add func(f, g A) (A, error)
}

// Functor maps generators to a target category, extending freely to
// whole diagrams. Object images are recorded for zero-winding objects
// only; adjoints are derived through the target's own adjoints.
type Functor[O, A any] struct {
	obs    map[string]O
	ars    map[string]A
	target Target[O, A]
}

// NewFunctor returns an empty functor into the given target.
func NewFunctor[O, A any](target Target[O, A]) *Functor[O, A] {
	return &Functor[O, A]{
		obs:    make(map[string]O),
		ars:    make(map[string]A),
		target: target,
	}
}

// MapOb records the image of the zero-winding object with the given
// name.
func (f *Functor[O, A]) MapOb(name string, image O) {
	f.obs[name] = image
}

// MapBox records the image of a generating box. Only plain boxes with
// zero winding may be mapped directly; cups, caps and wound boxes are
// derived from their base generator.
func (f *Functor[O, A]) MapBox(b Box, image A) error {
	if b.Kind != KindBox {
		return fmt.Errorf("%w: %s images are derived, not mapped", ErrUnsupported, b.Kind)
	}
	if b.Z != 0 {
		return fmt.Errorf("%w: map the base generator of %s instead", ErrUnsupported, b)
	}
	f.ars[b.key()] = image
	return nil
}

// ApplyOb returns the image of an object. Wound objects unwind through
// the target's adjoints; for targets providing only ObReverse the two
// adjoints are taken to coincide with reversal.
func (f *Functor[O, A]) ApplyOb(o Ob) (O, error) {
	var zero O
	if o.Z == 0 {
		image, ok := f.obs[o.Name]
		if !ok {
			return zero, fmt.Errorf("%w: no image for object %s", ErrUnsupported, o)
		}
		return image, nil
	}
	switch {
	case o.Z > 0 && f.target.ObR != nil:
		image, err := f.ApplyOb(o.L())
		if err != nil {
			return zero, err
		}
		return f.target.ObR(image), nil
	case o.Z < 0 && f.target.ObL != nil:
		image, err := f.ApplyOb(o.R())
		if err != nil {
			return zero, err
		}
		return f.target.ObL(image), nil
	case f.target.ObReverse != nil:
		image, err := f.ApplyOb(Ob{Name: o.Name})
		if err != nil {
			return zero, err
		}
		if o.Z%2 != 0 {
			image = f.target.ObReverse(image)
		}
		return image, nil
	default:
		return zero, fmt.Errorf("%w: target has no adjoints for %s", ErrUnsupported, o)
	}
}

// ApplyTy returns the image of a type, tensoring the object images in
// order. The unit type maps to the target's unit.
func (f *Functor[O, A]) ApplyTy(t Ty) (O, error) {
	image := f.target.Unit()
	for i := 0; i < t.Len(); i++ {
		o, err := f.ApplyOb(t.At(i))
		if err != nil {
			var zero O
			return zero, err
		}
		image = f.target.TensorOb(image, o)
	}
	return image, nil
}

// ApplyBox returns the image of a box. Cups and caps delegate to the
// target's own coevaluation and evaluation; a wound box unwinds to its
// base generator and transports the image back through the target's
// arrow conjugates.
func (f *Functor[O, A]) ApplyBox(b Box) (A, error) {
	var zero A
	if b.Z != 0 && b.Kind == KindBox {
		if b.Z > 0 {
			if f.target.ArR == nil {
				return zero, fmt.Errorf("%w: target cannot conjugate %s", ErrUnsupported, b)
			}
			inner, err := f.ApplyBox(b.L())
			if err != nil {
				return zero, err
			}
			return f.target.ArR(inner), nil
		}
		if f.target.ArL == nil {
			return zero, fmt.Errorf("%w: target cannot conjugate %s", ErrUnsupported, b)
		}
		inner, err := f.ApplyBox(b.R())
		if err != nil {
			return zero, err
		}
		return f.target.ArL(inner), nil
	}
	switch b.Kind {
	case KindCup:
		x, err := f.ApplyTy(b.Dom.Slice(0, 1))
		if err != nil {
			return zero, err
		}
		y, err := f.ApplyTy(b.Dom.Slice(1, 2))
		if err != nil {
			return zero, err
		}
		return f.target.Cups(x, y)
	case KindCap:
		x, err := f.ApplyTy(b.Cod.Slice(0, 1))
		if err != nil {
			return zero, err
		}
		y, err := f.ApplyTy(b.Cod.Slice(1, 2))
		if err != nil {
			return zero, err
		}
		return f.target.Caps(x, y)
	default:
		image, ok := f.ars[b.key()]
		if !ok {
			return zero, fmt.Errorf("%w: no image for box %s", ErrUnsupported, b)
		}
		return image, nil
	}
}

// Apply returns the image of a whole diagram, composing the layer
// images in order. Functoriality holds by construction: the image of a
// composite is the composite of the images.
func (f *Functor[O, A]) Apply(d Diagram) (A, error) {
	var zero A
	dom, err := f.ApplyTy(d.Dom())
	if err != nil {
		return zero, err
	}
	image := f.target.Id(dom)
	for _, l := range d.Layers() {
		left, err := f.ApplyTy(l.Left)
		if err != nil {
			return zero, err
		}
		box, err := f.ApplyBox(l.Box)
		if err != nil {
			return zero, err
		}
		right, err := f.ApplyTy(l.Right)
		if err != nil {
			return zero, err
		}
		arrow := f.target.TensorAr(f.target.TensorAr(f.target.Id(left), box), f.target.Id(right))
		image, err = f.target.Then(image, arrow)
		if err != nil {
			return zero, err
		}
	}
	return image, nil
}

// ApplySum returns the image of a formal sum, combined with the
// target's addition. Targets without Add, and empty sums, are
// unsupported.
func (f *Functor[O, A]) ApplySum(s Sum) (A, error) {
	var zero A
	if f.target.Add == nil {
		return zero, fmt.Errorf("%w: target has no addition", ErrUnsupported)
	}
	terms := s.Terms()
	if len(terms) == 0 {
		return zero, fmt.Errorf("%w: empty sum has no image without a zero arrow", ErrUnsupported)
	}
	image, err := f.Apply(terms[0])
	if err != nil {
		return zero, err
	}
	for _, t := range terms[1:] {
		next, err := f.Apply(t)
		if err != nil {
			return zero, err
		}
		if image, err = f.target.Add(image, next); err != nil {
			return zero, err
		}
	}
	return image, nil
}

// Self returns the free target: types and diagrams themselves, with
// every capability except addition.
func Self() Target[Ty, Diagram] {
	return Target[Ty, Diagram]{
		Unit:      Unit,
		TensorOb:  func(x, y Ty) Ty { return x.Tensor(y) },
		Id:        Id,
		Then:      func(f, g Diagram) (Diagram, error) { return f.Then(g) },
		TensorAr:  func(f, g Diagram) Diagram { return f.Tensor(g) },
		Cups:      Cups,
		Caps:      Caps,
		ObL:       Ty.L,
		ObR:       Ty.R,
		ObReverse: Ty.reverse,
		ArL:       Diagram.L,
		ArR:       Diagram.R,
	}
}

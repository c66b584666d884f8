package rigid

import "fmt"

// Transpose computes the categorical transpose of the diagram by
// wrapping it in caps and cups. Unlike the conjugates L and R, this
// reverses the direction of the arrow: the result maps between the
// adjoints of the original codomain and domain.
//
// Transposing an identity on a composite type is not structurally
// equal to the tensor of the single-wire transposes, but both reduce
// to the same normal form.
func (d Diagram) Transpose(left bool) Diagram {
	if left {
		return Id(d.cod.L()).Tensor(MustCaps(d.dom, d.dom.L())).
			then(Id(d.cod.L()).Tensor(d, Id(d.dom.L()))).
			then(MustCups(d.cod.L(), d.cod).Tensor(Id(d.dom.L())))
	}
	return MustCaps(d.dom.R(), d.dom).Tensor(Id(d.cod.R())).
		then(Id(d.dom.R()).Tensor(d, Id(d.cod.R()))).
		then(Id(d.dom.R()).Tensor(MustCups(d.cod, d.cod.R())))
}

// Curry bends n domain wires into the codomain with a cap. With left
// true the last n wires move to the end of the codomain as their left
// adjoints; otherwise the first n wires move to the front as their
// right adjoints. ErrIndexRange if n exceeds the domain length.
func (d Diagram) Curry(n int, left bool) (Diagram, error) {
	if n < 0 || n > d.dom.Len() {
		return Diagram{}, fmt.Errorf("%w: cannot curry %d of %d domain wires",
			ErrIndexRange, n, d.dom.Len())
	}
	if left {
		base, exponent := d.dom.Slice(0, d.dom.Len()-n), d.dom.Slice(d.dom.Len()-n, d.dom.Len())
		return Id(base).Tensor(MustCaps(exponent, exponent.L())).
			then(d.Tensor(Id(exponent.L()))), nil
	}
	exponent, base := d.dom.Slice(0, n), d.dom.Slice(n, d.dom.Len())
	return MustCaps(exponent.R(), exponent).Tensor(Id(base)).
		then(Id(exponent.R()).Tensor(d)), nil
}

// Over returns the exponential type base << exponent.
func Over(base, exponent Ty) Ty {
	return base.Tensor(exponent.L())
}

// Under returns the exponential type exponent >> base.
func Under(base, exponent Ty) Ty {
	return exponent.R().Tensor(base)
}

// Eval returns the evaluation map for the closed structure: the cups
// consuming an exponent against its adjoint, flanked by the base.
func Eval(base, exponent Ty, left bool) Diagram {
	if left {
		return Id(base).Tensor(MustCups(exponent.L(), exponent))
	}
	return MustCups(exponent, exponent.R()).Tensor(Id(base))
}

// FA is forward application: left @ (left << right-style exponent)
// reduced by cups on the right.
func FA(left, right Ty) Diagram {
	return Id(left).Tensor(MustCups(right.L(), right))
}

// BA is backward application.
func BA(left, right Ty) Diagram {
	return MustCups(left, left.R()).Tensor(Id(right))
}

// FC is forward composition.
func FC(left, middle, right Ty) Diagram {
	return Id(left).Tensor(MustCups(middle.L(), middle), Id(right.L()))
}

// BC is backward composition.
func BC(left, middle, right Ty) Diagram {
	return Id(left.R()).Tensor(MustCups(middle, middle.R()), Id(right))
}

// Trace closes the last n wires of the diagram into a loop using a cap
// on the right adjunction. The last n wires of domain and codomain
// must agree (ErrComposition); n must not exceed either (ErrIndexRange).
func (d Diagram) Trace(n int) (Diagram, error) {
	if n < 0 || n > d.dom.Len() || n > d.cod.Len() {
		return Diagram{}, fmt.Errorf("%w: cannot trace %d wires of %s -> %s",
			ErrIndexRange, n, d.dom, d.cod)
	}
	in := d.dom.Slice(d.dom.Len()-n, d.dom.Len())
	out := d.cod.Slice(d.cod.Len()-n, d.cod.Len())
	if !in.Equal(out) {
		return Diagram{}, fmt.Errorf("%w: traced wires disagree: %s vs %s",
			ErrComposition, in, out)
	}
	return Id(d.dom.Slice(0, d.dom.Len()-n)).Tensor(MustCaps(in, in.R())).
		then(d.Tensor(Id(in.R()))).
		then(Id(d.cod.Slice(0, d.cod.Len()-n)).Tensor(MustCups(out, out.R()))), nil
}

package rigid_test

import (
	"errors"
	"testing"

	"github.com/chazu/strand/pkg/rigid"
)

func TestTransposeShape(t *testing.T) {
	a, b := rigid.NewTy("a"), rigid.NewTy("b")
	f := rigid.NewBox("f", a, b).Diagram()

	left := f.Transpose(true)
	if !left.Dom().Equal(b.L()) || !left.Cod().Equal(a.L()) {
		t.Errorf("left transpose shape = %s -> %s, want b.l -> a.l", left.Dom(), left.Cod())
	}

	right := f.Transpose(false)
	if !right.Dom().Equal(b.R()) || !right.Cod().Equal(a.R()) {
		t.Errorf("right transpose shape = %s -> %s, want b.r -> a.r", right.Dom(), right.Cod())
	}
}

func TestCurry(t *testing.T) {
	a, b, c := rigid.NewTy("a"), rigid.NewTy("b"), rigid.NewTy("c")
	f := rigid.NewBox("f", a.Tensor(b), c).Diagram()

	curried, err := f.Curry(1, true)
	if err != nil {
		t.Fatalf("Curry(1, true): %v", err)
	}
	if !curried.Dom().Equal(a) || !curried.Cod().Equal(c.Tensor(b.L())) {
		t.Errorf("curried shape = %s -> %s, want a -> c @ b.l", curried.Dom(), curried.Cod())
	}

	// Evaluating the curried arrow against its argument recovers f.
	uncurried, err := curried.Tensor(rigid.Id(b)).Then(rigid.Eval(c, b, true))
	if err != nil {
		t.Fatalf("uncurry: %v", err)
	}
	if !uncurried.NormalForm().Equal(f) {
		t.Errorf("uncurried normal form = %s, want %s", uncurried.NormalForm(), f)
	}

	rightCurried, err := f.Curry(1, false)
	if err != nil {
		t.Fatalf("Curry(1, false): %v", err)
	}
	if !rightCurried.Dom().Equal(b) || !rightCurried.Cod().Equal(a.R().Tensor(c)) {
		t.Errorf("right curried shape = %s -> %s, want b -> a.r @ c",
			rightCurried.Dom(), rightCurried.Cod())
	}

	if _, err := f.Curry(3, true); !errors.Is(err, rigid.ErrIndexRange) {
		t.Errorf("Curry(3, ...): got %v, want ErrIndexRange", err)
	}
}

func TestExponentials(t *testing.T) {
	n, s := rigid.NewTy("n"), rigid.NewTy("s")

	if !rigid.Over(s, n).Equal(s.Tensor(n.L())) {
		t.Errorf("Over(s, n) = %s, want s @ n.l", rigid.Over(s, n))
	}
	if !rigid.Under(s, n).Equal(n.R().Tensor(s)) {
		t.Errorf("Under(s, n) = %s, want n.r @ s", rigid.Under(s, n))
	}

	fa := rigid.FA(s, n)
	if !fa.Dom().Equal(rigid.Over(s, n).Tensor(n)) || !fa.Cod().Equal(s) {
		t.Errorf("FA(s, n) shape = %s -> %s, want s @ n.l @ n -> s", fa.Dom(), fa.Cod())
	}

	ba := rigid.BA(n, s)
	if !ba.Dom().Equal(n.Tensor(rigid.Under(s, n))) || !ba.Cod().Equal(s) {
		t.Errorf("BA(n, s) shape = %s -> %s, want n @ n.r @ s -> s", ba.Dom(), ba.Cod())
	}

	fc := rigid.FC(s, n, s)
	if !fc.Dom().Equal(rigid.Over(s, n).Tensor(rigid.Over(n, s))) {
		t.Errorf("FC dom = %s, want s @ n.l @ n @ s.l", fc.Dom())
	}
	if !fc.Cod().Equal(rigid.Over(s, s)) {
		t.Errorf("FC cod = %s, want s @ s.l", fc.Cod())
	}

	bc := rigid.BC(s, n, s)
	if !bc.Dom().Equal(rigid.Under(n, s).Tensor(rigid.Under(s, n))) {
		t.Errorf("BC dom = %s, want s.r @ n @ n.r @ s", bc.Dom())
	}
	if !bc.Cod().Equal(rigid.Under(s, s)) {
		t.Errorf("BC cod = %s, want s.r @ s", bc.Cod())
	}
}

func TestTrace(t *testing.T) {
	a, b, x := rigid.NewTy("a"), rigid.NewTy("b"), rigid.NewTy("x")
	f := rigid.NewBox("f", a.Tensor(x), b.Tensor(x)).Diagram()

	traced, err := f.Trace(1)
	if err != nil {
		t.Fatalf("Trace(1): %v", err)
	}
	if !traced.Dom().Equal(a) || !traced.Cod().Equal(b) {
		t.Errorf("traced shape = %s -> %s, want a -> b", traced.Dom(), traced.Cod())
	}

	// Tracing zero wires is the diagram itself.
	zero, err := f.Trace(0)
	if err != nil || !zero.Equal(f) {
		t.Errorf("Trace(0) = %v, %v, want f unchanged", zero, err)
	}

	g := rigid.NewBox("g", a.Tensor(x), b.Tensor(a)).Diagram()
	if _, err := g.Trace(1); !errors.Is(err, rigid.ErrComposition) {
		t.Errorf("mismatched loop wires: got %v, want ErrComposition", err)
	}
	if _, err := f.Trace(3); !errors.Is(err, rigid.ErrIndexRange) {
		t.Errorf("Trace(3): got %v, want ErrIndexRange", err)
	}
}

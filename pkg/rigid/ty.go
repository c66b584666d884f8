package rigid

import (
	"fmt"
	"strings"
)

// Ty is an ordered sequence of atomic objects. The zero value is the
// empty type, i.e. the monoidal unit. Ty values are immutable: every
// operation returns a fresh value.
type Ty struct {
	objects []Ob
}

// NewTy builds a type from plain generator names.
//
//	NewTy("n", "s") // n @ s
func NewTy(names ...string) Ty {
	objects := make([]Ob, len(names))
	for i, name := range names {
		objects[i] = NewOb(name)
	}
	return Ty{objects: objects}
}

// TyOf builds a type from explicit objects, winding numbers included.
func TyOf(objects ...Ob) Ty {
	inside := make([]Ob, len(objects))
	copy(inside, objects)
	return Ty{objects: inside}
}

// Unit returns the empty type.
func Unit() Ty {
	return Ty{}
}

// Len returns the number of atomic objects in the type.
func (t Ty) Len() int {
	return len(t.objects)
}

// IsUnit reports whether the type is empty.
func (t Ty) IsUnit() bool {
	return len(t.objects) == 0
}

// At returns the i-th atomic object.
func (t Ty) At(i int) Ob {
	return t.objects[i]
}

// Slice returns the sub-type covering objects [i, j).
func (t Ty) Slice(i, j int) Ty {
	inside := make([]Ob, j-i)
	copy(inside, t.objects[i:j])
	return Ty{objects: inside}
}

// Objects returns a copy of the objects inside the type.
func (t Ty) Objects() []Ob {
	inside := make([]Ob, len(t.objects))
	copy(inside, t.objects)
	return inside
}

// Tensor concatenates types. Concatenation is associative with the
// unit type as identity.
func (t Ty) Tensor(others ...Ty) Ty {
	n := len(t.objects)
	for _, u := range others {
		n += len(u.objects)
	}
	inside := make([]Ob, 0, n)
	inside = append(inside, t.objects...)
	for _, u := range others {
		inside = append(inside, u.objects...)
	}
	return Ty{objects: inside}
}

// L returns the left adjoint: the reversed sequence of per-object left
// adjoints, so that (a @ b).L() == b.L() @ a.L().
func (t Ty) L() Ty {
	inside := make([]Ob, len(t.objects))
	for i, o := range t.objects {
		inside[len(t.objects)-1-i] = o.L()
	}
	return Ty{objects: inside}
}

// R returns the right adjoint: the reversed sequence of per-object
// right adjoints.
func (t Ty) R() Ty {
	inside := make([]Ob, len(t.objects))
	for i, o := range t.objects {
		inside[len(t.objects)-1-i] = o.R()
	}
	return Ty{objects: inside}
}

// Winding returns the winding number of a length-one type. Querying a
// type of any other length fails with ErrTypeMismatch.
func (t Ty) Winding() (int, error) {
	if len(t.objects) != 1 {
		return 0, fmt.Errorf("%w: winding number of %s is undefined for types of length %d",
			ErrTypeMismatch, t, len(t.objects))
	}
	return t.objects[0].Z, nil
}

// Equal reports structural equality.
func (t Ty) Equal(u Ty) bool {
	if len(t.objects) != len(u.objects) {
		return false
	}
	for i, o := range t.objects {
		if o != u.objects[i] {
			return false
		}
	}
	return true
}

// String renders the objects joined by " @ ", or "Ty()" for the unit.
func (t Ty) String() string {
	if len(t.objects) == 0 {
		return "Ty()"
	}
	parts := make([]string, len(t.objects))
	for i, o := range t.objects {
		parts[i] = o.String()
	}
	return strings.Join(parts, " @ ")
}

// reverse returns the objects in reverse order with windings untouched.
// It is the degenerate adjoint used by functors into targets that have
// no adjoint of their own.
func (t Ty) reverse() Ty {
	inside := make([]Ob, len(t.objects))
	for i, o := range t.objects {
		inside[len(t.objects)-1-i] = o
	}
	return Ty{objects: inside}
}

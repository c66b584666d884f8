package rigid

import "strings"

// Ob is an atomic object: a generator name together with a winding
// number counting applied adjoints. Z == 0 is the plain generator,
// Z < 0 its iterated left adjoints, Z > 0 its iterated right adjoints.
//
// Ob is a comparable value type: two objects are equal exactly when
// both name and winding match. An object with nonzero winding is a
// distinct entity from the plain generator of the same name.
type Ob struct {
	Name string
	Z    int
}

// NewOb returns the plain generator with the given name.
func NewOb(name string) Ob {
	return Ob{Name: name}
}

// L returns the left adjoint of the object.
func (o Ob) L() Ob {
	return Ob{Name: o.Name, Z: o.Z - 1}
}

// R returns the right adjoint of the object.
func (o Ob) R() Ob {
	return Ob{Name: o.Name, Z: o.Z + 1}
}

// String renders the object as its name followed by one ".l" or ".r"
// per winding step, e.g. "n.l" or "s.r.r".
func (o Ob) String() string {
	var b strings.Builder
	b.WriteString(o.Name)
	for i := o.Z; i < 0; i++ {
		b.WriteString(".l")
	}
	for i := 0; i < o.Z; i++ {
		b.WriteString(".r")
	}
	return b.String()
}

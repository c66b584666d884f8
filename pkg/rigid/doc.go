// Package rigid implements the free rigid monoidal category: typed
// string diagrams built from boxes, identity wires, cups and caps.
//
// Types are sequences of atomic objects carrying a winding number that
// tracks applied adjoints. Diagrams are immutable sequences of layers
// (a box flanked by identity wires) with fixed domain and codomain.
// Cups and caps witness the adjunctions; NormalForm removes redundant
// snakes so that diagrams can be compared up to the rigid axioms.
//
// All values are immutable: composition, adjoints, normalization and
// functor application produce new values and never mutate their inputs.
package rigid

package engine

import (
	"fmt"
	"sort"

	"github.com/chazu/strand/pkg/rigid"
)

// Workspace holds the named types and diagrams produced by evaluating a
// script. It is the evaluation output handed to callers; builtins
// populate it during a run.
type Workspace struct {
	types    map[string]rigid.Ty
	diagrams map[string]rigid.Diagram
	tyOrder  []string
	diaOrder []string
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		types:    make(map[string]rigid.Ty),
		diagrams: make(map[string]rigid.Diagram),
	}
}

// DefineTy records a named type. Redefining a name overwrites the
// previous value but keeps its original position.
func (w *Workspace) DefineTy(name string, t rigid.Ty) {
	if _, exists := w.types[name]; !exists {
		w.tyOrder = append(w.tyOrder, name)
	}
	w.types[name] = t
}

// DefineDiagram records a named diagram.
func (w *Workspace) DefineDiagram(name string, d rigid.Diagram) {
	if _, exists := w.diagrams[name]; !exists {
		w.diaOrder = append(w.diaOrder, name)
	}
	w.diagrams[name] = d
}

// Ty looks up a named type.
func (w *Workspace) Ty(name string) (rigid.Ty, bool) {
	t, ok := w.types[name]
	return t, ok
}

// Diagram looks up a named diagram.
func (w *Workspace) Diagram(name string) (rigid.Diagram, bool) {
	d, ok := w.diagrams[name]
	return d, ok
}

// TyNames returns the defined type names in definition order.
func (w *Workspace) TyNames() []string {
	return append([]string(nil), w.tyOrder...)
}

// DiagramNames returns the defined diagram names in definition order.
func (w *Workspace) DiagramNames() []string {
	return append([]string(nil), w.diaOrder...)
}

// Count returns the number of definitions in the workspace.
func (w *Workspace) Count() int {
	return len(w.types) + len(w.diagrams)
}

// Functor builds a functor into the free category from name-to-name
// mappings: obs maps generator names to defined type names, ars maps
// single-generator diagram names to defined diagram names.
func (w *Workspace) Functor(obs, ars map[string]string) (*rigid.Functor[rigid.Ty, rigid.Diagram], error) {
	f := rigid.NewFunctor(rigid.Self())
	for gen, image := range obs {
		t, ok := w.types[image]
		if !ok {
			return nil, fmt.Errorf("functor: no type named %q", image)
		}
		f.MapOb(gen, t)
	}
	names := make([]string, 0, len(ars))
	for gen := range ars {
		names = append(names, gen)
	}
	sort.Strings(names)
	for _, gen := range names {
		src, ok := w.diagrams[gen]
		if !ok {
			return nil, fmt.Errorf("functor: no diagram named %q", gen)
		}
		if src.Len() != 1 {
			return nil, fmt.Errorf("functor: %q is not a single generator", gen)
		}
		image, ok := w.diagrams[ars[gen]]
		if !ok {
			return nil, fmt.Errorf("functor: no diagram named %q", ars[gen])
		}
		if err := f.MapBox(src.LayerAt(0).Box, image); err != nil {
			return nil, fmt.Errorf("functor: %q: %w", gen, err)
		}
	}
	return f, nil
}

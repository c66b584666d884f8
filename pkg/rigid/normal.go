package rigid

import "fmt"

// interchangeAdjacent exchanges layers i and i+1 when their boxes act
// on disjoint wires, failing with ErrInterchange when they share any.
func (d Diagram) interchangeAdjacent(i int) (Diagram, error) {
	upper, lower := d.layers[i], d.layers[i+1]
	off0, cod0 := upper.Offset(), upper.Box.Cod.Len()
	off1, dom1 := lower.Offset(), lower.Box.Dom.Len()
	layers := d.Layers()
	switch {
	case off1 >= off0+cod0:
		// The lower box sits entirely right of the upper box's output.
		middle := lower.Left.Slice(off0+cod0, off1)
		layers[i] = Layer{Left: upper.Left.Tensor(upper.Box.Dom, middle), Box: lower.Box, Right: lower.Right}
		layers[i+1] = Layer{Left: upper.Left, Box: upper.Box, Right: middle.Tensor(lower.Box.Cod, lower.Right)}
	case off1+dom1 <= off0:
		// The lower box sits entirely left of the upper box's input.
		middle := upper.Left.Slice(off1+dom1, off0)
		layers[i] = Layer{Left: lower.Left, Box: lower.Box, Right: middle.Tensor(upper.Box.Dom, upper.Right)}
		layers[i+1] = Layer{Left: lower.Left.Tensor(lower.Box.Cod, middle), Box: upper.Box, Right: upper.Right}
	default:
		return Diagram{}, fmt.Errorf("%w: layers %d and %d share wires", ErrInterchange, i, i+1)
	}
	return Diagram{layers: layers, dom: d.dom, cod: d.cod}, nil
}

// Interchange moves layer i to position j through a sequence of
// adjacent exchanges, failing with ErrInterchange if any pair on the
// way shares wires and ErrIndexRange for indices outside the diagram.
func (d Diagram) Interchange(i, j int) (Diagram, error) {
	if i < 0 || i >= len(d.layers) || j < 0 || j >= len(d.layers) {
		return Diagram{}, fmt.Errorf("%w: interchange (%d, %d) on %d layers",
			ErrIndexRange, i, j, len(d.layers))
	}
	result := d
	var err error
	for k := i; k < j; k++ {
		if result, err = result.interchangeAdjacent(k); err != nil {
			return Diagram{}, err
		}
	}
	for k := i; k > j; k-- {
		if result, err = result.interchangeAdjacent(k - 1); err != nil {
			return Diagram{}, err
		}
	}
	return result, nil
}

// followWire walks a wire downward from the output of layer start at
// global position wire, past boxes that do not touch it, until it
// enters a box or exits the diagram. It returns the layer index where
// the wire ends (len(layers) if it exits), the wire's position there,
// and the indices of the layers obstructing on the left and right.
func (d Diagram) followWire(start, wire int) (end, exit int, leftObst, rightObst []int) {
	j := wire
	for n := start + 1; n < len(d.layers); n++ {
		l := d.layers[n]
		off, domLen := l.Offset(), l.Box.Dom.Len()
		if off <= j && j < off+domLen {
			return n, j, leftObst, rightObst
		}
		if off <= j {
			// The box acts entirely left of the wire, shifting it.
			j += l.Box.Cod.Len() - domLen
			leftObst = append(leftObst, n)
		} else {
			rightObst = append(rightObst, n)
		}
	}
	return len(d.layers), j, leftObst, rightObst
}

// snake records a yankable cap/cup pair: the cap's output wire reaches
// the cup, forming a zig-zag equal to an identity wire. A left snake
// follows the cap's left output into the cup's right port; a right
// snake follows the right output into the left port.
type snake struct {
	cap, cup            int
	leftObst, rightObst []int
	left                bool
}

func (d Diagram) findSnake() *snake {
	for i, l := range d.layers {
		if l.Box.Kind != KindCap {
			continue
		}
		k := l.Offset()
		if s := d.checkSnake(i, k, true); s != nil {
			return s
		}
		if s := d.checkSnake(i, k+1, false); s != nil {
			return s
		}
	}
	return nil
}

func (d Diagram) checkSnake(capIdx, wire int, leftSnake bool) *snake {
	cupIdx, exit, leftObst, rightObst := d.followWire(capIdx, wire)
	if cupIdx == len(d.layers) || d.layers[cupIdx].Box.Kind != KindCup {
		return nil
	}
	capBox, cupBox := d.layers[capIdx].Box, d.layers[cupIdx].Box
	cupOff := d.layers[cupIdx].Offset()
	if leftSnake {
		// The cap's surviving right output must match the wire the cup
		// consumes alongside, otherwise the zig-zag is not an identity.
		if cupOff+1 != exit || cupBox.Dom.At(0) != capBox.Cod.At(1) {
			return nil
		}
	} else {
		if cupOff != exit || cupBox.Dom.At(1) != capBox.Cod.At(0) {
			return nil
		}
	}
	return &snake{cap: capIdx, cup: cupIdx, leftObst: leftObst, rightObst: rightObst, left: leftSnake}
}

// unsnake moves the obstructing layers out of the way one interchange
// at a time, then deletes the adjacent cap/cup pair. It returns every
// intermediate diagram; the last one has the snake removed.
//
// Obstructions always move to the side of the followed wire they sit
// on, so every interchange is between disjoint boxes.
func (d Diagram) unsnake(s snake) []Diagram {
	var steps []Diagram
	current := d
	capIdx, cupIdx := s.cap, s.cup
	leftObst := append([]int(nil), s.leftObst...)
	rightObst := append([]int(nil), s.rightObst...)
	move := func(from, to int) {
		next, err := current.Interchange(from, to)
		if err != nil {
			panic(err)
		}
		current = next
		steps = append(steps, current)
	}
	if s.left {
		// Left obstructions go above the cap, right ones below the cup.
		for _, b := range leftObst {
			move(b, capIdx)
			for i, rb := range rightObst {
				if rb < b {
					rightObst[i]++
				}
			}
			capIdx++
		}
		for i := len(rightObst) - 1; i >= 0; i-- {
			move(rightObst[i], cupIdx)
			cupIdx--
		}
	} else {
		// Left obstructions go below the cup, right ones above the cap.
		for i := len(leftObst) - 1; i >= 0; i-- {
			b := leftObst[i]
			move(b, cupIdx)
			for j, rb := range rightObst {
				if rb > b {
					rightObst[j]--
				}
			}
			cupIdx--
		}
		for _, b := range rightObst {
			move(b, capIdx)
			capIdx++
		}
	}
	if cupIdx != capIdx+1 {
		panic(fmt.Sprintf("rigid: snake not adjacent after interchanges: cap %d, cup %d", capIdx, cupIdx))
	}
	layers := make([]Layer, 0, current.Len()-2)
	layers = append(layers, current.layers[:capIdx]...)
	layers = append(layers, current.layers[cupIdx+1:]...)
	steps = append(steps, Diagram{layers: layers, dom: d.dom, cod: d.cod})
	return steps
}

// Normalizer yields the intermediate diagrams of normalization one
// rewrite step at a time: snake removal first, then the interchange
// normalization of arXiv:1804.07832 on the snake-free remainder. It is
// an explicit worklist, safe to consume partially; Current is always a
// valid diagram equal to the original up to the rigid axioms.
type Normalizer struct {
	current Diagram
	queue   []Diagram
	seen    map[string]bool
}

// Normalizer returns a fresh rewrite sequence for the diagram.
func (d Diagram) Normalizer() *Normalizer {
	return &Normalizer{current: d, seen: map[string]bool{d.String(): true}}
}

// Step performs one rewrite and returns the resulting diagram. It
// returns false once the diagram is in normal form. Interchange
// normalization between disconnected scalar components can cycle; a
// revisited state also ends the sequence.
func (n *Normalizer) Step() (Diagram, bool) {
	if len(n.queue) > 0 {
		n.current = n.queue[0]
		n.queue = n.queue[1:]
		return n.current, true
	}
	if s := n.current.findSnake(); s != nil {
		n.queue = n.current.unsnake(*s)
		return n.Step()
	}
	for i := 0; i+1 < n.current.Len(); i++ {
		upper, lower := n.current.layers[i], n.current.layers[i+1]
		if upper.Offset() >= lower.Offset()+lower.Box.Dom.Len() {
			next, err := n.current.interchangeAdjacent(i)
			if err != nil {
				panic(err) // unreachable: the offset check proves disjointness
			}
			if n.seen[next.String()] {
				return n.current, false
			}
			n.seen[next.String()] = true
			n.current = next
			return n.current, true
		}
	}
	return n.current, false
}

// Current returns the most recent diagram of the sequence.
func (n *Normalizer) Current() Diagram { return n.current }

// NormalForm reduces the diagram to its snake-free, interchange-normal
// form. The reduction is deterministic and idempotent; equality of
// normal forms decides equality up to the rigid axioms.
func (d Diagram) NormalForm() Diagram {
	n := d.Normalizer()
	for {
		if _, ok := n.Step(); !ok {
			return n.Current()
		}
	}
}

// Equiv reports equality up to the rigid axioms: structural equality
// of the two normal forms.
func (d Diagram) Equiv(e Diagram) bool {
	return d.NormalForm().Equal(e.NormalForm())
}

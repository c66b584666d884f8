package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/strand/pkg/rigid"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Strand Lisp source code before passing it
// to zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: normal-form -> normal_form
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpTy wraps a rigid.Ty so it can be passed between builtins.
type sexpTy struct {
	ty rigid.Ty
}

func (t *sexpTy) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(ty %s)", t.ty)
}
func (t *sexpTy) Type() *zygo.RegisteredType { return nil }

// sexpDiagram wraps a rigid.Diagram. Generating boxes are carried as
// one-layer diagrams, so every arrow-valued builtin speaks one type.
type sexpDiagram struct {
	d rigid.Diagram
}

func (d *sexpDiagram) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(diagram %s -> %s, %d layers)", d.d.Dom(), d.d.Cod(), d.d.Len())
}
func (d *sexpDiagram) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value — treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp. A keyword used as a bare flag
// parses as SexpNull, which counts as true.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return true, nil
		}
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toTy extracts a rigid.Ty from a sexpTy.
func toTy(s zygo.Sexp) (rigid.Ty, error) {
	if t, ok := s.(*sexpTy); ok {
		return t.ty, nil
	}
	return rigid.Ty{}, fmt.Errorf("expected type, got %T (%s)", s, s.SexpString(nil))
}

// toDiagram extracts a rigid.Diagram from a sexpDiagram.
func toDiagram(s zygo.Sexp) (rigid.Diagram, error) {
	if d, ok := s.(*sexpDiagram); ok {
		return d.d, nil
	}
	return rigid.Diagram{}, fmt.Errorf("expected diagram, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all Strand DSL builtins into a zygomys
// environment. The builtins operate on the provided Workspace,
// populating it during evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable
// string literals and kebab-case names reach their underscore forms.
func registerBuiltins(env *zygo.Zlisp, ws *Workspace) {

	// -----------------------------------------------------------------------
	// (ty "n" "s") builds the type n @ s from plain generator names.
	// -----------------------------------------------------------------------
	env.AddFunction("ty", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		names := make([]string, len(args))
		for i, a := range args {
			s, err := toString(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("ty: argument %d: %w", i+1, err)
			}
			names[i] = s
		}
		return &sexpTy{ty: rigid.NewTy(names...)}, nil
	})

	// -----------------------------------------------------------------------
	// (left-adjoint x) / (right-adjoint x) on a type or a diagram.
	// On diagrams these are the order-preserving conjugates.
	// -----------------------------------------------------------------------
	env.AddFunction("left_adjoint", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("left-adjoint requires exactly 1 argument")
		}
		switch v := args[0].(type) {
		case *sexpTy:
			return &sexpTy{ty: v.ty.L()}, nil
		case *sexpDiagram:
			return &sexpDiagram{d: v.d.L()}, nil
		}
		return zygo.SexpNull, fmt.Errorf("left-adjoint: expected type or diagram, got %T", args[0])
	})

	env.AddFunction("right_adjoint", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("right-adjoint requires exactly 1 argument")
		}
		switch v := args[0].(type) {
		case *sexpTy:
			return &sexpTy{ty: v.ty.R()}, nil
		case *sexpDiagram:
			return &sexpDiagram{d: v.d.R()}, nil
		}
		return zygo.SexpNull, fmt.Errorf("right-adjoint: expected type or diagram, got %T", args[0])
	})

	// -----------------------------------------------------------------------
	// (box "f" :dom (ty "n") :cod (ty "s"))
	// Domain and codomain default to the unit type, so words of a
	// grammar are simply (box "Alice" :cod n).
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("box requires a name argument")
		}
		boxName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: name: %w", err)
		}
		dom, cod := rigid.Unit(), rigid.Unit()
		if v, ok := pa.kw["dom"]; ok {
			if dom, err = toTy(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("box: dom: %w", err)
			}
		}
		if v, ok := pa.kw["cod"]; ok {
			if cod, err = toTy(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("box: cod: %w", err)
			}
		}
		return &sexpDiagram{d: rigid.NewBox(boxName, dom, cod).Diagram()}, nil
	})

	// -----------------------------------------------------------------------
	// (id (ty "n"))
	// -----------------------------------------------------------------------
	env.AddFunction("id", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("id requires exactly 1 argument")
		}
		t, err := toTy(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("id: %w", err)
		}
		return &sexpDiagram{d: rigid.Id(t)}, nil
	})

	// -----------------------------------------------------------------------
	// (cup l r) / (cap l r) on atomic types;
	// (cups l r) / (caps l r) nest over composite types.
	// -----------------------------------------------------------------------
	env.AddFunction("cup", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		l, r, err := twoTypes("cup", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		b, err := rigid.Cup(l, r)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDiagram{d: b.Diagram()}, nil
	})

	env.AddFunction("cap", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		l, r, err := twoTypes("cap", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		b, err := rigid.Cap(l, r)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDiagram{d: b.Diagram()}, nil
	})

	env.AddFunction("cups", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		l, r, err := twoTypes("cups", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		d, err := rigid.Cups(l, r)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDiagram{d: d}, nil
	})

	env.AddFunction("caps", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		l, r, err := twoTypes("caps", args)
		if err != nil {
			return zygo.SexpNull, err
		}
		d, err := rigid.Caps(l, r)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDiagram{d: d}, nil
	})

	// -----------------------------------------------------------------------
	// (then d e ...) composes top to bottom.
	// -----------------------------------------------------------------------
	env.AddFunction("then", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("then requires at least 1 argument")
		}
		result, err := toDiagram(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("then: argument 1: %w", err)
		}
		for i := 1; i < len(args); i++ {
			next, err := toDiagram(args[i])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("then: argument %d: %w", i+1, err)
			}
			if result, err = result.Then(next); err != nil {
				return zygo.SexpNull, err
			}
		}
		return &sexpDiagram{d: result}, nil
	})

	// -----------------------------------------------------------------------
	// (tensor x y ...) places types or diagrams side by side.
	// -----------------------------------------------------------------------
	env.AddFunction("tensor", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("tensor requires at least 1 argument")
		}
		switch first := args[0].(type) {
		case *sexpTy:
			result := first.ty
			for i := 1; i < len(args); i++ {
				t, err := toTy(args[i])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("tensor: argument %d: %w", i+1, err)
				}
				result = result.Tensor(t)
			}
			return &sexpTy{ty: result}, nil
		case *sexpDiagram:
			result := first.d
			for i := 1; i < len(args); i++ {
				d, err := toDiagram(args[i])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("tensor: argument %d: %w", i+1, err)
				}
				result = result.Tensor(d)
			}
			return &sexpDiagram{d: result}, nil
		}
		return zygo.SexpNull, fmt.Errorf("tensor: expected type or diagram, got %T", args[0])
	})

	// -----------------------------------------------------------------------
	// (dom d) / (cod d)
	// -----------------------------------------------------------------------
	env.AddFunction("dom", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("dom requires exactly 1 argument")
		}
		d, err := toDiagram(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dom: %w", err)
		}
		return &sexpTy{ty: d.Dom()}, nil
	})

	env.AddFunction("cod", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("cod requires exactly 1 argument")
		}
		d, err := toDiagram(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cod: %w", err)
		}
		return &sexpTy{ty: d.Cod()}, nil
	})

	// -----------------------------------------------------------------------
	// (transpose d :left true)
	// -----------------------------------------------------------------------
	env.AddFunction("transpose", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("transpose requires a diagram argument")
		}
		d, err := toDiagram(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("transpose: %w", err)
		}
		left := false
		if v, ok := pa.kw["left"]; ok {
			if left, err = toBool(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("transpose: left: %w", err)
			}
		}
		return &sexpDiagram{d: d.Transpose(left)}, nil
	})

	// -----------------------------------------------------------------------
	// (curry d :n 1 :left true)
	// -----------------------------------------------------------------------
	env.AddFunction("curry", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("curry requires a diagram argument")
		}
		d, err := toDiagram(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("curry: %w", err)
		}
		n := 1
		if v, ok := pa.kw["n"]; ok {
			if n, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("curry: n: %w", err)
			}
		}
		left := true
		if v, ok := pa.kw["left"]; ok {
			if left, err = toBool(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("curry: left: %w", err)
			}
		}
		curried, err := d.Curry(n, left)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDiagram{d: curried}, nil
	})

	// -----------------------------------------------------------------------
	// (trace d :n 1)
	// -----------------------------------------------------------------------
	env.AddFunction("trace", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("trace requires a diagram argument")
		}
		d, err := toDiagram(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("trace: %w", err)
		}
		n := 1
		if v, ok := pa.kw["n"]; ok {
			if n, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("trace: n: %w", err)
			}
		}
		traced, err := d.Trace(n)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpDiagram{d: traced}, nil
	})

	// -----------------------------------------------------------------------
	// (normal-form d)
	// -----------------------------------------------------------------------
	env.AddFunction("normal_form", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("normal-form requires exactly 1 argument")
		}
		d, err := toDiagram(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("normal-form: %w", err)
		}
		return &sexpDiagram{d: d.NormalForm()}, nil
	})

	// -----------------------------------------------------------------------
	// (same x y) structural equality; (equiv d e) equality up to the
	// rigid axioms.
	// -----------------------------------------------------------------------
	env.AddFunction("same", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("same requires exactly 2 arguments")
		}
		switch a := args[0].(type) {
		case *sexpTy:
			b, err := toTy(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("same: %w", err)
			}
			return &zygo.SexpBool{Val: a.ty.Equal(b)}, nil
		case *sexpDiagram:
			b, err := toDiagram(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("same: %w", err)
			}
			return &zygo.SexpBool{Val: a.d.Equal(b)}, nil
		}
		return zygo.SexpNull, fmt.Errorf("same: expected type or diagram, got %T", args[0])
	})

	env.AddFunction("equiv", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("equiv requires exactly 2 arguments")
		}
		a, err := toDiagram(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("equiv: %w", err)
		}
		b, err := toDiagram(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("equiv: %w", err)
		}
		return &zygo.SexpBool{Val: a.Equiv(b)}, nil
	})

	// -----------------------------------------------------------------------
	// (defty "name" t) / (defdiagram "name" d) record definitions in the
	// workspace; (ty-ref "name") / (diagram-ref "name") look them up.
	// -----------------------------------------------------------------------
	env.AddFunction("defty", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defty requires a name and a type")
		}
		tyName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defty: name: %w", err)
		}
		t, err := toTy(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defty: %w", err)
		}
		ws.DefineTy(tyName, t)
		return &sexpTy{ty: t}, nil
	})

	env.AddFunction("defdiagram", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defdiagram requires a name and a diagram")
		}
		diaName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defdiagram: name: %w", err)
		}
		d, err := toDiagram(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defdiagram: %w", err)
		}
		ws.DefineDiagram(diaName, d)
		return &sexpDiagram{d: d}, nil
	})

	env.AddFunction("ty_ref", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("ty-ref requires a name argument")
		}
		tyName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ty-ref: %w", err)
		}
		t, ok := ws.Ty(tyName)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("ty-ref: no type named %q", tyName)
		}
		return &sexpTy{ty: t}, nil
	})

	env.AddFunction("diagram_ref", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("diagram-ref requires a name argument")
		}
		diaName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("diagram-ref: %w", err)
		}
		d, ok := ws.Diagram(diaName)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("diagram-ref: no diagram named %q", diaName)
		}
		return &sexpDiagram{d: d}, nil
	})
}

// twoTypes extracts exactly two type arguments for the cup and cap
// family of builtins.
func twoTypes(fn string, args []zygo.Sexp) (rigid.Ty, rigid.Ty, error) {
	if len(args) != 2 {
		return rigid.Ty{}, rigid.Ty{}, fmt.Errorf("%s requires exactly 2 type arguments", fn)
	}
	l, err := toTy(args[0])
	if err != nil {
		return rigid.Ty{}, rigid.Ty{}, fmt.Errorf("%s: left: %w", fn, err)
	}
	r, err := toTy(args[1])
	if err != nil {
		return rigid.Ty{}, rigid.Ty{}, fmt.Errorf("%s: right: %w", fn, err)
	}
	return l, r, nil
}

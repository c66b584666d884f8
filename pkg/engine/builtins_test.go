package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/strand/pkg/rigid"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(box "f" :dom n)`,
			expect: `(box "f" "__kw_dom" n)`,
		},
		{
			name:   "multiple keywords",
			input:  `(curry d :n 1 :left true)`,
			expect: `(curry d "__kw_n" 1 "__kw_left" true)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(normal-form d)`,
			expect: `(normal_form d)`,
		},
		{
			name:   "adjoint builtins",
			input:  `(left-adjoint (right-adjoint n))`,
			expect: `(left_adjoint (right_adjoint n))`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			assert.Equal(t, tt.expect, got)
		})
	}
}

// evalOK runs source through a fresh engine and fails the test on any
// error.
func evalOK(t *testing.T, source string) *Workspace {
	t.Helper()
	eng := NewEngine()
	ws, evalErrs, err := eng.Evaluate(source)
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	require.NotNil(t, ws)
	return ws
}

// ---------------------------------------------------------------------------
// Type definition tests
// ---------------------------------------------------------------------------

func TestDefineType(t *testing.T) {
	ws := evalOK(t, `(defty "sentence" (ty "n" "s"))`)

	st, ok := ws.Ty("sentence")
	require.True(t, ok, "expected type named sentence")
	assert.True(t, st.Equal(rigid.NewTy("n", "s")))
	assert.Equal(t, []string{"sentence"}, ws.TyNames())
}

func TestAdjointBuiltins(t *testing.T) {
	ws := evalOK(t, `
(defty "left" (left-adjoint (ty "n" "s")))
(defty "back" (right-adjoint (left-adjoint (ty "n" "s"))))
`)

	left, ok := ws.Ty("left")
	require.True(t, ok)
	assert.True(t, left.Equal(rigid.NewTy("n", "s").L()),
		"left = %s, want %s", left, rigid.NewTy("n", "s").L())

	back, ok := ws.Ty("back")
	require.True(t, ok)
	assert.True(t, back.Equal(rigid.NewTy("n", "s")), "adjoints should cancel")
}

func TestTyRef(t *testing.T) {
	ws := evalOK(t, `
(defty "noun" (ty "n"))
(defty "noun2" (tensor (ty-ref "noun") (ty-ref "noun")))
`)

	n2, ok := ws.Ty("noun2")
	require.True(t, ok)
	assert.True(t, n2.Equal(rigid.NewTy("n", "n")))
}

// ---------------------------------------------------------------------------
// Diagram construction tests
// ---------------------------------------------------------------------------

func TestDefineBoxDiagram(t *testing.T) {
	ws := evalOK(t, `
(def n (ty "n"))
(def s (ty "s"))
(defdiagram "f" (box "f" :dom n :cod s))
`)

	f, ok := ws.Diagram("f")
	require.True(t, ok, "expected diagram named f")
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Dom().Equal(rigid.NewTy("n")))
	assert.True(t, f.Cod().Equal(rigid.NewTy("s")))
	assert.Equal(t, "f", f.LayerAt(0).Box.Name)
}

func TestComposeAndTensor(t *testing.T) {
	ws := evalOK(t, `
(def a (ty "a"))
(def b (ty "b"))
(def f (box "f" :dom a :cod b))
(def g (box "g" :dom b :cod a))
(defdiagram "loop" (then f g))
(defdiagram "pair" (tensor f g))
`)

	loop, ok := ws.Diagram("loop")
	require.True(t, ok)
	assert.Equal(t, 2, loop.Len())
	assert.True(t, loop.Dom().Equal(rigid.NewTy("a")))
	assert.True(t, loop.Cod().Equal(rigid.NewTy("a")))

	pair, ok := ws.Diagram("pair")
	require.True(t, ok)
	assert.True(t, pair.Dom().Equal(rigid.NewTy("a", "b")))
	assert.True(t, pair.Cod().Equal(rigid.NewTy("b", "a")))
}

func TestCompositionMismatchIsEvalError(t *testing.T) {
	eng := NewEngine()
	ws, evalErrs, err := eng.Evaluate(`
(def a (ty "a"))
(def f (box "f" :dom a :cod a))
(def g (box "g" :dom (ty "b") :cod a))
(then f g)
`)
	require.NoError(t, err)
	assert.Nil(t, ws)
	require.NotEmpty(t, evalErrs)
	assert.Contains(t, evalErrs[0].Message, "compose")
}

func TestCupRejectsNonAdjoints(t *testing.T) {
	eng := NewEngine()
	ws, evalErrs, err := eng.Evaluate(`(cup (ty "n") (ty "s"))`)
	require.NoError(t, err)
	assert.Nil(t, ws)
	require.NotEmpty(t, evalErrs)
	assert.Contains(t, evalErrs[0].Message, "adjoint")
}

// ---------------------------------------------------------------------------
// Grammar scenario
// ---------------------------------------------------------------------------

func TestSentenceScenario(t *testing.T) {
	ws := evalOK(t, `
(def n (ty "n"))
(def s (ty "s"))
(def alice (box "Alice" :cod n))
(def bob (box "Bob" :cod n))
(def loves (box "loves" :cod (tensor (right-adjoint n) s (left-adjoint n))))

(def grammar (tensor (cups n (right-adjoint n))
                     (id s)
                     (cups (left-adjoint n) n)))

(defdiagram "sentence" (then (tensor alice loves bob) grammar))
(defdiagram "parsed" (normal-form (diagram-ref "sentence")))
`)

	sentence, ok := ws.Diagram("sentence")
	require.True(t, ok)
	assert.True(t, sentence.Dom().IsUnit())
	assert.True(t, sentence.Cod().Equal(rigid.NewTy("s")))

	parsed, ok := ws.Diagram("parsed")
	require.True(t, ok)
	assert.True(t, parsed.Equiv(sentence), "normal form stays equivalent")
	assert.True(t, parsed.NormalForm().Equal(parsed), "normal form is a fixed point")
}

func TestTransposeAndEquivBuiltins(t *testing.T) {
	ws := evalOK(t, `
(def n (ty "n"))
(defdiagram "snake" (transpose (id n) :left true))
(defdiagram "reduced" (normal-form (diagram-ref "snake")))
(def flat (equiv (diagram-ref "snake") (id (left-adjoint n))))
(def strict (same (diagram-ref "snake") (id (left-adjoint n))))
`)

	reduced, ok := ws.Diagram("reduced")
	require.True(t, ok)
	assert.True(t, reduced.Equal(rigid.Id(rigid.NewTy("n").L())),
		"reduced = %s", reduced)
}

func TestCurryAndTraceBuiltins(t *testing.T) {
	ws := evalOK(t, `
(def a (ty "a"))
(def b (ty "b"))
(def x (ty "x"))
(def f (box "f" :dom (tensor a b) :cod (ty "c")))
(defdiagram "curried" (curry f :n 1 :left true))

(def g (box "g" :dom (tensor a x) :cod (tensor b x)))
(defdiagram "looped" (trace g :n 1))
`)

	curried, ok := ws.Diagram("curried")
	require.True(t, ok)
	assert.True(t, curried.Dom().Equal(rigid.NewTy("a")))
	assert.True(t, curried.Cod().Equal(rigid.NewTy("c").Tensor(rigid.NewTy("b").L())))

	looped, ok := ws.Diagram("looped")
	require.True(t, ok)
	assert.True(t, looped.Dom().Equal(rigid.NewTy("a")))
	assert.True(t, looped.Cod().Equal(rigid.NewTy("b")))
}

// ---------------------------------------------------------------------------
// Workspace functor wiring
// ---------------------------------------------------------------------------

func TestWorkspaceFunctor(t *testing.T) {
	ws := evalOK(t, `
(def n (ty "n"))
(def x (ty "x" "y"))
(defty "target" x)
(defdiagram "f" (box "f" :dom n :cod n))
(defdiagram "image" (box "g" :dom x :cod x))
`)

	F, err := ws.Functor(
		map[string]string{"n": "target"},
		map[string]string{"f": "image"},
	)
	require.NoError(t, err)

	f, _ := ws.Diagram("f")
	got, err := F.Apply(f)
	require.NoError(t, err)
	image, _ := ws.Diagram("image")
	assert.True(t, got.Equal(image))

	_, err = ws.Functor(map[string]string{"n": "missing"}, nil)
	assert.Error(t, err)
}

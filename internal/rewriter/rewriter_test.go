package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravel/internal/reader"
	"ravel/internal/term"
)

func rewriteSource(t *testing.T, src string, gas int) string {
	t.Helper()
	b, err := ReadAndRewrite(src, gas)
	require.NoError(t, err)
	return term.Print(b)
}

func TestSeedScenarios(t *testing.T) {
	cases := []struct {
		input, output string
	}{
		{"[foo] B", "[foo] [foo]"},
		{"[foo] C", ""},
		{"[foo] [bar] D", "[bar] [foo]"},
		{"[foo] [bar] F", "[foo bar]"},
		{"[foo] G", "[[foo]]"},
		{"[foo] H", "foo"},
		{"[foo] [bar] [value] J H", "[value] foo"},
		{"[foo] [bar] [value] K H", "[value] bar"},
		{"[foo] [bar] L H", "[foo] [bar]"},
		{`"Hello" "world" D`, `"world" "Hello"`},
		{"{ Hello, world. }", "{ Hello, world. }"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.output, rewriteSource(t, c.input, 1_000_000))
		})
	}
}

func TestRewriteLaws(t *testing.T) {
	cases := []struct{ input, output string }{
		{"[x] B", "[x] [x]"},
		{"[x] C", ""},
		{"[x] [y] D", "[y] [x]"},
		{"[x] [y] F", "[x y]"},
		{"[x] G", "[[x]]"},
		{"[x] H", "x"},
		{"[x] [y] [v] J H", "[v] x"},
		{"[x] [y] [v] K H", "[v] y"},
		{"[x] [y] L H", "[x] [y]"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			assert.Equal(t, c.output, rewriteSource(t, c.input, 1_000_000))
		})
	}
}

func TestGasZeroReturnsInputVerbatim(t *testing.T) {
	cases := []string{"[foo] B", "foo bar BAZ", "[foo] [bar] D"}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			assert.Equal(t, src, rewriteSource(t, src, 0))
		})
	}
}

func TestHOnNonValueThunksNotPanics(t *testing.T) {
	// A raw Variable can only reach the data stack via a hand-built Pair
	// (RunPair pushes its fields verbatim, skipping the value check that
	// every ordinary step enforces), so this constructs the state directly
	// instead of going through the reader.
	pair := term.NewPair(term.NewVariable("x"), term.NewID())
	input := term.Cat(pair, term.NewConstant("H"), term.NewConstant("H"))

	var out term.Block
	assert.NotPanics(t, func() {
		out = Rewrite(input, 1_000_000)
	})
	assert.Equal(t, "x H", term.Print(out))
}

func TestFWithOneElementThunksElementThenF(t *testing.T) {
	out := rewriteSource(t, "[foo] F", 1_000_000)
	assert.Equal(t, "[foo] F", out)
}

func TestUnboundVariableThunks(t *testing.T) {
	out := rewriteSource(t, "foo", 1_000_000)
	assert.Equal(t, "foo", out)
}

func TestPromptAlwaysThunks(t *testing.T) {
	out := rewriteSource(t, "{hi} {there}", 1_000_000)
	assert.Equal(t, "{hi} {there}", out)
}

func TestReservedNAlwaysThunks(t *testing.T) {
	out := rewriteSource(t, "[x] N", 1_000_000)
	assert.Equal(t, "[x] N", out)
}

func TestRewriteIsIdempotentOnResidual(t *testing.T) {
	once := rewriteSource(t, "foo H bar", 1_000_000)
	b, err := ReadAndRewrite(once, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, once, term.Print(b))
}

func TestRewriteDeterministic(t *testing.T) {
	src := "[foo] [bar] [baz] L H J H"
	first := rewriteSource(t, src, 1_000_000)
	second := rewriteSource(t, src, 1_000_000)
	assert.Equal(t, first, second)
}

func TestWithTraceObservesEachStep(t *testing.T) {
	b, err := reader.Read("[x] B")
	require.NoError(t, err)

	var steps []TraceStep
	r := New(WithTrace(func(s TraceStep) { steps = append(steps, s) }))
	r.Rewrite(b, 1_000_000)

	require.NotEmpty(t, steps)
	assert.Equal(t, 1, steps[0].CodeLen)
}

func TestWithDictionaryBindsVariable(t *testing.T) {
	b, err := reader.Read("foo H")
	require.NoError(t, err)

	dict := map[string]term.Block{
		"foo": term.NewQuote(term.NewVariable("bar")),
	}
	r := New(WithDictionary(dict))
	out := r.Rewrite(b, 1_000_000)
	assert.Equal(t, "bar", term.Print(out))
}

func TestWithDictionaryLeavesUnboundVariableThunking(t *testing.T) {
	b, err := reader.Read("baz")
	require.NoError(t, err)

	r := New(WithDictionary(map[string]term.Block{"foo": term.NewID()}))
	out := r.Rewrite(b, 1_000_000)
	assert.Equal(t, "baz", term.Print(out))
}

// Package rewriter implements the abstract machine described by the
// combinator algebra's small-step semantics: a leftmost-outermost rewrite
// of a code sequence against a data stack, bounded by gas, that flushes to
// an immutable sink whenever it gets stuck instead of raising an error.
//
// Prompt has no reduction rule; it always thunks. N is reserved and always
// thunks. Both are documented gaps, not bugs: see the term grammar's design
// notes.
package rewriter

import (
	"fmt"

	"ravel/internal/reader"
	"ravel/internal/term"
)

// Rewriter holds the optional collaborators a single evaluation run can
// consult. The zero value is ready to use: every Variable thunks.
type Rewriter struct {
	dict  map[string]term.Block
	trace func(TraceStep)
}

// TraceStep describes one iteration of the rewrite loop, for -trace-style
// diagnostics: the block about to be dispatched and the size of each stack
// before the step runs.
type TraceStep struct {
	Hand         term.Block
	CodeLen      int
	DataLen      int
	SinkLen      int
	GasRemaining int
}

// Option configures a Rewriter.
type Option func(*Rewriter)

// WithDictionary binds free symbols to blocks. A Variable whose name is
// bound is replaced on the code stack by its binding, which is dispatched on
// the next step and costs gas like any other step; an absent dictionary or
// an unbound name thunks exactly as the unconfigured machine does.
func WithDictionary(dict map[string]term.Block) Option {
	return func(r *Rewriter) { r.dict = dict }
}

// WithTrace calls fn once per step, before dispatch, with the current hand
// and stack sizes.
func WithTrace(fn func(TraceStep)) Option {
	return func(r *Rewriter) { r.trace = fn }
}

// New builds a Rewriter with the given options.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rewrite runs the default, dictionary-free machine. It is total: it never
// panics on a well-formed block (only an unrecognised Block implementation,
// a programming error, can make it panic).
func Rewrite(b term.Block, gas int) term.Block {
	return New().Rewrite(b, gas)
}

// ReadAndRewrite reads source and rewrites it with gas, surfacing only
// reader errors; the rewrite step itself never fails.
func ReadAndRewrite(source string, gas int) (term.Block, error) {
	return New().ReadAndRewrite(source, gas)
}

// ReadAndRewrite reads source with r's reader and rewrites the result.
func (r *Rewriter) ReadAndRewrite(source string, gas int) (term.Block, error) {
	b, err := reader.Read(source)
	if err != nil {
		return nil, err
	}
	return r.Rewrite(b, gas), nil
}

// Rewrite runs the machine to completion: gas = 0 is an immediate no-op
// that returns the input verbatim (gas doubles as a cooperative
// cancellation signal).
//
// An unknown head block is the one dispatch failure that is a programming
// error rather than a stuck reduction (see step's default case); it is
// recovered here and re-raised with the offending block attached, the same
// pattern the teacher pack uses for invariant panics: add context, then let
// it keep propagating.
func (r *Rewriter) Rewrite(b term.Block, gas int) (result term.Block) {
	st := newState(b)
	defer func() {
		if rec := recover(); rec != nil {
			panic(fmt.Errorf("rewriter: invariant violated: %v (residual so far: %s)", rec, term.Print(st.residual())))
		}
	}()
	for len(st.code) > 0 && gas > 0 {
		gas--
		hand, _ := st.getCode(0)
		if r.trace != nil {
			r.trace(TraceStep{
				Hand:         hand,
				CodeLen:      len(st.code),
				DataLen:      len(st.data),
				SinkLen:      len(st.sink),
				GasRemaining: gas,
			})
		}
		gas = r.step(st, hand, gas)
	}
	return st.residual()
}

// step dispatches on hand's variant and returns the gas remaining after the
// step (hard-stuck cases zero it to halt the loop immediately).
func (r *Rewriter) step(st *state, hand term.Block, gas int) int {
	switch v := hand.(type) {
	case term.Id:
		st.popCode()
		return gas

	case term.Catenate:
		st.popCode()
		st.pushCode(v.Children...)
		return gas

	case term.Variable:
		if r.dict != nil {
			if bound, ok := r.dict[v.Name]; ok {
				st.popCode()
				st.pushCode(bound)
				return gas
			}
		}
		st.thunk()
		return 0

	case term.Prompt:
		// No reduction rule is defined for Prompt; it always thunks.
		st.thunk()
		return 0

	case term.Quote, term.String, term.Inl, term.Inr, term.Pair:
		st.popCode()
		st.pushData(hand)
		return gas

	case term.RunInl:
		return r.stepRunInl(st, v, gas)
	case term.RunInr:
		return r.stepRunInr(st, v, gas)
	case term.RunPair:
		st.popCode()
		st.pushData(v.Fst)
		st.pushData(v.Snd)
		return gas

	case term.Constant:
		return r.stepConstant(st, v, gas)

	default:
		panic("rewriter: unknown head block")
	}
}

func (r *Rewriter) stepRunInl(st *state, v term.RunInl, gas int) int {
	d1, ok1 := st.getData(1)
	d0, ok0 := st.getData(0)
	if !ok1 || !ok0 {
		st.thunk()
		return gas
	}
	inl, okInl := term.Body(d1)
	_, okInr := term.Body(d0)
	if !okInl || !okInr {
		st.thunk()
		return gas
	}
	st.popCode()
	st.popData(2)
	st.pushCode(inl)
	st.pushData(v.Enum)
	return gas
}

func (r *Rewriter) stepRunInr(st *state, v term.RunInr, gas int) int {
	d1, ok1 := st.getData(1)
	d0, ok0 := st.getData(0)
	if !ok1 || !ok0 {
		st.thunk()
		return gas
	}
	_, okInl := term.Body(d1)
	inr, okInr := term.Body(d0)
	if !okInl || !okInr {
		st.thunk()
		return gas
	}
	st.popCode()
	st.popData(2)
	st.pushCode(inr)
	st.pushData(v.Enum)
	return gas
}

func (r *Rewriter) stepConstant(st *state, c term.Constant, gas int) int {
	switch c.Name {
	case "B": // duplicate
		x, ok := st.getData(0)
		if !ok {
			st.thunk()
			return gas
		}
		st.popCode()
		st.pushData(x)
		return gas

	case "C": // drop
		_, ok := st.getData(0)
		if !ok {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(1)
		return gas

	case "D": // swap top two
		top, ok0 := st.getData(0)
		second, ok1 := st.getData(1)
		if !ok0 || !ok1 {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(2)
		st.pushData(top)
		st.pushData(second)
		return gas

	case "F": // concat-quote
		second, ok1 := st.getData(1)
		top, ok0 := st.getData(0)
		if !ok0 || !ok1 {
			st.thunk()
			return gas
		}
		lhs, okLhs := term.Body(second)
		rhs, okRhs := term.Body(top)
		if !okLhs || !okRhs {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(2)
		st.pushCode(term.NewQuote(term.Cat(lhs, rhs)))
		return gas

	case "G": // wrap
		x, ok := st.getData(0)
		if !ok {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(1)
		st.pushData(term.NewQuote(x))
		return gas

	case "H": // apply
		x, ok := st.getData(0)
		if !ok {
			st.thunk()
			return 0
		}
		body, okBody := term.Body(x)
		if !okBody {
			st.thunk()
			return 0
		}
		st.popCode()
		st.popData(1)
		st.pushCode(body)
		return gas

	case "J": // inject-left
		x, ok := st.getData(0)
		if !ok {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(1)
		st.pushData(term.NewInl(x))
		return gas

	case "K": // inject-right
		x, ok := st.getData(0)
		if !ok {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(1)
		st.pushData(term.NewInr(x))
		return gas

	case "L": // pair
		snd, ok1 := st.getData(1)
		fst, ok0 := st.getData(0)
		if !ok0 || !ok1 {
			st.thunk()
			return gas
		}
		st.popCode()
		st.popData(2)
		st.pushData(term.NewPair(snd, fst))
		return gas

	case "M": // no-op
		st.popCode()
		return gas

	case "N": // reserved, always stuck
		st.thunk()
		return 0

	default:
		// An unrecognised constant, of any length, behaves like an unbound
		// Variable: the algebra has no binding for it, so it thunks.
		st.thunk()
		return 0
	}
}

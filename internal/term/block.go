// Package term implements the closed term algebra of blocks: the values and
// code of the concatenative combinator calculus. Blocks are immutable and
// compared structurally; the only way to build a Catenate is through the
// Cat function, which keeps the representation normalised.
package term

// Kind identifies which block variant a Block value holds.
type Kind int

const (
	KindID Kind = iota
	KindConstant
	KindVariable
	KindCatenate
	KindQuote
	KindString
	KindPrompt
	KindInl
	KindInr
	KindPair
	KindRunInl
	KindRunInr
	KindRunPair
)

// Block is a term of the combinator algebra. The set of implementations is
// closed to the types in this file; isBlock seals the interface.
type Block interface {
	Kind() Kind
	isBlock()
}

// Id is the unit of catenation. It prints as the empty string.
type Id struct{}

// Constant is a built-in operator name, an uppercase word (B, C, D, ... or a
// multi-character Constant read from source).
type Constant struct {
	Name string
}

// Variable is a free symbol. It is never reduced by the rewriter unless a
// dictionary binds it.
type Variable struct {
	Name string
}

// Catenate sequences blocks left to right. Construct it with the Cat
// function, never with a struct literal, so flattening and Id-elision stay
// invariant.
type Catenate struct {
	Children []Block
}

// Quote suspends a block as a value.
type Quote struct {
	Body Block
}

// String is an opaque text literal, read verbatim with no escape
// processing.
type String struct {
	Value string
}

// Prompt is an opaque text literal with undefined reduction semantics: it is
// always a value and the rewriter always thunks on it.
type Prompt struct {
	Value string
}

// Inl is the left injection of a value into a sum.
type Inl struct {
	Enum Block
}

// Inr is the right injection of a value into a sum.
type Inr struct {
	Enum Block
}

// Pair holds two values.
type Pair struct {
	Fst Block
	Snd Block
}

// RunInl is the lowered, eliminable form of Inl, produced by its Body
// projection.
type RunInl struct {
	Enum Block
}

// RunInr is the lowered, eliminable form of Inr.
type RunInr struct {
	Enum Block
}

// RunPair is the lowered, eliminable form of Pair.
type RunPair struct {
	Fst Block
	Snd Block
}

func (Id) Kind() Kind       { return KindID }
func (Constant) Kind() Kind { return KindConstant }
func (Variable) Kind() Kind { return KindVariable }
func (Catenate) Kind() Kind { return KindCatenate }
func (Quote) Kind() Kind    { return KindQuote }
func (String) Kind() Kind   { return KindString }
func (Prompt) Kind() Kind   { return KindPrompt }
func (Inl) Kind() Kind      { return KindInl }
func (Inr) Kind() Kind      { return KindInr }
func (Pair) Kind() Kind     { return KindPair }
func (RunInl) Kind() Kind   { return KindRunInl }
func (RunInr) Kind() Kind   { return KindRunInr }
func (RunPair) Kind() Kind  { return KindRunPair }

func (Id) isBlock()       {}
func (Constant) isBlock() {}
func (Variable) isBlock() {}
func (Catenate) isBlock() {}
func (Quote) isBlock()    {}
func (String) isBlock()   {}
func (Prompt) isBlock()   {}
func (Inl) isBlock()      {}
func (Inr) isBlock()      {}
func (Pair) isBlock()     {}
func (RunInl) isBlock()   {}
func (RunInr) isBlock()   {}
func (RunPair) isBlock()  {}

// NewID returns the catenation unit.
func NewID() Block { return Id{} }

// Unit is the empty quote, Quote(Id). It is distinct from Id: Id prints as
// nothing, Unit prints as "[]".
func Unit() Block { return Quote{Body: Id{}} }

// NewConstant builds a built-in operator block.
func NewConstant(name string) Block { return Constant{Name: name} }

// NewVariable builds a free symbol block.
func NewVariable(name string) Block { return Variable{Name: name} }

// NewQuote suspends body as a value.
func NewQuote(body Block) Block { return Quote{Body: body} }

// NewPair builds a pair value.
func NewPair(fst, snd Block) Block { return Pair{Fst: fst, Snd: snd} }

// NewInl builds a left-injection value.
func NewInl(enum Block) Block { return Inl{Enum: enum} }

// NewInr builds a right-injection value.
func NewInr(enum Block) Block { return Inr{Enum: enum} }

// NewString builds a string literal value.
func NewString(value string) Block { return String{Value: value} }

// NewPrompt builds a prompt literal value.
func NewPrompt(value string) Block { return Prompt{Value: value} }

// IsValue reports whether b may reside on the data stack: Quote, Inl, Inr,
// Pair, String, or Prompt.
func IsValue(b Block) bool {
	switch b.(type) {
	case Quote, Inl, Inr, Pair, String, Prompt:
		return true
	default:
		return false
	}
}

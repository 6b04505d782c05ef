package rewriter

import "ravel/internal/term"

// state owns the three stacks of the abstract machine: code (blocks yet to
// run, top-of-stack is the next hand), data (produced values, top is most
// recent), and sink (committed, no-longer-reducible output). Grounded on
// the reference interpreter's State class: contiguous slices, top = last
// element, no linked lists.
type state struct {
	code []term.Block
	data []term.Block
	sink []term.Block
}

func newState(b term.Block) *state {
	return &state{code: []term.Block{b}}
}

// getData returns the data element at index counting from the top (0 =
// topmost), or false if the stack is too shallow.
func (s *state) getData(index int) (term.Block, bool) {
	if index < 0 || index >= len(s.data) {
		return nil, false
	}
	return s.data[len(s.data)-1-index], true
}

// popData removes the top n data elements.
func (s *state) popData(n int) {
	s.data = s.data[:len(s.data)-n]
}

func (s *state) pushData(b term.Block) {
	s.data = append(s.data, b)
}

// getCode returns the code element at index counting from the head (0 =
// the hand).
func (s *state) getCode(index int) (term.Block, bool) {
	if index < 0 || index >= len(s.code) {
		return nil, false
	}
	return s.code[len(s.code)-1-index], true
}

func (s *state) popCode() (term.Block, bool) {
	if len(s.code) == 0 {
		return nil, false
	}
	hand := s.code[len(s.code)-1]
	s.code = s.code[:len(s.code)-1]
	return hand, true
}

// pushCode pushes bs so that bs[0] becomes the new hand: later elements are
// pushed first so execution proceeds left to right.
func (s *state) pushCode(bs ...term.Block) {
	for i := len(bs) - 1; i >= 0; i-- {
		s.code = append(s.code, bs[i])
	}
}

// thunk flushes data into sink bottom-to-top, then, if code is non-empty,
// moves the current hand into sink as well. This is the one place a stuck
// reduction is committed to the immutable prefix.
func (s *state) thunk() {
	s.sink = append(s.sink, s.data...)
	s.data = nil
	if hand, ok := s.popCode(); ok {
		s.sink = append(s.sink, hand)
	}
}

// residual assembles the final output: sink, then data (bottom to top),
// then the remainder of code in source order (reversing the stack's
// top-last iteration order).
func (s *state) residual() term.Block {
	parts := make([]term.Block, 0, len(s.sink)+len(s.data)+len(s.code))
	parts = append(parts, s.sink...)
	parts = append(parts, s.data...)
	for i := len(s.code) - 1; i >= 0; i-- {
		parts = append(parts, s.code[i])
	}
	return term.Cat(parts...)
}

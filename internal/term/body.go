package term

// Body implements the lowering projection used by the eliminator rules: it
// maps a value constructor to its executable form. The second return value
// is false for every block that has no such property, which the rewriter
// treats as a thunk trigger rather than an error.
func Body(b Block) (Block, bool) {
	switch v := b.(type) {
	case Quote:
		return v.Body, true
	case Inl:
		return RunInl{Enum: v.Enum}, true
	case Inr:
		return RunInr{Enum: v.Enum}, true
	case Pair:
		return RunPair{Fst: v.Fst, Snd: v.Snd}, true
	default:
		return nil, false
	}
}

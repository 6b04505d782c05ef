package term

import "strings"

// Print is the total printer for the algebra, governed by the print-form
// table in the term grammar: Id prints as the empty string, Quote as
// "[body]", String as a quoted literal, Prompt as a braced literal, and the
// remaining variants as the postfix forms their eliminators read back in.
func Print(b Block) string {
	switch v := b.(type) {
	case Id:
		return ""
	case Constant:
		return v.Name
	case Variable:
		return v.Name
	case Catenate:
		parts := make([]string, len(v.Children))
		for i, child := range v.Children {
			parts[i] = Print(child)
		}
		return strings.Join(parts, " ")
	case Quote:
		return "[" + Print(v.Body) + "]"
	case String:
		return `"` + v.Value + `"`
	case Prompt:
		return "{" + v.Value + "}"
	case Inl:
		return Print(v.Enum) + " J"
	case Inr:
		return Print(v.Enum) + " K"
	case Pair:
		return Print(v.Fst) + " " + Print(v.Snd) + " L"
	case RunInl:
		return Print(v.Enum) + " J H"
	case RunInr:
		return Print(v.Enum) + " K H"
	case RunPair:
		return Print(v.Fst) + " " + Print(v.Snd) + " L H"
	default:
		panic("term: Print: unknown block kind")
	}
}

// String lets any Block satisfy fmt.Stringer directly via Print, so callers
// that just want %v/%s output don't need to import this package's Print
// function by name.
func (Id) String() string       { return Print(Id{}) }
func (c Constant) String() string { return Print(c) }
func (v Variable) String() string { return Print(v) }
func (c Catenate) String() string  { return Print(c) }
func (q Quote) String() string     { return Print(q) }
func (s String) String() string    { return Print(s) }
func (p Prompt) String() string    { return Print(p) }
func (i Inl) String() string       { return Print(i) }
func (i Inr) String() string       { return Print(i) }
func (p Pair) String() string      { return Print(p) }
func (r RunInl) String() string    { return Print(r) }
func (r RunInr) String() string    { return Print(r) }
func (r RunPair) String() string   { return Print(r) }

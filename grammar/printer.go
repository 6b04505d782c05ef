package grammar

import "strings"

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Terms))
	for _, t := range p.Terms {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

func (t *Term) String() string {
	switch {
	case t.Quote != nil:
		return t.Quote.String()
	case t.String != nil:
		return *t.String
	case t.Prompt != nil:
		return *t.Prompt
	case t.Constant != nil:
		return *t.Constant
	case t.Variable != nil:
		return *t.Variable
	}
	return ""
}

func (q *Quote) String() string {
	parts := make([]string, 0, len(q.Terms))
	for _, t := range q.Terms {
		parts = append(parts, t.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

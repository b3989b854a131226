package selector

import (
	"strings"
)

// String renders the selector to its exact CSS text. Rendering is pure:
// calling it any number of times yields the same string, even on a chain
// that recorded a violation (the fragments accepted before the violation
// are rendered; use Build to surface the error instead).
func (s Selector) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s Selector) render(b *strings.Builder) {
	if s.composite != nil {
		// One space on each side of the operator at every level. A nested
		// descendant combinator keeps its own ' ' operator, so spaces
		// accumulate at the join point. That spacing is deliberate and
		// asserted by tests.
		s.composite.left.render(b)
		b.WriteByte(' ')
		b.WriteRune(rune(s.composite.op))
		b.WriteByte(' ')
		s.composite.right.render(b)
		return
	}

	// Compound selector syntax has no separators between fragment groups.
	b.WriteString(s.element)
	if s.id != "" {
		b.WriteByte('#')
		b.WriteString(s.id)
	}
	for _, c := range s.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, a := range s.attrs {
		b.WriteByte('[')
		b.WriteString(a)
		b.WriteByte(']')
	}
	for _, p := range s.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(p)
	}
	if s.pseudoElement != "" {
		b.WriteString("::")
		b.WriteString(s.pseudoElement)
	}
}

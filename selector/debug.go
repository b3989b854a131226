package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns a readable tree of the selector structure, one node per line
// with two-space indents. It exists solely for manual inspection during
// debugging; the CSS text comes from String.
func (s Selector) Dump() string {
	var b strings.Builder
	s.dump(&b, 0)
	return b.String()
}

func (s Selector) dump(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	if s.composite != nil {
		fmt.Fprintf(b, "combine %s\n", strconv.Quote(s.composite.op.String()))
		s.composite.left.dump(b, depth+1)
		s.composite.right.dump(b, depth+1)
		return
	}
	fmt.Fprintf(b, "compound %s", strconv.Quote(s.String()))
	if s.err != nil {
		fmt.Fprintf(b, " err[%v]", s.err)
	}
	b.WriteByte('\n')
}

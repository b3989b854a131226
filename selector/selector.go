// Package selector builds CSS compound and complex selector strings from
// typed fragments. Fragments must be added in the order CSS syntax mandates
// (element, id, class, attribute, pseudo-class, pseudo-element); element, id
// and pseudo-element are singleton slots. Built selectors can be combined
// with the four CSS combinators into arbitrarily nested complex selectors.
//
// Selector is an immutable value: every builder call returns a new value and
// never touches the receiver, so chains can branch and interleave freely.
// The zero value is an empty chain ready for use.
package selector

import (
	"errors"
)

// Violation sentinels. Builder calls wrap these with call context, so test
// with errors.Is.
var (
	// ErrOrder reports a fragment appended after a later-ranked fragment.
	ErrOrder = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
	// ErrDuplicate reports a second element, id or pseudo-element on one selector.
	ErrDuplicate = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")
	// ErrCombinator reports an unrecognized combinator symbol passed to Combine.
	ErrCombinator = errors.New("combinator should be one of ' ', '>', '+', '~'")
)

// Combinator expresses the structural relationship between the two sides of
// a complex selector.
type Combinator rune

const (
	Descendant      Combinator = ' '
	Child           Combinator = '>'
	AdjacentSibling Combinator = '+'
	GeneralSibling  Combinator = '~'
)

func (c Combinator) valid() bool {
	switch c {
	case Descendant, Child, AdjacentSibling, GeneralSibling:
		return true
	}
	return false
}

// String returns the combinator symbol itself.
func (c Combinator) String() string {
	return string(c)
}

// rank is the fixed syntactic position of a fragment category inside a
// compound selector. Appends are legal only while the rank never decreases.
type rank int

const (
	rankNone rank = iota - 1
	rankElement
	rankID
	rankClass
	rankAttribute
	rankPseudoClass
	rankPseudoElement
)

func (r rank) String() string {
	switch r {
	case rankElement:
		return "element"
	case rankID:
		return "id"
	case rankClass:
		return "class"
	case rankAttribute:
		return "attribute"
	case rankPseudoClass:
		return "pseudo-class"
	case rankPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// Selector is one compound selector, or a combinator node joining two child
// selectors. Fragment strings are kept verbatim and reproduced as-is in the
// rendered output.
type Selector struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	// non-nil for combinator nodes; the simple fields above stay empty
	composite *composite

	// first violation recorded on this chain; later appends are no-ops
	err error
}

type composite struct {
	left  Selector
	op    Combinator
	right Selector
}

// maxRank reports the furthest syntactic position already occupied.
// A combinator node is past every position: no fragment can follow it.
func (s Selector) maxRank() rank {
	switch {
	case s.composite != nil:
		return rankPseudoElement
	case s.pseudoElement != "":
		return rankPseudoElement
	case len(s.pseudoClasses) > 0:
		return rankPseudoClass
	case len(s.attrs) > 0:
		return rankAttribute
	case len(s.classes) > 0:
		return rankClass
	case s.id != "":
		return rankID
	case s.element != "":
		return rankElement
	}
	return rankNone
}

// Err returns the first violation recorded on this chain, or nil.
func (s Selector) Err() error {
	return s.err
}

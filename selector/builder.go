package selector

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Chain starters. Each returns a fresh one-fragment Selector; further
// fragments are added with the same-named methods.

// Element starts a chain with a type selector (e.g. "div").
func Element(name string) Selector { return Selector{}.Element(name) }

// ID starts a chain with an id selector.
func ID(name string) Selector { return Selector{}.ID(name) }

// Class starts a chain with a class selector.
func Class(name string) Selector { return Selector{}.Class(name) }

// Attr starts a chain with an attribute selector. The expression is kept
// verbatim and emitted inside brackets, e.g. `href$=".png"` -> `[href$=".png"]`.
func Attr(expr string) Selector { return Selector{}.Attr(expr) }

// PseudoClass starts a chain with a pseudo-class, e.g. "nth-of-type(even)".
func PseudoClass(expr string) Selector { return Selector{}.PseudoClass(expr) }

// PseudoElement starts a chain with a pseudo-element, e.g. "before".
func PseudoElement(expr string) Selector { return Selector{}.PseudoElement(expr) }

// Element appends a type selector to the chain.
func (s Selector) Element(name string) Selector {
	return s.append(rankElement, func(n *Selector) {
		n.element = name
	})
}

// ID appends an id selector to the chain.
func (s Selector) ID(name string) Selector {
	return s.append(rankID, func(n *Selector) {
		n.id = name
	})
}

// Class appends a class selector. Classes may repeat and keep call order.
func (s Selector) Class(name string) Selector {
	return s.append(rankClass, func(n *Selector) {
		n.classes = append(n.classes, name)
	})
}

// Attr appends an attribute selector. Attributes may repeat and keep call order.
func (s Selector) Attr(expr string) Selector {
	return s.append(rankAttribute, func(n *Selector) {
		n.attrs = append(n.attrs, expr)
	})
}

// PseudoClass appends a pseudo-class. Pseudo-classes may repeat and keep call order.
func (s Selector) PseudoClass(expr string) Selector {
	return s.append(rankPseudoClass, func(n *Selector) {
		n.pseudoClasses = append(n.pseudoClasses, expr)
	})
}

// PseudoElement appends the pseudo-element, closing the compound selector.
func (s Selector) PseudoElement(expr string) Selector {
	return s.append(rankPseudoElement, func(n *Selector) {
		n.pseudoElement = expr
	})
}

// Combine joins two built selectors with a combinator into a new composite
// Selector. Children are captured by value, so later use of left or right
// cannot affect the composite. Violations recorded on either child carry
// over to the composite.
func Combine(left Selector, op Combinator, right Selector) Selector {
	if !op.valid() {
		return Selector{err: fmt.Errorf("combine %q: %w", op, ErrCombinator)}
	}
	return Selector{
		composite: &composite{left: left, op: op, right: right},
		err:       multierr.Append(left.err, right.err),
	}
}

// Build renders the selector, or returns the first violation recorded on the
// chain. A chain that failed produces no output.
func (s Selector) Build() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.String(), nil
}

// append implements the ordering and uniqueness state machine shared by all
// fragment methods. The order check runs before the duplicate check: a call
// that violates both reports ErrOrder.
func (s Selector) append(r rank, set func(*Selector)) Selector {
	if s.err != nil {
		// chain already failed, record nothing further
		return s
	}
	if s.composite != nil {
		s.err = fmt.Errorf("%s after combinator: %w", r, ErrOrder)
		return s
	}
	have := s.maxRank()
	if have > r {
		s.err = fmt.Errorf("%s after %s: %w", r, have, ErrOrder)
		return s
	}
	if have == r && singleton(r) {
		s.err = fmt.Errorf("second %s: %w", r, ErrDuplicate)
		return s
	}
	n := s.clone()
	set(&n)
	return n
}

// singleton reports whether the category occupies a once-only slot.
func singleton(r rank) bool {
	return r == rankElement || r == rankID || r == rankPseudoElement
}

// clone copies the selector with fresh slice backing, so an append on the
// copy can never leak into a previously returned value.
func (s Selector) clone() Selector {
	s.classes = slices.Clone(s.classes)
	s.attrs = slices.Clone(s.attrs)
	s.pseudoClasses = slices.Clone(s.pseudoClasses)
	return s
}

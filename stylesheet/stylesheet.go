// Package stylesheet assembles CSS rules around selectors built with the
// selector package and writes them out as stylesheet text.
package stylesheet

import (
	"fmt"
	"io"
	"maps"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/selector"
)

// Rule is a single CSS rule: a built selector plus its declarations.
type Rule struct {
	Selector   selector.Selector // Built selector the rule applies to
	Properties map[string]string // Property name -> raw value string
}

// Stylesheet is an ordered list of rules ready for emission.
type Stylesheet struct {
	Rules    []Rule   // All rules in insertion order
	Warnings []string // Warnings for suspicious input kept in the output anyway

	log *zap.Logger
}

// New creates an empty stylesheet.
func New(log *zap.Logger) *Stylesheet {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stylesheet{log: log.Named("stylesheet")}
}

// Add appends a rule for the given selector. A selector carrying a build
// violation is rejected and no rule is recorded. Property names that are not
// single CSS ident tokens are kept but collected as warnings; values pass
// through verbatim.
func (s *Stylesheet) Add(sel selector.Selector, props map[string]string) error {
	if err := sel.Err(); err != nil {
		return fmt.Errorf("invalid selector: %w", err)
	}

	for name := range props {
		if !isIdent(name) {
			s.Warnings = append(s.Warnings, "property name is not a CSS identifier: "+name)
			s.log.Debug("Suspicious property name",
				zap.String("property", name),
				zap.String("selector", sel.String()))
		}
	}

	copied := make(map[string]string, len(props))
	maps.Copy(copied, props)
	s.Rules = append(s.Rules, Rule{Selector: sel, Properties: copied})

	s.log.Debug("Added rule", zap.String("selector", sel.String()), zap.Int("properties", len(copied)))
	return nil
}

// Validate checks every rule's selector and aggregates the violations. Add
// rejects bad selectors up front, so this matters for rules assembled
// directly into Rules.
func (s *Stylesheet) Validate() error {
	var err error
	for i := range s.Rules {
		if rerr := s.Rules[i].Selector.Err(); rerr != nil {
			err = multierr.Append(err, fmt.Errorf("rule %d: %w", i, rerr))
		}
	}
	return err
}

// WriteTo writes the stylesheet to w in rule order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}

	// Sort property names for deterministic output
	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.Properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

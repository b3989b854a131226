package stylesheet

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// isIdent reports whether s lexes as exactly one CSS ident token. The check
// goes through the CSS lexer rather than ad-hoc character scanning so that
// escapes and non-ASCII identifiers follow CSS syntax.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	l := css.NewLexer(parse.NewInput(strings.NewReader(s)))
	tt, data := l.Next()
	if tt != css.IdentToken || len(data) != len(s) {
		return false
	}
	tt, _ = l.Next()
	return tt == css.ErrorToken && l.Err() == io.EOF
}

package sopio

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/boolfactor/literal"
)

// Parse reads an expression in the textual form described in the
// package doc comment.
//
// Within one cube, literals may be written two ways: a bare run of
// identifier characters with no separator is read one literal per
// character (the common case: "ab" parses as the cube {a, b}). A
// dot-separated run ("d.t1") is read as one literal per dot-delimited
// field, which is how a multi-character literal name (such as a
// synthesizer-generated "t1" appearing in a hand-written input) is
// represented unambiguously. A term that contains a dot is read
// entirely in the dot-separated form, so "ab.t1" is the cube {ab, t1}.
func Parse(s string) (literal.Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	if s == "0" {
		return literal.NewExpr(), nil
	}

	terms := strings.Split(s, "+")
	cubes := make([]literal.Cube, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("%w: empty term in %q", ErrSyntax, s)
		}
		c, err := parseCube(term)
		if err != nil {
			return nil, err
		}
		cubes = append(cubes, c)
	}

	return literal.NewExpr(cubes...), nil
}

// parseCube parses one "+"-delimited term into a Cube.
func parseCube(term string) (literal.Cube, error) {
	if term == "1" {
		return literal.NewCube(), nil
	}

	if strings.Contains(term, ".") {
		fields := strings.Split(term, ".")
		lits := make([]literal.Literal, 0, len(fields))
		for _, f := range fields {
			if err := validateIdent(f, term); err != nil {
				return nil, err
			}
			lits = append(lits, f)
		}

		return literal.NewCube(lits...), nil
	}

	lits := make([]literal.Literal, 0, len(term))
	for _, r := range term {
		if !isIdentRune(r) {
			return nil, fmt.Errorf("%w: invalid character %q in term %q", ErrSyntax, r, term)
		}
		lits = append(lits, string(r))
	}

	return literal.NewCube(lits...), nil
}

func validateIdent(ident, term string) error {
	if ident == "" {
		return fmt.Errorf("%w: empty literal in term %q", ErrSyntax, term)
	}
	for i, r := range ident {
		if i == 0 && !isIdentStartRune(r) {
			return fmt.Errorf("%w: literal %q in term %q must start with a letter or underscore", ErrSyntax, ident, term)
		}
		if i > 0 && !isIdentRune(r) {
			return fmt.Errorf("%w: invalid character %q in literal %q", ErrSyntax, r, ident)
		}
	}

	return nil
}

func isIdentStartRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentRune(r rune) bool {
	return isIdentStartRune(r) || (r >= '0' && r <= '9')
}

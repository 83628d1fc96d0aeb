package sopio

import (
	"sort"
	"strings"

	"github.com/katalvlaran/boolfactor/literal"
	"github.com/katalvlaran/boolfactor/synth"
)

// Sprint renders a single expression: cubes as
// concatenated literal identifiers sorted alphabetically, cubes joined
// by " + ". The empty expression renders as "0"; a single empty cube
// renders as "1". A cube whose literals are not all single characters
// is rendered dot-separated (see Parse's grammar note) so the output
// remains a valid Parse input.
func Sprint(e literal.Expr) string {
	if len(e) == 0 {
		return "0"
	}
	terms := make([]string, len(e))
	for i, c := range e {
		terms[i] = sprintCube(c)
	}

	return strings.Join(terms, " + ")
}

func sprintCube(c literal.Cube) string {
	if len(c) == 0 {
		return "1"
	}
	lits := append([]literal.Literal(nil), c...)
	sort.Strings(lits)

	allSingle := true
	for _, l := range lits {
		if len(l) != 1 {
			allSingle = false

			break
		}
	}
	if allSingle {
		return strings.Join(lits, "")
	}

	return strings.Join(lits, ".")
}

// Print renders a full synth.Network: one "name = expr"
// line per definition in generation order, followed by "F = expr" for
// the root.
func Print(net synth.Network) string {
	var b strings.Builder
	for _, d := range net.Defs {
		b.WriteString(d.Name)
		b.WriteString(" = ")
		b.WriteString(Sprint(d.Body))
		b.WriteString("\n")
	}
	b.WriteString("F = ")
	b.WriteString(Sprint(net.Root))

	return b.String()
}

package synth

import "github.com/katalvlaran/boolfactor/literal"

// Definition is one named entry of a Network: Name is a fresh literal
// introduced by the synthesizer, Body is its expression.
type Definition struct {
	Name literal.Literal
	Body literal.Expr
}

// Network is the output of Synthesize: a root expression plus an
// ordered sequence of definitions, in the order their names were
// generated (an ordered map of name -> Expr).
type Network struct {
	Root    literal.Expr
	Defs    []Definition
	History []Step
}

// Lookup returns the body of the named definition and whether it
// exists.
func (n Network) Lookup(name literal.Literal) (literal.Expr, bool) {
	for _, d := range n.Defs {
		if d.Name == name {
			return d.Body, true
		}
	}

	return nil, false
}

// DefsMap returns the definitions as a map, suitable for
// literal.Expand.
func (n Network) DefsMap() map[literal.Literal]literal.Expr {
	out := make(map[literal.Literal]literal.Expr, len(n.Defs))
	for _, d := range n.Defs {
		out[d.Name] = d.Body
	}

	return out
}

// Expanded fully substitutes every definition into Root, yielding the
// expression Network is claimed to be equivalent to.
func (n Network) Expanded() literal.Expr {
	return literal.Expand(n.Root, n.DefsMap())
}

// TotalLiterals returns the total literal count across Root and every
// definition body — the quantity Synthesize is minimizing.
func (n Network) TotalLiterals() int {
	total := literal.LiteralCount(n.Root)
	for _, d := range n.Defs {
		total += literal.LiteralCount(d.Body)
	}

	return total
}

// StepKind tags the variant of one history-log entry (a tagged sum
// type for diagnostic events).
type StepKind int

const (
	// StepRectangle records a successful rectangle extraction.
	StepRectangle StepKind = iota
	// StepSingleRow records a successful single-row extraction.
	StepSingleRow
	// StepRectangleSkipped records a candidate rectangle that failed
	// to realize against the expression and was skipped in favor of
	// the next candidate.
	StepRectangleSkipped
	// StepEnumerationCapped records that rectangle enumeration hit its
	// configured cap while processing Node.
	StepEnumerationCapped
)

// String renders the step kind for diagnostics and tests.
func (k StepKind) String() string {
	switch k {
	case StepRectangle:
		return "rectangle"
	case StepSingleRow:
		return "single-row"
	case StepRectangleSkipped:
		return "rectangle-skipped"
	case StepEnumerationCapped:
		return "enumeration-capped"
	default:
		return "unknown"
	}
}

// Step is one entry of the driver's history log: the kind of
// transformation applied, which node of the network it was applied
// to, the profit it achieved, and the name it introduced (if any).
type Step struct {
	Kind   StepKind
	Node   literal.Literal // name of the definition being factored ("F" for the root)
	Name   literal.Literal // fresh name introduced, if any
	Profit int
	Rows   int // rectangle row count, only meaningful for StepRectangle and StepRectangleSkipped
	Cols   int // rectangle column count, only meaningful for StepRectangle and StepRectangleSkipped
	Err    error
}

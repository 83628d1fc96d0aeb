package synth

import (
	"fmt"

	"github.com/katalvlaran/boolfactor/extract"
	"github.com/katalvlaran/boolfactor/kernel"
	"github.com/katalvlaran/boolfactor/kmatrix"
	"github.com/katalvlaran/boolfactor/literal"
	"github.com/katalvlaran/boolfactor/rectangle"
)

// rootNode names the worklist entry for the input expression itself.
// It is never emitted as a literal or a definition name: Synthesize
// strips it out of the returned Network, leaving only its factored
// body as Network.Root.
const rootNode = "F"

// worklistItem is one pending node to factor to a fixed point: either
// the root ("F") or a definition introduced by a previous step.
type worklistItem struct {
	name literal.Literal
	expr literal.Expr
}

// Synthesize performs algebraic multi-level factorization of f: it
// factors f to a fixed point, recursing onto every definition the
// process introduces, until no node in the growing network admits
// another profitable extraction.
//
// Synthesize never mutates f and never fails: "no factorization
// possible" is a normal outcome in which Defs is empty and Root
// equals f.
func Synthesize(f literal.Expr, opts ...Option) Network {
	cfg := newConfig(opts...)
	nextName := newNamer(f, cfg.namePrefix)

	defs := make(map[literal.Literal]literal.Expr)
	var order []literal.Literal
	var history []Step

	worklist := []worklistItem{{name: rootNode, expr: f.Clone()}}
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		factored, newDefs, steps := factorToFixedPoint(cur.name, cur.expr, nextName, cfg.maxRectangles)
		defs[cur.name] = factored
		history = append(history, steps...)

		for _, nd := range newDefs {
			defs[nd.Name] = nd.Body
			order = append(order, nd.Name)
			worklist = append(worklist, worklistItem{name: nd.Name, expr: nd.Body})
		}
	}

	out := Network{Root: defs[rootNode], History: history}
	out.Defs = make([]Definition, 0, len(order))
	for _, name := range order {
		out.Defs = append(out.Defs, Definition{Name: name, Body: defs[name]})
	}

	return out
}

// factorToFixedPoint repeatedly extracts the most profitable step
// from e (a rectangle, falling back to a single-row extraction) until
// neither is profitable.
func factorToFixedPoint(node literal.Literal, e literal.Expr, nextName func() literal.Literal, maxRect int) (literal.Expr, []Definition, []Step) {
	var (
		newDefs []Definition
		steps   []Step
	)
	cur := e

	for {
		pairs := kernel.Kernels(cur)
		m := kmatrix.Build(pairs)

		res := rectangle.Enumerate(m, rectangle.WithMaxRectangles(maxRect))
		if res.Capped {
			steps = append(steps, Step{Kind: StepEnumerationCapped, Node: node, Err: rectangle.ErrEnumerationCapped})
		}

		applied, name, def, successStep, skipped, ok := tryRectangles(node, cur, m, rectangle.Rank(m, res.Rectangles), nextName)
		steps = append(steps, skipped...)
		if ok {
			cur = applied
			steps = append(steps, successStep)
			newDefs = append(newDefs, Definition{Name: name, Body: def})

			continue
		}

		name = nextName()
		rewritten, def, profit, found := extract.ExtractSingleRow(cur, name)
		if !found {
			break
		}
		cur = rewritten
		steps = append(steps, Step{Kind: StepSingleRow, Node: node, Name: name, Profit: profit})
		newDefs = append(newDefs, Definition{Name: name, Body: def})
	}

	return cur, newDefs, steps
}

// tryRectangles attempts each ranked rectangle candidate in turn,
// skipping (and logging) any that fails to realize against cur — the
// recoverable path for a rectangle that turns out not to be realized.
func tryRectangles(
	node literal.Literal,
	cur literal.Expr,
	m *kmatrix.Matrix,
	ranked []rectangle.Rectangle,
	nextName func() literal.Literal,
) (applied literal.Expr, name literal.Literal, def literal.Expr, successStep Step, skipped []Step, ok bool) {
	for _, rect := range ranked {
		candidateName := nextName()
		newF, newDef, err := extract.ApplyRectangle(cur, m, rect, candidateName)
		if err != nil {
			skipped = append(skipped, Step{
				Kind: StepRectangleSkipped, Node: node, Name: candidateName,
				Rows: len(rect.Rows), Cols: len(rect.Cols), Err: err,
			})

			continue
		}

		return newF, candidateName, newDef, Step{
			Kind: StepRectangle, Node: node, Name: candidateName,
			Profit: rectangle.Profit(m, rect), Rows: len(rect.Rows), Cols: len(rect.Cols),
		}, skipped, true
	}

	return nil, "", nil, Step{}, skipped, false
}

// newNamer returns a function minting literal names "<prefix>1",
// "<prefix>2", ... that never collides with a literal already present
// in f or previously minted, implementing the fresh-name policy.
func newNamer(f literal.Expr, prefix string) func() literal.Literal {
	used := make(map[literal.Literal]struct{})
	for _, l := range literal.Literals(f) {
		used[l] = struct{}{}
	}
	counter := 0

	return func() literal.Literal {
		for {
			counter++
			candidate := fmt.Sprintf("%s%d", prefix, counter)
			if _, taken := used[candidate]; !taken {
				used[candidate] = struct{}{}

				return candidate
			}
		}
	}
}

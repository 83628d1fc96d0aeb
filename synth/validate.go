package synth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boolfactor/literal"
)

// ErrCyclicDefinitions is returned by Validate when a definition's
// body refers (directly or transitively) back to itself, violating
// the network's acyclicity invariant.
var ErrCyclicDefinitions = errors.New("synth: definitions contain a cycle")

// Validate checks that net's definitions are acyclic. Callers that
// need full functional equivalence to an original input should
// instead compare net.Expanded() against it with literal.Expr.Equal,
// and compare net.TotalLiterals() against literal.LiteralCount(f) to
// confirm Synthesize did not increase the total literal count.
func Validate(net Network) error {
	if err := checkAcyclic(net); err != nil {
		return err
	}

	return nil
}

// checkAcyclic walks the reference graph induced by "literal n appears
// in defs[m]" and reports ErrCyclicDefinitions if it finds a cycle.
func checkAcyclic(net Network) error {
	body := net.DefsMap()

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[literal.Literal]int, len(body))

	var visit func(name literal.Literal) error
	visit = func(name literal.Literal) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrCyclicDefinitions, name)
		}
		state[name] = visiting
		for _, ref := range literal.Literals(body[name]) {
			if _, isDef := body[ref]; !isDef {
				continue
			}
			if err := visit(ref); err != nil {
				return err
			}
		}
		state[name] = done

		return nil
	}

	for _, ref := range literal.Literals(net.Root) {
		if _, isDef := body[ref]; !isDef {
			continue
		}
		if err := visit(ref); err != nil {
			return err
		}
	}
	for name := range body {
		if err := visit(name); err != nil {
			return err
		}
	}

	return nil
}

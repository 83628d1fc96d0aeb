// Command boolfactor is a thin demo CLI for package synth: it reads a
// sum-of-products expression, factors it, and prints the resulting
// network. It holds no persistent state.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/boolfactor/sopio"
	"github.com/katalvlaran/boolfactor/synth"
)

func main() {
	var (
		exprFlag   = flag.String("e", "", "SOP expression to factor, e.g. \"ab + ac + ad\" (reads stdin if omitted)")
		maxRect    = flag.Int("max-rect", 0, "cap on enumerated rectangles per node (0 = package default)")
		namePrefix = flag.String("name-prefix", "", "prefix for generated definition names (default \"t\")")
		verbose    = flag.Bool("v", false, "print the driver's history log after the network")
	)
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *exprFlag, *maxRect, *namePrefix, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, exprFlag string, maxRect int, namePrefix string, verbose bool) error {
	src := exprFlag
	if src == "" {
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			return fmt.Errorf("boolfactor: no expression provided")
		}
		src = scanner.Text()
	}

	expr, err := sopio.Parse(src)
	if err != nil {
		return err
	}

	var opts []synth.Option
	if maxRect > 0 {
		opts = append(opts, synth.WithMaxRectangles(maxRect))
	}
	if namePrefix != "" {
		opts = append(opts, synth.WithNamePrefix(namePrefix))
	}

	net := synth.Synthesize(expr, opts...)
	fmt.Fprintln(out, sopio.Print(net))

	if verbose {
		for _, step := range net.History {
			fmt.Fprintf(out, "# %s node=%s name=%s profit=%d rows=%d cols=%d\n",
				step.Kind, step.Node, step.Name, step.Profit, step.Rows, step.Cols)
		}
	}

	return nil
}

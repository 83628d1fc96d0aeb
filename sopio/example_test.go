package sopio_test

import (
	"fmt"

	"github.com/katalvlaran/boolfactor/sopio"
	"github.com/katalvlaran/boolfactor/synth"
)

// ExamplePrint factors "ab + ac + ad" and prints the resulting
// network in its textual form.
func ExamplePrint() {
	expr, err := sopio.Parse("ab + ac + ad")
	if err != nil {
		panic(err)
	}
	net := synth.Synthesize(expr)
	fmt.Println(sopio.Print(net))
	// Output:
	// t1 = b + c + d
	// F = a.t1
}

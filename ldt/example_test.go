package ldt_test

import (
	"fmt"

	"github.com/luxkit/photometry/ldt"
	"github.com/luxkit/photometry/luminaire"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleParse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Serialize the built-in downlight template to EULUMDAT text, then parse
//	it back and inspect the decoded classification.
//
// Use case:
//
//	Round-tripping a model through the comma-decimal fixed-line format.
//
// Complexity: O(Nc×Ng) time, single pass.
func ExampleParse() {
	text := ldt.Write(luminaire.DownlightTemplate())

	l, err := ldt.Parse(text)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(l.LuminaireName, l.Symmetry, l.NumCPlanes)
	// Output:
	// Downlight VerticalAxis 24
}

// ExampleParse_invalidNumber shows the positional error detail attached to
// a malformed numeric field.
func ExampleParse_invalidNumber() {
	_, err := ldt.Parse("ACME\n1\nnot-a-number\n")
	fmt.Println(err)
	// Output:
	// parse error at line 3, field "Isym": cannot parse "not-a-number" as a number
}

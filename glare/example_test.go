package glare_test

import (
	"fmt"

	"github.com/luxkit/photometry/glare"
	"github.com/luxkit/photometry/luminaire"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBUGRating
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Rate a 1000 lm residential downlight. All flux stays below 60° and
//	splits evenly front/back, so every zone sits under the first
//	breakpoint: the best possible rating.
//
// Use case:
//
//	Checking a fixture against an outdoor lighting ordinance that caps
//	uplight and glare.
//
// Complexity: O(Nc×Ng) time.
func ExampleBUGRating() {
	r := glare.BUGRating(luminaire.DownlightTemplate())

	fmt.Printf("B%d U%d G%d\n", r.B, r.U, r.G)
	// Output:
	// B0 U0 G0
}

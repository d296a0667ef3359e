package glare

import (
	"math"

	"github.com/luxkit/photometry/luminaire"
	"github.com/luxkit/photometry/photoweb"
)

// ZoneLumens holds the absolute lumens emitted into each TM-15-11 zone.
type ZoneLumens struct {
	FL, FM, FH, FVH float64 // front: γ 0–30, 30–60, 60–80, 80–90
	BL, BM, BH, BVH float64 // back, same gamma bands
	UL, UH          float64 // uplight: γ 90–100, 100–180, full circle
}

// Uplight returns the total flux above the horizon.
func (z ZoneLumens) Uplight() float64 { return z.UL + z.UH }

// Rating is the BUG triple; each component is on the 0–5 scale.
type Rating struct {
	B, U, G int
}

// azimuthStep subdivides the circle finely enough that the front/back
// boundary at C90/C270 lands between sample sectors.
const azimuthStep = 5.0

// ZoneLumensFor integrates the model's flux into the ten TM-15-11 zones.
// Intensity data is cd/klm, so zone lumens scale with the total lamp flux.
func ZoneLumensFor(l *luminaire.Luminaire) ZoneLumens {
	w := photoweb.New(l)
	flux := l.TotalLuminousFlux()
	if flux <= 0 {
		flux = 1000
	}
	scale := flux / 1000

	var z ZoneLumens
	front := func(c float64) bool { return c < 90 || c > 270 }

	// γ sub-bands of 1°, azimuth sectors of azimuthStep degrees.
	for g := 0.0; g < 180; g++ {
		gHi := g + 1
		band := 2 * math.Pi * (math.Cos(g*math.Pi/180) - math.Cos(gHi*math.Pi/180))
		gMid := g + 0.5

		var frontSum, backSum float64
		for c := azimuthStep / 2; c < 360; c += azimuthStep {
			v := w.Sample(c, gMid) * azimuthStep / 360
			if front(c) {
				frontSum += v
			} else {
				backSum += v
			}
		}
		frontFlux := frontSum * band * scale
		backFlux := backSum * band * scale

		switch {
		case gHi <= 30:
			z.FL += frontFlux
			z.BL += backFlux
		case gHi <= 60:
			z.FM += frontFlux
			z.BM += backFlux
		case gHi <= 80:
			z.FH += frontFlux
			z.BH += backFlux
		case gHi <= 90:
			z.FVH += frontFlux
			z.BVH += backFlux
		case gHi <= 100:
			z.UL += frontFlux + backFlux
		default:
			z.UH += frontFlux + backFlux
		}
	}

	return z
}

// TM-15-11 breakpoint tables: maximum zonal lumens admitted at ratings
// 0 through 4; anything beyond the last entry rates 5.
var (
	backLowMax      = [5]float64{110, 500, 1000, 2500, 5000}
	backMidMax      = [5]float64{220, 1000, 2500, 5000, 8500}
	backHighMax     = [5]float64{110, 500, 1000, 2500, 5000}
	uplightMax      = [5]float64{0, 10, 50, 500, 1000}
	glareVeryHiMax  = [5]float64{10, 100, 225, 500, 750}
	glareFrontHiMax = [5]float64{660, 1800, 5000, 7500, 12000}
	glareBackHiMax  = [5]float64{110, 500, 1000, 2500, 5000}
)

// BUGRating computes the backlight, uplight, and glare components from the
// zone lumens.
func BUGRating(l *luminaire.Luminaire) Rating {
	return ratingFor(ZoneLumensFor(l), quadrilaterallySymmetric(l))
}

// Detail returns the rating together with the per-zone lumens that
// produced it, for presentation layers.
func Detail(l *luminaire.Luminaire) (Rating, ZoneLumens) {
	z := ZoneLumensFor(l)

	return ratingFor(z, quadrilaterallySymmetric(l)), z
}

// quadrilaterallySymmetric reports a distribution identical in all four
// quadrants, which the standard rates against the forward glare table on
// both sides.
func quadrilaterallySymmetric(l *luminaire.Luminaire) bool {
	return l.Symmetry == luminaire.SymmetryVerticalAxis ||
		l.Symmetry == luminaire.SymmetryBothPlanes
}

func ratingFor(z ZoneLumens, quadSymmetric bool) Rating {
	backHigh := backHighMax
	glareBack := glareBackHiMax
	if quadSymmetric {
		glareBack = glareFrontHiMax
	}

	b := smallestLevel(
		zoneLimit{z.BL, backLowMax},
		zoneLimit{z.BM, backMidMax},
		zoneLimit{z.BH, backHigh},
	)
	u := smallestLevel(
		zoneLimit{z.UL, uplightMax},
		zoneLimit{z.UH, uplightMax},
	)
	g := smallestLevel(
		zoneLimit{z.FVH, glareVeryHiMax},
		zoneLimit{z.BVH, glareVeryHiMax},
		zoneLimit{z.FH, glareFrontHiMax},
		zoneLimit{z.BH, glareBack},
	)

	return Rating{B: b, U: u, G: g}
}

type zoneLimit struct {
	lumens float64
	maxima [5]float64
}

// smallestLevel returns the lowest rating whose maxima admit every zone,
// or 5 when none does.
func smallestLevel(zones ...zoneLimit) int {
	for level := 0; level < 5; level++ {
		ok := true
		for _, zl := range zones {
			if zl.lumens > zl.maxima[level] {
				ok = false
				break
			}
		}
		if ok {
			return level
		}
	}

	return 5
}

package calc

import (
	"math"

	"github.com/luxkit/photometry/luminaire"
	"github.com/luxkit/photometry/photoweb"
)

// lumenBasis is the lamp-flux basis of cd/klm intensity data.
const lumenBasis = 1000.0

// integrator performs zonal flux sums over the full azimuth circle.
type integrator struct {
	web     *photoweb.Web
	cAngles []float64
	weights []float64 // fraction of the circle attributed to each plane
}

func newIntegrator(l *luminaire.Luminaire) *integrator {
	cAngles := l.FullCAngles()
	n := len(cAngles)

	in := &integrator{
		web:     photoweb.New(l),
		cAngles: cAngles,
		weights: make([]float64, n),
	}
	for i := range cAngles {
		prev := cAngles[(i+n-1)%n] - 360
		next := cAngles[(i+1)%n] + 360
		if i > 0 {
			prev = cAngles[i-1]
		}
		if i < n-1 {
			next = cAngles[i+1]
		}
		in.weights[i] = (next - prev) / 2 / 360
	}
	if n == 1 {
		in.weights[0] = 1
	}

	return in
}

// meanIntensity returns the azimuth-weighted mean intensity at one gamma.
func (in *integrator) meanIntensity(g float64) float64 {
	var sum float64
	for i, c := range in.cAngles {
		sum += in.web.Sample(c, g) * in.weights[i]
	}

	return sum
}

// fluxBetween integrates lumens (per 1000 lamp lumens) over a gamma band,
// stepping in whole-degree sub-bands for platform-independent results.
func (in *integrator) fluxBetween(gLo, gHi float64) float64 {
	gLo = math.Max(gLo, 0)
	gHi = math.Min(gHi, 180)
	if gHi <= gLo {
		return 0
	}

	var total float64
	for g := gLo; g < gHi; {
		next := math.Min(math.Floor(g)+1, gHi)
		if next <= g {
			next = math.Min(g+1, gHi)
		}
		mid := (g + next) / 2
		band := 2 * math.Pi * (math.Cos(g*math.Pi/180) - math.Cos(next*math.Pi/180))
		total += in.meanIntensity(mid) * band
		g = next
	}

	return total
}

// SectorFlux returns the lumens emitted between two gamma angles, per 1000
// lamp lumens.
func SectorFlux(l *luminaire.Luminaire, gammaLow, gammaHigh float64) float64 {
	return newIntegrator(l).fluxBetween(gammaLow, gammaHigh)
}

// TotalFlux returns the lumens emitted over the whole sphere, per 1000 lamp
// lumens.
func TotalFlux(l *luminaire.Luminaire) float64 {
	return SectorFlux(l, 0, 180)
}

// DownwardFlux returns the flux emitted between nadir and maxGamma as a
// percentage of the 1000 lm lamp basis.
func DownwardFlux(l *luminaire.Luminaire, maxGamma float64) float64 {
	return SectorFlux(l, 0, maxGamma) / lumenBasis * 100
}

// CIEFluxCodes holds the five CIE flux-code percentages. N1 and N4 are the
// downward and upward light output ratios; N1+N4 accounts for the whole
// emitted flux.
type CIEFluxCodes struct {
	N1 float64 // 0–90°, DLOR
	N2 float64 // 0–60°
	N3 float64 // 0–40°
	N4 float64 // 90–180°, ULOR
	N5 float64 // 90–120°
}

// CIEFluxCodesFor partitions the sphere into the five standard CIE zones
// and reports each zone's flux as a percentage of the total emitted flux.
// A dark model yields all zeros.
func CIEFluxCodesFor(l *luminaire.Luminaire) CIEFluxCodes {
	in := newIntegrator(l)
	total := in.fluxBetween(0, 180)
	if total <= 0 {
		return CIEFluxCodes{}
	}
	pct := func(lo, hi float64) float64 {
		return in.fluxBetween(lo, hi) / total * 100
	}

	return CIEFluxCodes{
		N1: pct(0, 90),
		N2: pct(0, 60),
		N3: pct(0, 40),
		N4: pct(90, 180),
		N5: pct(90, 120),
	}
}

// Zone is one gamma band of a zonal-lumens table.
type Zone struct {
	GammaLow  float64
	GammaHigh float64
	Lumens    float64 // per 1000 lamp lumens
	Percent   float64 // of total emitted flux
}

// ZonalLumens is the per-band flux table with downward/upward totals, both
// as percentages of total emitted flux.
type ZonalLumens struct {
	BandWidth float64
	Zones     []Zone
	Downward  float64 // 0–90° total, percent
	Upward    float64 // 90–180° total, percent
}

// ZonalLumens10 integrates flux per 10° gamma band.
func ZonalLumens10(l *luminaire.Luminaire) ZonalLumens {
	return zonalLumens(l, 10)
}

// ZonalLumens30 integrates flux per 30° gamma band.
func ZonalLumens30(l *luminaire.Luminaire) ZonalLumens {
	return zonalLumens(l, 30)
}

func zonalLumens(l *luminaire.Luminaire, bandWidth float64) ZonalLumens {
	in := newIntegrator(l)
	total := in.fluxBetween(0, 180)

	z := ZonalLumens{BandWidth: bandWidth}
	for lo := 0.0; lo < 180; lo += bandWidth {
		hi := math.Min(lo+bandWidth, 180)
		lumens := in.fluxBetween(lo, hi)
		pct := 0.0
		if total > 0 {
			pct = lumens / total * 100
		}
		z.Zones = append(z.Zones, Zone{GammaLow: lo, GammaHigh: hi, Lumens: lumens, Percent: pct})
		if hi <= 90 {
			z.Downward += pct
		} else {
			z.Upward += pct
		}
	}

	return z
}

// CutoffAngle returns the first gamma, scanning from nadir to 180°, where
// the azimuth-mean intensity falls below 2.5% of its maximum. Linear
// interpolation between the bracketing grid samples gives sub-degree
// precision. A dark model yields 0.
func CutoffAngle(l *luminaire.Luminaire) float64 {
	profile, gAngles := meanProfile(l)

	return crossingGamma(profile, gAngles, 0.025)
}

// meanProfile samples the azimuth-weighted mean intensity at every stored
// gamma angle.
func meanProfile(l *luminaire.Luminaire) (profile, gAngles []float64) {
	in := newIntegrator(l)
	profile = make([]float64, len(l.GAngles))
	for i, g := range l.GAngles {
		profile[i] = in.meanIntensity(g)
	}

	return profile, l.GAngles
}

// crossingGamma finds the first gamma where the profile, scanned outward
// from its start, drops below frac of the profile maximum. The crossing is
// linearly interpolated; a profile that never drops yields the last gamma.
func crossingGamma(profile, gAngles []float64, frac float64) float64 {
	if len(profile) == 0 || len(profile) != len(gAngles) {
		return 0
	}

	peak := 0.0
	for _, v := range profile {
		peak = math.Max(peak, v)
	}
	if peak <= 0 {
		return 0
	}
	threshold := peak * frac

	for i := 0; i < len(profile)-1; i++ {
		if profile[i] < threshold {
			continue
		}
		if profile[i+1] < threshold {
			span := profile[i] - profile[i+1]
			f := 0.0
			if span > 0 {
				f = (profile[i] - threshold) / span
			}

			return gAngles[i] + (gAngles[i+1]-gAngles[i])*f
		}
	}

	return gAngles[len(gAngles)-1]
}

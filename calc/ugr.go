package calc

import (
	"math"

	"github.com/luxkit/photometry/luminaire"
	"github.com/luxkit/photometry/photoweb"
)

// UGRParams describes the room layout for a unified glare rating run.
// Lengths are in meters; reflectances are fractions in [0,1].
type UGRParams struct {
	RoomLength         float64 // along the observer's line of sight
	RoomWidth          float64
	MountingHeight     float64 // luminaire plane above eye level
	ReflectanceCeiling float64
	ReflectanceWalls   float64
	ReflectanceFloor   float64
	Spacing            float64 // luminaire grid pitch, in mounting heights
	Endwise            bool    // luminaire C0 axis along the line of sight
}

// StandardOfficeParams returns the CIE reference layout used for tabular
// UGR values: a 4H × 8H room, 70/50/20 reflectances, and a 0.25H grid.
func StandardOfficeParams() UGRParams {
	const h = 2.0

	return UGRParams{
		RoomLength:         8 * h,
		RoomWidth:          4 * h,
		MountingHeight:     h,
		ReflectanceCeiling: 0.70,
		ReflectanceWalls:   0.50,
		ReflectanceFloor:   0.20,
		Spacing:            0.25,
		Endwise:            true,
	}
}

// UGR computes the CIE unified glare rating 8·log10(0.25/Lb · Σ L²ω/p²)
// for a regular grid of this luminaire in the given room. The observer
// stands at the middle of one end wall looking down the room's length.
// Degenerate input (dark model, empty room, no luminous area) yields 0.
func UGR(l *luminaire.Luminaire, p UGRParams) float64 {
	if p.RoomLength <= 0 || p.RoomWidth <= 0 || p.MountingHeight <= 0 || p.Spacing <= 0 {
		return 0
	}

	w := photoweb.New(l)
	flux := l.TotalLuminousFlux()
	if flux <= 0 {
		flux = lumenBasis
	}
	area := luminousArea(l)
	if area <= 0 {
		return 0
	}

	h := p.MountingHeight
	pitch := p.Spacing * h

	// Regular grid centered in the room.
	nx := int(p.RoomWidth/pitch + 0.5)
	ny := int(p.RoomLength/pitch + 0.5)
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	x0 := -(float64(nx-1) / 2) * pitch
	y0 := (p.RoomLength - float64(ny-1)*pitch) / 2

	var sum float64
	count := 0
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			x := x0 + float64(ix)*pitch
			y := y0 + float64(iy)*pitch
			count++

			horiz := math.Hypot(x, y)
			dist := math.Hypot(horiz, h)
			if dist == 0 {
				continue
			}

			// Direction from luminaire toward the eye.
			gamma := math.Atan2(horiz, h) * 180 / math.Pi
			c := math.Atan2(x, y) * 180 / math.Pi
			if !p.Endwise {
				c += 90
			}

			intensity := w.Sample(c, gamma) * flux / lumenBasis // cd
			if intensity <= 0 {
				continue
			}

			projected := area * math.Abs(math.Cos(gamma*math.Pi/180))
			if projected <= 0 {
				continue
			}
			luminance := intensity / projected
			omega := projected / (dist * dist)
			guth := positionIndex(x, y, h)

			sum += luminance * luminance * omega / (guth * guth)
		}
	}
	if sum <= 0 {
		return 0
	}

	lb := backgroundLuminance(l, p, count)
	if lb <= 0 {
		return 0
	}

	return 8 * math.Log10(0.25/lb*sum)
}

// positionIndex evaluates the Guth position index for a source displaced
// x laterally, y along the line of sight, and h above eye level, using the
// standard polynomial approximation of the Luckiesh-Guth data.
func positionIndex(x, y, h float64) float64 {
	if y <= 0 {
		// Behind or beside the observer; cap at the table's edge.
		return 16
	}

	alpha := math.Atan2(math.Abs(x), h) * 180 / math.Pi
	beta := math.Atan2(math.Hypot(x, h), y) * 180 / math.Pi

	lnP := (35.2-0.31889*alpha-1.22*math.Exp(-2*alpha/9))*1e-3*beta +
		(21+0.26667*alpha-0.002963*alpha*alpha)*1e-5*beta*beta

	p := math.Exp(lnP)
	if p < 1 {
		return 1
	}
	if p > 16 {
		return 16
	}

	return p
}

// backgroundLuminance estimates the indirect field luminance with a single
// integrating-sphere bounce over the room's surfaces.
func backgroundLuminance(l *luminaire.Luminaire, p UGRParams, luminaires int) float64 {
	installed := l.TotalLuminousFlux()
	if installed <= 0 {
		installed = lumenBasis
	}
	installed *= l.LightOutputRatio / 100 * float64(luminaires)

	floor := p.RoomLength * p.RoomWidth
	walls := 2 * (p.RoomLength + p.RoomWidth) * p.MountingHeight
	surface := 2*floor + walls
	if surface <= 0 {
		return 0
	}

	rho := (p.ReflectanceCeiling*floor + p.ReflectanceFloor*floor + p.ReflectanceWalls*walls) / surface
	if rho >= 1 {
		rho = 0.99
	}

	return installed * rho / (surface * (1 - rho)) / math.Pi
}

// luminousArea returns the luminous opening in m², falling back from the
// declared luminous-area fields to the overall luminaire footprint. A
// round opening (width 0) uses a disc of the given diameter.
func luminousArea(l *luminaire.Luminaire) float64 {
	length, width := l.LuminousAreaLength, l.LuminousAreaWidth
	if length <= 0 {
		length, width = l.Length, l.Width
	}
	if length <= 0 {
		return 0
	}
	if width <= 0 {
		r := length / 2
		return math.Pi * r * r / 1e6
	}

	return length * width / 1e6
}

// KFactor interpolates the model's direct-ratio table at the given room
// index and applies a first-order reflectance correction against the
// 70/50/20 reference. Room indices clamp to the table's [0.6, 5] range.
func KFactor(l *luminaire.Luminaire, roomIndex, ceiling, walls, floor float64) float64 {
	base := interpolateDirectRatio(l.DirectRatios, roomIndex)

	const refMean = (0.70 + 0.50 + 0.20) / 3
	mean := (ceiling + walls + floor) / 3
	if mean < 0 {
		mean = 0
	}

	return base * mean / refMean
}

func interpolateDirectRatio(ratios [luminaire.NumDirectRatios]float64, k float64) float64 {
	idx := luminaire.RoomIndices
	if k <= idx[0] {
		return ratios[0]
	}
	if k >= idx[len(idx)-1] {
		return ratios[len(idx)-1]
	}
	for i := 0; i < len(idx)-1; i++ {
		if k <= idx[i+1] {
			f := (k - idx[i]) / (idx[i+1] - idx[i])

			return ratios[i]*(1-f) + ratios[i+1]*f
		}
	}

	return ratios[len(idx)-1]
}

// CalculateDirectRatios fills the utilance table from zonal flux: for each
// standard room index k, the fraction of emitted flux that reaches the
// work plane directly, modeling the zonal transfer as k/(k + tan γ).
func CalculateDirectRatios(l *luminaire.Luminaire) [luminaire.NumDirectRatios]float64 {
	in := newIntegrator(l)
	total := in.fluxBetween(0, 180)

	var out [luminaire.NumDirectRatios]float64
	if total <= 0 {
		return out
	}

	const step = 5.0
	for ki, k := range luminaire.RoomIndices {
		var direct float64
		for lo := 0.0; lo < 90; lo += step {
			hi := lo + step
			mid := (lo + hi) / 2 * math.Pi / 180
			transfer := k / (k + math.Tan(mid))
			if transfer > 1 {
				transfer = 1
			}
			direct += in.fluxBetween(lo, hi) * transfer
		}
		out[ki] = direct / total
	}

	return out
}

// LuminaireLuminance returns the mean luminaire luminance in cd/m² seen at
// the given gamma viewing angle: intensity scaled to absolute candela over
// the projected luminous area. Angles at or beyond the horizon, and models
// without a luminous area, yield 0.
func LuminaireLuminance(l *luminaire.Luminaire, viewingAngle float64) float64 {
	area := luminousArea(l)
	cos := math.Cos(viewingAngle * math.Pi / 180)
	if area <= 0 || cos <= 0 {
		return 0
	}

	in := newIntegrator(l)
	flux := l.TotalLuminousFlux()
	if flux <= 0 {
		flux = lumenBasis
	}
	intensity := in.meanIntensity(viewingAngle) * flux / lumenBasis

	return intensity / (area * cos)
}

// LuminousEfficacy returns lamp lumens per circuit watt (0 without wattage).
func LuminousEfficacy(l *luminaire.Luminaire) float64 {
	return l.LuminousEfficacy()
}

// LuminaireEfficacy returns emitted lumens per circuit watt, discounting
// lamp flux by the light output ratio.
func LuminaireEfficacy(l *luminaire.Luminaire) float64 {
	watts := l.TotalWattage()
	if watts <= 0 {
		return 0
	}

	return l.TotalLuminousFlux() * l.LightOutputRatio / 100 / watts
}

// LuminaireEfficiency returns the light output ratio as a percentage.
func LuminaireEfficiency(l *luminaire.Luminaire) float64 {
	return l.LightOutputRatio
}

package luminaire

import (
	"math"
	"sort"
)

// Accessors below are recomputed on every call. Nothing here caches, so a
// collaborator editing the model can never observe a stale derived value.

// MaxIntensity returns the largest stored intensity in cd/klm, or 0 when no
// intensities are present.
func (l *Luminaire) MaxIntensity() float64 {
	maxI := 0.0
	for _, row := range l.Intensities {
		for _, v := range row {
			if v > maxI {
				maxI = v
			}
		}
	}

	return maxI
}

// TotalLuminousFlux returns the combined lamp flux of all lamp sets in lumens.
func (l *Luminaire) TotalLuminousFlux() float64 {
	total := 0.0
	for _, ls := range l.LampSets {
		total += ls.TotalLuminousFlux
	}

	return total
}

// TotalWattage returns the combined input power of all lamp sets in watts.
func (l *Luminaire) TotalWattage() float64 {
	total := 0.0
	for _, ls := range l.LampSets {
		total += ls.WattageWithBallast
	}

	return total
}

// TotalLampCount returns the number of lamps across all lamp sets.
func (l *Luminaire) TotalLampCount() int {
	n := 0
	for _, ls := range l.LampSets {
		n += ls.NumLamps
	}

	return n
}

// LuminousEfficacy returns lamp lumens per input watt, or 0 when wattage is
// unknown or zero.
func (l *Luminaire) LuminousEfficacy() float64 {
	w := l.TotalWattage()
	if w <= 0 {
		return 0
	}

	return l.TotalLuminousFlux() / w
}

// Clone returns a deep copy. Collaborators that edit models do so on a
// clone; every other package treats Luminaire as immutable.
func (l *Luminaire) Clone() *Luminaire {
	out := *l

	out.LampSets = append([]LampSet(nil), l.LampSets...)
	out.CAngles = append([]float64(nil), l.CAngles...)
	out.GAngles = append([]float64(nil), l.GAngles...)

	out.Intensities = make([][]float64, len(l.Intensities))
	for i, row := range l.Intensities {
		out.Intensities[i] = append([]float64(nil), row...)
	}

	if l.Tilt != nil {
		t := TiltTable{
			LampToLuminaireGeometry: l.Tilt.LampToLuminaireGeometry,
			Angles:                  append([]float64(nil), l.Tilt.Angles...),
			Factors:                 append([]float64(nil), l.Tilt.Factors...),
		}
		out.Tilt = &t
	}

	return &out
}

// FullCAngles reconstructs the complete 0–360° C-plane angle list implied by
// the declared plane count and spacing. Codecs use it to re-emit the full
// angle block for symmetry-reduced models; photoweb uses it to materialize
// the expanded grid.
//
// When the declared spacing is unusable (zero planes or zero distance) the
// stored angles are mirrored according to Symmetry instead.
func (l *Luminaire) FullCAngles() []float64 {
	if l.Symmetry == SymmetryNone {
		return append([]float64(nil), l.CAngles...)
	}

	if l.NumCPlanes > 0 && l.CPlaneDistance > 0 {
		angles := make([]float64, l.NumCPlanes)
		for i := range angles {
			angles[i] = float64(i) * l.CPlaneDistance
		}

		return angles
	}

	return l.mirrorStoredCAngles()
}

// mirrorStoredCAngles derives the full-circle angle list from the stored
// reduced domain when no uniform spacing is declared: each stored angle is
// reflected through the declared symmetry plane(s), then the union is
// sorted and deduplicated.
func (l *Luminaire) mirrorStoredCAngles() []float64 {
	stored := l.CAngles
	if len(stored) == 0 {
		return nil
	}
	if l.Symmetry == SymmetryVerticalAxis {
		return []float64{stored[0]}
	}

	norm := func(a float64) float64 {
		a = math.Mod(a, 360)
		if a < 0 {
			a += 360
		}

		return a
	}

	full := append([]float64(nil), stored...)
	for _, a := range stored {
		switch l.Symmetry {
		case SymmetryPlaneC0C180:
			full = append(full, norm(360-a))
		case SymmetryPlaneC90C270:
			full = append(full, norm(180-a))
		case SymmetryBothPlanes:
			full = append(full, norm(180-a), norm(180+a), norm(360-a))
		}
	}
	sort.Float64s(full)

	// Deduplicate exact repeats produced by angles on the mirror planes.
	out := full[:1]
	for _, a := range full[1:] {
		if a != out[len(out)-1] {
			out = append(out, a)
		}
	}

	return out
}

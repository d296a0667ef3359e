package photoweb

import (
	"errors"
	"math"

	"github.com/luxkit/photometry/luminaire"
)

// ErrRotationNotApplied reports a model whose photometric axes still carry
// the unapplied 90° rotation of the B/A plane systems.
var ErrRotationNotApplied = errors.New("photoweb: photometric axis rotation not applied")

// Web samples a photometric model at arbitrary angles. It treats the model
// as an immutable value and holds no other state, so a Web is safe to share
// between concurrent readers.
type Web struct {
	symmetry        luminaire.Symmetry
	cAngles         []float64
	gAngles         []float64
	intensities     [][]float64
	maxIntensity    float64
	minIntensity    float64
	rotationPending bool
}

// New wraps the model for sampling. The model's slices are referenced, not
// copied; callers must not mutate the model while the Web is in use.
func New(l *luminaire.Luminaire) *Web {
	w := &Web{
		symmetry:        l.Symmetry,
		cAngles:         l.CAngles,
		gAngles:         l.GAngles,
		intensities:     l.Intensities,
		rotationPending: l.AxisRotationPending,
	}

	w.minIntensity = math.Inf(1)
	for _, row := range w.intensities {
		for _, v := range row {
			if v > w.maxIntensity {
				w.maxIntensity = v
			}
			if v < w.minIntensity {
				w.minIntensity = v
			}
		}
	}
	if math.IsInf(w.minIntensity, 1) {
		w.minIntensity = 0
	}

	return w
}

// Symmetry returns the declared symmetry of the underlying model.
func (w *Web) Symmetry() luminaire.Symmetry { return w.symmetry }

// CAngles returns the stored azimuth planes.
func (w *Web) CAngles() []float64 { return w.cAngles }

// GAngles returns the stored gamma angles.
func (w *Web) GAngles() []float64 { return w.gAngles }

// MaxIntensity returns the largest stored intensity in cd/klm.
func (w *Web) MaxIntensity() float64 { return w.maxIntensity }

// MinIntensity returns the smallest stored intensity in cd/klm.
func (w *Web) MinIntensity() float64 { return w.minIntensity }

// RotationPending reports whether the source file was measured in the B or
// A plane system and still needs its axes rotated.
func (w *Web) RotationPending() bool { return w.rotationPending }

// Sample returns the intensity in cd/klm at the given direction. C wraps
// modulo 360 (interpolating across the 0/360 seam when the stored planes do
// not close the circle), gamma clamps to [0,180], and exact grid nodes
// return stored values without interpolation error.
func (w *Web) Sample(c, g float64) float64 {
	if len(w.cAngles) == 0 || len(w.gAngles) == 0 {
		return 0
	}

	cn := math.Mod(c, 360)
	if cn < 0 {
		cn += 360
	}
	g = math.Min(math.Max(g, 0), 180)

	lo, hi, cf := w.planeSpan(w.foldC(cn))
	gi, gf := interpIndex(w.gAngles, g)

	gHi := gi
	if gf > 0 && gi+1 < len(w.gAngles) {
		gHi = gi + 1
	}

	i0 := lerp(w.at(lo, gi), w.at(lo, gHi), gf)
	i1 := lerp(w.at(hi, gi), w.at(hi, gHi), gf)

	return lerp(i0, i1, cf)
}

// SampleNormalized returns Sample scaled into [0,1] by the maximum stored
// intensity, or 0 for a dark web.
func (w *Web) SampleNormalized(c, g float64) float64 {
	if w.maxIntensity <= 0 {
		return 0
	}

	return w.Sample(c, g) / w.maxIntensity
}

// foldC maps a normalized azimuth into the stored domain per symmetry.
func (w *Web) foldC(c float64) float64 {
	switch w.symmetry {
	case luminaire.SymmetryVerticalAxis:
		if len(w.cAngles) > 0 {
			return w.cAngles[0]
		}

		return 0
	case luminaire.SymmetryPlaneC0C180:
		if c > 180 {
			return 360 - c
		}

		return c
	case luminaire.SymmetryPlaneC90C270:
		if c < 90 || c > 270 {
			m := math.Mod(180-c, 360)
			if m < 0 {
				m += 360
			}

			return m
		}

		return c
	case luminaire.SymmetryBothPlanes:
		if c > 180 {
			c = 360 - c
		}
		if c > 90 {
			c = 180 - c
		}

		return c
	default:
		return c
	}
}

// planeSpan locates the bracketing stored planes for a folded azimuth. For
// unreduced data the gap between the last plane and the first one (plus a
// full turn) is a valid interpolation span.
func (w *Web) planeSpan(c float64) (lo, hi int, frac float64) {
	n := len(w.cAngles)
	if n == 1 {
		return 0, 0, 0
	}

	first, last := w.cAngles[0], w.cAngles[n-1]
	if w.symmetry == luminaire.SymmetryNone && (c < first || c > last) {
		span := first + 360 - last
		if span <= 0 {
			return n - 1, n - 1, 0
		}
		offset := c - last
		if c < first {
			offset = c + 360 - last
		}

		return n - 1, 0, offset / span
	}

	i, f := interpIndex(w.cAngles, c)
	hi = i
	if f > 0 && i+1 < n {
		hi = i + 1
	}

	return i, hi, f
}

// at reads one grid node, tolerating ragged input.
func (w *Web) at(ci, gi int) float64 {
	if ci >= len(w.intensities) {
		return 0
	}
	row := w.intensities[ci]
	if gi >= len(row) {
		return 0
	}

	return row[gi]
}

// interpIndex returns the lower bracketing index and the fractional
// position of target between it and the next angle. Targets outside the
// stored range clamp to the nearest edge with zero fraction.
func interpIndex(angles []float64, target float64) (int, float64) {
	n := len(angles)
	if n == 0 || target <= angles[0] {
		return 0, 0
	}
	if target >= angles[n-1] {
		return n - 1, 0
	}
	for i := 0; i < n-1; i++ {
		if target <= angles[i+1] {
			return i, (target - angles[i]) / (angles[i+1] - angles[i])
		}
	}

	return n - 1, 0
}

func lerp(a, b, f float64) float64 {
	return a*(1-f) + b*f
}

// Grid is the full-circle materialization of a symmetry-reduced model.
type Grid struct {
	CAngles     []float64
	GAngles     []float64
	Intensities [][]float64
}

// Expand mirrors the stored planes over the full 0–360° azimuth circle.
// The gamma domain stays as measured; inventing samples beyond it would
// fabricate flux. Every produced plane is an exact mirror of a stored one.
func Expand(l *luminaire.Luminaire) *Grid {
	w := New(l)
	cAngles := l.FullCAngles()

	grid := &Grid{
		CAngles:     cAngles,
		GAngles:     append([]float64(nil), l.GAngles...),
		Intensities: make([][]float64, len(cAngles)),
	}
	for ci, c := range cAngles {
		row := make([]float64, len(l.GAngles))
		for gi, g := range l.GAngles {
			row[gi] = w.Sample(c, g)
		}
		grid.Intensities[ci] = row
	}

	return grid
}

// AlignToRoadAxis would rotate B/A plane-system data into the C system used
// by road-lighting calculations. The rotation convention differs between
// vendors and the reference documents leave it open, so the operation
// refuses instead of guessing. Models without the pending marker pass
// through unchanged.
func AlignToRoadAxis(l *luminaire.Luminaire) (*luminaire.Luminaire, error) {
	if !l.AxisRotationPending {
		return l, nil
	}

	return nil, ErrRotationNotApplied
}

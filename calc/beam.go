package calc

import (
	"math"

	"github.com/luxkit/photometry/luminaire"
	"github.com/luxkit/photometry/photoweb"
)

// BeamAngle returns the full beam angle in degrees: twice the interpolated
// gamma where the azimuth-mean profile first drops below 50% of its peak.
// A dark model yields 0.
func BeamAngle(l *luminaire.Luminaire) float64 {
	profile, gAngles := meanProfile(l)

	return math.Min(2*crossingGamma(profile, gAngles, 0.5), 360)
}

// FieldAngle is BeamAngle at the 10% threshold.
func FieldAngle(l *luminaire.Luminaire) float64 {
	profile, gAngles := meanProfile(l)

	return math.Min(2*crossingGamma(profile, gAngles, 0.1), 360)
}

// BeamAngleForPlane returns the full beam angle across one C-plane: the
// 50% half-angle on plane c plus the one on the opposite plane c+180, so
// asymmetric distributions report their true spread.
func BeamAngleForPlane(l *luminaire.Luminaire, c float64) float64 {
	return planeAngle(l, c, 0.5)
}

// FieldAngleForPlane is BeamAngleForPlane at the 10% threshold.
func FieldAngleForPlane(l *luminaire.Luminaire, c float64) float64 {
	return planeAngle(l, c, 0.1)
}

func planeAngle(l *luminaire.Luminaire, c, frac float64) float64 {
	return planeHalfAngle(l, c, frac) + planeHalfAngle(l, c+180, frac)
}

// planeHalfAngle finds the threshold crossing along a single half-plane.
// The threshold is relative to the peak of that half-plane's own profile.
func planeHalfAngle(l *luminaire.Luminaire, c, frac float64) float64 {
	w := photoweb.New(l)
	profile := make([]float64, len(l.GAngles))
	for i, g := range l.GAngles {
		profile[i] = w.Sample(c, g)
	}

	return crossingGamma(profile, l.GAngles, frac)
}

// SpacingCriterion returns the S/H ratio for one C-plane pair: the maximum
// luminaire spacing, in mounting heights, that keeps illuminance reasonably
// uniform. Derived from the plane's 50% half-angles as 2·tan(β/2).
func SpacingCriterion(l *luminaire.Luminaire, c float64) float64 {
	beam := planeAngle(l, c, 0.5)

	return 2 * math.Tan(beam/2*math.Pi/180)
}

// SpacingCriteria returns the S/H ratios for the C0–C180 and C90–C270
// plane pairs.
func SpacingCriteria(l *luminaire.Luminaire) (c0, c90 float64) {
	return SpacingCriterion(l, 0), SpacingCriterion(l, 90)
}

// BeamField bundles the beam and field characteristics of a distribution.
type BeamField struct {
	Beam      float64
	Field     float64
	BeamC0    float64
	BeamC90   float64
	FieldC0   float64
	FieldC90  float64
	IsBatwing bool
}

// BeamFieldAnalysis computes the full beam/field digest in one pass,
// including batwing detection (peak intensity clearly off nadir).
func BeamFieldAnalysis(l *luminaire.Luminaire) BeamField {
	return BeamField{
		Beam:      BeamAngle(l),
		Field:     FieldAngle(l),
		BeamC0:    BeamAngleForPlane(l, 0),
		BeamC90:   BeamAngleForPlane(l, 90),
		FieldC0:   FieldAngleForPlane(l, 0),
		FieldC90:  FieldAngleForPlane(l, 90),
		IsBatwing: isBatwing(l),
	}
}

// isBatwing reports a distribution whose azimuth-mean peak sits off nadir
// with a pronounced dip at 0°.
func isBatwing(l *luminaire.Luminaire) bool {
	profile, gAngles := meanProfile(l)
	if len(profile) == 0 {
		return false
	}

	peak, peakGamma := 0.0, 0.0
	for i, v := range profile {
		if v > peak {
			peak, peakGamma = v, gAngles[i]
		}
	}

	return peak > 0 && peakGamma >= 10 && profile[0] < 0.95*peak
}

// PhotometricCode classifies the distribution as a CIE flux-direction
// class crossed with the beam width, e.g. "Direct Narrow".
func PhotometricCode(l *luminaire.Luminaire) string {
	codes := CIEFluxCodesFor(l)

	var direction string
	switch {
	case codes.N1 >= 90:
		direction = "Direct"
	case codes.N1 >= 60:
		direction = "Semi-Direct"
	case codes.N1 >= 40:
		direction = "General Diffuse"
	case codes.N1 >= 10:
		direction = "Semi-Indirect"
	default:
		direction = "Indirect"
	}

	var width string
	switch beam := BeamAngle(l); {
	case beam < 30:
		width = "Narrow"
	case beam <= 60:
		width = "Medium"
	default:
		width = "Wide"
	}

	return direction + " " + width
}

package validate

import (
	"fmt"

	"github.com/luxkit/photometry/luminaire"
)

// Severity separates calculation-blocking issues from advisories.
type Severity int

const (
	// SeverityError marks the model unsafe for calculations.
	SeverityError Severity = iota
	// SeverityWarning marks legal but unusual data.
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// Issue is one validation finding with a stable code.
type Issue struct {
	Code     string
	Severity Severity
	Message  string
}

// Report groups the findings of one Validate call. A model with an empty
// Errors slice is safe to feed into the calculation engines.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// OK reports whether the model passed without errors (warnings allowed).
func (r Report) OK() bool { return len(r.Errors) == 0 }

// Validate runs every check against the model and returns the full report.
// It is pure: no mutation, no panics, deterministic issue ordering.
func Validate(l *luminaire.Luminaire) Report {
	v := &visitor{}

	v.checkStructure(l)
	v.checkRanges(l)
	v.checkLampSets(l)
	v.checkDimensions(l)
	v.checkExtras(l)

	return v.report
}

type visitor struct {
	report Report
}

func (v *visitor) errorf(code, format string, args ...any) {
	v.report.Errors = append(v.report.Errors,
		Issue{Code: code, Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (v *visitor) warnf(code, format string, args ...any) {
	v.report.Warnings = append(v.report.Warnings,
		Issue{Code: code, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// checkStructure verifies the grid arrays agree with each other and with
// the declared plane counts.
func (v *visitor) checkStructure(l *luminaire.Luminaire) {
	if len(l.CAngles) == 0 {
		v.errorf("S001", "no C-plane angles stored")
	}
	if len(l.GAngles) == 0 {
		v.errorf("S002", "no gamma angles stored")
	}
	if len(l.Intensities) != len(l.CAngles) {
		v.errorf("S003", "intensity grid has %d planes, expected %d",
			len(l.Intensities), len(l.CAngles))
	}
	for i, row := range l.Intensities {
		if len(row) != len(l.GAngles) {
			v.errorf("S004", "intensity plane %d has %d samples, expected %d",
				i, len(row), len(l.GAngles))
		}
	}
	for i := 1; i < len(l.CAngles); i++ {
		if l.CAngles[i] <= l.CAngles[i-1] {
			v.errorf("S005", "C angles not strictly increasing at index %d (%g after %g)",
				i, l.CAngles[i], l.CAngles[i-1])
			break
		}
	}
	for i := 1; i < len(l.GAngles); i++ {
		if l.GAngles[i] <= l.GAngles[i-1] {
			v.errorf("S006", "gamma angles not strictly increasing at index %d (%g after %g)",
				i, l.GAngles[i], l.GAngles[i-1])
			break
		}
	}

	if l.NumCPlanes > 0 && len(l.CAngles) > 0 {
		want := luminaire.StoredPlaneCount(l.Symmetry, l.NumCPlanes)
		if len(l.CAngles) != want {
			v.warnf("S007", "%d stored planes, %s symmetry with Mc=%d implies %d",
				len(l.CAngles), l.Symmetry, l.NumCPlanes, want)
		}
	}
	if l.NumGPlanes > 0 && l.NumGPlanes != len(l.GAngles) {
		v.warnf("S008", "declared %d gamma angles, %d stored", l.NumGPlanes, len(l.GAngles))
	}
	if l.Tilt != nil && len(l.Tilt.Angles) != len(l.Tilt.Factors) {
		v.errorf("S009", "tilt table has %d angles but %d factors",
			len(l.Tilt.Angles), len(l.Tilt.Factors))
	}
}

// checkRanges verifies angle domains, symmetry coverage, and value signs.
func (v *visitor) checkRanges(l *luminaire.Luminaire) {
	for _, c := range l.CAngles {
		if c < 0 || c >= 360 {
			v.errorf("R001", "C angle %g outside [0,360)", c)
			break
		}
	}
	for _, g := range l.GAngles {
		if g < 0 || g > 180 {
			v.errorf("R002", "gamma angle %g outside [0,180]", g)
			break
		}
	}
negatives:
	for ci, row := range l.Intensities {
		for gi, val := range row {
			if val < 0 {
				v.errorf("R003", "negative intensity %g at plane %d, gamma index %d",
					val, ci, gi)
				break negatives
			}
		}
	}

	v.checkSymmetryCoverage(l)

	if len(l.GAngles) > 0 && l.GAngles[0] != 0 {
		v.warnf("R005", "gamma coverage starts at %g°, not 0°", l.GAngles[0])
	}
	if l.DownwardFluxFraction < 0 || l.DownwardFluxFraction > 100 {
		v.warnf("R006", "downward flux fraction %g%% outside [0,100]", l.DownwardFluxFraction)
	}
	if l.LightOutputRatio < 0 || l.LightOutputRatio > 100 {
		v.warnf("R007", "light output ratio %g%% outside [0,100]", l.LightOutputRatio)
	}
	if l.ConversionFactor <= 0 {
		v.warnf("R008", "conversion factor %g is not positive", l.ConversionFactor)
	}
	if l.TiltAngle < -90 || l.TiltAngle > 90 {
		v.warnf("R009", "tilt angle %g° outside [-90,90]", l.TiltAngle)
	}
	if l.MaxIntensity() == 0 && len(l.Intensities) > 0 {
		v.warnf("R010", "all intensities are zero")
	}
	if l.Tilt != nil {
		for _, f := range l.Tilt.Factors {
			if f < 0 {
				v.errorf("R011", "negative tilt multiplying factor %g", f)
				break
			}
		}
	}
}

// checkSymmetryCoverage verifies the stored C-angle domain matches the
// declared symmetry.
func (v *visitor) checkSymmetryCoverage(l *luminaire.Luminaire) {
	n := len(l.CAngles)
	if n == 0 {
		return
	}
	first, last := l.CAngles[0], l.CAngles[n-1]

	switch l.Symmetry {
	case luminaire.SymmetryVerticalAxis:
		if n != 1 {
			v.errorf("R004", "vertical-axis symmetry requires exactly one stored plane, got %d", n)
		}
	case luminaire.SymmetryPlaneC0C180:
		if first != 0 || last != 180 {
			v.errorf("R004", "C0-C180 symmetry requires coverage 0°..180°, got %g°..%g°", first, last)
		}
	case luminaire.SymmetryPlaneC90C270:
		if first != 90 || last != 270 {
			v.errorf("R004", "C90-C270 symmetry requires coverage 90°..270°, got %g°..%g°", first, last)
		}
	case luminaire.SymmetryBothPlanes:
		if first != 0 || last != 90 {
			v.errorf("R004", "both-plane symmetry requires coverage 0°..90°, got %g°..%g°", first, last)
		}
	case luminaire.SymmetryNone:
		// Every stored plane is explicit; nothing to cross-check.
	default:
		v.errorf("R012", "unknown symmetry code %d", int(l.Symmetry))
	}
}

// checkLampSets verifies lamp-set completeness; all findings are advisory.
func (v *visitor) checkLampSets(l *luminaire.Luminaire) {
	if len(l.LampSets) == 0 {
		v.warnf("L001", "no lamp sets defined")

		return
	}
	for i, ls := range l.LampSets {
		if ls.NumLamps <= 0 {
			v.warnf("L002", "lamp set %d has lamp count %d", i+1, ls.NumLamps)
		}
		if ls.TotalLuminousFlux <= 0 {
			v.warnf("L003", "lamp set %d has luminous flux %g lm", i+1, ls.TotalLuminousFlux)
		}
		if ls.WattageWithBallast <= 0 {
			v.warnf("L004", "lamp set %d has wattage %g W", i+1, ls.WattageWithBallast)
		}
		if ls.LampType == "" {
			v.warnf("L005", "lamp set %d has no lamp type", i+1)
		}
	}
}

// checkDimensions verifies the luminaire geometry is physically plausible.
func (v *visitor) checkDimensions(l *luminaire.Luminaire) {
	if l.Length < 0 || l.Width < 0 || l.Height < 0 {
		v.errorf("D001", "negative luminaire dimensions %g×%g×%g mm",
			l.Length, l.Width, l.Height)
	}
	if l.LuminousAreaLength < 0 || l.LuminousAreaWidth < 0 {
		v.errorf("D002", "negative luminous-area dimensions %g×%g mm",
			l.LuminousAreaLength, l.LuminousAreaWidth)
	}
	if l.LuminousAreaLength > l.Length && l.Length > 0 {
		v.warnf("D003", "luminous area length %g mm exceeds luminaire length %g mm",
			l.LuminousAreaLength, l.Length)
	}
	if l.LuminousAreaWidth > l.Width && l.Width > 0 {
		v.warnf("D004", "luminous area width %g mm exceeds luminaire width %g mm",
			l.LuminousAreaWidth, l.Width)
	}
	if l.HeightC0 < 0 || l.HeightC90 < 0 || l.HeightC180 < 0 || l.HeightC270 < 0 {
		v.warnf("D005", "negative per-plane luminous height")
	}
}

// checkExtras covers the utilance table, metadata, and pending conversions.
func (v *visitor) checkExtras(l *luminaire.Luminaire) {
	for i, r := range l.DirectRatios {
		if r < 0 || r > 1 {
			v.warnf("F001", "direct ratio %g at room index %g outside [0,1]",
				r, luminaire.RoomIndices[i])
			break
		}
	}
	for i := 1; i < len(l.DirectRatios); i++ {
		if l.DirectRatios[i] < l.DirectRatios[i-1] {
			v.warnf("F002", "direct ratios decrease between room indices %g and %g",
				luminaire.RoomIndices[i-1], luminaire.RoomIndices[i])
			break
		}
	}
	if l.Identification == "" {
		v.warnf("F003", "identification line is empty")
	}
	if l.AxisRotationPending {
		v.warnf("F004", "photometric axes carry an unapplied rotation; align before road calculations")
	}

	// A model claiming all flux goes downward should not store uplight.
	if l.DownwardFluxFraction == 100 && hasUplight(l) {
		v.warnf("F005", "downward flux fraction is 100%% but intensities above 90° are non-zero")
	}
}

func hasUplight(l *luminaire.Luminaire) bool {
	for gi, g := range l.GAngles {
		if g <= 90 {
			continue
		}
		for _, row := range l.Intensities {
			if gi < len(row) && row[gi] > 0 {
				return true
			}
		}
	}

	return false
}

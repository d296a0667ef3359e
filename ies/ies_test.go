package ies_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxkit/photometry/ies"
	"github.com/luxkit/photometry/ldt"
	"github.com/luxkit/photometry/luminaire"
)

// sampleIES is a minimal hand-written LM-63-2002 file: one lamp, one
// horizontal angle (vertical-axis symmetry), five vertical angles.
const sampleIES = `IESNA:LM-63-2002
[TEST] TEST-001
[MANUFAC] ACME Lighting
[LUMCAT] DL-100
[LUMINAIRE] Test Downlight
[MORE] with trim ring
[LAMP] LED module
TILT=NONE
1 1000 1 5 1 1 2 0.12 0.18 0
1 1 12.5
0 22.5 45 67.5 90
0
1000 900 700 400 100
`

func TestParse_Sample(t *testing.T) {
	l, err := ies.Parse(sampleIES)
	require.NoError(t, err)

	require.Equal(t, "ACME Lighting", l.Identification)
	require.Equal(t, "TEST-001", l.MeasurementReportNumber)
	require.Equal(t, "DL-100", l.LuminaireNumber)
	require.Equal(t, "Test Downlight with trim ring", l.LuminaireName)
	require.Equal(t, luminaire.SymmetryVerticalAxis, l.Symmetry)
	require.False(t, l.AxisRotationPending)

	// Header dimensions are in meters here; the model stores millimetres.
	require.InDelta(t, 120.0, l.Width, 1e-9)
	require.InDelta(t, 180.0, l.Length, 1e-9)

	// 1 lamp × 1000 lm means candela and cd/klm coincide.
	require.Equal(t, []float64{0, 22.5, 45, 67.5, 90}, l.GAngles)
	require.Len(t, l.Intensities, 1)
	require.Equal(t, []float64{1000, 900, 700, 400, 100}, l.Intensities[0])

	require.Len(t, l.LampSets, 1)
	require.Equal(t, 1, l.LampSets[0].NumLamps)
	require.Equal(t, "LED module", l.LampSets[0].LampType)
	require.InDelta(t, 1000.0, l.LampSets[0].TotalLuminousFlux, 1e-9)
	require.InDelta(t, 12.5, l.LampSets[0].WattageWithBallast, 1e-9)
}

// TestParse_CandelaScaling divides candela by the lamp-lumen basis.
func TestParse_CandelaScaling(t *testing.T) {
	text := strings.Replace(sampleIES, "1 1000 1 5", "2 2000 0.5 5", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)

	// 2 lamps × 2000 lm with a 0.5 multiplier: cd/klm = cd×0.5×1000/4000.
	require.InDelta(t, 125.0, l.Intensities[0][0], 1e-9)
	require.InDelta(t, 4000.0, l.LampSets[0].TotalLuminousFlux, 1e-9)
}

// TestParse_AbsolutePhotometry takes lumens-per-lamp ≤ 0 on a 1000 lm basis.
func TestParse_AbsolutePhotometry(t *testing.T) {
	text := strings.Replace(sampleIES, "1 1000 1 5", "1 -1 1 5", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)
	require.InDelta(t, 1000.0, l.LampSets[0].TotalLuminousFlux, 1e-9)
	require.InDelta(t, 1000.0, l.Intensities[0][0], 1e-9)
}

// TestParse_ZeroLampCount normalizes a zero lamp count to one lamp so the
// candela scale stays finite.
func TestParse_ZeroLampCount(t *testing.T) {
	text := strings.Replace(sampleIES, "1 1000 1 5", "0 1000 1 5", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)

	require.Equal(t, 1, l.LampSets[0].NumLamps)
	require.InDelta(t, 1000.0, l.LampSets[0].TotalLuminousFlux, 1e-9)
	for _, row := range l.Intensities {
		for _, v := range row {
			require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
		}
	}
	require.InDelta(t, 1000.0, l.Intensities[0][0], 1e-9)
}

// TestParse_ContinuedLines accepts the 2002 trailing-backslash continuation
// inside the numeric stream.
func TestParse_ContinuedLines(t *testing.T) {
	text := strings.Replace(sampleIES,
		"0 22.5 45 67.5 90", "0 22.5 \\\n45 67.5 90", 1)
	text = strings.Replace(text,
		"1000 900 700 400 100", "1000 900 \\\n700 400 100", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 22.5, 45, 67.5, 90}, l.GAngles)
	require.Equal(t, []float64{1000, 900, 700, 400, 100}, l.Intensities[0])
}

// TestParse_FeetConverted converts unit type 1 dimensions to millimetres.
func TestParse_FeetConverted(t *testing.T) {
	text := strings.Replace(sampleIES, "1 2 0.12 0.18 0", "1 1 1 2 0", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)
	require.InDelta(t, 304.8, l.Width, 1e-9)
	require.InDelta(t, 609.6, l.Length, 1e-9)
}

func TestParse_TiltInclude(t *testing.T) {
	text := strings.Replace(sampleIES, "TILT=NONE\n", "TILT=INCLUDE\n1\n3\n0 45 90\n1 0.98 0.95\n", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)
	require.NotNil(t, l.Tilt)
	require.Equal(t, 1, l.Tilt.LampToLuminaireGeometry)
	require.Equal(t, []float64{0, 45, 90}, l.Tilt.Angles)
	require.Equal(t, []float64{1, 0.98, 0.95}, l.Tilt.Factors)
}

// TestParse_TiltFileRejected refuses external tilt file references.
func TestParse_TiltFileRejected(t *testing.T) {
	text := strings.Replace(sampleIES, "TILT=NONE", "TILT=lamp.tlt", 1)

	_, err := ies.Parse(text)
	require.True(t, errors.Is(err, luminaire.ErrUnsupportedFormat))
}

func TestParse_MissingTilt(t *testing.T) {
	_, err := ies.Parse("IESNA:LM-63-2002\n[TEST] X\n")
	require.True(t, errors.Is(err, luminaire.ErrTruncatedInput))
}

func TestParse_Truncated(t *testing.T) {
	lines := strings.Split(strings.TrimRight(sampleIES, "\n"), "\n")
	text := strings.Join(lines[:len(lines)-1], "\n")

	_, err := ies.Parse(text)
	require.True(t, errors.Is(err, luminaire.ErrTruncatedInput))

	var perr *luminaire.ParseError
	require.True(t, errors.As(err, &perr))
	require.Contains(t, perr.Field, "candela")
}

func TestParse_InvalidNumber(t *testing.T) {
	text := strings.Replace(sampleIES, "1000 900 700", "1000 bogus 700", 1)

	_, err := ies.Parse(text)
	require.True(t, errors.Is(err, luminaire.ErrInvalidNumber))
}

// buildIES assembles a vertical-axis-agnostic test file with two gamma
// angles and the given horizontal-angle coverage.
func buildIES(hAngles []float64) string {
	var b strings.Builder
	b.WriteString("IESNA:LM-63-2002\nTILT=NONE\n")
	b.WriteString("1 1000 1 2 " + strconv.Itoa(len(hAngles)) + " 1 2 0 0 0\n")
	b.WriteString("1 1 10\n0 90\n")
	parts := make([]string, len(hAngles))
	for i, h := range hAngles {
		parts[i] = strconv.FormatFloat(h, 'f', -1, 64)
	}
	b.WriteString(strings.Join(parts, " ") + "\n")
	for range hAngles {
		b.WriteString("100 50\n")
	}

	return b.String()
}

// TestParse_SymmetryInference exercises every horizontal-angle coverage rule.
func TestParse_SymmetryInference(t *testing.T) {
	cases := []struct {
		name    string
		hAngles []float64
		want    luminaire.Symmetry
		planes  int
	}{
		{"single plane", []float64{0}, luminaire.SymmetryVerticalAxis, 1},
		{"quadrant", []float64{0, 30, 60, 90}, luminaire.SymmetryBothPlanes, 12},
		{"half C0", []float64{0, 90, 180}, luminaire.SymmetryPlaneC0C180, 4},
		{"half C90", []float64{90, 180, 270}, luminaire.SymmetryPlaneC90C270, 4},
		{"full circle", []float64{0, 90, 180, 270}, luminaire.SymmetryNone, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := ies.Parse(buildIES(tc.hAngles))
			require.NoError(t, err)
			require.Equal(t, tc.want, l.Symmetry)
			require.Equal(t, tc.planes, l.NumCPlanes)
		})
	}
}

// TestParse_TrailingFullCircleFolded drops a duplicate 360° plane.
func TestParse_TrailingFullCircleFolded(t *testing.T) {
	l, err := ies.Parse(buildIES([]float64{0, 90, 180, 270, 360}))
	require.NoError(t, err)
	require.Equal(t, luminaire.SymmetryNone, l.Symmetry)
	require.Equal(t, []float64{0, 90, 180, 270}, l.CAngles)
	require.Len(t, l.Intensities, 4)
}

// TestParse_TypeBPendingRotation marks type A/B files instead of rotating.
func TestParse_TypeBPendingRotation(t *testing.T) {
	text := strings.Replace(sampleIES, "5 1 1 2", "5 1 2 2", 1)

	l, err := ies.Parse(text)
	require.NoError(t, err)
	require.True(t, l.AxisRotationPending)
}

// TestRoundTrip_Templates writes then re-parses each template per revision.
func TestRoundTrip_Templates(t *testing.T) {
	models := []struct {
		name string
		l    *luminaire.Luminaire
	}{
		{"Downlight", luminaire.DownlightTemplate()},
		{"Spotlight", luminaire.SpotlightTemplate()},
		{"Linear", luminaire.LinearTemplate()},
	}
	revisions := []ies.Revision{ies.RevisionLM631995, ies.RevisionLM632002}

	for _, m := range models {
		for _, rev := range revisions {
			t.Run(m.name+"_"+rev.String(), func(t *testing.T) {
				text := ies.Write(m.l, rev)
				got, err := ies.Parse(text)
				require.NoError(t, err)

				require.Equal(t, m.l.Symmetry, got.Symmetry)
				require.Equal(t, m.l.LuminaireName, got.LuminaireName)
				require.Equal(t, len(m.l.GAngles), len(got.GAngles))
				require.Equal(t, len(m.l.Intensities), len(got.Intensities))
				for c := range m.l.Intensities {
					for g := range m.l.Intensities[c] {
						require.InDelta(t, m.l.Intensities[c][g], got.Intensities[c][g], 1e-9)
					}
				}
				require.InDelta(t, m.l.TotalLuminousFlux(), got.TotalLuminousFlux(), 1e-9)
				require.InDelta(t, m.l.TotalWattage(), got.TotalWattage(), 1e-9)
			})
		}
	}
}

// TestCrossFormat_Consistency pushes a model through both codecs and checks
// the peak intensity survives within one percent.
func TestCrossFormat_Consistency(t *testing.T) {
	src := luminaire.LinearTemplate()

	ldtText := ldt.Write(src)
	fromLDT, err := ldt.Parse(ldtText)
	require.NoError(t, err)

	iesText := ies.Write(fromLDT, ies.RevisionLM632002)
	fromIES, err := ies.Parse(iesText)
	require.NoError(t, err)

	want := src.MaxIntensity()
	got := fromIES.MaxIntensity()
	require.InDelta(t, want, got, want*0.01)
}

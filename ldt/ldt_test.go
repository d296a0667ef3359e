package ldt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxkit/photometry/ldt"
	"github.com/luxkit/photometry/luminaire"
)

// sampleLDT is a minimal hand-written EULUMDAT file: vertical-axis symmetry,
// 24 declared C-planes, 5 gamma angles, one lamp set, comma decimals.
const sampleLDT = `ACME Lighting
1
1
24
15,0
5
22,5
TEST-001
Test Downlight
DL-100
dl100.ldt
2024-01-15/lab
180,0
0,0
120,0
150,0
0,0
0,0
0,0
0,0
0,0
100,0
100,0
1,0
0,0
1
1
LED module
1000,0
3000K
80
12,5
0,40
0,45
0,50
0,55
0,60
0,65
0,70
0,72
0,74
0,75
0,0
15,0
30,0
45,0
60,0
75,0
90,0
105,0
120,0
135,0
150,0
165,0
180,0
195,0
210,0
225,0
240,0
255,0
270,0
285,0
300,0
315,0
330,0
345,0
0,0
22,5
45,0
67,5
90,0
1000,0
900,0
700,0
400,0
100,0
`

// TestParse_Sample decodes the hand-written sample and spot-checks fields.
func TestParse_Sample(t *testing.T) {
	l, err := ldt.Parse(sampleLDT)
	require.NoError(t, err)

	require.Equal(t, "ACME Lighting", l.Identification)
	require.Equal(t, luminaire.PointSourceSymmetric, l.TypeIndicator)
	require.Equal(t, luminaire.SymmetryVerticalAxis, l.Symmetry)
	require.Equal(t, 24, l.NumCPlanes)
	require.InDelta(t, 15.0, l.CPlaneDistance, 1e-12)
	require.Equal(t, 5, l.NumGPlanes)
	require.InDelta(t, 22.5, l.GPlaneDistance, 1e-12)
	require.Equal(t, "Test Downlight", l.LuminaireName)
	require.InDelta(t, 180.0, l.Length, 1e-12)
	require.InDelta(t, 100.0, l.DownwardFluxFraction, 1e-12)
	require.InDelta(t, 12.5, l.LampSets[0].WattageWithBallast, 1e-12)
	require.InDelta(t, 0.40, l.DirectRatios[0], 1e-12)
	require.InDelta(t, 0.75, l.DirectRatios[9], 1e-12)

	// Vertical-axis symmetry keeps exactly one stored plane.
	require.Equal(t, []float64{0}, l.CAngles)
	require.Equal(t, []float64{0, 22.5, 45, 67.5, 90}, l.GAngles)
	require.Len(t, l.Intensities, 1)
	require.Equal(t, []float64{1000, 900, 700, 400, 100}, l.Intensities[0])
}

// TestParse_DotDecimalsTolerated accepts dot decimals alongside commas.
func TestParse_DotDecimalsTolerated(t *testing.T) {
	text := strings.ReplaceAll(sampleLDT, ",", ".")
	l, err := ldt.Parse(text)
	require.NoError(t, err)
	require.InDelta(t, 22.5, l.GPlaneDistance, 1e-12)
}

// TestParse_Truncated reports ErrTruncatedInput when intensity rows run out.
func TestParse_Truncated(t *testing.T) {
	lines := strings.Split(strings.TrimRight(sampleLDT, "\n"), "\n")
	text := strings.Join(lines[:len(lines)-2], "\n") // drop two intensity lines

	_, err := ldt.Parse(text)
	require.Error(t, err)
	require.True(t, errors.Is(err, luminaire.ErrTruncatedInput))

	var perr *luminaire.ParseError
	require.True(t, errors.As(err, &perr))
	require.Contains(t, perr.Field, "intensity")
}

// TestParse_InvalidNumber reports the offending line and field.
func TestParse_InvalidNumber(t *testing.T) {
	text := strings.Replace(sampleLDT, "15,0\n", "abc\n", 1)

	_, err := ldt.Parse(text)
	require.True(t, errors.Is(err, luminaire.ErrInvalidNumber))

	var perr *luminaire.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "Dc", perr.Field)
	require.Equal(t, 5, perr.Line)
}

// TestParse_CountOutOfRange rejects declared counts the grammar cannot
// satisfy instead of allocating for them.
func TestParse_CountOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
	}{
		{"negative Mc", "\n24\n", "\n-1\n"},
		{"negative Ng", "\n5\n", "\n-1\n"},
		{"huge Mc", "\n24\n", "\n99999999\n"},
		{"negative lamp sets", "\n0,0\n1\n1\n", "\n0,0\n-3\n1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := strings.Replace(sampleLDT, tc.old, tc.new, 1)
			require.NotEqual(t, sampleLDT, text)

			l, err := ldt.Parse(text)
			require.Nil(t, l)
			require.True(t, errors.Is(err, luminaire.ErrInvalidNumber))
		})
	}
}

// TestRoundTrip_Templates writes then re-parses every template and compares
// the models within floating tolerance.
func TestRoundTrip_Templates(t *testing.T) {
	cases := []struct {
		name string
		l    *luminaire.Luminaire
	}{
		{"Downlight", luminaire.DownlightTemplate()},
		{"Spotlight", luminaire.SpotlightTemplate()},
		{"Linear", luminaire.LinearTemplate()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := ldt.Write(tc.l)
			got, err := ldt.Parse(text)
			require.NoError(t, err)

			require.Equal(t, tc.l.Symmetry, got.Symmetry)
			require.Equal(t, tc.l.TypeIndicator, got.TypeIndicator)
			require.Equal(t, tc.l.NumCPlanes, got.NumCPlanes)
			require.Equal(t, tc.l.LuminaireName, got.LuminaireName)
			require.Equal(t, len(tc.l.CAngles), len(got.CAngles))
			require.Equal(t, len(tc.l.GAngles), len(got.GAngles))
			for i := range tc.l.CAngles {
				require.InDelta(t, tc.l.CAngles[i], got.CAngles[i], 1e-9)
			}
			for i := range tc.l.GAngles {
				require.InDelta(t, tc.l.GAngles[i], got.GAngles[i], 1e-9)
			}
			require.Equal(t, len(tc.l.Intensities), len(got.Intensities))
			for c := range tc.l.Intensities {
				for g := range tc.l.Intensities[c] {
					require.InDelta(t, tc.l.Intensities[c][g], got.Intensities[c][g], 1e-9)
				}
			}
			require.InDelta(t, tc.l.LampSets[0].TotalLuminousFlux, got.LampSets[0].TotalLuminousFlux, 1e-9)
			for i := range tc.l.DirectRatios {
				require.InDelta(t, tc.l.DirectRatios[i], got.DirectRatios[i], 1e-9)
			}
		})
	}
}

// TestWrite_CommaConvention confirms the writer emits comma decimals.
func TestWrite_CommaConvention(t *testing.T) {
	text := ldt.Write(luminaire.DownlightTemplate())

	require.Contains(t, text, ",")
	require.NotContains(t, text, ".")
}

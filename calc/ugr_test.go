package calc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxkit/photometry/calc"
	"github.com/luxkit/photometry/luminaire"
)

func TestStandardOfficeParams(t *testing.T) {
	p := calc.StandardOfficeParams()

	require.InDelta(t, 16.0, p.RoomLength, 1e-12) // 8H with H = 2 m
	require.InDelta(t, 8.0, p.RoomWidth, 1e-12)   // 4H
	require.InDelta(t, 0.70, p.ReflectanceCeiling, 1e-12)
	require.InDelta(t, 0.50, p.ReflectanceWalls, 1e-12)
	require.InDelta(t, 0.20, p.ReflectanceFloor, 1e-12)
}

// TestUGR_PlausibleRange keeps the reference-room rating inside the scale
// used by EN 12464 limits.
func TestUGR_PlausibleRange(t *testing.T) {
	for _, l := range []*luminaire.Luminaire{
		luminaire.LinearTemplate(),
		luminaire.DownlightTemplate(),
	} {
		ugr := calc.UGR(l, calc.StandardOfficeParams())
		require.Greater(t, ugr, 0.0, l.LuminaireName)
		require.Less(t, ugr, 40.0, l.LuminaireName)
	}
}

// TestUGR_DarkerRoomGlaresMore lowers reflectances and expects a higher
// rating: less background luminance, same source luminance.
func TestUGR_DarkerRoomGlaresMore(t *testing.T) {
	l := luminaire.LinearTemplate()
	bright := calc.StandardOfficeParams()

	dim := bright
	dim.ReflectanceCeiling = 0.30
	dim.ReflectanceWalls = 0.30
	dim.ReflectanceFloor = 0.10

	require.Greater(t, calc.UGR(l, dim), calc.UGR(l, bright))
}

func TestUGR_Deterministic(t *testing.T) {
	l := luminaire.LinearTemplate()
	p := calc.StandardOfficeParams()

	require.Equal(t, calc.UGR(l, p), calc.UGR(l, p))
}

func TestUGR_DegenerateInputs(t *testing.T) {
	l := luminaire.LinearTemplate()

	require.Equal(t, 0.0, calc.UGR(l, calc.UGRParams{}))

	dark := l.Clone()
	for _, row := range dark.Intensities {
		for i := range row {
			row[i] = 0
		}
	}
	require.Equal(t, 0.0, calc.UGR(dark, calc.StandardOfficeParams()))
}

func TestKFactor_TableInterpolation(t *testing.T) {
	l := luminaire.DownlightTemplate()
	l.DirectRatios = [10]float64{0.40, 0.45, 0.50, 0.55, 0.60, 0.65, 0.70, 0.72, 0.74, 0.75}

	// Exact table nodes under reference reflectances.
	require.InDelta(t, 0.50, calc.KFactor(l, 1.00, 0.70, 0.50, 0.20), 1e-9)
	require.InDelta(t, 0.75, calc.KFactor(l, 5.00, 0.70, 0.50, 0.20), 1e-9)

	// Midway between the 1.00 and 1.25 nodes.
	require.InDelta(t, 0.525, calc.KFactor(l, 1.125, 0.70, 0.50, 0.20), 1e-9)

	// Clamped below and above the table.
	require.InDelta(t, 0.40, calc.KFactor(l, 0.1, 0.70, 0.50, 0.20), 1e-9)
	require.InDelta(t, 0.75, calc.KFactor(l, 9.0, 0.70, 0.50, 0.20), 1e-9)

	// Darker surfaces scale the factor down.
	require.Less(t, calc.KFactor(l, 1.00, 0.50, 0.30, 0.10), 0.50)
}

// TestCalculateDirectRatios fills a monotone utilance table in [0,1].
func TestCalculateDirectRatios(t *testing.T) {
	ratios := calc.CalculateDirectRatios(luminaire.DownlightTemplate())

	for i, r := range ratios {
		require.GreaterOrEqual(t, r, 0.0)
		require.LessOrEqual(t, r, 1.0)
		if i > 0 {
			require.GreaterOrEqual(t, r, ratios[i-1], "room index %g", luminaire.RoomIndices[i])
		}
	}
	// A pure downlight reaches the work plane well in large rooms.
	require.Greater(t, ratios[9], 0.5)
}

func TestLuminaireLuminance(t *testing.T) {
	l := luminaire.DownlightTemplate()

	nadir := calc.LuminaireLuminance(l, 0)
	oblique := calc.LuminaireLuminance(l, 60)
	require.Greater(t, nadir, 0.0)
	require.Greater(t, oblique, 0.0)

	require.Equal(t, 0.0, calc.LuminaireLuminance(l, 90))
	require.Equal(t, 0.0, calc.LuminaireLuminance(l, 120))
}

func TestEfficacies(t *testing.T) {
	l := luminaire.LinearTemplate() // 6700 lm, 76 W, LOR 92%

	require.InDelta(t, 6700.0/76.0, calc.LuminousEfficacy(l), 1e-9)
	require.InDelta(t, 6700.0*0.92/76.0, calc.LuminaireEfficacy(l), 1e-9)
	require.InDelta(t, 92.0, calc.LuminaireEfficiency(l), 1e-9)

	l.LampSets[0].WattageWithBallast = 0
	require.Equal(t, 0.0, calc.LuminousEfficacy(l))
	require.Equal(t, 0.0, calc.LuminaireEfficacy(l))
}

func TestSummary(t *testing.T) {
	s := calc.NewSummary(luminaire.LinearTemplate())

	require.Equal(t, "Linear batwing", s.LuminaireName)
	require.InDelta(t, 6700.0, s.TotalFlux, 1e-9)
	require.True(t, s.Beam.IsBatwing)

	text := s.ToText()
	require.Contains(t, text, "Photometric Summary")
	require.Contains(t, text, "Linear batwing")
	require.Contains(t, text, "CIE flux code")

	kv := s.ToKeyValue()
	require.Equal(t, "Luminaire", kv[0][0])
	require.Contains(t, s.ToCompact(), "Linear batwing")

	// Deterministic output for identical input.
	require.Equal(t, s.ToText(), calc.NewSummary(luminaire.LinearTemplate()).ToText())
}

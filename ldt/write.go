package ldt

import (
	"strconv"
	"strings"

	"github.com/luxkit/photometry/luminaire"
)

// Write serializes a Luminaire back to EULUMDAT text, reproducing the fixed
// field order and the comma-decimal convention. The full circle of C-angles
// is re-derived from the declared plane count and spacing (or by mirroring
// the stored domain), so symmetry-reduced models round-trip losslessly.
func Write(l *luminaire.Luminaire) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	num := func(v float64) { line(formatDecimal(v)) }
	integer := func(v int) { line(strconv.Itoa(v)) }

	line(l.Identification)
	integer(int(l.TypeIndicator))
	integer(int(l.Symmetry))
	integer(l.NumCPlanes)
	num(l.CPlaneDistance)
	integer(l.NumGPlanes)
	num(l.GPlaneDistance)
	line(l.MeasurementReportNumber)
	line(l.LuminaireName)
	line(l.LuminaireNumber)
	line(l.FileName)
	line(l.DateUser)
	num(l.Length)
	num(l.Width)
	num(l.Height)
	num(l.LuminousAreaLength)
	num(l.LuminousAreaWidth)
	num(l.HeightC0)
	num(l.HeightC90)
	num(l.HeightC180)
	num(l.HeightC270)
	num(l.DownwardFluxFraction)
	num(l.LightOutputRatio)
	num(l.ConversionFactor)
	num(l.TiltAngle)

	integer(len(l.LampSets))
	for _, ls := range l.LampSets {
		integer(ls.NumLamps)
		line(ls.LampType)
		num(ls.TotalLuminousFlux)
		line(ls.ColorAppearance)
		line(ls.ColorRenderingGroup)
		num(ls.WattageWithBallast)
	}

	for _, r := range l.DirectRatios {
		num(r)
	}

	for _, a := range l.FullCAngles() {
		num(a)
	}
	for _, a := range l.GAngles {
		num(a)
	}

	for _, row := range l.Intensities {
		for _, v := range row {
			num(v)
		}
	}

	return b.String()
}

// formatDecimal renders a float in the format's comma-decimal convention,
// with the shortest representation that survives a round-trip.
func formatDecimal(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', -1, 64), ".", ",")
}

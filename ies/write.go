package ies

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luxkit/photometry/luminaire"
)

// valuesPerLine caps numeric rows; LM-63 limits physical lines to 132 chars.
const valuesPerLine = 12

// Write serializes a Luminaire to IES LM-63 text in the requested revision.
// Dimensions are emitted in meters, the candela multiplier carries the
// model's conversion factor, and candela values are reconstructed from the
// cd/klm data and the total lamp flux. Symmetry-reduced models keep their
// stored horizontal-angle domain, which LM-63 readers interpret the same way.
func Write(l *luminaire.Luminaire, revision Revision) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	if header := revision.String(); header != "" {
		line(header)
	}

	keyword := func(key, value string) {
		if value != "" {
			line("[" + key + "] " + value)
		}
	}
	keyword("TEST", l.MeasurementReportNumber)
	keyword("MANUFAC", l.Identification)
	keyword("LUMCAT", l.LuminaireNumber)
	keyword("LUMINAIRE", l.LuminaireName)
	if len(l.LampSets) > 0 {
		keyword("LAMP", l.LampSets[0].LampType)
	}
	keyword("ISSUEDATE", l.DateUser)

	if l.Tilt != nil {
		line("TILT=INCLUDE")
		line(strconv.Itoa(l.Tilt.LampToLuminaireGeometry))
		line(strconv.Itoa(len(l.Tilt.Angles)))
		writeRow(&b, l.Tilt.Angles)
		writeRow(&b, l.Tilt.Factors)
	} else {
		line("TILT=NONE")
	}

	numLamps := l.TotalLampCount()
	if numLamps == 0 {
		numLamps = 1
	}
	totalFlux := l.TotalLuminousFlux()
	if totalFlux <= 0 {
		totalFlux = 1000
	}
	lumensPerLamp := totalFlux / float64(numLamps)
	multiplier := l.ConversionFactor
	if multiplier == 0 {
		multiplier = 1
	}

	hAngles := l.CAngles
	if l.Symmetry == luminaire.SymmetryVerticalAxis {
		hAngles = []float64{0}
	}

	line(fmt.Sprintf("%d %s %s %d %d %d %d %s %s %s",
		numLamps,
		formatNumber(lumensPerLamp),
		formatNumber(multiplier),
		len(l.GAngles),
		len(hAngles),
		photometricTypeC,
		unitsMeters,
		formatNumber(l.Width/metresToMillimetres),
		formatNumber(l.Length/metresToMillimetres),
		formatNumber(l.Height/metresToMillimetres)))
	line(fmt.Sprintf("1 1 %s", formatNumber(l.TotalWattage())))

	writeRow(&b, l.GAngles)
	writeRow(&b, hAngles)

	// cd/klm back to candela on the declared lamp-lumen basis.
	scale := totalFlux / 1000
	for h := range hAngles {
		row := make([]float64, len(l.GAngles))
		var src []float64
		if h < len(l.Intensities) {
			src = l.Intensities[h]
		} else if len(l.Intensities) > 0 {
			src = l.Intensities[0]
		}
		for g, v := range src {
			if g >= len(row) {
				break
			}
			row[g] = v * scale
		}
		writeRow(&b, row)
	}

	return b.String()
}

// writeRow emits values in chunks so no physical line grows unbounded.
func writeRow(b *strings.Builder, values []float64) {
	for i := 0; i < len(values); i += valuesPerLine {
		end := i + valuesPerLine
		if end > len(values) {
			end = len(values)
		}
		parts := make([]string, 0, end-i)
		for _, v := range values[i:end] {
			parts = append(parts, formatNumber(v))
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteByte('\n')
	}
}

// formatNumber renders the shortest representation that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

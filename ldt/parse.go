package ldt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luxkit/photometry/luminaire"
)

// Parse decodes EULUMDAT text into a Luminaire model.
//
// Behavior:
//  1. Split into lines; field order is fixed by the format.
//  2. Decode header codes (Ityp, Isym) and the four grid counts.
//  3. Consume metadata, geometry, and optics blocks.
//  4. Consume the declared number of lamp-set blocks, the ten direct
//     ratios, Mc C-angles, Ng gamma angles, then one intensity per line
//     for each stored (symmetry-reduced) C-plane.
//
// Parse never validates physics — range and consistency issues are left to
// package validate. Only grammar violations abort.
func Parse(text string) (*luminaire.Luminaire, error) {
	p := &parser{lines: splitLines(text)}
	l := &luminaire.Luminaire{ConversionFactor: 1}

	var err error
	if l.Identification, err = p.next("identification"); err != nil {
		return nil, err
	}

	ityp, err := p.nextInt("Ityp")
	if err != nil {
		return nil, err
	}
	l.TypeIndicator = luminaire.TypeIndicator(ityp)

	isym, err := p.nextInt("Isym")
	if err != nil {
		return nil, err
	}
	l.Symmetry = luminaire.Symmetry(isym)

	if l.NumCPlanes, err = p.nextCount("Mc"); err != nil {
		return nil, err
	}
	if l.CPlaneDistance, err = p.nextFloat("Dc"); err != nil {
		return nil, err
	}
	if l.NumGPlanes, err = p.nextCount("Ng"); err != nil {
		return nil, err
	}
	if l.GPlaneDistance, err = p.nextFloat("Dg"); err != nil {
		return nil, err
	}

	if l.MeasurementReportNumber, err = p.next("measurement report number"); err != nil {
		return nil, err
	}
	if l.LuminaireName, err = p.next("luminaire name"); err != nil {
		return nil, err
	}
	if l.LuminaireNumber, err = p.next("luminaire number"); err != nil {
		return nil, err
	}
	if l.FileName, err = p.next("file name"); err != nil {
		return nil, err
	}
	if l.DateUser, err = p.next("date/user"); err != nil {
		return nil, err
	}

	geometry := []struct {
		field string
		dst   *float64
	}{
		{"length", &l.Length},
		{"width", &l.Width},
		{"height", &l.Height},
		{"luminous area length", &l.LuminousAreaLength},
		{"luminous area width", &l.LuminousAreaWidth},
		{"height C0", &l.HeightC0},
		{"height C90", &l.HeightC90},
		{"height C180", &l.HeightC180},
		{"height C270", &l.HeightC270},
		{"downward flux fraction", &l.DownwardFluxFraction},
		{"light output ratio", &l.LightOutputRatio},
		{"conversion factor", &l.ConversionFactor},
		{"tilt angle", &l.TiltAngle},
	}
	for _, g := range geometry {
		if *g.dst, err = p.nextFloat(g.field); err != nil {
			return nil, err
		}
	}

	numSets, err := p.nextCount("number of lamp sets")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numSets; i++ {
		var ls luminaire.LampSet
		tag := func(f string) string { return fmt.Sprintf("lamp set %d %s", i+1, f) }

		if ls.NumLamps, err = p.nextInt(tag("lamp count")); err != nil {
			return nil, err
		}
		if ls.LampType, err = p.next(tag("lamp type")); err != nil {
			return nil, err
		}
		if ls.TotalLuminousFlux, err = p.nextFloat(tag("luminous flux")); err != nil {
			return nil, err
		}
		if ls.ColorAppearance, err = p.next(tag("color appearance")); err != nil {
			return nil, err
		}
		if ls.ColorRenderingGroup, err = p.next(tag("color rendering group")); err != nil {
			return nil, err
		}
		if ls.WattageWithBallast, err = p.nextFloat(tag("wattage")); err != nil {
			return nil, err
		}
		l.LampSets = append(l.LampSets, ls)
	}

	for i := 0; i < luminaire.NumDirectRatios; i++ {
		if l.DirectRatios[i], err = p.nextFloat(fmt.Sprintf("direct ratio %d", i+1)); err != nil {
			return nil, err
		}
	}

	// The file always lists the full circle of Mc C-angles; the model keeps
	// only the symmetry-reduced domain the intensity rows belong to.
	fullC := make([]float64, 0, l.NumCPlanes)
	for i := 0; i < l.NumCPlanes; i++ {
		a, err := p.nextFloat(fmt.Sprintf("C angle %d", i+1))
		if err != nil {
			return nil, err
		}
		fullC = append(fullC, a)
	}
	l.CAngles = reduceCAngles(fullC, l.Symmetry)

	l.GAngles = make([]float64, 0, l.NumGPlanes)
	for i := 0; i < l.NumGPlanes; i++ {
		a, err := p.nextFloat(fmt.Sprintf("G angle %d", i+1))
		if err != nil {
			return nil, err
		}
		l.GAngles = append(l.GAngles, a)
	}

	stored := luminaire.StoredPlaneCount(l.Symmetry, l.NumCPlanes)
	if len(l.CAngles) > 0 && stored != len(l.CAngles) {
		// Angle-domain reduction wins over the count arithmetic when the
		// file's angle list is irregular; the validator reports the skew.
		stored = len(l.CAngles)
	}

	l.Intensities = make([][]float64, stored)
	for c := 0; c < stored; c++ {
		row := make([]float64, l.NumGPlanes)
		for g := 0; g < l.NumGPlanes; g++ {
			v, err := p.nextFloat(fmt.Sprintf("intensity C%d G%d", c+1, g+1))
			if err != nil {
				return nil, err
			}
			row[g] = v
		}
		l.Intensities[c] = row
	}

	return l, nil
}

// reduceCAngles trims the full-circle angle list down to the domain the
// intensity rows are stored for.
func reduceCAngles(full []float64, sym luminaire.Symmetry) []float64 {
	switch sym {
	case luminaire.SymmetryVerticalAxis:
		if len(full) == 0 {
			return []float64{0}
		}

		return full[:1]
	case luminaire.SymmetryPlaneC0C180:
		var out []float64
		for _, a := range full {
			if a <= 180 {
				out = append(out, a)
			}
		}

		return out
	case luminaire.SymmetryPlaneC90C270:
		var out []float64
		for _, a := range full {
			if a >= 90 && a <= 270 {
				out = append(out, a)
			}
		}

		return out
	case luminaire.SymmetryBothPlanes:
		var out []float64
		for _, a := range full {
			if a <= 90 {
				out = append(out, a)
			}
		}

		return out
	default:
		return full
	}
}

// parser walks the line sequence, tracking position for error reporting.
type parser struct {
	lines []string
	pos   int
}

// next consumes one line, trimming surrounding whitespace.
func (p *parser) next(field string) (string, error) {
	if p.pos >= len(p.lines) {
		return "", luminaire.NewParseError(luminaire.ErrTruncatedInput, p.pos+1, field,
			"unexpected end of input")
	}
	line := strings.TrimSpace(p.lines[p.pos])
	p.pos++

	return line, nil
}

// nextFloat consumes one line as a decimal number, normalizing the
// comma-decimal convention first.
func (p *parser) nextFloat(field string) (float64, error) {
	raw, err := p.next(field)
	if err != nil {
		return 0, err
	}
	v, err := parseDecimal(raw)
	if err != nil {
		return 0, luminaire.NewParseError(luminaire.ErrInvalidNumber, p.pos, field,
			fmt.Sprintf("cannot parse %q as a number", raw))
	}

	return v, nil
}

// nextInt consumes one line as an integer; a decimal value is truncated the
// way legacy tooling does.
func (p *parser) nextInt(field string) (int, error) {
	v, err := p.nextFloat(field)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// maxDeclaredCount bounds every declared element count. Real files stay
// well below it (Mc ≤ 720, Ng ≤ 361); anything beyond is corrupt data, not
// a grid worth allocating.
const maxDeclaredCount = 10000

// nextCount consumes one line as a declared element count, rejecting values
// the grammar cannot satisfy before anything is allocated for them.
func (p *parser) nextCount(field string) (int, error) {
	v, err := p.nextInt(field)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > maxDeclaredCount {
		return 0, luminaire.NewParseError(luminaire.ErrInvalidNumber, p.pos, field,
			fmt.Sprintf("count %d outside [0,%d]", v, maxDeclaredCount))
	}

	return v, nil
}

// parseDecimal accepts both the comma and dot decimal conventions.
func parseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		s = "0"
	}

	return strconv.ParseFloat(s, 64)
}

// splitLines splits on LF, dropping CR remnants from CRLF sources.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	// A trailing newline yields one phantom empty line; drop it so
	// truncation detection stays exact.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

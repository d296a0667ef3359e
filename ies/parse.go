package ies

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/luxkit/photometry/luminaire"
)

// Parse decodes IES LM-63 text (any revision) into a Luminaire model.
//
// Behavior:
//  1. Detect the revision from the optional header line.
//  2. Collect [KEYWORD] lines until TILT=; [MORE] continues the previous
//     keyword's value.
//  3. Resolve the TILT directive (NONE / INCLUDE / file reference).
//  4. Tokenize the remaining numeric stream (newline-insensitive, with the
//     2002 trailing-backslash continuation) and decode header, angles, and
//     candela rows.
//  5. Convert candela to cd/klm and infer symmetry from angle coverage.
func Parse(text string) (*luminaire.Luminaire, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	l := &luminaire.Luminaire{ConversionFactor: 1}

	// Keyword block, terminated by TILT=.
	lineNo := 0
	tiltDirective := ""
	lastKeyword := ""
	keywords := map[string]string{}
	for ; lineNo < len(lines); lineNo++ {
		line := strings.TrimSpace(lines[lineNo])
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "IESNA"):
			// Header line; revision is informational for Parse.
			continue
		case strings.HasPrefix(strings.ToUpper(line), "TILT="):
			tiltDirective = strings.TrimSpace(line[len("TILT="):])
		case strings.HasPrefix(line, "["):
			end := strings.Index(line, "]")
			if end < 0 {
				return nil, luminaire.NewParseError(luminaire.ErrUnsupportedFormat, lineNo+1, "keyword",
					fmt.Sprintf("unterminated keyword %q", line))
			}
			key := strings.ToUpper(strings.TrimSpace(line[1:end]))
			value := strings.TrimSpace(line[end+1:])
			if key == "MORE" && lastKeyword != "" {
				keywords[lastKeyword] += " " + value
			} else {
				keywords[key] = value
				lastKeyword = key
			}
		default:
			// Pre-1991 files may carry free-form header lines before TILT.
			if l.Identification == "" {
				l.Identification = line
			}
		}
		if tiltDirective != "" {
			lineNo++
			break
		}
	}
	if tiltDirective == "" {
		return nil, luminaire.NewParseError(luminaire.ErrTruncatedInput, len(lines), "TILT",
			"no TILT= line found")
	}

	applyKeywords(l, keywords)

	tokens := tokenize(lines[lineNo:], lineNo)
	ts := &tokenStream{tokens: tokens}

	switch strings.ToUpper(tiltDirective) {
	case "NONE":
		// No tilt section.
	case "INCLUDE":
		tilt, err := parseTilt(ts)
		if err != nil {
			return nil, err
		}
		l.Tilt = tilt
	default:
		return nil, luminaire.NewParseError(luminaire.ErrUnsupportedFormat, lineNo, "TILT",
			fmt.Sprintf("external TILT file %q is not supported", tiltDirective))
	}

	numLamps, err := ts.nextInt("number of lamps")
	if err != nil {
		return nil, err
	}
	lumensPerLamp, err := ts.nextFloat("lumens per lamp")
	if err != nil {
		return nil, err
	}
	multiplier, err := ts.nextFloat("candela multiplier")
	if err != nil {
		return nil, err
	}
	numV, err := ts.nextInt("number of vertical angles")
	if err != nil {
		return nil, err
	}
	numH, err := ts.nextInt("number of horizontal angles")
	if err != nil {
		return nil, err
	}
	photType, err := ts.nextInt("photometric type")
	if err != nil {
		return nil, err
	}
	unitsType, err := ts.nextInt("units type")
	if err != nil {
		return nil, err
	}
	width, err := ts.nextFloat("width")
	if err != nil {
		return nil, err
	}
	length, err := ts.nextFloat("length")
	if err != nil {
		return nil, err
	}
	height, err := ts.nextFloat("height")
	if err != nil {
		return nil, err
	}
	ballastFactor, err := ts.nextFloat("ballast factor")
	if err != nil {
		return nil, err
	}
	ballastLampFactor, err := ts.nextFloat("ballast-lamp photometric factor")
	if err != nil {
		return nil, err
	}
	inputWatts, err := ts.nextFloat("input watts")
	if err != nil {
		return nil, err
	}

	if numV <= 0 || numH <= 0 {
		return nil, luminaire.NewParseError(luminaire.ErrInvalidNumber, ts.line(), "angle counts",
			fmt.Sprintf("non-positive angle counts %d×%d", numH, numV))
	}

	vAngles := make([]float64, numV)
	for i := range vAngles {
		if vAngles[i], err = ts.nextFloat(fmt.Sprintf("vertical angle %d", i+1)); err != nil {
			return nil, err
		}
	}
	hAngles := make([]float64, numH)
	for i := range hAngles {
		if hAngles[i], err = ts.nextFloat(fmt.Sprintf("horizontal angle %d", i+1)); err != nil {
			return nil, err
		}
	}

	candela := make([][]float64, numH)
	for h := range candela {
		row := make([]float64, numV)
		for v := range row {
			if row[v], err = ts.nextFloat(fmt.Sprintf("candela H%d V%d", h+1, v+1)); err != nil {
				return nil, err
			}
		}
		candela[h] = row
	}

	// Unit conversion for the luminous opening (negative values encode
	// shape; magnitude is the size).
	dimFactor := metresToMillimetres
	if unitsType == unitsFeet {
		dimFactor = feetToMillimetres
	}
	l.Width = math.Abs(width) * dimFactor
	l.Length = math.Abs(length) * dimFactor
	l.Height = math.Abs(height) * dimFactor
	l.LuminousAreaLength = l.Length
	l.LuminousAreaWidth = l.Width
	l.HeightC0, l.HeightC90, l.HeightC180, l.HeightC270 = l.Height, l.Height, l.Height, l.Height

	// Candela per lamp → candela per 1000 lamp lumens. Absolute photometry
	// (lumens per lamp ≤ 0) is taken on a 1000 lm basis; a non-positive lamp
	// count normalizes to one lamp so the flux basis stays finite.
	if numLamps <= 0 {
		numLamps = 1
	}
	lampFlux := float64(numLamps) * lumensPerLamp
	if lampFlux <= 0 {
		lampFlux = 1000
	}
	scale := multiplier * ballastFactor * ballastLampFactor * 1000 / lampFlux

	l.GAngles = vAngles
	l.Intensities = make([][]float64, numH)
	for h, row := range candela {
		out := make([]float64, len(row))
		for v, cd := range row {
			out[v] = cd * scale
		}
		l.Intensities[h] = out
	}

	inferSymmetry(l, hAngles)

	l.NumGPlanes = len(l.GAngles)
	l.GPlaneDistance = uniformSpacing(l.GAngles)
	l.DownwardFluxFraction = 100
	l.LightOutputRatio = 100

	if photType == photometricTypeA || photType == photometricTypeB {
		l.AxisRotationPending = true
	}

	lampType := keywords["LAMP"]
	l.LampSets = []luminaire.LampSet{{
		NumLamps:            numLamps,
		LampType:            lampType,
		TotalLuminousFlux:   lampFlux,
		ColorAppearance:     keywords["COLORTEMP"],
		ColorRenderingGroup: keywords["CRI"],
		WattageWithBallast:  inputWatts,
	}}

	return l, nil
}

// applyKeywords copies the recognized keyword values onto the model.
func applyKeywords(l *luminaire.Luminaire, kw map[string]string) {
	if v, ok := kw["MANUFAC"]; ok && v != "" {
		l.Identification = v
	}
	l.MeasurementReportNumber = kw["TEST"]
	l.LuminaireNumber = kw["LUMCAT"]
	l.LuminaireName = kw["LUMINAIRE"]
	if v, ok := kw["ISSUEDATE"]; ok {
		l.DateUser = v
	} else {
		l.DateUser = kw["DATE"]
	}
}

// inferSymmetry reduces the model according to horizontal-angle coverage.
func inferSymmetry(l *luminaire.Luminaire, hAngles []float64) {
	n := len(hAngles)
	first, last := hAngles[0], hAngles[n-1]

	switch {
	case n == 1:
		l.Symmetry = luminaire.SymmetryVerticalAxis
		l.TypeIndicator = luminaire.PointSourceSymmetric
		l.CAngles = []float64{hAngles[0]}
		l.NumCPlanes = 1
	case first == 0 && last == 90:
		l.Symmetry = luminaire.SymmetryBothPlanes
		l.TypeIndicator = luminaire.PointSourceOther
		l.CAngles = hAngles
		l.NumCPlanes = 4 * (n - 1)
	case first == 0 && last == 180:
		l.Symmetry = luminaire.SymmetryPlaneC0C180
		l.TypeIndicator = luminaire.PointSourceOther
		l.CAngles = hAngles
		l.NumCPlanes = 2 * (n - 1)
	case first == 90 && last == 270:
		l.Symmetry = luminaire.SymmetryPlaneC90C270
		l.TypeIndicator = luminaire.Linear
		l.CAngles = hAngles
		l.NumCPlanes = 2 * (n - 1)
	default:
		l.Symmetry = luminaire.SymmetryNone
		l.TypeIndicator = luminaire.PointSourceOther
		l.CAngles = hAngles
		l.NumCPlanes = n
		// A trailing 360° plane duplicates the 0° plane; fold it away.
		if n > 1 && first == 0 && last == 360 {
			l.CAngles = hAngles[:n-1]
			l.Intensities = l.Intensities[:n-1]
			l.NumCPlanes = n - 1
		}
	}
	l.CPlaneDistance = uniformSpacing(l.CAngles)
}

// uniformSpacing reports the common step of an angle sequence, or 0 when
// the spacing is irregular or undefined.
func uniformSpacing(angles []float64) float64 {
	if len(angles) < 2 {
		return 0
	}
	step := angles[1] - angles[0]
	for i := 2; i < len(angles); i++ {
		if math.Abs(angles[i]-angles[i-1]-step) > 1e-9 {
			return 0
		}
	}

	return step
}

// parseTilt consumes the TILT=INCLUDE section from the token stream.
func parseTilt(ts *tokenStream) (*luminaire.TiltTable, error) {
	geometry, err := ts.nextInt("tilt lamp-to-luminaire geometry")
	if err != nil {
		return nil, err
	}
	count, err := ts.nextInt("tilt angle count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, luminaire.NewParseError(luminaire.ErrInvalidNumber, ts.line(),
			"tilt angle count", fmt.Sprintf("negative count %d", count))
	}

	t := &luminaire.TiltTable{
		LampToLuminaireGeometry: geometry,
		Angles:                  make([]float64, count),
		Factors:                 make([]float64, count),
	}
	for i := 0; i < count; i++ {
		if t.Angles[i], err = ts.nextFloat(fmt.Sprintf("tilt angle %d", i+1)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < count; i++ {
		if t.Factors[i], err = ts.nextFloat(fmt.Sprintf("tilt factor %d", i+1)); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// token is one whitespace-delimited numeric field with its source line.
type token struct {
	value string
	line  int
}

// tokenize flattens the numeric stream, honoring the 2002 trailing-backslash
// line continuation.
func tokenize(lines []string, offset int) []token {
	var out []token
	for i, line := range lines {
		line = strings.TrimSuffix(strings.TrimSpace(line), "\\")
		for _, f := range strings.Fields(line) {
			out = append(out, token{value: f, line: offset + i + 1})
		}
	}

	return out
}

// tokenStream walks the numeric token sequence with positional errors.
type tokenStream struct {
	tokens []token
	pos    int
}

// line reports the source line of the most recently consumed token.
func (ts *tokenStream) line() int {
	if ts.pos == 0 {
		if len(ts.tokens) == 0 {
			return 0
		}

		return ts.tokens[0].line
	}

	return ts.tokens[ts.pos-1].line
}

func (ts *tokenStream) nextFloat(field string) (float64, error) {
	if ts.pos >= len(ts.tokens) {
		return 0, luminaire.NewParseError(luminaire.ErrTruncatedInput, ts.line(), field,
			"numeric stream ended early")
	}
	tok := ts.tokens[ts.pos]
	ts.pos++

	v, err := strconv.ParseFloat(strings.TrimSuffix(tok.value, ","), 64)
	if err != nil {
		return 0, luminaire.NewParseError(luminaire.ErrInvalidNumber, tok.line, field,
			fmt.Sprintf("cannot parse %q as a number", tok.value))
	}

	return v, nil
}

func (ts *tokenStream) nextInt(field string) (int, error) {
	v, err := ts.nextFloat(field)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

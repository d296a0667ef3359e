package luminaire

import "math"

// Template constructors give collaborators (and tests) ready-made models of
// the three archetypal distributions without going through a codec.

// DownlightTemplate returns a rotationally symmetric downlight: one stored
// C-plane, 19 gamma samples over 0–90° in 5° steps, and a cosine-weighted
// intensity profile peaking at nadir.
func DownlightTemplate() *Luminaire {
	const peak = 300.0 // cd/klm at nadir

	gAngles := make([]float64, 19)
	row := make([]float64, 19)
	for i := range gAngles {
		g := float64(i) * 5
		gAngles[i] = g
		// cos³ falloff keeps a realistic downlight shape with near-zero
		// intensity at the horizon.
		c := math.Cos(g * math.Pi / 180)
		row[i] = peak * c * c * c
	}

	return &Luminaire{
		Identification:       "luxkit/photometry templates",
		LuminaireName:        "Downlight",
		LuminaireNumber:      "TPL-DOWN-1",
		TypeIndicator:        PointSourceSymmetric,
		Symmetry:             SymmetryVerticalAxis,
		NumCPlanes:           24,
		CPlaneDistance:       15,
		NumGPlanes:           19,
		GPlaneDistance:       5,
		Length:               180,
		Width:                0, // circular
		Height:               120,
		LuminousAreaLength:   150,
		LuminousAreaWidth:    0,
		DownwardFluxFraction: 100,
		LightOutputRatio:     100,
		ConversionFactor:     1,
		LampSets: []LampSet{{
			NumLamps:            1,
			LampType:            "LED module",
			TotalLuminousFlux:   1000,
			ColorAppearance:     "3000K",
			ColorRenderingGroup: "80",
			WattageWithBallast:  12,
		}},
		CAngles:     []float64{0},
		GAngles:     gAngles,
		Intensities: [][]float64{row},
	}
}

// SpotlightTemplate returns a narrow-beam, rotationally symmetric spot with
// a Gaussian-like profile (beam angle roughly 24°).
func SpotlightTemplate() *Luminaire {
	const peak = 1200.0

	gAngles := make([]float64, 19)
	row := make([]float64, 19)
	for i := range gAngles {
		g := float64(i) * 5
		gAngles[i] = g
		row[i] = peak * math.Exp(-(g*g)/(2*12*12))
	}

	l := DownlightTemplate()
	l.LuminaireName = "Spotlight"
	l.LuminaireNumber = "TPL-SPOT-1"
	l.GAngles = gAngles
	l.Intensities = [][]float64{row}

	return l
}

// LinearTemplate returns a linear batwing luminaire stored with C90–C270
// plane symmetry: full 0–180° gamma coverage across seven stored planes.
func LinearTemplate() *Luminaire {
	cAngles := []float64{90, 120, 150, 180, 210, 240, 270}
	gAngles := make([]float64, 37)
	for i := range gAngles {
		gAngles[i] = float64(i) * 5
	}

	intensities := make([][]float64, len(cAngles))
	for ci, c := range cAngles {
		row := make([]float64, len(gAngles))
		// Batwing in the transverse plane, flat along the lamp axis.
		transverse := math.Abs(math.Sin((c - 90) * math.Pi / 180))
		for gi, g := range gAngles {
			if g > 100 {
				continue // no uplight beyond 100°
			}
			wing := 160 + 120*math.Sin(2*g*math.Pi/180)*transverse
			row[gi] = wing * math.Cos(g*math.Pi/360)
		}
		intensities[ci] = row
	}

	return &Luminaire{
		Identification:       "luxkit/photometry templates",
		LuminaireName:        "Linear batwing",
		LuminaireNumber:      "TPL-LIN-1",
		TypeIndicator:        Linear,
		Symmetry:             SymmetryPlaneC90C270,
		NumCPlanes:           12,
		CPlaneDistance:       30,
		NumGPlanes:           37,
		GPlaneDistance:       5,
		Length:               1200,
		Width:                100,
		Height:               80,
		LuminousAreaLength:   1150,
		LuminousAreaWidth:    90,
		DownwardFluxFraction: 95,
		LightOutputRatio:     92,
		ConversionFactor:     1,
		LampSets: []LampSet{{
			NumLamps:            2,
			LampType:            "T8 36W",
			TotalLuminousFlux:   6700,
			ColorAppearance:     "4000K",
			ColorRenderingGroup: "1B",
			WattageWithBallast:  76,
		}},
		CAngles:     cAngles,
		GAngles:     gAngles,
		Intensities: intensities,
	}
}

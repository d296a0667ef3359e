package calc

import (
	"fmt"
	"strings"

	"github.com/luxkit/photometry/luminaire"
)

// Summary is the one-struct digest of a model's photometric behavior, as
// shown by inspection tooling and diffed by regression suites.
type Summary struct {
	LuminaireName  string
	Identification string

	TotalFlux        float64 // lm, lamp basis
	TotalWattage     float64 // W
	MaxIntensity     float64 // cd/klm
	LuminousEfficacy float64 // lm/W
	EmittedEfficacy  float64 // lm/W after LOR

	Beam    BeamField
	Cutoff  float64
	CIE     CIEFluxCodes
	Zones30 ZonalLumens

	SpacingC0  float64
	SpacingC90 float64
	Code       string
	UGR        float64 // standard office layout
}

// NewSummary computes every digest field from the model.
func NewSummary(l *luminaire.Luminaire) Summary {
	c0, c90 := SpacingCriteria(l)

	return Summary{
		LuminaireName:    l.LuminaireName,
		Identification:   l.Identification,
		TotalFlux:        l.TotalLuminousFlux(),
		TotalWattage:     l.TotalWattage(),
		MaxIntensity:     l.MaxIntensity(),
		LuminousEfficacy: LuminousEfficacy(l),
		EmittedEfficacy:  LuminaireEfficacy(l),
		Beam:             BeamFieldAnalysis(l),
		Cutoff:           CutoffAngle(l),
		CIE:              CIEFluxCodesFor(l),
		Zones30:          ZonalLumens30(l),
		SpacingC0:        c0,
		SpacingC90:       c90,
		Code:             PhotometricCode(l),
		UGR:              UGR(l, StandardOfficeParams()),
	}
}

// ToKeyValue renders the digest as ordered key/value pairs for tabular
// display. Order is fixed so snapshots stay stable.
func (s Summary) ToKeyValue() [][2]string {
	kv := [][2]string{
		{"Luminaire", s.LuminaireName},
		{"Manufacturer", s.Identification},
		{"Total flux", fmt.Sprintf("%.0f lm", s.TotalFlux)},
		{"Wattage", fmt.Sprintf("%.1f W", s.TotalWattage)},
		{"Max intensity", fmt.Sprintf("%.1f cd/klm", s.MaxIntensity)},
		{"Efficacy", fmt.Sprintf("%.1f lm/W", s.LuminousEfficacy)},
		{"Beam angle", fmt.Sprintf("%.1f°", s.Beam.Beam)},
		{"Field angle", fmt.Sprintf("%.1f°", s.Beam.Field)},
		{"Cut-off angle", fmt.Sprintf("%.1f°", s.Cutoff)},
		{"CIE flux code", fmt.Sprintf("%.0f %.0f %.0f %.0f %.0f",
			s.CIE.N1, s.CIE.N2, s.CIE.N3, s.CIE.N4, s.CIE.N5)},
		{"S/H C0", fmt.Sprintf("%.2f", s.SpacingC0)},
		{"S/H C90", fmt.Sprintf("%.2f", s.SpacingC90)},
		{"Classification", s.Code},
		{"UGR (4H×8H)", fmt.Sprintf("%.1f", s.UGR)},
	}
	if s.Beam.IsBatwing {
		kv = append(kv, [2]string{"Distribution", "batwing"})
	}

	return kv
}

// ToText renders the digest as an aligned multi-line report.
func (s Summary) ToText() string {
	var b strings.Builder
	b.WriteString("=== Photometric Summary ===\n")
	for _, kv := range s.ToKeyValue() {
		fmt.Fprintf(&b, "%-15s %s\n", kv[0]+":", kv[1])
	}

	return b.String()
}

// ToCompact renders the digest as a single line for logs and listings.
func (s Summary) ToCompact() string {
	return fmt.Sprintf("%s | %.0f lm | %.1f lm/W | beam %.1f° | %s | UGR %.1f",
		s.LuminaireName, s.TotalFlux, s.LuminousEfficacy, s.Beam.Beam, s.Code, s.UGR)
}

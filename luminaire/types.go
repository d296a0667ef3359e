// Package luminaire core types: enumerations, LampSet, TiltTable, and the
// Luminaire model itself. See doc.go for the invariant list.
package luminaire

// Symmetry declares how the measured C-plane data was reduced by exploiting
// fixture symmetry. It mirrors the EULUMDAT Isym code (0–4).
type Symmetry int

const (
	// SymmetryNone stores every C-plane explicitly (Isym 0).
	SymmetryNone Symmetry = iota
	// SymmetryVerticalAxis stores a single C-plane valid at every azimuth (Isym 1).
	SymmetryVerticalAxis
	// SymmetryPlaneC0C180 stores C ∈ [0,180]; (180,360) mirrors across the C0–C180 plane (Isym 2).
	SymmetryPlaneC0C180
	// SymmetryPlaneC90C270 stores C ∈ [90,270]; the rest mirrors across the C90–C270 plane (Isym 3).
	SymmetryPlaneC90C270
	// SymmetryBothPlanes stores the quarter C ∈ [0,90], mirrored into all four quadrants (Isym 4).
	SymmetryBothPlanes
)

// String returns the conventional name of the symmetry variant.
func (s Symmetry) String() string {
	switch s {
	case SymmetryNone:
		return "None"
	case SymmetryVerticalAxis:
		return "VerticalAxis"
	case SymmetryPlaneC0C180:
		return "PlaneC0C180"
	case SymmetryPlaneC90C270:
		return "PlaneC90C270"
	case SymmetryBothPlanes:
		return "BothPlanes"
	default:
		return "Unknown"
	}
}

// TypeIndicator classifies the luminaire per the EULUMDAT Ityp code (1–3).
type TypeIndicator int

const (
	// PointSourceSymmetric is a point source with symmetry about the vertical axis (Ityp 1).
	PointSourceSymmetric TypeIndicator = iota + 1
	// Linear is a linear luminaire (Ityp 2).
	Linear
	// PointSourceOther is a point source with any other symmetry (Ityp 3).
	PointSourceOther
)

// String returns the conventional name of the type indicator.
func (t TypeIndicator) String() string {
	switch t {
	case PointSourceSymmetric:
		return "PointSourceSymmetric"
	case Linear:
		return "Linear"
	case PointSourceOther:
		return "PointSourceOther"
	default:
		return "Unknown"
	}
}

// LampSet describes one standard set of lamps fitted to the luminaire.
type LampSet struct {
	// NumLamps is the number of lamps in the set.
	NumLamps int
	// LampType is the free-text lamp designation.
	LampType string
	// TotalLuminousFlux is the set's combined lamp flux in lumens.
	TotalLuminousFlux float64
	// ColorAppearance is the color appearance / CCT string (e.g. "3000K").
	ColorAppearance string
	// ColorRenderingGroup is the CRI group string (e.g. "1B" or "80").
	ColorRenderingGroup string
	// WattageWithBallast is the set's input power including ballast, in watts.
	WattageWithBallast float64
}

// TiltTable carries the IES TILT=INCLUDE section: lamp-orientation-dependent
// multiplying factors. Nil on models without tilt data.
type TiltTable struct {
	// LampToLuminaireGeometry is the LM-63 geometry code (1, 2, or 3).
	LampToLuminaireGeometry int
	// Angles are the tilt angles in degrees, ascending.
	Angles []float64
	// Factors are the multiplying factors, one per angle.
	Factors []float64
}

// NumDirectRatios is the fixed length of the utilance (direct-ratio) table.
const NumDirectRatios = 10

// RoomIndices are the standard room-index points the direct-ratio table is
// tabulated at (EULUMDAT convention).
var RoomIndices = [NumDirectRatios]float64{0.60, 0.80, 1.00, 1.25, 1.50, 2.00, 2.50, 3.00, 4.00, 5.00}

// Luminaire is the unified in-memory photometric model. Both codecs map
// into and out of it; validate, photoweb, calc, and glare treat it as an
// immutable value.
type Luminaire struct {
	// Identification is the manufacturer / data-bank identification string.
	Identification string
	// TypeIndicator classifies the luminaire (EULUMDAT Ityp).
	TypeIndicator TypeIndicator
	// Symmetry declares the stored-data reduction (EULUMDAT Isym).
	Symmetry Symmetry

	// NumCPlanes is the declared number of C-planes over the full circle
	// (before symmetry reduction); CPlaneDistance is their spacing in
	// degrees (0 for non-uniform grids).
	NumCPlanes     int
	CPlaneDistance float64
	// NumGPlanes is the declared number of gamma angles per C-plane;
	// GPlaneDistance is their spacing in degrees (0 for non-uniform grids).
	NumGPlanes     int
	GPlaneDistance float64

	// Free-text metadata.
	MeasurementReportNumber string
	LuminaireName           string
	LuminaireNumber         string
	FileName                string
	DateUser                string

	// Physical dimensions in millimetres. Width 0 denotes a circular
	// luminaire of diameter Length.
	Length float64
	Width  float64
	Height float64

	// Luminous-area dimensions in millimetres, plus the per-C-plane
	// luminous heights.
	LuminousAreaLength float64
	LuminousAreaWidth  float64
	HeightC0           float64
	HeightC90          float64
	HeightC180         float64
	HeightC270         float64

	// Optics. DownwardFluxFraction and LightOutputRatio are percentages.
	DownwardFluxFraction float64
	LightOutputRatio     float64
	ConversionFactor     float64
	TiltAngle            float64

	// LampSets in declared order.
	LampSets []LampSet

	// DirectRatios is the utilance table at the standard RoomIndices.
	DirectRatios [NumDirectRatios]float64

	// Angular grid and intensities. CAngles covers only the stored
	// (symmetry-reduced) domain; Intensities is indexed [c][g] in cd/klm.
	CAngles     []float64
	GAngles     []float64
	Intensities [][]float64

	// Tilt holds IES TILT=INCLUDE data when present.
	Tilt *TiltTable

	// AxisRotationPending marks distributions imported from photometric
	// types whose 90° axis-rotation convention is not yet resolved
	// (IES types A and B). photoweb exposes it and refuses to silently
	// approximate the rotation.
	AxisRotationPending bool
}

// StoredPlaneCount reports how many C-planes a reduced data set stores for
// the given symmetry when the full circle has numCPlanes planes.
func StoredPlaneCount(sym Symmetry, numCPlanes int) int {
	switch sym {
	case SymmetryVerticalAxis:
		return 1
	case SymmetryPlaneC0C180, SymmetryPlaneC90C270:
		return numCPlanes/2 + 1
	case SymmetryBothPlanes:
		return numCPlanes/4 + 1
	default:
		return numCPlanes
	}
}

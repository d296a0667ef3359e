package ies

// Revision selects the LM-63 dialect for parsing reports and Write output.
type Revision int

const (
	// RevisionLM631986 is the original 1986 edition (no header line).
	RevisionLM631986 Revision = iota
	// RevisionLM631991 is the 1991 edition ("IESNA91" header).
	RevisionLM631991
	// RevisionLM631995 is the 1995 edition ("IESNA:LM-63-1995" header).
	RevisionLM631995
	// RevisionLM632002 is the 2002 edition ("IESNA:LM-63-2002" header).
	RevisionLM632002
)

// String returns the header line associated with the revision (empty for
// the 1986 edition, which has none).
func (r Revision) String() string {
	switch r {
	case RevisionLM631991:
		return "IESNA91"
	case RevisionLM631995:
		return "IESNA:LM-63-1995"
	case RevisionLM632002:
		return "IESNA:LM-63-2002"
	default:
		return ""
	}
}

// Photometric type codes from the LM-63 numeric header.
const (
	photometricTypeC = 1
	photometricTypeB = 2
	photometricTypeA = 3
)

// Units type codes from the LM-63 numeric header.
const (
	unitsFeet   = 1
	unitsMeters = 2
)

const (
	feetToMillimetres   = 304.8
	metresToMillimetres = 1000.0
)

// Package luminaire defines the shared photometric data model, lamp-set
// records, and the parse-error taxonomy used by both file codecs.
//
// What:
//
//   - Luminaire holds one luminous-intensity distribution: identification
//     strings, geometry, optics, lamp sets, the utilance (direct-ratio)
//     table, and the intensity grid in cd/klm indexed [C-plane][gamma].
//   - Symmetry and TypeIndicator are closed enumerations mirroring the
//     EULUMDAT Isym/Ityp codes.
//   - ParseError is the single typed error both codecs return, wrapping
//     one of three sentinel categories for errors.Is dispatch.
//
// Why:
//
//   - Both text formats (EULUMDAT, IES LM-63) map into this one model, so
//     validation, sampling, and every calculation stay format-agnostic.
//   - Derived values (max intensity, total flux) are recomputed accessors,
//     never cached fields, so they cannot desynchronize from edits.
//
// Invariants (calculation-ready model):
//
//   - len(CAngles) == len(Intensities); every row has len(GAngles) values.
//   - CAngles strictly increasing within [0,360); GAngles within [0,180].
//   - The populated C domain matches Symmetry (one plane for VerticalAxis,
//     [0,180] for PlaneC0C180, [90,270] for PlaneC90C270, [0,90] for
//     BothPlanes).
//   - All intensities ≥ 0.
//
// Errors:
//
//   - ErrTruncatedInput    — declared counts exceed the available text.
//   - ErrInvalidNumber     — a numeric field failed to parse.
//   - ErrUnsupportedFormat — a revision or section the core does not handle.
//
// Construction never auto-rejects: codecs surface fatal grammar problems as
// *ParseError, while questionable-but-parseable data is left for package
// validate to report.
package luminaire

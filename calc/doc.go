// Package calc derives the standard lighting-industry figures of merit
// from a photometric model: flux fractions, beam and field angles, spacing
// criteria, CIE flux codes, zonal lumens, utilance, UGR glare rating,
// luminance, cutoff angle, and classification codes.
//
// What:
//
//   - Flux integrators (DownwardFlux, CIEFluxCodes, ZonalLumens10/30) use
//     solid-angle-weighted zonal sums: each gamma band contributes the
//     azimuth-weighted mean intensity times 2π(cos γ_lo − cos γ_hi).
//   - Threshold searches (BeamAngle, FieldAngle, CutoffAngle) scan the
//     intensity profile outward from nadir and interpolate linearly
//     between the bracketing samples; the first crossing wins.
//   - UGR implements the CIE formula 8·log10(0.25/Lb · Σ L²ω/p²) over a
//     configurable room layout with the Guth position index; the
//     StandardOfficeParams preset gives the reproducible 4H×8H reference
//     room.
//   - Summary bundles the common quantities into one struct with text,
//     key/value, and compact renderings.
//
// Every function is pure and total: it never mutates the model, and
// degenerate input (dark webs, zero wattage, empty grids) yields the
// documented zero values instead of NaN or panics. Results are
// deterministic for identical input, so downstream tooling can diff them.
//
// Complexity: all calculators are O(Nc×Ng); UGR adds the luminaire-grid
// factor of its layout.
package calc

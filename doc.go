// Package photometry is an in-memory toolkit for parsing, validating, and
// computing derived quantities from luminaire photometric files — the
// EULUMDAT (LDT) and IESNA LM-63 (IES) text formats.
//
// 🚀 What is luxkit/photometry?
//
//	A deterministic, I/O-free library that brings together:
//		• Codecs: EULUMDAT and IES (LM-63-1995 / LM-63-2002) parse & write
//		• A single shared data model both formats map into and out of
//		• Structural validation with stable issue codes
//		• Symmetry expansion and arbitrary-angle intensity sampling
//		• Photometric figures of merit: flux fractions, beam/field angle,
//		  spacing criteria, CIE flux codes, zonal lumens, utilance, UGR
//		• BUG (Backlight-Uplight-Glare) outdoor classification
//
// ✨ Why choose luxkit/photometry?
//
//   - Deterministic – identical input bytes produce identical results,
//     safe to diff and snapshot across platforms
//   - Pure Go – no cgo, no file access, no network; text in, values out
//   - Total calculators – degenerate input yields documented sentinels,
//     never a panic
//
// Everything is organized under eight subpackages:
//
//	luminaire/ — the shared Luminaire model, lamp sets, parse errors
//	ldt/       — EULUMDAT codec (fixed-line grammar, comma decimals)
//	ies/       — IESNA LM-63 codec (keyword block, TILT, token streams)
//	validate/  — pure structural/range checker, errors + warnings
//	photoweb/  — symmetry expansion and bilinear angle sampling
//	calc/      — derived-quantity calculations over the sampled web
//	glare/     — BUG rating per the outdoor-lighting zone tables
//	batch/     — bulk format conversion over in-memory contents
//
// Pipeline at a glance:
//
//	text ──ldt/ies──▶ luminaire.Luminaire ──validate──▶ advisory issues
//	                        │
//	                        ▼
//	                  photoweb.Web ──calc / glare──▶ scalar & struct results
//
// Dive into each package's doc.go for grammar details, formulas, and the
// exact error contracts.
package photometry

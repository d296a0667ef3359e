// Package ies implements the IESNA LM-63 photometric file codec, covering
// the legacy (LM-63-1995) and current (LM-63-2002) revisions.
//
// What:
//
//   - Parse consumes the keyword block ([TEST], [MANUFAC], [LUMCAT], …)
//     terminated by a TILT= line, then the whitespace/newline-insensitive
//     numeric stream: lamp data, angle counts, photometric type, units,
//     luminous-opening dimensions, ballast factors, both angle arrays, and
//     one candela row per horizontal angle.
//   - Write emits either revision on request, selecting the matching
//     header line and keyword dialect.
//
// TILT handling:
//
//   - TILT=NONE       — no tilt section.
//   - TILT=INCLUDE    — inline lamp-to-luminaire geometry, tilt angles,
//     and multiplying factors, kept on the model's TiltTable.
//   - TILT=<filename> — file access is a collaborator concern; rejected
//     with luminaire.ErrUnsupportedFormat.
//
// Mapping into the shared model:
//
//   - Candela values convert to cd/klm through the candela multiplier,
//     ballast factors, and the lamps × lumens-per-lamp basis. Absolute
//     photometry (lumens-per-lamp ≤ 0) is taken on a 1000 lm basis.
//   - Symmetry is inferred from horizontal-angle coverage: a single angle
//     means vertical-axis symmetry, 0–90° quadrant data means both-plane
//     symmetry, 0–180° means C0–C180, 90–270° means C90–C270, anything
//     else is stored unreduced (a trailing 360° duplicate plane is folded
//     into the 0° plane).
//   - Photometric types A and B carry an unresolved 90° axis-rotation
//     convention; models parsed from them are marked AxisRotationPending
//     rather than silently rotated.
//
// Errors (all surfaced as *luminaire.ParseError):
//
//   - luminaire.ErrTruncatedInput    — token stream shorter than declared.
//   - luminaire.ErrInvalidNumber     — a non-numeric token in the stream.
//   - luminaire.ErrUnsupportedFormat — TILT file reference or missing TILT line.
//
// Complexity: O(Nh×Nv) time and memory, single pass.
package ies

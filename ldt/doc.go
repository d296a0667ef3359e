// Package ldt implements the EULUMDAT photometric file codec.
//
// What:
//
//   - Parse consumes the strict fixed-line grammar: identification, type
//     and symmetry codes, plane counts and spacings, the metadata block,
//     the geometry block, one repeated lamp-set block per declared count,
//     the ten-entry utilance table, both angle arrays, and one intensity
//     value per line for each stored C-plane.
//   - Write re-emits a model in the same field order, rounding nothing
//     away: Parse(Write(m)) reproduces m within floating tolerance.
//
// Grammar notes:
//
//   - Decimal fields use the comma-as-separator convention; Parse
//     normalizes commas to dots before numeric parsing and tolerates
//     either, plus surrounding whitespace. Write emits commas.
//   - Declared counts dictate exactly how many lines are consumed. A
//     shortfall is a truncation error; a non-numeric field where a number
//     is required names the line and field.
//   - The stored C-plane count follows the symmetry code: Mc planes for
//     Isym 0, one for Isym 1, Mc/2+1 for Isym 2 and 3, Mc/4+1 for Isym 4.
//
// Errors (all surfaced as *luminaire.ParseError):
//
//   - luminaire.ErrTruncatedInput — fewer lines than the declared counts demand.
//   - luminaire.ErrInvalidNumber  — a numeric field failed to parse.
//
// Complexity: O(Mc×Ng) time and memory, single pass.
package ldt

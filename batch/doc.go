// Package batch converts many photometric files between formats in one
// call, so bulk tooling does not reimplement the parse/export loop.
//
// What:
//
//   - Convert takes named in-memory inputs and a target Format, and
//     returns one Output per input in the same order. Items fail
//     independently: a malformed file yields an Output with Err set and
//     never affects its neighbors.
//   - ConvertWithStats additionally returns the total/successful/failed
//     counts for progress reporting.
//   - Inputs with a nil Format are auto-detected: content starting with
//     "IESNA" or containing a TILT= line is LM-63, anything else is
//     EULUMDAT.
//
// The package is pure: no file or network access; names are labels only,
// used to derive the output name's extension.
//
// Complexity: O(Σ input sizes), one pass per item.
package batch

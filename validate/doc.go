// Package validate checks a photometric model for structural and physical
// consistency before it is fed into the sampling and calculation engines.
//
// What:
//
//   - Validate returns a Report with two buckets: Errors (the model is
//     unsafe to calculate from) and Warnings (legal but unusual data).
//   - Checks run in a fixed order, so identical models produce identical
//     reports. Suitable for snapshot testing.
//
// Issue codes are stable and grouped by concern:
//
//   - S… structural   — array lengths, plane counts, angle ordering.
//   - R… range        — angle domains, symmetry coverage, intensity signs.
//   - L… lamp         — lamp-set completeness.
//   - D… dimensional  — geometry sanity.
//   - F… format extra — utilance table, metadata, pending rotations.
//
// Validate never panics and never mutates the model. Construction by a
// codec does not auto-reject unusual data; callers decide what to do with
// the report.
//
// Complexity: O(Nc×Ng) time, O(issues) memory.
package validate

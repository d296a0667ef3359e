// Package photoweb answers intensity queries at arbitrary angles and
// expands symmetry-reduced photometric data to the full azimuth circle.
//
// What:
//
//   - New wraps a model into a Web, the sampling substrate used by the
//     calc and glare packages.
//   - Web.Sample(c, g) returns cd/klm at any direction: C is taken modulo
//     360, gamma is clamped to [0,180], symmetry folds the query into the
//     stored domain, and bilinear interpolation fills the gaps. A query
//     exactly at a grid node returns the stored value.
//   - Web.SampleNormalized divides by the maximum stored intensity
//     (0 when the web is dark).
//   - Expand materializes a Grid over the full 0–360° azimuth circle by
//     mirroring the stored planes, leaving the measured gamma domain as is.
//
// Folding rules per symmetry:
//
//   - None          — pass-through; queries between the last stored plane
//     and the first one interpolate across the 0/360 seam instead of
//     clamping to the nearer edge.
//   - VerticalAxis  — every azimuth maps to the single stored plane.
//   - PlaneC0C180   — c > 180 reflects to 360−c.
//   - PlaneC90C270  — azimuths outside [90,270] reflect to (180−c) mod 360.
//   - BothPlanes    — two reflections fold any azimuth into [0,90].
//
// Photometric files measured in the B or A plane system carry a 90° axis
// rotation that this package does not apply (the convention is ambiguous
// across vendors). Web.RotationPending reports the marker and
// AlignToRoadAxis returns ErrRotationNotApplied so callers fail loudly
// instead of computing road metrics on misaligned axes.
//
// Complexity: Sample is O(log n) index search per axis after an O(1) fold;
// Expand is O(Nc×Ng).
package photoweb

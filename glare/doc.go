// Package glare implements the IES TM-15-11 Backlight-Uplight-Glare
// rating for outdoor luminaires.
//
// What:
//
//   - ZoneLumensFor splits the emitted flux into the ten named TM-15-11
//     solid-angle zones, in absolute lumens: the front half (C 270° through
//     0° to 90°) and back half (C 90°–270°) each divide into Low (γ 0–30°),
//     Mid (30–60°), High (60–80°), and Very High (80–90°) bands, while
//     uplight splits into UL (90–100°) and UH (100–180°) over the full
//     circle.
//   - BUGRating maps the accumulated zone lumens onto the 0–5 scale using
//     the published breakpoint tables. The glare table is asymmetric for
//     forward-throw distributions; quadrilaterally symmetric luminaires
//     (vertical-axis or both-plane symmetry) rate their back-high zone
//     against the forward thresholds, as the standard prescribes.
//
// Each rating component is the smallest level whose zone maxima are all
// respected; distributions beyond the last breakpoint rate 5. A luminaire
// with no flux above 90° always rates U0.
//
// Complexity: one O(Nc×Ng) zonal integration per call.
package glare

// Package manifest decodes marketplace and plugin manifests.
//
// Decoding is deliberately lenient so that validators see every defect in
// one pass instead of stopping at the first type mismatch:
//
//   - Presence follows JSON truthiness: null, false, 0 and "" count as
//     absent; [] and {} count as present.
//   - A scalar field holding the wrong JSON type is treated as absent.
//   - Fields that accept several shapes (plugin sources, commands, agents,
//     skills) decode into tagged unions whose Kind names the shape found.
//
// Only the document root is strict: it must be a JSON object.
package manifest

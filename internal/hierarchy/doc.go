// Package hierarchy derives structural facts from a flat suite snapshot:
// tree construction, per-suite level, root identification, ancestor and
// descendant enumeration, path rendering and bulk enrichment.
//
// Everything here is pure in-memory computation with no I/O. The data is
// adversarial by assumption: parent pointers may dangle, form cycles, or
// repeat ids. Structural anomalies are never errors; every query resolves
// them to a well-defined fallback (self-as-root, fallback display name,
// empty result, unknown-id sentinel) so downstream report generation
// always has something to render. All traversals share one cycle-guarded
// walk primitive, so no input can loop the resolver forever.
package hierarchy

// Package schema turns plain property values into Schema.org JSON-LD
// records. It coerces raw values by property kind, builds ordered records,
// validates them against the catalog, runs bulk builds with per-row failure
// isolation, and derives templates from the catalog.
//
// Every function is pure: no I/O, no shared state.
package schema

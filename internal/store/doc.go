// Package store provides the SQLite catalog of named curve definitions.
//
// The catalog persists definitions only - axiom, rules, iteration count and
// turtle parameters - never generated development strings or paths; results
// are recomputed on demand, which keeps every run reproducible from its
// definition.
//
// The database runs in WAL mode with a single-writer connection pool.
// Definitions are keyed by name (unique); saving an existing name replaces
// the stored definition. Record ids are UUIDv7 so insertion order is
// recoverable from the id alone.
package store

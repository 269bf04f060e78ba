// Package dataset describes the historical regional migration reference
// table: in-, out- and net-migrants by zone, state and sex (164 rows in the
// published edition).
//
// The package owns the schema, a CSV reader for caller-supplied readers,
// consistency checks (net = in − out) and zone/sex roll-ups. It performs no
// file I/O of its own.
package dataset

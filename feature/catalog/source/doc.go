// Package source parses a tabular source-of-truth file into typed rows.
//
// The parser is selected by file extension: .xlsx/.xlsm workbooks are read
// with excelize, .csv files with encoding/csv. Unsupported extensions fail
// fast with a configuration error.
//
// # Preconditions
//
// Load validates the fixed list of required columns (Id, ProductName, Price,
// Stock) against the normalized header. A missing required column aborts the
// whole run before any store mutation; it is an all-or-nothing precondition,
// not a per-row check.
//
// # Absent Values
//
// A cell that is blank, or a column the sheet does not carry, reads as
// absent. Row.Get returns a presence flag so absence stays distinct from a
// legitimate zero or empty string.
//
// # Typed Decoding
//
// Decoder gives per-field typed access with explicit defaults (discount 0,
// warranty 12 months, reorder point 10, active true, ...). Parse failures
// are sticky: the first failure is recorded and checked once per row, so a
// bad numeric cell aborts the row before anything is written.
package source

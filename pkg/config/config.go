// Package config defines the processing options of a scanned-sheet
// post-processing run and the machinery for filling them from command
// line values and options files.
//
// An Options value is created with New, which assigns every documented
// default, and is then populated through successful parses only: a
// value that fails to decode leaves the options untouched. Once the
// configuration phase is over the options are treated as read-only and
// may be shared freely.
//
// Key Types:
//
// - Options: The full configuration record of a run
// - Values: Option values in textual form, shared by the command line
//   flags and the options file
// - IndexSet: A selection of sheet indexes (all, none, or an explicit list)
// - WipeList: A bounded list of sheet areas to blank out
// - Layout: The page arrangement on a sheet
// - Threshold: A per-axis sensitivity pair for the mask scan
//
// Main Functions:
//
// - New: Creates options with all defaults assigned
// - Load: Reads an options file on top of the defaults
// - ParseIndexSet, ParseLayout, ParseThreshold: Decode option values
package config

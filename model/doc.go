// Package model provides the result types for clipboard table reconstruction.
//
// This package defines the user-facing data structures produced by the parsing
// pipeline. All reconstruction strategies ultimately produce these types,
// making them the primary API for consuming recovered tables.
//
// # Tables
//
// The [Table] type represents a reconstructed rectangular table:
//
//   - Rows of string cells, every row padded to exactly NumCols cells
//   - HasHeaders reporting whether row 0 is a header row
//   - The detected [Separator]
//   - WikipediaStyle reporting whether footnote/unit heuristics fired
//
// Cell values are plain strings; type inference (numeric, boolean, date) is an
// independent downstream step and is never performed here.
//
// # Exports
//
// Tables can be exported for downstream consumers:
//
//   - ToMarkdown() - GitHub-flavored markdown table
//   - ToCSV(w) - RFC 4180 CSV via encoding/csv
package model

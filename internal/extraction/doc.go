// Package extraction turns human-maintained spreadsheet exports into raw
// typed records.
//
// A workbook is read into a row-major grid of text cells (.xlsx through
// excelize, legacy .xls through xlsReader). Every row is then classified by
// an ordered set of named predicates:
//
//	blank -> section marker -> header -> summary -> data
//
// The first predicate that matches wins. Section markers update the current
// company/project carried by the following data rows; data rows are handed
// to a Schema which builds the record. Rows that fail the data checks are
// skipped silently and records dated before the retention cutoff are
// dropped; both are only counted in Stats.
//
// Column positions, section keywords and the summary denylist live in a
// Layout so that they can be overridden from configuration.
package extraction

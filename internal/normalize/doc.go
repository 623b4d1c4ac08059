// Package normalize holds the pure field normalizers used while extracting
// spreadsheet rows: dates, mis-decoded accents, "ID - Name" composites,
// section labels, money and status flags.
//
// None of the functions return errors. Unparseable input degrades to a
// documented default (zero year, zero value, the raw text) and the caller
// decides whether the row survives.
package normalize

// Package shared holds code used across packages that belongs to no single
// layer.
//
// The testutil subpackage provides test helpers:
//
//   - a capturing slog handler for asserting on log output
//   - workbook fixtures built with excelize
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    path := testutil.WriteWorkbook(t, t.TempDir(), "notas.xlsx", "", rows)
//	    ...
//	    testutil.AssertLogContains(t, logs, slog.LevelWarn, "not referenced")
//	}
package shared

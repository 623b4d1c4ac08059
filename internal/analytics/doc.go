// Package analytics computes the dashboard aggregates from a record
// collection that has already been filtered.
//
// Every function is pure and deterministic. Empty input yields empty or
// zero valued aggregates, percentages over a zero total are 0, and ties in
// every sort keep the insertion order of the input. Monetary sums are
// accumulated as decimals and converted to float64 only in the results.
package analytics

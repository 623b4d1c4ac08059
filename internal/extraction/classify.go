package extraction

import (
	"regexp"
	"strings"
)

// RowKind is the classification of one spreadsheet row.
type RowKind int

const (
	RowMalformed RowKind = iota
	RowBlank
	RowCompany
	RowProject
	RowHeader
	RowSummary
	RowData
)

func (k RowKind) String() string {
	switch k {
	case RowBlank:
		return "blank"
	case RowCompany:
		return "company"
	case RowProject:
		return "project"
	case RowHeader:
		return "header"
	case RowSummary:
		return "summary"
	case RowData:
		return "data"
	default:
		return "malformed"
	}
}

// predicate is one named classification rule.
type predicate struct {
	name  string
	kind  RowKind
	match func(l Layout, first string, r Row) bool
}

// predicates are evaluated in order; the first match classifies the row.
var predicates = []predicate{
	{"blank", RowBlank, func(_ Layout, _ string, r Row) bool { return r.Blank() }},
	{"company-marker", RowCompany, func(l Layout, first string, _ Row) bool {
		return l.CompanyMarker != "" && strings.HasPrefix(first, l.CompanyMarker)
	}},
	{"project-marker", RowProject, func(l Layout, first string, _ Row) bool {
		return l.ProjectMarker != "" && strings.HasPrefix(first, l.ProjectMarker)
	}},
	{"header", RowHeader, func(l Layout, first string, _ Row) bool { return contains(l.HeaderLabels, first) }},
	{"summary", RowSummary, isSummary},
	{"data", RowData, isData},
}

// Classify returns the kind of a row under layout l.
func Classify(l Layout, r Row) RowKind {
	first := r.Cell(0)
	for _, p := range predicates {
		if p.match(l, first, r) {
			return p.kind
		}
	}
	return RowMalformed
}

func isSummary(l Layout, first string, _ Row) bool {
	if contains(l.SummaryLabels, first) {
		return true
	}
	for _, prefix := range l.SummaryPrefixes {
		if strings.HasPrefix(first, prefix) {
			return true
		}
	}
	return false
}

// numericKey matches document numbers as exported: plain digits, possibly
// with a decimal tail when the cell was stored as a number.
var numericKey = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)

func isData(l Layout, first string, r Row) bool {
	if l.NumericKey {
		if !numericKey.MatchString(first) {
			return false
		}
	}
	if len(r) < l.MinCells {
		return false
	}
	for _, col := range l.RequiredColumns {
		if r.Cell(l.Column(col)) == "" {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bizdash/pkg/contracts/domain"
)

// Apply returns the records passing every predicate of s, in input order.
// A record passes iff it is active (or cancelled records are included),
// its year is selected (or no year is), and for every non-empty facet
// selection its value is selected. Facets a schema does not carry are
// ignored.
func Apply[R domain.Record](records []R, s State) []R {
	years := make(map[int]bool, len(s.Years))
	for _, y := range s.Years {
		years[y] = true
	}

	type facetSet struct {
		facet  domain.Facet
		values map[string]bool
	}
	var facets []facetSet
	for _, f := range domain.Facets {
		sel := s.Selection(f)
		if len(sel) == 0 {
			continue
		}
		set := make(map[string]bool, len(sel))
		for _, v := range sel {
			set[v] = true
		}
		facets = append(facets, facetSet{facet: f, values: set})
	}

	out := make([]R, 0, len(records))
next:
	for _, r := range records {
		if !s.IncludeCancelled && r.IsCancelled() {
			continue
		}
		if len(years) > 0 && !years[r.RecordYear()] {
			continue
		}
		for _, fs := range facets {
			v, ok := r.FacetValue(fs.facet)
			if ok && !fs.values[v] {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// Years lists the distinct years of records in ascending order.
func Years[R domain.Record](records []R) []int {
	seen := make(map[int]bool)
	years := []int{}
	for _, r := range records {
		if !seen[r.RecordYear()] {
			seen[r.RecordYear()] = true
			years = append(years, r.RecordYear())
		}
	}
	sort.Ints(years)
	return years
}

// FacetValues lists the distinct non-empty values of a facet, sorted with
// Portuguese collation. Direct sales carry no broker and are left out of
// the broker facet. A facet the schema does not carry yields an empty list.
func FacetValues[R domain.Record](records []R, f domain.Facet) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, r := range records {
		if f == domain.FacetBroker {
			if d, ok := any(r).(domain.DirectFlagger); ok && d.Direct() {
				continue
			}
		}
		v, ok := r.FacetValue(f)
		if !ok || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	collate.New(language.BrazilianPortuguese).SortStrings(values)
	return values
}

// Options are the values a filter UI offers, computed from the unfiltered
// collection.
type Options struct {
	Years  []int                     `json:"years"`
	Facets map[domain.Facet][]string `json:"facets"`
}

// OptionsFor computes years and the values of every facet the schema
// carries.
func OptionsFor[R domain.Record](records []R) Options {
	opts := Options{
		Years:  Years(records),
		Facets: make(map[domain.Facet][]string),
	}
	for _, f := range domain.Facets {
		if carries[R](f) {
			opts.Facets[f] = FacetValues(records, f)
		}
	}
	return opts
}

// carries reports whether schema R has facet f.
func carries[R domain.Record](f domain.Facet) bool {
	var zero R
	_, ok := zero.FacetValue(f)
	return ok
}

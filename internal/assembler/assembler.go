// Package assembler merges per-file extraction batches into one collection
// per entity type.
package assembler

import (
	"sort"
	"strconv"

	"bizdash/pkg/contracts/domain"
)

// Identified constrains P to be a pointer to R that accepts a surface id.
type Identified[R any] interface {
	*R
	domain.IDSetter
}

// Assemble concatenates batches in processing order and assigns the ids
// "1".."n" to the merged sequence. Ids are positional: they are only stable
// for one generation run. Nothing is deduplicated.
func Assemble[R any, P Identified[R]](batches ...[]R) []R {
	total := 0
	for _, b := range batches {
		total += len(b)
	}

	out := make([]R, 0, total)
	for _, b := range batches {
		out = append(out, b...)
	}

	for i := range out {
		P(&out[i]).SetID(strconv.Itoa(i + 1))
	}
	return out
}

// Summary holds the sanity counts printed after extraction.
type Summary struct {
	Total      int      `json:"total"`
	Cancelled  int      `json:"cancelled"`
	Direct     int      `json:"direct,omitempty"`
	TotalValue float64  `json:"totalValue"`
	Years      []int    `json:"years"`
	Companies  []string `json:"companies"`
	Categories []string `json:"categories,omitempty"`
}

// Summarize counts a collection. category names the facet-like field
// listed in Categories (activity, project, product); nil skips it.
func Summarize[R domain.Record](records []R, category func(R) string) Summary {
	s := Summary{
		Years:     []int{},
		Companies: []string{},
	}

	years := make(map[int]bool)
	companies := make(map[string]bool)
	categories := make(map[string]bool)

	for _, r := range records {
		s.Total++
		s.TotalValue += r.Amount()
		if r.IsCancelled() {
			s.Cancelled++
		}
		if d, ok := any(r).(domain.DirectFlagger); ok && d.Direct() {
			s.Direct++
		}

		if !years[r.RecordYear()] {
			years[r.RecordYear()] = true
			s.Years = append(s.Years, r.RecordYear())
		}
		if c := r.Company(); !companies[c] {
			companies[c] = true
			s.Companies = append(s.Companies, c)
		}
		if category != nil {
			if c := category(r); !categories[c] {
				categories[c] = true
				s.Categories = append(s.Categories, c)
			}
		}
	}

	sort.Ints(s.Years)
	return s
}

package analytics

import (
	"sort"

	"bizdash/pkg/contracts/domain"
)

// ClientRanking groups active records by client name, sums count and value
// per client and sorts descending by value. Records without a name are
// grouped under domain.UnknownClient; each row keeps the client key of its
// first record.
func ClientRanking[R domain.Record](records []R) []domain.ClientRanking {
	type entry struct {
		name  string
		key   string
		count int
		value amount
	}

	index := make(map[string]int)
	var entries []*entry
	for _, r := range records {
		if r.IsCancelled() {
			continue
		}
		name := r.ClientLabel()
		if name == "" {
			name = domain.UnknownClient
		}
		i, ok := index[name]
		if !ok {
			i = len(entries)
			index[name] = i
			entries = append(entries, &entry{name: name, key: r.ClientKey()})
		}
		entries[i].count++
		entries[i].value.add(r.Amount())
	}

	ranking := make([]domain.ClientRanking, len(entries))
	for i, e := range entries {
		total := e.value.float()
		ranking[i] = domain.ClientRanking{
			Client:       e.name,
			ClientKey:    e.key,
			InvoiceCount: e.count,
			TotalValue:   total,
			AvgValue:     total / float64(e.count),
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalValue > ranking[j].TotalValue
	})
	return ranking
}

// GroupByYear partitions records into ascending year buckets. Records keep
// their input order within a bucket.
func GroupByYear[R domain.Record](records []R) []domain.YearBucket[R] {
	index := make(map[int]int)
	var buckets []domain.YearBucket[R]
	for _, r := range records {
		i, ok := index[r.RecordYear()]
		if !ok {
			i = len(buckets)
			index[r.RecordYear()] = i
			buckets = append(buckets, domain.YearBucket[R]{Year: r.RecordYear()})
		}
		buckets[i].Records = append(buckets[i].Records, r)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Year < buckets[j].Year
	})
	return buckets
}

// ClientSet is a set of client keys.
type ClientSet map[string]struct{}

// Has reports whether key is in the set.
func (s ClientSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// ClientsByYear returns the distinct client keys seen in each year.
func ClientsByYear[R domain.Record](records []R) map[int]ClientSet {
	byYear := make(map[int]ClientSet)
	for _, r := range records {
		set, ok := byYear[r.RecordYear()]
		if !ok {
			set = make(ClientSet)
			byYear[r.RecordYear()] = set
		}
		set[r.ClientKey()] = struct{}{}
	}
	return byYear
}

// ClientsNotReturning returns the active records of year a whose client
// has no active record in year b.
func ClientsNotReturning[R domain.Record](records []R, a, b int) []R {
	return cohort(records, a, b, false)
}

// ClientsReturning returns the active records of year a whose client is
// active again in year b. Together with ClientsNotReturning it partitions
// the clients active in a.
func ClientsReturning[R domain.Record](records []R, a, b int) []R {
	return cohort(records, a, b, true)
}

func cohort[R domain.Record](records []R, a, b int, returning bool) []R {
	active := Active(records)
	inB := ClientsByYear(active)[b]

	out := []R{}
	for _, r := range active {
		if r.RecordYear() == a && inB.Has(r.ClientKey()) == returning {
			out = append(out, r)
		}
	}
	return out
}

// CohortSections evaluates ClientsNotReturning for every consecutive pair
// of distinct years observed in the active records.
func CohortSections[R domain.Record](records []R) []domain.CohortSection[R] {
	active := Active(records)
	years := distinctYears(active)

	sections := []domain.CohortSection[R]{}
	for i := 0; i+1 < len(years); i++ {
		lost := ClientsNotReturning(active, years[i], years[i+1])
		clients := make(ClientSet)
		for _, r := range lost {
			clients[r.ClientKey()] = struct{}{}
		}
		sections = append(sections, domain.CohortSection[R]{
			YearA:       years[i],
			YearB:       years[i+1],
			ClientCount: len(clients),
			Records:     lost,
		})
	}
	return sections
}

package filter

// Reduce applies a to s and returns the new state. s is never modified;
// every slice of the result is freshly allocated. Unknown actions and
// unknown facets leave the state unchanged.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a.Type {
	case ActionToggleYear:
		next.Years = toggle(s.Years, a.Year)
	case ActionSetYears:
		next.Years = distinct(a.Years)
	case ActionToggleFacet:
		if a.Facet.Valid() {
			next = next.withSelection(a.Facet, toggle(s.Selection(a.Facet), a.Value))
		}
	case ActionSetFacet:
		if a.Facet.Valid() {
			next = next.withSelection(a.Facet, distinct(a.Values))
		}
	case ActionToggleCancelled:
		next.IncludeCancelled = !s.IncludeCancelled
	case ActionReset:
		return Initial()
	}

	return next
}

// toggle returns a copy of set with v removed when present, appended
// otherwise.
func toggle[T comparable](set []T, v T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, x := range set {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

// distinct copies values dropping repeats, keeping first occurrences.
func distinct[T comparable](values []T) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]bool, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

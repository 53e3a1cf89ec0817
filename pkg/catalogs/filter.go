package catalogs

import "sort"

// Filter holds optional bounds. Absent bounds impose no restriction and
// present bounds are combined with AND. Both year bounds are inclusive.
type Filter struct {
	MinRating Optional[float64]
	StartYear Optional[int]
	EndYear   Optional[int]
}

// IsEmpty reports whether no bound is set.
func (f Filter) IsEmpty() bool {
	return !f.MinRating.IsSet() && !f.StartYear.IsSet() && !f.EndYear.IsSet()
}

// Match reports whether m satisfies every present bound.
func (f Filter) Match(m Movie) bool {
	if floor, ok := f.MinRating.Get(); ok && m.Rating < floor {
		return false
	}
	if start, ok := f.StartYear.Get(); ok && m.Year < start {
		return false
	}
	if end, ok := f.EndYear.Get(); ok && m.Year > end {
		return false
	}
	return true
}

// Apply returns the matching movies ordered by year ascending, then title.
func (f Filter) Apply(c Catalog) []Movie {
	matched := make([]Movie, 0, c.Len())
	for _, m := range c.Movies() {
		if f.Match(m) {
			matched = append(matched, m)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Year < matched[j].Year
	})
	return matched
}

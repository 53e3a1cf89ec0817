package catalogs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentstation/marquee/pkg/errors"
)

// Criterion selects the sort key.
type Criterion string

// Sort criteria.
const (
	ByRating Criterion = "rating"
	ByYear   Criterion = "year"
)

// Direction selects the sort order for criteria that honour it.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// ParseCriterion parses a criterion name, case-insensitively.
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(strings.ToLower(strings.TrimSpace(s))); c {
	case ByRating, ByYear:
		return c, nil
	default:
		return "", errors.NewValidationError("criterion", s,
			fmt.Sprintf("must be %q or %q", ByRating, ByYear))
	}
}

// Sorted returns the movies of c ordered by criterion. Rating order is
// always highest first and ignores dir. Equal keys fall back to title
// ascending.
func Sorted(c Catalog, criterion Criterion, dir Direction) ([]Movie, error) {
	var less func(a, b Movie) bool
	switch criterion {
	case ByRating:
		less = func(a, b Movie) bool { return a.Rating > b.Rating }
	case ByYear:
		if dir == Descending {
			less = func(a, b Movie) bool { return a.Year > b.Year }
		} else {
			less = func(a, b Movie) bool { return a.Year < b.Year }
		}
	default:
		return nil, errors.NewValidationError("criterion", string(criterion),
			fmt.Sprintf("must be %q or %q", ByRating, ByYear))
	}

	// Movies is already in title order, which the stable sort preserves for ties.
	movies := c.Movies()
	sort.SliceStable(movies, func(i, j int) bool {
		return less(movies[i], movies[j])
	})
	return movies, nil
}

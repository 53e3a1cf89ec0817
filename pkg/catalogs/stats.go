package catalogs

import (
	"sort"

	"github.com/agentstation/marquee/pkg/errors"
)

// Stats summarizes the ratings in a catalog.
type Stats struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Best   Movie   `json:"best" yaml:"best"`
	Worst  Movie   `json:"worst" yaml:"worst"`
}

// ComputeStats returns rating statistics for c. Equal ratings for best
// and worst resolve to the alphabetically first title.
func ComputeStats(c Catalog) (Stats, error) {
	if c.Len() == 0 {
		return Stats{}, errors.NewEmptyCatalogError("stats")
	}

	movies := c.Movies()
	ratings := make([]float64, 0, len(movies))
	best, worst := movies[0], movies[0]
	var sum float64
	for _, m := range movies {
		sum += m.Rating
		ratings = append(ratings, m.Rating)
		// movies is in title order, so strict comparison keeps the first title
		if m.Rating > best.Rating {
			best = m
		}
		if m.Rating < worst.Rating {
			worst = m
		}
	}

	return Stats{
		Count:  len(movies),
		Mean:   sum / float64(len(movies)),
		Median: median(ratings),
		Best:   best,
		Worst:  worst,
	}, nil
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

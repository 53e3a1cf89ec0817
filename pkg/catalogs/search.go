package catalogs

import (
	"github.com/agentstation/marquee/internal/matcher"
	"github.com/agentstation/marquee/pkg/constants"
)

// Match is a search hit: the movie plus its similarity score (0-100).
type Match struct {
	Movie `yaml:",inline"`
	Score int `json:"score" yaml:"score"`
}

// Search ranks the titles of c by similarity to query. Only titles
// scoring at least constants.SearchThreshold are returned, best first,
// at most constants.SearchLimit of them. Title ties are broken
// alphabetically. A blank query matches nothing.
func Search(c Catalog, query string) []Match {
	if matcher.Normalize(query) == "" || c.Len() == 0 {
		return []Match{}
	}

	results := matcher.Extract(query, c.Titles(), &matcher.Options{
		Limit:     constants.SearchLimit,
		Cutoff:    constants.SearchThreshold,
		Scorer:    matcher.WeightedRatio,
		Normalize: true,
	})

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		matches = append(matches, Match{
			Movie: c[r.Choice].Movie(r.Choice),
			Score: r.Score,
		})
	}
	return matches
}

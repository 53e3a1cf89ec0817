package catalogs

import (
	"math/rand/v2"

	"github.com/agentstation/marquee/pkg/errors"
)

// Random picks one movie uniformly. Titles are sorted before the draw so
// a seeded source gives the same pick for the same catalog. A nil r uses
// the global source.
func Random(c Catalog, r *rand.Rand) (Movie, error) {
	if c.Len() == 0 {
		return Movie{}, errors.NewEmptyCatalogError("random pick")
	}
	titles := c.Titles()
	var i int
	if r != nil {
		i = r.IntN(len(titles))
	} else {
		i = rand.IntN(len(titles))
	}
	return c[titles[i]].Movie(titles[i]), nil
}

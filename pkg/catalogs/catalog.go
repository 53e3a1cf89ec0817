// Package catalogs provides the movie catalog data model and the derived
// queries computed over it: statistics, random pick, fuzzy search, sorting
// and filtering.
//
// A Catalog is a plain map from title to Record. It is rebuilt from the
// store for every operation and thrown away afterwards, so none of the
// functions here hold state between calls.
//
// Example usage:
//
//	c := catalogs.Catalog{
//	    "Heat":  {Year: 1995, Rating: 8.3},
//	    "Alien": {Year: 1979, Rating: 8.5},
//	}
//	stats, err := catalogs.ComputeStats(c)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("best: %s\n", stats.Best.Title)
package catalogs

import "sort"

// Catalog maps a movie title to its record. Titles are case-sensitive keys.
type Catalog map[string]Record

// New returns an empty catalog.
func New() Catalog {
	return make(Catalog)
}

// FromMovies builds a catalog from movies. Later duplicates win.
func FromMovies(movies ...Movie) Catalog {
	c := make(Catalog, len(movies))
	for _, m := range movies {
		c[m.Title] = m.Record()
	}
	return c
}

// Len returns the number of movies.
func (c Catalog) Len() int {
	return len(c)
}

// Has reports whether title is in the catalog.
func (c Catalog) Has(title string) bool {
	_, ok := c[title]
	return ok
}

// Get returns the movie stored under title.
func (c Catalog) Get(title string) (Movie, bool) {
	rec, ok := c[title]
	if !ok {
		return Movie{}, false
	}
	return rec.Movie(title), true
}

// Titles returns all titles in ascending order.
func (c Catalog) Titles() []string {
	titles := make([]string, 0, len(c))
	for title := range c {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Movies returns all movies ordered by title.
func (c Catalog) Movies() []Movie {
	movies := make([]Movie, 0, len(c))
	for _, title := range c.Titles() {
		movies = append(movies, c[title].Movie(title))
	}
	return movies
}

// Clone returns an independent copy of the catalog. A nil catalog clones
// to an empty one.
func (c Catalog) Clone() Catalog {
	clone := make(Catalog, len(c))
	for title, rec := range c {
		clone[title] = rec
	}
	return clone
}

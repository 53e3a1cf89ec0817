package catalogs

// Record is the persisted value for one title.
type Record struct {
	Year   int     `json:"year" yaml:"year"`
	Rating float64 `json:"rating" yaml:"rating"`
}

// Movie returns the record paired with its title.
func (r Record) Movie(title string) Movie {
	return Movie{Title: title, Year: r.Year, Rating: r.Rating}
}

// Movie is a record together with its title, used wherever order matters.
type Movie struct {
	Title  string  `json:"title" yaml:"title"`
	Year   int     `json:"year" yaml:"year"`
	Rating float64 `json:"rating" yaml:"rating"`
}

// Record strips the title.
func (m Movie) Record() Record {
	return Record{Year: m.Year, Rating: m.Rating}
}

package catalogs

// Update lists the fields to change on an existing movie. Absent fields
// keep their current value.
type Update struct {
	Year   Optional[int]
	Rating Optional[float64]
}

// IsEmpty reports whether the update changes nothing.
func (u Update) IsEmpty() bool {
	return !u.Year.IsSet() && !u.Rating.IsSet()
}

// Validate checks the fields that are present.
func (u Update) Validate() error {
	if year, ok := u.Year.Get(); ok {
		if err := ValidateYear(year); err != nil {
			return err
		}
	}
	if rating, ok := u.Rating.Get(); ok {
		if err := ValidateRating(rating); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns rec with the present fields overwritten.
func (u Update) Apply(rec Record) Record {
	if year, ok := u.Year.Get(); ok {
		rec.Year = year
	}
	if rating, ok := u.Rating.Get(); ok {
		rec.Rating = rating
	}
	return rec
}

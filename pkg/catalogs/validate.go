package catalogs

import (
	"math"
	"strings"

	"github.com/agentstation/marquee/pkg/constants"
	"github.com/agentstation/marquee/pkg/errors"
)

// ValidateTitle rejects empty or whitespace-only titles.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title", title, "cannot be empty")
	}
	return nil
}

// ValidateYear requires a four-digit year.
func ValidateYear(year int) error {
	if year < constants.MinYear || year > constants.MaxYear {
		return errors.NewValidationError("year", year, "must be a four-digit year")
	}
	return nil
}

// ValidateRating requires a finite rating between 1 and 10.
func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || rating < constants.MinRating || rating > constants.MaxRating {
		return errors.NewValidationError("rating", rating, "must be between 1.0 and 10.0")
	}
	return nil
}

// ValidateMovie checks every field of m.
func ValidateMovie(m Movie) error {
	if err := ValidateTitle(m.Title); err != nil {
		return err
	}
	if err := ValidateYear(m.Year); err != nil {
		return err
	}
	return ValidateRating(m.Rating)
}

package prompt

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/marquee/pkg/catalogs"
	"github.com/agentstation/marquee/pkg/errors"
)

// ParseInt parses a whole number. Failures are validation errors naming field.
func ParseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.NewValidationError(field, s, "must be a whole number")
	}
	return n, nil
}

// ParseFloat parses a finite number. Failures are validation errors naming field.
func ParseFloat(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewValidationError(field, s, "must be a number")
	}
	return f, nil
}

// ParseOptionalInt treats blank input as absent.
func ParseOptionalInt(field, s string) (catalogs.Optional[int], error) {
	if strings.TrimSpace(s) == "" {
		return catalogs.None[int](), nil
	}
	n, err := ParseInt(field, s)
	if err != nil {
		return catalogs.None[int](), err
	}
	return catalogs.Some(n), nil
}

// ParseOptionalFloat treats blank input as absent.
func ParseOptionalFloat(field, s string) (catalogs.Optional[float64], error) {
	if strings.TrimSpace(s) == "" {
		return catalogs.None[float64](), nil
	}
	f, err := ParseFloat(field, s)
	if err != nil {
		return catalogs.None[float64](), err
	}
	return catalogs.Some(f), nil
}

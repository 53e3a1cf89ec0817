package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/marquee/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "movie",
			ID:       "Heat",
		}
		assert.Equal(t, `movie "Heat" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("movie", "Alien")
		assert.Equal(t, `movie "Alien" not found`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, pkgerrors.IsAlreadyExists(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("movie", "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := pkgerrors.NewAlreadyExistsError("movie", "Heat")
	assert.Equal(t, `movie "Heat" already exists`, err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "year",
			Message: "must be a number",
		}
		assert.Equal(t, "validation failed for field year: must be a number", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid choice",
		}
		assert.Equal(t, "validation failed: invalid choice", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("wrap helper", func(t *testing.T) {
		err := pkgerrors.WrapValidation("rating", errors.New("out of range"))
		var vErr *pkgerrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "rating", vErr.Field)
		assert.Nil(t, pkgerrors.WrapValidation("rating", nil))
	})
}

func TestEmptyCatalogError(t *testing.T) {
	t.Run("with operation", func(t *testing.T) {
		err := pkgerrors.NewEmptyCatalogError("stats")
		assert.Contains(t, err.Error(), "stats")
		assert.True(t, pkgerrors.IsEmptyCatalog(err))
	})

	t.Run("without operation", func(t *testing.T) {
		err := &pkgerrors.EmptyCatalogError{}
		assert.Equal(t, "no movies in the catalog", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrEmptyCatalog))
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "write",
			Path:      "/tmp/data.json",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/data.json")
		assert.Contains(t, err.Error(), "permission denied")
		assert.True(t, pkgerrors.IsPersistence(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/data.json", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
		assert.True(t, errors.Is(err, baseErr))
	})

	t.Run("wrap helper", func(t *testing.T) {
		err := pkgerrors.WrapIO("rename", "data.json", errors.New("cross-device link"))
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "rename", ioErr.Operation)
		assert.Equal(t, "data.json", ioErr.Path)
		assert.Nil(t, pkgerrors.WrapIO("rename", "data.json", nil))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.WrapParse("json", "data.json", errors.New("unexpected end of JSON input"))
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "data.json")
		assert.Contains(t, err.Error(), "unexpected end")
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "yaml", Message: "bad indent"}
		assert.Equal(t, "yaml parse error: bad indent", err.Error())
	})
}

func TestKindsAreDistinct(t *testing.T) {
	kinds := []error{
		pkgerrors.NewValidationError("year", "abc", "not a number"),
		pkgerrors.NewAlreadyExistsError("movie", "X"),
		pkgerrors.NewNotFoundError("movie", "X"),
		pkgerrors.NewEmptyCatalogError("random"),
		pkgerrors.NewIOError("write", "data.json", errors.New("denied")),
	}
	sentinels := []error{
		pkgerrors.ErrInvalidInput,
		pkgerrors.ErrAlreadyExists,
		pkgerrors.ErrNotFound,
		pkgerrors.ErrEmptyCatalog,
		pkgerrors.ErrPersistence,
	}

	for i, err := range kinds {
		for j, sentinel := range sentinels {
			assert.Equal(t, i == j, errors.Is(err, sentinel), "kind %d vs sentinel %d", i, j)
		}
	}
}

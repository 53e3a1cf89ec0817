// Package hints provides actionable user guidance for CLI operations.
package hints

import (
	"fmt"
	"strings"

	"github.com/agentstation/marquee/internal/cmd/emoji"
	"github.com/agentstation/marquee/pkg/errors"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string // Human-readable guidance message
	Command string // Optional specific command to run
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand creates a new hint with a specific command.
func NewCommand(message, command string) *Hint {
	return &Hint{Message: message, Command: command}
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	parts := []string{fmt.Sprintf("%s %s", emoji.Hint, h.Message)}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("   Run: %s", h.Command))
	}
	return strings.Join(parts, "\n")
}

// ForError returns a follow-up suggestion for err, or nil when there is
// nothing useful to suggest.
func ForError(err error) *Hint {
	switch {
	case err == nil:
		return nil
	case errors.IsEmptyCatalog(err):
		return NewCommand("The catalog is empty, add a movie first", `marquee add "Title" --year 1999 --rating 8.5`)
	case errors.IsNotFound(err):
		return NewCommand("Titles are case-sensitive, find the exact one with search", "marquee search <query>")
	case errors.IsAlreadyExists(err):
		return NewCommand("Change the existing entry instead", `marquee update "Title" --rating 9`)
	case errors.IsPersistence(err):
		return New("Check that the data file and its directory are writable, or pick another with --data-file")
	default:
		return nil
	}
}

// ForEmptyResult suggests how to widen a query that matched nothing.
func ForEmptyResult(command string) *Hint {
	switch command {
	case "search":
		return New("Search needs a close match; try fewer words or check the spelling")
	case "filter":
		return New("Loosen or drop a bound; every bound given must hold")
	case "list":
		return NewCommand("The catalog is empty, add a movie first", `marquee add "Title" --year 1999 --rating 8.5`)
	default:
		return nil
	}
}

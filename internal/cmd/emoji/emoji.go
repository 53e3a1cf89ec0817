// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: added, updated and deleted movies.
	Success = "✓"

	// Error represents failures.
	// Used for: validation errors, missing titles, save failures.
	Error = "✗"

	// Stop represents user-initiated termination.
	// Used for: interrupt during the interactive menu.
	Stop = "✗"

	// Warning represents non-critical issues.
	// Used for: empty results, empty catalog.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Hint marks a suggested follow-up command.
	Hint = "→"

	// Star prefixes the best movie in stats and the random pick.
	Star = "★"
)

// Package notify provides a unified API for alerts and hints in the CLI.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/internal/cmd/alerts"
	"github.com/agentstation/marquee/internal/cmd/hints"
	"github.com/agentstation/marquee/internal/cmd/output"
)

// Notifier sends alerts and the hints that follow them.
type Notifier struct {
	alertWriter alerts.Writer
	config      Config
}

// Config controls notification behavior.
type Config struct {
	OutputFormat output.Format // structured alerts for json and yaml
	ShowHints    bool          // Whether to show hints
	ShowAlerts   bool          // Whether to show alerts
	Writer       io.Writer     // Where to write alerts and hints (default: stderr)
	UseColor     bool          // Whether to use colored output
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		OutputFormat: output.FormatTable,
		ShowHints:    true,
		ShowAlerts:   true,
		Writer:       os.Stderr,
		UseColor:     isTerminal(os.Stderr),
	}
}

// Settings is what NewFromCommand needs to know about the application.
type Settings interface {
	OutputFormat() string
	NoColor() bool
}

// New creates a new Notifier with the given configuration.
func New(config Config) *Notifier {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}
	writer := alerts.NewFormatWriter(config.Writer, config.OutputFormat).WithColor(config.UseColor)
	return &Notifier{
		alertWriter: writer,
		config:      config,
	}
}

// NewFromCommand creates a Notifier writing to the command's error stream.
// Quiet mode and CI environments suppress hints.
func NewFromCommand(cmd *cobra.Command, settings Settings) *Notifier {
	config := DefaultConfig()
	config.Writer = cmd.ErrOrStderr()

	quiet, _ := cmd.Flags().GetBool("quiet")
	if format, err := output.ParseFormat(settings.OutputFormat()); err == nil && !format.IsTable() {
		config.OutputFormat = format
	}
	config.ShowHints = !quiet && !isCI()
	config.UseColor = !settings.NoColor() && isTerminal(config.Writer)

	return New(config)
}

// Alert sends an alert notification.
func (n *Notifier) Alert(alert *alerts.Alert) error {
	if !n.config.ShowAlerts {
		return nil
	}
	return n.alertWriter.WriteAlert(alert)
}

// Success sends a success alert.
func (n *Notifier) Success(message string) error {
	return n.Alert(alerts.NewSuccess(message))
}

// Info sends an info alert.
func (n *Notifier) Info(message string) error {
	return n.Alert(alerts.NewInfo(message))
}

// Warning sends a warning alert followed by hint, if any.
func (n *Notifier) Warning(message string, hint *hints.Hint) error {
	if err := n.Alert(alerts.NewWarning(message)); err != nil {
		return fmt.Errorf("failed to write alert: %w", err)
	}
	return n.Hint(hint)
}

// Error reports err together with the hint that matches its kind.
func (n *Notifier) Error(err error) error {
	if err == nil {
		return nil
	}
	if writeErr := n.Alert(alerts.FromError(err)); writeErr != nil {
		return fmt.Errorf("failed to write alert: %w", writeErr)
	}
	return n.Hint(hints.ForError(err))
}

// Hint displays a hint on its own. Structured output formats never carry
// hints so machine readers see only alerts.
func (n *Notifier) Hint(hint *hints.Hint) error {
	if hint == nil || !n.config.ShowHints || !n.config.OutputFormat.IsTable() {
		return nil
	}
	_, err := fmt.Fprintln(n.config.Writer, hint.String())
	return err
}

// isTerminal checks if the writer is a character device.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// isCI detects if running in a CI/CD environment.
func isCI() bool {
	ciEnvVars := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"BUILDKITE",
		"TRAVIS",
		"CIRCLECI",
	}
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

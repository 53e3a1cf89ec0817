// Package menu implements the interactive numbered menu that marquee
// runs when started without a subcommand.
package menu

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/agentstation/marquee"
	"github.com/agentstation/marquee/internal/cmd/prompt"
	"github.com/agentstation/marquee/pkg/errors"
	"github.com/agentstation/marquee/pkg/logging"
)

// Banner heads every menu listing.
const Banner = "********** My Movie Database **********"

// errExit ends the loop after the exit choice.
var errExit = stderrors.New("exit")

type action struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// Menu reads choices from the user and dispatches them to a client.
type Menu struct {
	client marquee.Client
	prompt *prompt.Prompter
	out    io.Writer
	logger *zerolog.Logger

	green  *color.Color
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color

	actions []action
}

// Option configures a Menu.
type Option func(*Menu)

// WithColor forces colored output on or off. By default fatih/color
// decides from the terminal and NO_COLOR.
func WithColor(enabled bool) Option {
	return func(m *Menu) {
		for _, c := range []*color.Color{m.green, m.red, m.yellow, m.cyan} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

// New creates a menu that reads answers from in and writes to out.
func New(client marquee.Client, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		client: client,
		prompt: prompt.New(in, out),
		out:    out,
		logger: logging.Default(),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
	m.actions = []action{
		{"0", "Exit", m.exit},
		{"1", "List movies", m.list},
		{"2", "Add movie", m.add},
		{"3", "Delete movie", m.delete},
		{"4", "Update movie", m.update},
		{"5", "Stats", m.stats},
		{"6", "Random movie", m.random},
		{"7", "Search movie", m.search},
		{"8", "Movies sorted by rating or year", m.sort},
		{"9", "Filter movies by your criteria", m.filter},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits, input ends or ctx is canceled.
// None of these is an error. A Menu runs once.
func (m *Menu) Run(ctx context.Context) error {
	defer m.prompt.Close()

	for {
		m.printMenu()

		choice, err := m.prompt.AskTrimmed(ctx, fmt.Sprintf("Enter choice (0-%d): ", len(m.actions)-1))
		if err != nil {
			return m.finish(ctx, err)
		}

		act, ok := m.lookup(choice)
		if !ok {
			m.red.Fprintln(m.out, "Invalid choice, please try again.")
			continue
		}

		m.logger.Debug().Str("choice", choice).Str("action", act.label).Msg("Menu action")
		if err := act.run(ctx); err != nil {
			if done := m.handle(ctx, err); done {
				return m.finish(ctx, err)
			}
		}
	}
}

func (m *Menu) lookup(choice string) (action, bool) {
	for _, a := range m.actions {
		if a.key == choice {
			return a, true
		}
	}
	return action{}, false
}

// handle prints a failed action and reports whether the loop must stop.
func (m *Menu) handle(ctx context.Context, err error) bool {
	switch {
	case stderrors.Is(err, errExit), stderrors.Is(err, io.EOF):
		return true
	case ctx.Err() != nil, errors.IsCanceled(err):
		return true
	case errors.IsEmptyCatalog(err):
		m.yellow.Fprintln(m.out, "No movies in the database.")
	case errors.IsPersistence(err):
		m.logger.Error().Err(err).Msg("Saving catalog failed")
		m.red.Fprintf(m.out, "Could not save the catalog: %v\n", err)
	default:
		m.red.Fprintln(m.out, err.Error())
	}
	return false
}

func (m *Menu) finish(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.IsCanceled(err) || stderrors.Is(err, context.Canceled) {
		m.red.Fprintln(m.out, "\nProgram terminated by user.")
		return nil
	}
	if stderrors.Is(err, errExit) || stderrors.Is(err, io.EOF) {
		fmt.Fprintln(m.out, "\nBye!")
		return nil
	}
	return err
}

func (m *Menu) printMenu() {
	fmt.Fprintf(m.out, "\n%s\n", Banner)
	fmt.Fprintln(m.out, "\n      Menu:")
	for _, a := range m.actions {
		m.green.Fprintf(m.out, "%s. ", a.key)
		fmt.Fprintln(m.out, a.label)
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) exit(context.Context) error {
	return errExit
}

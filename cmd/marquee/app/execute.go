package app

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/marquee/menu"
	"github.com/agentstation/marquee/internal/cmd/globals"
	"github.com/agentstation/marquee/internal/cmd/notify"
	"github.com/agentstation/marquee/internal/cmd/output"
	"github.com/agentstation/marquee/pkg/constants"
)

// Execute runs the marquee CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "marquee",
		Short:   "Personal movie catalog",
		Version: a.version,
		Long: `Marquee keeps a small catalog of movies with their release year and
rating in a local JSON or YAML file.

Run it without a subcommand for the interactive menu, or use the
subcommands below from scripts.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              a.runMenu,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "query",
		Title: "Query Commands:",
	})

	// Add global flags
	globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/"+constants.ConfigName+".yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfigFile(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	a.config.UpdateFromFlags(flags, mustGetString(cmd, "log-level"), cmd.Flags().Changed)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}
	if a.config.NoColor {
		color.NoColor = true
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// runMenu starts the interactive menu on the command's streams.
func (a *App) runMenu(cmd *cobra.Command, _ []string) error {
	client, err := a.Client()
	if err != nil {
		return err
	}

	m := menu.New(client, cmd.InOrStdin(), cmd.OutOrStdout(),
		menu.WithColor(!a.config.NoColor && !color.NoColor),
		menu.WithLogger(a.logger),
	)
	return m.Run(cmd.Context())
}

// ExitOnError reports err with a matching hint on stderr and exits with
// status 1.
func ExitOnError(err error) {
	if err != nil {
		_ = notify.New(notify.DefaultConfig()).Error(err)
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

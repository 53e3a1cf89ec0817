package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/marquee/cmd/marquee/cmd/add"
	"github.com/agentstation/marquee/cmd/marquee/cmd/export"
	"github.com/agentstation/marquee/cmd/marquee/cmd/filter"
	"github.com/agentstation/marquee/cmd/marquee/cmd/list"
	"github.com/agentstation/marquee/cmd/marquee/cmd/random"
	"github.com/agentstation/marquee/cmd/marquee/cmd/remove"
	"github.com/agentstation/marquee/cmd/marquee/cmd/search"
	"github.com/agentstation/marquee/cmd/marquee/cmd/sorted"
	"github.com/agentstation/marquee/cmd/marquee/cmd/stats"
	"github.com/agentstation/marquee/cmd/marquee/cmd/update"
	"github.com/agentstation/marquee/cmd/marquee/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(update.NewCommand(a))

	// Query commands
	rootCmd.AddCommand(stats.NewCommand(a))
	rootCmd.AddCommand(random.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(sorted.NewCommand(a))
	rootCmd.AddCommand(filter.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(a.newMenuCommand())
	rootCmd.AddCommand(version.NewCommand(a))
}

// newMenuCommand creates the menu command, the same loop the bare
// marquee command starts.
func (a *App) newMenuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.runMenu,
	}
}

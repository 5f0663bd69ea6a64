// Package cli wires the lvtree command tree: flag parsing with cobra,
// layered settings with viper and slog logging on stderr.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags read before settings are layered.
// --verbose and --format are resolved through viper with the rest.
type RootOptions struct {
	ConfigFile string
}

// NewRootCommand creates the root command for the lvtree CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvtree",
		Short: "Rebuild trees from flat parent-linked records",
		Long: `lvtree reads flat records (id, parent id, optional name and order) from
JSON, YAML or a SQLite query and prints the assembled forest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().String("format", "text", "output format (text|json|yaml)")

	cmd.AddCommand(NewBuildCommand(opts))

	return cmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	EnvFile string
	Port    string
	Backend string
}

// NewRootCommand creates the root command for the foodlog CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "foodlog",
		Short: "Prototype calorie counter",
		Long: `A single-session calorie counter. Log foods with their calories,
see the running total, and browse a 372-day calendar of totals.
Nothing is persisted: the log lives as long as the process.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return LoadEnvFile(opts.EnvFile)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "optional .env file to load")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "data backend (memory|sqlite), overrides DATA_BACKEND")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewREPLCommand(opts))
	cmd.AddCommand(NewTailCommand(opts))

	return cmd
}

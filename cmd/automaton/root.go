package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/automata-kit/automaton/internal/logging"
)

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "automaton",
		Short: "Convert finite automata between visual-editor, tabular, and deterministic forms",
		Long: `automaton is a toolchain around the subset construction: it turns a
nondeterministic finite automaton (with epsilon transitions) into an
equivalent deterministic one while preserving accept-state labels, and it
converts between the visual-editor .jff format, tabular From/Input/To
transition tables, and their JSON side files.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+defaultConfigHint+" if present)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(jff2csvCmd)
	rootCmd.AddCommand(csv2jffCmd)
	rootCmd.AddCommand(jff2statesCmd)
}

const defaultConfigHint = "automaton.toml"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("automaton version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automata-kit/automaton"
	"github.com/automata-kit/automaton/config"
	"github.com/automata-kit/automaton/internal/logging"
	"github.com/automata-kit/automaton/table"
)

var (
	convertOut       string
	convertFinalOut  string
	convertStart     int
	convertMaxStates int
)

var convertCmd = &cobra.Command{
	Use:   "convert <nfa-transitions.csv> <nfa-states.json>",
	Short: "Convert an NFA into an equivalent DFA",
	Long: `Reads an NFA from a tabular transition file and an accept-state side
file, runs the subset construction, and writes the resulting DFA as a
transition table plus a final-state side file. The start state comes from
the side file's "initial" list when present, state 0 otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		maxStates := cfg.MaxStates
		if cmd.Flags().Changed("max-states") {
			maxStates = convertMaxStates
		}

		rows, err := table.ReadRowsFile(args[0])
		if err != nil {
			return err
		}
		sidecar, err := table.ReadSidecarFile(args[1])
		if err != nil {
			return err
		}

		start := convertStart
		if !cmd.Flags().Changed("start") && len(sidecar.Initial) > 0 {
			start = sidecar.Initial[0]
		}

		nfa := table.BuildNFA(rows, start, sidecar.Accept)
		dfa, err := automaton.DeterminizeLimit(nfa, maxStates)
		if err != nil {
			return err
		}

		if err := table.WriteRowsFile(convertOut, table.DFARows(dfa)); err != nil {
			return err
		}
		if err := table.WriteAcceptPairsFile(convertFinalOut, table.DFAAcceptPairs(dfa)); err != nil {
			return err
		}

		logger := logging.GetLogger("convert")
		logger.Info().
			Int("nfaTransitions", nfa.NumTransitions()).
			Int("dfaStates", dfa.NumStates()).
			Str("transitions", convertOut).
			Str("finalStates", convertFinalOut).
			Msg("DFA written")
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <dfa-transitions.csv> <dfa-final-states.json> <input>...",
	Short: "Run input strings through a DFA",
	Long:  `Loads a DFA from its transition table and final-state side file, then reports the accept label for each input string.`,
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := table.ReadRowsFile(args[0])
		if err != nil {
			return err
		}
		pairs, err := table.ReadAcceptPairsFile(args[1])
		if err != nil {
			return err
		}

		accept := make(map[int]string, len(pairs))
		for _, pair := range pairs {
			accept[pair.State] = pair.Label
		}
		dfa, err := table.BuildDFA(rows, accept)
		if err != nil {
			return err
		}

		for _, input := range args[2:] {
			if label, ok := automaton.Run(dfa, input); ok {
				fmt.Printf("%s: accepted (%s)\n", input, label)
			} else {
				fmt.Printf("%s: rejected\n", input)
			}
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "dfa-transitions.csv", "Output DFA transition table")
	convertCmd.Flags().StringVar(&convertFinalOut, "final-out", "dfa-final-states.json", "Output DFA final-state side file")
	convertCmd.Flags().IntVar(&convertStart, "start", 0, "NFA start state (overrides the side file)")
	convertCmd.Flags().IntVar(&convertMaxStates, "max-states", automaton.DefaultDeterminizeStateLimit, "Abort if the DFA would exceed this many states (overrides the config file)")
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/automata-kit/automaton/config"
	"github.com/automata-kit/automaton/internal/logging"
	"github.com/automata-kit/automaton/jff"
	"github.com/automata-kit/automaton/table"
)

var jff2csvCmd = &cobra.Command{
	Use:   "jff2csv <in.jff> <out.csv>",
	Short: "Export a visual-editor automaton as a tabular transition file",
	Long: `Converts a .jff automaton into a From/Input/To transition table.
Bracket classes on transitions ([0-9], [a-z], [A-Z]) expand into one row
per character.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := jff.ParseFile(args[0])
		if err != nil {
			return err
		}
		rows := doc.Rows()
		if err := table.WriteRowsFile(args[1], rows); err != nil {
			return err
		}
		logger := logging.GetLogger("jff2csv")
		logger.Info().
			Int("rows", len(rows)).
			Str("output", args[1]).
			Msg("transition table exported")
		return nil
	},
}

var csv2jffCmd = &cobra.Command{
	Use:   "csv2jff <in.csv> <out.jff>",
	Short: "Build a visual-editor automaton from a tabular transition file",
	Long: `Converts a From/Input/To transition table into a .jff automaton laid
out on a horizontal line. The smallest state id is marked initial and the
largest final; adjust the rest in the editor.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		rows, err := table.ReadRowsFile(args[0])
		if err != nil {
			return err
		}
		doc := jff.FromRows(rows,
			jff.WithSpacing(cfg.Layout.SpacingX),
			jff.WithBaseline(cfg.Layout.Baseline),
		)
		if err := doc.WriteFile(args[1]); err != nil {
			return err
		}
		logger := logging.GetLogger("csv2jff")
		logger.Info().
			Int("states", len(doc.States)).
			Str("output", args[1]).
			Msg("jff file created")
		return nil
	},
}

var jff2statesCmd = &cobra.Command{
	Use:   "jff2states <in.jff> <out.json>",
	Short: "Extract initial/final state markers from a visual-editor automaton",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := jff.ParseFile(args[0])
		if err != nil {
			return err
		}
		markers := doc.Markers()

		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := table.WriteMarkers(f, markers); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		logger := logging.GetLogger("jff2states")
		logger.Info().
			Ints("initial", markers.Initial).
			Ints("final", markers.Final).
			Str("output", args[1]).
			Msg("state markers exported")
		return nil
	},
}

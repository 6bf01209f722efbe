// Package table reads and writes automata as tabular From/Input/To
// transition tables, plus the JSON side files that carry accept-state
// labels and initial/final markers.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/automata-kit/automaton"
	"github.com/automata-kit/automaton/internal/logging"
)

// ErrFormat is returned when a file cannot be parsed into the expected shape
// at all. Row-level problems never produce it; those rows are skipped.
var ErrFormat = errors.New("malformed transition table")

// Row is one transition: From reads Input and moves to To. An empty Input
// denotes epsilon.
type Row struct {
	From  int
	Input string
	To    int
}

// ReadRows parses a From/Input/To table. Parsing is lenient because the
// tables are hand-edited: rows starting with //, rows with the wrong column
// count, and rows with non-integer endpoints are skipped. The conventional
// "From,Input,To" header row falls out with them. Only an unreadable file
// yields an error.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		row, ok := parseRow(record)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		logger := logging.GetLogger("table")
		logger.Debug().
			Int("rows", len(rows)).
			Int("skipped", skipped).
			Msg("skipped unparseable rows")
	}
	return rows, nil
}

func parseRow(record []string) (Row, bool) {
	if len(record) == 0 || strings.HasPrefix(strings.TrimSpace(record[0]), "//") {
		return Row{}, false
	}
	if len(record) != 3 {
		return Row{}, false
	}

	from, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return Row{}, false
	}
	to, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return Row{}, false
	}

	// Only the first character of the input field is significant.
	input := strings.TrimSpace(record[1])
	if input != "" {
		input = string([]rune(input)[0])
	}

	return Row{From: from, Input: input, To: to}, true
}

// WriteRows writes rows as a From/Input/To table with a header, in the given
// order.
func WriteRows(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"From", "Input", "To"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{strconv.Itoa(row.From), row.Input, strconv.Itoa(row.To)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadRowsFile reads a transition table from path.
func ReadRowsFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(f)
}

// WriteRowsFile writes a transition table to path.
func WriteRowsFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRows(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// BuildNFA assembles an NFA from transition rows, a start state, and an
// accept mapping.
func BuildNFA(rows []Row, start int, accept map[int]string) *automaton.NFA {
	n := automaton.NewNFA(start)
	for _, row := range rows {
		in := automaton.Epsilon()
		if row.Input != "" {
			in = automaton.On([]rune(row.Input)[0])
		}
		n.AddTransition(row.From, in, row.To)
	}
	for state, label := range accept {
		n.SetAccept(state, label)
	}
	return n
}

// BuildDFA assembles a DFA from transition rows and an accept mapping.
// Epsilon rows have no place in a deterministic table and are skipped;
// conflicting rows for the same (state, symbol) are an error.
func BuildDFA(rows []Row, accept map[int]string) (*automaton.DFA, error) {
	transitions := make([]automaton.Transition, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if row.Input == "" {
			skipped++
			continue
		}
		transitions = append(transitions, automaton.Transition{
			From:   row.From,
			Symbol: []rune(row.Input)[0],
			To:     row.To,
		})
	}
	if skipped > 0 {
		logger := logging.GetLogger("table")
		logger.Debug().
			Int("skipped", skipped).
			Msg("skipped epsilon rows in deterministic table")
	}
	return automaton.NewDFA(transitions, accept)
}

// DFARows returns the DFA's transitions as table rows, in the construction's
// discovery order.
func DFARows(d *automaton.DFA) []Row {
	transitions := d.Transitions()
	rows := make([]Row, 0, len(transitions))
	for _, t := range transitions {
		rows = append(rows, Row{From: t.From, Input: string(t.Symbol), To: t.To})
	}
	return rows
}

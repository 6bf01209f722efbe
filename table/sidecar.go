package table

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/automata-kit/automaton"
)

// AcceptPair is one [state, label] element of an accept-state side file.
// The JSON form is a two-element array, not an object.
type AcceptPair struct {
	State int
	Label string
}

func (p AcceptPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.State, p.Label})
}

func (p *AcceptPair) UnmarshalJSON(data []byte) error {
	var parts []any
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("accept pair: want [state, label], got %d elements", len(parts))
	}

	switch v := parts[0].(type) {
	case float64:
		p.State = int(v)
	case string:
		// Hand-edited files sometimes quote the id.
		state, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("accept pair: state %q is not an integer", v)
		}
		p.State = state
	default:
		return fmt.Errorf("accept pair: state has type %T", parts[0])
	}

	label, ok := parts[1].(string)
	if !ok {
		return fmt.Errorf("accept pair: label has type %T", parts[1])
	}
	p.Label = label
	return nil
}

// Markers lists the initial and final state ids derived from a visual-editor
// document's marker nodes.
type Markers struct {
	Initial []int `json:"initial"`
	Final   []int `json:"final"`
}

// WriteMarkers writes markers as an indented JSON object.
func WriteMarkers(w io.Writer, m Markers) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(m)
}

// Sidecar is the decoded accept-state side file: the optional initial state
// ids plus the accept mapping built from the [state, label] pairs under
// "final".
type Sidecar struct {
	Initial []int
	Accept  map[int]string
}

// ReadSidecar reads an accept-state side file — a JSON object with an
// "initial" id list and a "final" list of [state, label] pairs.
func ReadSidecar(r io.Reader) (Sidecar, error) {
	var doc struct {
		Initial []json.Number `json:"initial"`
		Final   []AcceptPair  `json:"final"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Sidecar{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	sc := Sidecar{Accept: make(map[int]string, len(doc.Final))}
	for _, id := range doc.Initial {
		state, err := strconv.Atoi(id.String())
		if err != nil {
			return Sidecar{}, fmt.Errorf("%w: initial state %q is not an integer", ErrFormat, id.String())
		}
		sc.Initial = append(sc.Initial, state)
	}
	for _, pair := range doc.Final {
		sc.Accept[pair.State] = pair.Label
	}
	return sc, nil
}

// ReadSidecarFile reads an accept-state side file from path.
func ReadSidecarFile(path string) (Sidecar, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sidecar{}, err
	}
	defer f.Close()
	return ReadSidecar(f)
}

// ReadAcceptPairs reads a bare JSON list of [state, label] pairs, the shape
// WriteAcceptPairs produces.
func ReadAcceptPairs(r io.Reader) ([]AcceptPair, error) {
	var pairs []AcceptPair
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return pairs, nil
}

// ReadAcceptPairsFile reads a [state, label] pair list from path.
func ReadAcceptPairsFile(path string) ([]AcceptPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAcceptPairs(f)
}

// DFAAcceptPairs returns the DFA's accept states as [state, label] pairs in
// discovery order.
func DFAAcceptPairs(d *automaton.DFA) []AcceptPair {
	states := d.AcceptStates()
	pairs := make([]AcceptPair, 0, len(states))
	for _, state := range states {
		label, _ := d.AcceptLabel(state)
		pairs = append(pairs, AcceptPair{State: state, Label: label})
	}
	return pairs
}

// WriteAcceptPairs writes pairs as a JSON list of [state, label] lists.
func WriteAcceptPairs(w io.Writer, pairs []AcceptPair) error {
	if pairs == nil {
		pairs = []AcceptPair{}
	}
	return json.NewEncoder(w).Encode(pairs)
}

// WriteAcceptPairsFile writes pairs to path.
func WriteAcceptPairsFile(path string, pairs []AcceptPair) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteAcceptPairs(f, pairs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

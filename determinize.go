package automaton

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/automata-kit/automaton/internal/logging"
)

// DefaultDeterminizeStateLimit Maximum number of DFA states subset
// construction will discover before failing. Worst case state count is
// exponential in the number of NFA states, so the bound fails fast instead
// of exhausting memory.
const DefaultDeterminizeStateLimit = 10000

// ErrTooManyStates is returned when determinization exceeds its state limit.
var ErrTooManyStates = errors.New("too many DFA states")

// Determinize converts n into an equivalent DFA with
// DefaultDeterminizeStateLimit as the state bound.
func Determinize(n *NFA) (*DFA, error) {
	return DeterminizeLimit(n, DefaultDeterminizeStateLimit)
}

// DeterminizeLimit Converts n into an equivalent DFA using the subset
// construction, preserving accept labels. The produced DFA's state 0 is the
// epsilon closure of the NFA start state; further states are numbered in
// discovery order, which is BFS queue order crossed with sorted alphabet
// order, so two runs over the same NFA produce identical DFAs. Unreachable
// NFA states are silently excluded. An NFA with an empty alphabet or no
// outgoing transitions is not an error; it yields a single-state DFA.
func DeterminizeLimit(n *NFA, stateLimit int) (*DFA, error) {
	alphabet := n.Alphabet()
	acceptBits := n.acceptStates()

	d := newDFA()

	startSet := NewStateSet(n.Start())
	epsilonClosure(n, startSet)

	// The sets slice is the arena of discovered subsets; newState maps each
	// frozen canonical set to its index in the arena, which is the DFA id.
	newState := NewHashMap[int](WithCapacity(1))
	sets := make([][]int, 0)

	start := d.createState()
	sets = append(sets, startSet.GetArray())
	newState.Set(startSet.Freeze(start), start)
	if label, ok := mergeAcceptLabels(n, acceptBits, sets[start]); ok {
		d.setAccept(start, label)
	}

	queue := []int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, symbol := range alphabet {
			reached := Move(n, sets[current], symbol)
			if len(reached) == 0 {
				// Implicit reject: no transition recorded.
				continue
			}

			closed := NewStateSet(reached...)
			epsilonClosure(n, closed)

			next, ok := newState.Get(closed.Freeze(d.NumStates()))
			if !ok {
				if d.NumStates() >= stateLimit {
					return nil, fmt.Errorf("determinize: %w (limit %d)", ErrTooManyStates, stateLimit)
				}
				next = d.createState()
				sets = append(sets, closed.GetArray())
				newState.Set(closed.Freeze(next), next)
				if label, ok := mergeAcceptLabels(n, acceptBits, sets[next]); ok {
					d.setAccept(next, label)
				}
				queue = append(queue, next)
			}
			d.addTransition(current, symbol, next)
		}
	}

	logger := logging.GetLogger("determinize")
	logger.Debug().
		Int("alphabet", len(alphabet)).
		Int("dfaStates", d.NumStates()).
		Int("dfaTransitions", d.NumTransitions()).
		Int("dfaAccept", len(d.accept)).
		Msg("subset construction finished")

	return d, nil
}

// mergeAcceptLabels combines the labels of the accept states contained in
// states, joined with ", " in ascending state-id order. The order is explicit
// because the joined label is externally observable output; it must not
// depend on any set's internal iteration order. ok is false when states
// contains no accept state. states must already be sorted ascending.
func mergeAcceptLabels(n *NFA, accept *bitset.BitSet, states []int) (string, bool) {
	var labels []string
	for _, state := range states {
		if accept.Test(uint(state)) {
			label, _ := n.AcceptLabel(state)
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		return "", false
	}
	return strings.Join(labels, ", "), true
}

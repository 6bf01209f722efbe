package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Input is the label read by an NFA transition: either a single symbol, or
// epsilon for a transition that consumes no input. Epsilon is never part of
// the alphabet. Build values with On or Epsilon; the zero value behaves like
// On(0), which is almost certainly not what you want.
type Input struct {
	symbol rune
	eps    bool
}

// On returns the Input reading the given symbol.
func On(symbol rune) Input {
	return Input{symbol: symbol}
}

// Epsilon returns the empty-input Input.
func Epsilon() Input {
	return Input{eps: true}
}

// IsEpsilon reports whether this Input is the empty input.
func (in Input) IsEpsilon() bool {
	return in.eps
}

// Symbol returns the symbol read by this Input. Only meaningful when
// IsEpsilon is false.
func (in Input) Symbol() rune {
	return in.symbol
}

func (in Input) String() string {
	if in.eps {
		return "ε"
	}
	return string(in.symbol)
}

// NFA Represents a nondeterministic finite automaton. States are non-negative
// integers; a (state, Input) pair may have any number of target states, and
// epsilon transitions are permitted. Accept states carry an opaque string
// label which survives determinization. An NFA is built once with
// AddTransition/SetAccept and is read-only for the lifetime of any
// determinization run over it.
type NFA struct {
	start    int
	edges    map[int]map[Input][]int
	accept   map[int]string
	maxState int
}

// NewNFA returns an empty NFA with the given start state.
func NewNFA(start int) *NFA {
	n := &NFA{
		start:  start,
		edges:  make(map[int]map[Input][]int),
		accept: make(map[int]string),
	}
	n.sawState(start)
	return n
}

// Start returns the start state.
func (n *NFA) Start() int {
	return n.start
}

// AddTransition Adds a transition from from to to reading in. A duplicate
// transition is recorded again and counted by NumTransitions; traversal
// dedupes targets, so duplicates never change the language.
func (n *NFA) AddTransition(from int, in Input, to int) {
	m, ok := n.edges[from]
	if !ok {
		m = make(map[Input][]int)
		n.edges[from] = m
	}
	m[in] = append(m[in], to)
	n.sawState(from)
	n.sawState(to)
}

// SetAccept Marks state as an accept state with the given label. A later call
// for the same state replaces the label. A negative state id is ignored;
// states are non-negative and the accept bitset cannot index a negative id.
func (n *NFA) SetAccept(state int, label string) {
	if state < 0 {
		return
	}
	n.accept[state] = label
	n.sawState(state)
}

// AcceptLabel returns the label of state and whether state is accepting.
// A state absent from the accept mapping is simply non-accepting.
func (n *NFA) AcceptLabel(state int) (string, bool) {
	label, ok := n.accept[state]
	return label, ok
}

// Targets returns the transition targets for (from, in), nil when there is no
// such transition. The returned slice is owned by the NFA; do not mutate it.
func (n *NFA) Targets(from int, in Input) []int {
	return n.edges[from][in]
}

// NumTransitions How many transitions this NFA has.
func (n *NFA) NumTransitions() int {
	count := 0
	for _, m := range n.edges {
		for _, targets := range m {
			count += len(targets)
		}
	}
	return count
}

// MaxState returns the largest state id mentioned by any transition, accept
// marker, or the start state. Used to size visited bitsets.
func (n *NFA) MaxState() int {
	return n.maxState
}

func (n *NFA) sawState(state int) {
	if state > n.maxState {
		n.maxState = state
	}
}

// acceptStates Returns the accept states as a bitset sized to MaxState+1.
// If the bit is set then that state is an accept state.
func (n *NFA) acceptStates() *bitset.BitSet {
	accept := bitset.New(uint(n.maxState + 1))
	for state := range n.accept {
		accept.Set(uint(state))
	}
	return accept
}

// Transition is one deterministic transition: reading Symbol in state From
// moves to state To.
type Transition struct {
	From   int
	Symbol rune
	To     int
}

type stepKey struct {
	state  int
	symbol rune
}

// DFA Represents a deterministic finite automaton produced by Determinize.
// State 0 is always the start state. There is at most one transition per
// (state, symbol); a missing transition is an implicit non-accepting reject,
// no explicit dead state is materialized. Transitions are recorded in
// discovery order crossed with alphabet order, which makes serialized output
// reproducible. A DFA is immutable once construction finishes.
type DFA struct {
	numStates   int
	step        map[stepKey]int
	transitions []Transition
	accept      map[int]string
}

func newDFA() *DFA {
	return &DFA{
		step:   make(map[stepKey]int),
		accept: make(map[int]string),
	}
}

// NewDFA assembles a DFA from an explicit transition list and accept
// mapping, typically one re-read from serialized output. State 0 is the
// start state. Conflicting targets for the same (state, symbol) pair are
// rejected; exact duplicates are collapsed.
func NewDFA(transitions []Transition, accept map[int]string) (*DFA, error) {
	d := newDFA()
	maxState := 0
	for _, t := range transitions {
		if to, ok := d.step[stepKey{state: t.From, symbol: t.Symbol}]; ok {
			if to != t.To {
				return nil, fmt.Errorf("nondeterministic transition (%d, %q)", t.From, string(t.Symbol))
			}
			continue
		}
		d.addTransition(t.From, t.Symbol, t.To)
		maxState = max(maxState, t.From, t.To)
	}
	for state, label := range accept {
		d.setAccept(state, label)
		maxState = max(maxState, state)
	}
	d.numStates = maxState + 1
	return d, nil
}

// createState Create a new state. Ids are assigned monotonically, so
// assignment order is discovery order.
func (d *DFA) createState() int {
	state := d.numStates
	d.numStates++
	return state
}

func (d *DFA) setAccept(state int, label string) {
	d.accept[state] = label
}

func (d *DFA) addTransition(from int, symbol rune, to int) {
	d.step[stepKey{state: from, symbol: symbol}] = to
	d.transitions = append(d.transitions, Transition{From: from, Symbol: symbol, To: to})
}

// Start returns the start state, always 0.
func (d *DFA) Start() int {
	return 0
}

// NumStates How many states this DFA has.
func (d *DFA) NumStates() int {
	return d.numStates
}

// NumTransitions How many transitions this DFA has.
func (d *DFA) NumTransitions() int {
	return len(d.transitions)
}

// Transitions returns all transitions in discovery order crossed with
// alphabet order. The returned slice is owned by the DFA; do not mutate it.
func (d *DFA) Transitions() []Transition {
	return d.transitions
}

// AcceptLabel returns the merged label of state and whether state is
// accepting.
func (d *DFA) AcceptLabel(state int) (string, bool) {
	label, ok := d.accept[state]
	return label, ok
}

// AcceptStates returns the accepting states in ascending id order, which for
// a DFA built here is also discovery order.
func (d *DFA) AcceptStates() []int {
	states := make([]int, 0, len(d.accept))
	for state := 0; state < d.numStates; state++ {
		if _, ok := d.accept[state]; ok {
			states = append(states, state)
		}
	}
	return states
}

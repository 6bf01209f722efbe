package automaton

// Step Performs one transition lookup. Returns the destination state, -1 if
// there is no matching outgoing transition (the implicit reject state).
func (d *DFA) Step(state int, symbol rune) int {
	next, ok := d.step[stepKey{state: state, symbol: symbol}]
	if !ok {
		return -1
	}
	return next
}

// Run feeds s through the DFA from the start state and returns the accept
// label of the state it ends in. ok is false if any symbol has no transition
// or the final state is not accepting.
func Run(d *DFA, s string) (string, bool) {
	state := d.Start()
	for _, v := range s {
		nextState := d.Step(state, v)
		if nextState == -1 {
			return "", false
		}
		state = nextState
	}
	return d.AcceptLabel(state)
}

package automaton

// Closure returns the epsilon closure of states: every state reachable from
// a member of states using only epsilon transitions, the members included.
// The result is sorted ascending. Closure is idempotent, and epsilon cycles
// terminate because each state is pushed at most once.
func Closure(n *NFA, states []int) []int {
	set := NewStateSet(states...)
	epsilonClosure(n, set)
	return set.GetArray()
}

// epsilonClosure expands set in place until no epsilon transition from a
// member leads outside the set.
func epsilonClosure(n *NFA, set *StateSet) {
	workList := append(make([]int, 0, set.Size()), set.GetArray()...)

	eps := Epsilon()
	for len(workList) > 0 {
		state := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		for _, dest := range n.Targets(state, eps) {
			if set.Add(dest) {
				workList = append(workList, dest)
			}
		}
	}
}

// Move returns the union of the transition targets for (s, symbol) over all
// states s in states, sorted ascending, or nil when no state in states moves
// on symbol. No closure is applied; the caller composes Move with Closure.
func Move(n *NFA, states []int, symbol rune) []int {
	set := NewStateSet()
	in := On(symbol)
	for _, state := range states {
		for _, dest := range n.Targets(state, in) {
			set.Add(dest)
		}
	}
	if set.Size() == 0 {
		return nil
	}
	return set.GetArray()
}

package automaton

import "slices"

// Alphabet returns the sorted set of symbols appearing on any non-epsilon
// transition. The ordering is fixed (ascending rune value) because it drives
// the discovery order of DFA states during determinization, and DFA state
// numbering is externally observable output.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]struct{})
	for _, m := range n.edges {
		for in := range m {
			if in.IsEpsilon() {
				continue
			}
			seen[in.Symbol()] = struct{}{}
		}
	}

	alphabet := make([]rune, 0, len(seen))
	for symbol := range seen {
		alphabet = append(alphabet, symbol)
	}
	slices.Sort(alphabet)
	return alphabet
}

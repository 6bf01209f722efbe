package automaton

import "slices"

// IntSet is a set of NFA state ids usable as a discovery-map key.
type IntSet interface {
	Hashable

	// GetArray returns the member ids sorted ascending. This canonical order
	// is what makes two equal sets compare equal regardless of how they were
	// assembled.
	GetArray() []int

	Size() int
}

var _ IntSet = &StateSet{}

// StateSet is a mutable set of NFA state ids, accumulated while computing
// epsilon closures. Freeze it to get the immutable canonical key stored in
// the determinization discovery map.
type StateSet struct {
	inner       map[int]struct{}
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(states ...int) *StateSet {
	s := &StateSet{
		inner: make(map[int]struct{}),
	}
	for _, state := range states {
		s.Add(state)
	}
	return s
}

// Hash is order-independent: the mixed ids are summed, so insertion order
// cannot leak into the hash.
func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for state := range s.inner {
		s.hashCode += uint64(mix(state))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if s.Hash() != is.Hash() {
		return false
	}
	return slices.Equal(s.GetArray(), is.GetArray())
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) Has(state int) bool {
	_, ok := s.inner[state]
	return ok
}

// Add inserts state and reports whether it was newly added.
func (s *StateSet) Add(state int) bool {
	if _, ok := s.inner[state]; ok {
		return false
	}
	s.inner[state] = struct{}{}
	s.keyChanged()
	return true
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Freeze returns the immutable canonical form of this set, remembering the
// DFA state id it was frozen for.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return &FrozenIntSet{values: s.GetArray(), state: state, hashCode: s.Hash()}
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable, hashable set of NFA state ids: a sorted id
// array plus a precomputed hash. It is the identity of one discovered DFA
// state for the lifetime of a determinization run.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals compares hashes first and falls back to the sorted id arrays, so a
// hash collision cannot conflate two distinct subsets.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	if f.Hash() != is.Hash() {
		return false
	}
	return slices.Equal(f.values, is.GetArray())
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State returns the DFA state id this set was frozen for.
func (f *FrozenIntSet) State() int {
	return f.state
}

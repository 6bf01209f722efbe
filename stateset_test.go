package automaton

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSetCanonicalOrder(t *testing.T) {
	tests := []struct {
		name   string
		insert []int
		want   []int
	}{
		{
			name:   "Ascending insertion",
			insert: []int{1, 2, 3},
			want:   []int{1, 2, 3},
		},
		{
			name:   "Descending insertion",
			insert: []int{3, 2, 1},
			want:   []int{1, 2, 3},
		},
		{
			name:   "Duplicates collapse",
			insert: []int{5, 5, 1, 5},
			want:   []int{1, 5},
		},
		{
			name:   "Empty",
			insert: nil,
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStateSet(tt.insert...)
			if got := s.GetArray(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetArray mismatch: got %v, want %v", got, tt.want)
			}
			if s.Size() != len(tt.want) {
				t.Errorf("Size mismatch: got %d, want %d", s.Size(), len(tt.want))
			}
		})
	}
}

func TestStateSetHashOrderIndependent(t *testing.T) {
	a := NewStateSet(1, 2, 3)
	b := NewStateSet(3, 1, 2)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equals(b))
}

func TestStateSetAdd(t *testing.T) {
	s := NewStateSet()
	assert.True(t, s.Add(7))
	assert.False(t, s.Add(7))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(8))

	// Hash must track mutation.
	before := s.Hash()
	s.Add(8)
	assert.NotEqual(t, before, s.Hash())
}

func TestFreeze(t *testing.T) {
	s := NewStateSet(4, 2, 2, 9)
	f := s.Freeze(3)

	assert.Equal(t, []int{2, 4, 9}, f.GetArray())
	assert.Equal(t, 3, f.Size())
	assert.Equal(t, 3, f.State())
	assert.Equal(t, s.Hash(), f.Hash())
	assert.True(t, f.Equals(s))
	assert.True(t, s.Equals(f))
}

func TestFrozenIntSetEquals(t *testing.T) {
	t.Run("equalSetsDifferentStates", func(t *testing.T) {
		// The frozen-for DFA id is bookkeeping, not identity.
		a := NewStateSet(1, 2).Freeze(0)
		b := NewStateSet(2, 1).Freeze(5)
		assert.True(t, a.Equals(b))
	})

	t.Run("hashCollisionIsNotEquality", func(t *testing.T) {
		a := NewFrozenIntSet([]int{1, 2}, 42, 0)
		b := NewFrozenIntSet([]int{3}, 42, 0)
		assert.False(t, a.Equals(b))
	})

	t.Run("differentType", func(t *testing.T) {
		a := NewStateSet(1).Freeze(0)
		assert.False(t, a.Equals(testKey{part1: 1}))
	})
}

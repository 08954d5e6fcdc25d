// Package sparse provides a sparse set data structure for sets of small
// dense integers, used throughout the NFA/DFA construction pipeline to track
// state-index membership without allocating a map per ε-closure.
package sparse

import "sort"

// Set is a set of uint32 values with O(1) insertion and membership testing.
// It maintains a dense array (for iteration and sorting) alongside a sparse
// array (value -> index in dense), the classic Briggs/Torczon sparse-set
// layout. The universe of values must be known ahead of time (here: the
// number of states in an NFA arena).
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSet creates an empty Set over the value range [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. A no-op if value is already present.
// Panics if value >= the set's capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// Values returns the set's members in insertion order. The returned slice
// aliases the set's internal storage and is only valid until the next
// mutating call.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}

// SortedValues returns the set's members sorted ascending. Used to derive a
// canonical identifier for a set of NFA state indices: two sets with the
// same membership must produce the same sorted slice regardless of the
// order their elements were discovered or inserted in.
func (s *Set) SortedValues() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

package automata

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// IntSet is a set of state indices that can be used as a HashMap key.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &StateSet{}

// StateSet is a mutable set of state indices, where an index is the position of the state
// in Automaton.States.
type StateSet struct {
	bits *bitset.BitSet
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{bits: bitset.New(uint(numStates))}
}

// Add Adds state to the set, returning false if it was already present.
func (s *StateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	return true
}

func (s *StateSet) Contains(state int) bool {
	return s.bits.Test(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

// Intersects Returns true if any member of the set is also set in other.
func (s *StateSet) Intersects(other *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(other) > 0
}

// GetArray Returns the members in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

// Hash Same members will always have the same hashCode.
func (s *StateSet) Hash() uint64 {
	hashCode := uint64(s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		hashCode += mix32(int(i))
	}
	return hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	switch o := other.(type) {
	case *StateSet:
		return o != nil && sameMembers(s.bits, o.bits)
	case *FrozenStateSet:
		return o != nil && sameMembers(s.bits, o.bits)
	}
	return false
}

// sameMembers ignores the lengths of the bitsets, only set bits matter.
func sameMembers(a, b *bitset.BitSet) bool {
	return a.SymmetricDifferenceCardinality(b) == 0
}

// Freeze Returns an immutable copy of the set, named after the given state names.
func (s *StateSet) Freeze(names []string) *FrozenStateSet {
	values := s.GetArray()
	members := make([]string, len(values))
	for i, v := range values {
		members[i] = names[v]
	}
	return &FrozenStateSet{
		values:   values,
		bits:     s.bits.Clone(),
		name:     CanonicalName(members),
		hashCode: s.Hash(),
	}
}

const (
	nameOpen      = '{'
	nameClose     = '}'
	nameSeparator = ','
	nameEscape    = '\\'
)

// CanonicalName Returns the name of the DFA state standing for the given set of states.
//
// Members are sorted, the separator and escape characters inside a member are escaped, and
// the result is joined with ',' and wrapped in braces, e.g. {q0,q1}. Two sets get the same
// name iff they have the same members, and the name never contains whitespace.
func CanonicalName(states []string) string {
	sorted := slices.Clone(states)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	b := new(strings.Builder)
	b.WriteByte(nameOpen)
	for i, state := range sorted {
		if i > 0 {
			b.WriteByte(nameSeparator)
		}
		for _, r := range state {
			if r == nameSeparator || r == nameEscape {
				b.WriteByte(nameEscape)
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(nameClose)
	return b.String()
}

package automata

import (
	"github.com/bits-and-blooms/bitset"
)

var _ IntSet = &FrozenStateSet{}

// FrozenStateSet is an immutable set of state indices together with its canonical name.
// It is the identity of a DFA state during subset construction.
type FrozenStateSet struct {
	values   []int
	bits     *bitset.BitSet
	name     string
	hashCode uint64
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hashCode
}

// Equals Two frozen sets are equal when their canonical names are.
func (f *FrozenStateSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenStateSet)
	if !ok {
		if s, ok := other.(*StateSet); ok && f != nil && s != nil {
			return sameMembers(f.bits, s.bits)
		}
		return false
	}
	if f == nil || o == nil {
		return f == nil && o == nil
	}
	return f.name == o.name
}

func (f *FrozenStateSet) GetArray() []int {
	return f.values
}

func (f *FrozenStateSet) Size() int {
	return len(f.values)
}

// Name Returns the canonical name, see CanonicalName.
func (f *FrozenStateSet) Name() string {
	return f.name
}

// Intersects Returns true if any member of the set is also set in other.
func (f *FrozenStateSet) Intersects(other *bitset.BitSet) bool {
	return f.bits.IntersectionCardinality(other) > 0
}

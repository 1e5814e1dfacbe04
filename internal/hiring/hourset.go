package hiring

import "math/bits"

// hourSet is a bitset over hour indexes assigned by an hourIndex.
type hourSet []uint64

func (s hourSet) union(o hourSet) hourSet {
	out := make(hourSet, len(s))
	for i := range s {
		out[i] = s[i] | o[i]
	}
	return out
}

func (s hourSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// hourIndex maps every hour seen in a search to a bit position.
type hourIndex struct {
	bits  map[int]int
	words int
}

func newHourIndex(lists ...*CandidateList) *hourIndex {
	idx := &hourIndex{bits: make(map[int]int)}
	for _, l := range lists {
		for _, c := range l.Items() {
			for _, h := range c.hours {
				if _, ok := idx.bits[h]; !ok {
					idx.bits[h] = len(idx.bits)
				}
			}
		}
	}
	idx.words = (len(idx.bits) + 63) / 64
	return idx
}

func (idx *hourIndex) empty() hourSet {
	return make(hourSet, idx.words)
}

func (idx *hourIndex) set(candidates ...*Candidate) hourSet {
	s := idx.empty()
	for _, c := range candidates {
		for _, h := range c.hours {
			b := idx.bits[h]
			s[b/64] |= 1 << (b % 64)
		}
	}
	return s
}

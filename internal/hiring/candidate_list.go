package hiring

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned by CandidateList.Get for an index outside the list.
var ErrIndexOutOfRange = errors.New("index out of range")

// CandidateList is an ordered list of candidates.
// The zero value is an empty list ready to use.
type CandidateList struct {
	items []*Candidate
}

// NewCandidateList returns a list holding the given candidates in order.
func NewCandidateList(candidates ...*Candidate) *CandidateList {
	return &CandidateList{items: slices.Clone(candidates)}
}

// Add appends the candidate to the end of the list.
func (l *CandidateList) Add(c *Candidate) {
	l.items = append(l.items, c)
}

// Remove deletes the first occurrence of the candidate and reports whether it was found.
func (l *CandidateList) Remove(c *Candidate) bool {
	idx := slices.Index(l.items, c)
	if idx < 0 {
		return false
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return true
}

// Get returns the candidate at index i or ErrIndexOutOfRange.
func (l *CandidateList) Get(i int) (*Candidate, error) {
	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("get candidate %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	return l.items[i], nil
}

func (l *CandidateList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

func (l *CandidateList) IsEmpty() bool { return l.Len() == 0 }

func (l *CandidateList) Contains(c *Candidate) bool {
	return slices.Contains(l.items, c)
}

// Items returns a copy of the underlying slice.
func (l *CandidateList) Items() []*Candidate {
	if l == nil {
		return nil
	}
	return slices.Clone(l.items)
}

// Coverage returns the number of distinct hours covered by the members of the list.
// It is recomputed on every call.
func (l *CandidateList) Coverage() int {
	if l == nil {
		return 0
	}
	covered := make(map[int]struct{})
	for _, c := range l.items {
		for _, h := range c.hours {
			covered[h] = struct{}{}
		}
	}
	return len(covered)
}

// Hours returns the sorted union of the hours covered by the members of the list.
func (l *CandidateList) Hours() []int {
	if l == nil {
		return nil
	}
	var hours []int
	for _, c := range l.items {
		hours = append(hours, c.hours...)
	}
	slices.Sort(hours)
	return slices.Compact(hours)
}

// TotalPay returns the sum of the pay rates of the members of the list.
func (l *CandidateList) TotalPay() float64 {
	if l == nil {
		return 0
	}
	total := 0.0
	for _, c := range l.items {
		total += c.payRate
	}
	return total
}

func (l *CandidateList) IDs() []string {
	ids := make([]string, 0, l.Len())
	for _, c := range l.Items() {
		ids = append(ids, c.id)
	}
	return ids
}

// DeepCopy returns a new list with the same candidates. Changing the membership
// of the copy never affects the original.
func (l *CandidateList) DeepCopy() *CandidateList {
	if l == nil {
		return &CandidateList{}
	}
	return &CandidateList{items: slices.Clone(l.items)}
}

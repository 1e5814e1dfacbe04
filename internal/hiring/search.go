package hiring

import (
	"slices"

	"github.com/golang-collections/collections/stack"
)

// Stats describes how much work a search did.
type Stats struct {
	// Nodes is the number of search nodes expanded (rounds for the greedy search).
	Nodes int
	// Leaves is the number of selections whose coverage was evaluated: complete
	// selections for the exact searches, tentative picks for the greedy search.
	Leaves int
	// Pruned is the number of branches skipped because they could not beat the best selection.
	Pruned int
}

// space is the indexed form of a pool used by the exact searches.
type space struct {
	pool   []*Candidate
	hired  *CandidateList
	masks  []hourSet
	suffix []hourSet // suffix[i] is the union of masks[i:]
	base   hourSet
}

func newSpace(pool, hired *CandidateList) *space {
	idx := newHourIndex(pool, hired)
	items := pool.Items()

	s := &space{
		pool:   items,
		hired:  hired.DeepCopy(),
		masks:  make([]hourSet, len(items)),
		suffix: make([]hourSet, len(items)+1),
		base:   idx.set(hired.Items()...),
	}

	s.suffix[len(items)] = idx.empty()
	for i := len(items) - 1; i >= 0; i-- {
		s.masks[i] = idx.set(items[i])
		s.suffix[i] = s.suffix[i+1].union(s.masks[i])
	}

	return s
}

// frame is a node of the depth-first search: a selection of pool indexes in increasing order.
type frame struct {
	parent *frame
	index  int // pool index picked by this frame, -1 for the root
	next   int // first pool index the children may pick
	size   int
	cost   float64
	union  hourSet
}

func (s *space) root() *frame {
	return &frame{index: -1, union: s.base, cost: s.hired.TotalPay()}
}

func (s *space) child(f *frame, i int) *frame {
	return &frame{
		parent: f,
		index:  i,
		next:   i + 1,
		size:   f.size + 1,
		cost:   f.cost + s.pool[i].payRate,
		union:  f.union.union(s.masks[i]),
	}
}

// reachable returns the coverage of the frame's selection plus every candidate it may still pick.
func (s *space) reachable(f *frame) int {
	return f.union.union(s.suffix[f.next]).count()
}

func (s *space) exhausted(f *frame) bool {
	return f.next >= len(s.pool)
}

// selection converts the frame into the hired list followed by the picked candidates in pool order.
func (s *space) selection(f *frame) *CandidateList {
	var picked []int
	for ; f != nil && f.index >= 0; f = f.parent {
		picked = append(picked, f.index)
	}
	slices.Reverse(picked)

	out := s.hired.DeepCopy()
	for _, i := range picked {
		out.Add(s.pool[i])
	}
	return out
}

// visit walks the search tree depth first, children in pool order. expand is called
// for every node and returns false when the node must not be expanded further.
func (s *space) visit(expand func(f *frame) bool) {
	frames := stack.New()
	frames.Push(s.root())

	for frames.Len() > 0 {
		f := frames.Pop().(*frame)
		if !expand(f) {
			continue
		}
		for i := len(s.pool) - 1; i >= f.next; i-- {
			frames.Push(s.child(f, i))
		}
	}
}

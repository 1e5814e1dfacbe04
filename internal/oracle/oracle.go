// Package oracle enumerates every subset of a candidate pool to find all optimal
// selections. It is far slower than the hiring searches and is used to verify them.
package oracle

import (
	"math"

	"github.com/spigell/hh-planner/internal/hiring"
)

// AllOptimal returns every subset of pool with min(hires, pool size) members whose coverage is maximal.
func AllOptimal(pool *hiring.CandidateList, hires int) []*hiring.CandidateList {
	size := min(hires, pool.Len())
	if size < 0 {
		return nil
	}

	var (
		best     []*hiring.CandidateList
		coverage = -1
	)
	subsets(pool.Items(), func(subset *hiring.CandidateList) {
		if subset.Len() != size {
			return
		}
		switch c := subset.Coverage(); {
		case c > coverage:
			coverage = c
			best = []*hiring.CandidateList{subset}
		case c == coverage:
			best = append(best, subset)
		}
	})
	return best
}

// AllMinCost returns every subset of pool with the lowest total pay among those
// covering at least minHours. It returns nil when no subset reaches minHours.
func AllMinCost(pool *hiring.CandidateList, minHours float64) []*hiring.CandidateList {
	var (
		best []*hiring.CandidateList
		cost = math.Inf(1)
	)
	subsets(pool.Items(), func(subset *hiring.CandidateList) {
		if float64(subset.Coverage()) < minHours {
			return
		}
		switch pay := subset.TotalPay(); {
		case pay < cost:
			cost = pay
			best = []*hiring.CandidateList{subset}
		case pay == cost:
			best = append(best, subset)
		}
	})
	return best
}

// Contains reports whether one of the solutions has exactly the members of list, in any order.
func Contains(solutions []*hiring.CandidateList, list *hiring.CandidateList) bool {
	for _, s := range solutions {
		if sameMembers(s, list) {
			return true
		}
	}
	return false
}

func sameMembers(a, b *hiring.CandidateList) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, c := range a.Items() {
		if !b.Contains(c) {
			return false
		}
	}
	return true
}

func subsets(items []*hiring.Candidate, fn func(*hiring.CandidateList)) {
	n := len(items)
	for mask := 0; mask < 1<<n; mask++ {
		subset := hiring.NewCandidateList()
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset.Add(items[i])
			}
		}
		fn(subset)
	}
}

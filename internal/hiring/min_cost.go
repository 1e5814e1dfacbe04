package hiring

import (
	"errors"
	"math"
)

// ErrNoSolution is returned by MinCost when the whole pool cannot reach the requested coverage.
var ErrNoSolution = errors.New("no selection reaches the requested coverage")

// MinCost hires the cheapest set of candidates from pool that brings the coverage
// of hired to at least minHours. Selections are explored depth first in pool order
// and the first one with the lowest total pay is returned.
//
// A NaN or infinite minHours hires nobody. ErrNoSolution is returned when even
// hiring the whole pool stays below minHours.
func MinCost(pool, hired *CandidateList, minHours float64) (*CandidateList, error) {
	result, _, err := minCost(pool, hired, minHours)
	return result, err
}

func minCost(pool, hired *CandidateList, minHours float64) (*CandidateList, Stats, error) {
	var stats Stats
	if math.IsNaN(minHours) || math.IsInf(minHours, 0) {
		return hired.DeepCopy(), stats, nil
	}

	if float64(hired.Coverage()) >= minHours {
		return hired.DeepCopy(), stats, nil
	}

	s := newSpace(pool, hired)
	if float64(s.suffix[0].union(s.base).count()) < minHours {
		return nil, stats, ErrNoSolution
	}
	need := int(math.Ceil(minHours))

	var best *frame

	s.visit(func(f *frame) bool {
		stats.Nodes++

		if f.union.count() >= need {
			stats.Leaves++
			if best == nil || f.cost < best.cost {
				best = f
			}
			return false
		}

		if s.exhausted(f) {
			return false
		}

		if (best != nil && f.cost >= best.cost) || s.reachable(f) < need {
			stats.Pruned++
			return false
		}

		return true
	})

	return s.selection(best), stats, nil
}

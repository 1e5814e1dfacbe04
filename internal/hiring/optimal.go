package hiring

// Optimal hires at most hiresLeft candidates from pool so that the coverage of
// hired plus the new hires is as large as possible. Selections are explored depth
// first in pool order and the first one reaching the best coverage is returned.
// The search is exponential in the size of the pool.
func Optimal(pool, hired *CandidateList, hiresLeft int) *CandidateList {
	result, _ := optimal(pool, hired, hiresLeft)
	return result
}

func optimal(pool, hired *CandidateList, hiresLeft int) (*CandidateList, Stats) {
	var stats Stats
	if hiresLeft <= 0 || pool.IsEmpty() {
		return hired.DeepCopy(), stats
	}

	s := newSpace(pool, hired)

	var best *frame
	bestCoverage := -1

	s.visit(func(f *frame) bool {
		stats.Nodes++

		if f.size == hiresLeft || s.exhausted(f) {
			stats.Leaves++
			if coverage := f.union.count(); coverage > bestCoverage {
				bestCoverage = coverage
				best = f
			}
			return false
		}

		if best != nil && s.reachable(f) <= bestCoverage {
			stats.Pruned++
			return false
		}

		return true
	})

	return s.selection(best), stats
}

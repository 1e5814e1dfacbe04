package hiring

// Greedy hires up to hiresLeft candidates from pool, one per round, each time
// picking the candidate that increases coverage the most. Earlier candidates win ties.
// A round where nobody increases coverage hires nobody but still uses up a hire.
// Neither pool nor hired is modified.
func Greedy(pool, hired *CandidateList, hiresLeft int) *CandidateList {
	result, _ := greedy(pool, hired, hiresLeft)
	return result
}

func greedy(pool, hired *CandidateList, hiresLeft int) (*CandidateList, Stats) {
	var stats Stats

	remaining := pool.DeepCopy()
	selected := hired.DeepCopy()

	for ; hiresLeft > 0 && !remaining.IsEmpty(); hiresLeft-- {
		stats.Nodes++

		var best *Candidate
		bestCoverage := selected.Coverage()

		working := selected.DeepCopy()
		for _, c := range remaining.items {
			stats.Leaves++
			working.Add(c)
			if coverage := working.Coverage(); coverage > bestCoverage {
				bestCoverage = coverage
				best = c
			}
			working.Remove(c)
		}

		if best == nil {
			continue
		}

		selected.Add(best)
		remaining.Remove(best)
	}

	return selected, stats
}

package hiring_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/spigell/hh-planner/internal/hiring"
	"github.com/spigell/hh-planner/internal/oracle"
	"github.com/spigell/hh-planner/internal/pool"
)

func candidate(t *testing.T, id string, pay float64, hours ...int) *hiring.Candidate {
	t.Helper()
	c, err := hiring.NewCandidate(id, "", pay, hours)
	if err != nil {
		t.Fatalf("creating candidate %s: %v", id, err)
	}
	return c
}

// scenario returns A{10: 1,2}, B{5: 2,3}, C{8: 4}.
func scenario(t *testing.T) (a, b, c *hiring.Candidate, list *hiring.CandidateList) {
	a = candidate(t, "A", 10, 1, 2)
	b = candidate(t, "B", 5, 2, 3)
	c = candidate(t, "C", 8, 4)
	return a, b, c, hiring.NewCandidateList(a, b, c)
}

func assertMembers(t *testing.T, got *hiring.CandidateList, want ...*hiring.Candidate) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("expected %d candidates, got %v", len(want), got.IDs())
	}
	for i, w := range want {
		c, _ := got.Get(i)
		if c != w {
			t.Fatalf("expected %v, got %v", hiring.NewCandidateList(want...).IDs(), got.IDs())
		}
	}
}

func TestGreedy(t *testing.T) {
	a, b, _, list := scenario(t)

	got := hiring.Greedy(list, hiring.NewCandidateList(), 2)
	assertMembers(t, got, a, b)
	if got.Coverage() != 3 {
		t.Fatalf("expected coverage 3, got %d", got.Coverage())
	}

	if list.Len() != 3 {
		t.Fatalf("pool was modified: %v", list.IDs())
	}
}

func TestGreedyBudget(t *testing.T) {
	_, _, _, list := scenario(t)

	if got := hiring.Greedy(list, hiring.NewCandidateList(), 0); !got.IsEmpty() {
		t.Fatalf("expected no hires, got %v", got.IDs())
	}

	if got := hiring.Greedy(list, hiring.NewCandidateList(), -3); !got.IsEmpty() {
		t.Fatalf("expected no hires for negative budget, got %v", got.IDs())
	}

	if got := hiring.Greedy(list, hiring.NewCandidateList(), 10); got.Len() > list.Len() || got.Coverage() != 4 {
		t.Fatalf("unexpected result for large budget: %v", got.IDs())
	}
}

func TestGreedyNoImprovingCandidate(t *testing.T) {
	x := candidate(t, "X", 1, 1, 2)
	y := candidate(t, "Y", 1, 2)
	z := candidate(t, "Z", 1)
	hired := hiring.NewCandidateList(x)

	got := hiring.Greedy(hiring.NewCandidateList(y, z), hired, 3)
	assertMembers(t, got, x)

	got = hiring.Greedy(hiring.NewCandidateList(z), hiring.NewCandidateList(), 2)
	if !got.IsEmpty() {
		t.Fatalf("expected no hires, got %v", got.IDs())
	}

	if hired.Len() != 1 {
		t.Fatalf("hired list was modified")
	}
}

func TestOptimal(t *testing.T) {
	a, b, c, list := scenario(t)

	got := hiring.Optimal(list, hiring.NewCandidateList(), 2)
	if got.Len() != 2 || got.Coverage() != 3 {
		t.Fatalf("expected 2 hires covering 3 hours, got %v covering %d", got.IDs(), got.Coverage())
	}
	assertMembers(t, got, a, b)

	got = hiring.Optimal(list, hiring.NewCandidateList(), 3)
	assertMembers(t, got, a, b, c)
}

func TestOptimalRespectsBudget(t *testing.T) {
	a := candidate(t, "a", 1, 1)
	b := candidate(t, "b", 1, 2, 3, 4)
	c := candidate(t, "c", 1, 5)
	d := candidate(t, "d", 1, 6, 7)
	list := hiring.NewCandidateList(a, b, c, d)

	got := hiring.Optimal(list, hiring.NewCandidateList(), 2)
	assertMembers(t, got, b, d)

	got = hiring.Optimal(list, hiring.NewCandidateList(), 1)
	assertMembers(t, got, b)

	got = hiring.Optimal(list, hiring.NewCandidateList(), 0)
	if !got.IsEmpty() {
		t.Fatalf("expected no hires, got %v", got.IDs())
	}
}

func TestOptimalKeepsHired(t *testing.T) {
	a, _, c, list := scenario(t)
	list.Remove(c)

	got := hiring.Optimal(list, hiring.NewCandidateList(c), 1)
	if got.Coverage() != 3 {
		t.Fatalf("expected coverage 3, got %d", got.Coverage())
	}
	assertMembers(t, got, c, a)
}

func TestMinCost(t *testing.T) {
	_, b, c, list := scenario(t)

	got, err := hiring.MinCost(list, hiring.NewCandidateList(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMembers(t, got, b, c)
	if got.TotalPay() != 13 || got.Coverage() != 3 {
		t.Fatalf("expected pay 13 and coverage 3, got %v and %d", got.TotalPay(), got.Coverage())
	}

	got, err = hiring.MinCost(list, hiring.NewCandidateList(), 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMembers(t, got, b, c)

	got, err = hiring.MinCost(list, hiring.NewCandidateList(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != 3 || got.TotalPay() != 23 {
		t.Fatalf("expected the whole pool, got %v", got.IDs())
	}
}

func TestMinCostWithHired(t *testing.T) {
	_, b, c, list := scenario(t)
	list.Remove(c)

	got, err := hiring.MinCost(list, hiring.NewCandidateList(c), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMembers(t, got, c, b)
}

func TestMinCostEdgeCases(t *testing.T) {
	_, _, c, list := scenario(t)
	hired := hiring.NewCandidateList(c)

	tests := []struct {
		name     string
		pool     *hiring.CandidateList
		minHours float64
		err      error
	}{
		{name: "unreachable", pool: list, minHours: 5, err: hiring.ErrNoSolution},
		{name: "empty pool", pool: hiring.NewCandidateList(), minHours: 2, err: hiring.ErrNoSolution},
		{name: "already satisfied", pool: list, minHours: 1},
		{name: "non positive", pool: list, minHours: -2},
		{name: "nan", pool: list, minHours: math.NaN()},
		{name: "infinite", pool: list, minHours: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hiring.MinCost(tt.pool, hired, tt.minHours)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if tt.err != nil {
				return
			}
			assertMembers(t, got, c)
		})
	}
}

func TestEmptyPool(t *testing.T) {
	empty := hiring.NewCandidateList()

	if got := hiring.Greedy(empty, hiring.NewCandidateList(), 3); !got.IsEmpty() {
		t.Fatalf("greedy: expected no hires")
	}
	if got := hiring.Optimal(empty, hiring.NewCandidateList(), 3); !got.IsEmpty() {
		t.Fatalf("optimal: expected no hires")
	}
	if got, err := hiring.MinCost(empty, hiring.NewCandidateList(), 0); err != nil || !got.IsEmpty() {
		t.Fatalf("min cost: expected no hires, got %v, %v", got, err)
	}
	if _, err := hiring.MinCost(empty, hiring.NewCandidateList(), 1); !errors.Is(err, hiring.ErrNoSolution) {
		t.Fatalf("min cost: expected ErrNoSolution, got %v", err)
	}
}

func randomPool(t *testing.T, rng *rand.Rand) *hiring.CandidateList {
	t.Helper()
	list, err := pool.Generate(rng, pool.GenerateParams{
		Hours:      rng.Intn(5) + 1,
		Candidates: rng.Intn(10) + 1,
		MaxPay:     20,
	})
	if err != nil {
		t.Fatalf("generating pool: %v", err)
	}
	return list
}

func TestOptimalMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 150; i++ {
		list := randomPool(t, rng)
		hires := rng.Intn(list.Len()) + 1

		got := hiring.Optimal(list, hiring.NewCandidateList(), hires)
		if !oracle.Contains(oracle.AllOptimal(list, hires), got) {
			t.Fatalf("run %d: %v is not an optimal selection of %d hires", i, got.IDs(), hires)
		}

		greedy := hiring.Greedy(list, hiring.NewCandidateList(), hires)
		if greedy.Coverage() > got.Coverage() {
			t.Fatalf("run %d: greedy coverage %d beats optimal %d", i, greedy.Coverage(), got.Coverage())
		}
		if greedy.Len() > hires {
			t.Fatalf("run %d: greedy hired %d of %d", i, greedy.Len(), hires)
		}
	}
}

func TestOptimalWholePool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		list := randomPool(t, rng)

		got := hiring.Optimal(list, hiring.NewCandidateList(), list.Len()+rng.Intn(3))
		if got.Len() != list.Len() || got.Coverage() != list.Coverage() {
			t.Fatalf("run %d: expected the whole pool, got %v", i, got.IDs())
		}
	}
}

func TestMinCostMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 150; i++ {
		list := randomPool(t, rng)
		minHours := float64(rng.Intn(7))

		expected := oracle.AllMinCost(list, minHours)
		got, err := hiring.MinCost(list, hiring.NewCandidateList(), minHours)

		if float64(list.Coverage()) < minHours {
			if !errors.Is(err, hiring.ErrNoSolution) || expected != nil {
				t.Fatalf("run %d: expected no solution, got %v, %v", i, got, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if float64(got.Coverage()) < minHours {
			t.Fatalf("run %d: coverage %d below %v", i, got.Coverage(), minHours)
		}
		if !oracle.Contains(expected, got) {
			t.Fatalf("run %d: %v with pay %v is not a cheapest selection", i, got.IDs(), got.TotalPay())
		}
	}
}

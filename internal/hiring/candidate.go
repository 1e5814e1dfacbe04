package hiring

import (
	"fmt"
	"slices"
)

// Candidate is someone who can be hired to cover a fixed set of hours for a pay rate.
// Candidates are compared by identity: two candidates with the same fields are still different people.
type Candidate struct {
	id      string
	name    string
	payRate float64
	hours   []int
}

// NewCandidate returns a candidate covering the given hours. Duplicated hours are collapsed.
func NewCandidate(id, name string, payRate float64, hours []int) (*Candidate, error) {
	if payRate < 0 {
		return nil, fmt.Errorf("candidate %q: pay rate must not be negative, got %v", id, payRate)
	}

	sorted := slices.Clone(hours)
	slices.Sort(sorted)

	return &Candidate{
		id:      id,
		name:    name,
		payRate: payRate,
		hours:   slices.Compact(sorted),
	}, nil
}

func (c *Candidate) ID() string { return c.id }

func (c *Candidate) Name() string { return c.name }

func (c *Candidate) PayRate() float64 { return c.payRate }

// Hours returns the sorted hours covered by the candidate.
func (c *Candidate) Hours() []int { return slices.Clone(c.hours) }

func (c *Candidate) String() string {
	if c.name != "" {
		return fmt.Sprintf("%s (%s)", c.name, c.id)
	}
	return c.id
}

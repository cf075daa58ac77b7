package backend

// Package backend runs benchmark circuits and returns measurement
// tallies. The only shipped implementation samples outcomes directly
// from the algebraic promise of the instance; nothing here evolves
// quantum state.

// Counts is an ordered multiset of measurement outcomes. Distinct
// outcomes keep the order in which they were first observed, which is
// the order the recovery pipeline ingests them in.
type Counts struct {
	order []string
	tally map[string]int
}

// NewCounts returns an empty tally.
func NewCounts() *Counts {
	return &Counts{tally: make(map[string]int)}
}

// Observe records one measurement outcome.
func (c *Counts) Observe(outcome string) {
	if _, seen := c.tally[outcome]; !seen {
		c.order = append(c.order, outcome)
	}
	c.tally[outcome]++
}

// Distinct returns the distinct outcomes in first-observed order. The
// slice is shared; callers must not modify it.
func (c *Counts) Distinct() []string {
	return c.order
}

// Count returns the tally of one outcome.
func (c *Counts) Count(outcome string) int {
	return c.tally[outcome]
}

// Shots returns the total number of observations.
func (c *Counts) Shots() int {
	total := 0
	for _, v := range c.tally {
		total += v
	}
	return total
}

// Len returns the number of distinct outcomes.
func (c *Counts) Len() int {
	return len(c.order)
}

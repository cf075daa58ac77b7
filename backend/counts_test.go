package backend

import (
	"reflect"
	"testing"
)

func TestCountsOrderAndTallies(t *testing.T) {
	c := NewCounts()
	for _, o := range []string{"110", "011", "110", "000", "110"} {
		c.Observe(o)
	}
	if got := c.Distinct(); !reflect.DeepEqual(got, []string{"110", "011", "000"}) {
		t.Errorf("Distinct = %v", got)
	}
	if c.Count("110") != 3 || c.Count("011") != 1 || c.Count("101") != 0 {
		t.Errorf("tallies wrong: %d %d %d", c.Count("110"), c.Count("011"), c.Count("101"))
	}
	if c.Shots() != 5 {
		t.Errorf("Shots = %d, want 5", c.Shots())
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

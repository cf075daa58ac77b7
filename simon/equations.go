package simon

import (
	"errors"
	"fmt"

	"QAlgoBench/gf"
)

// ErrMalformedSample reports an outcome string that does not fit the
// declared instance, wrong length or a digit outside the field radix.
var ErrMalformedSample = errors.New("simon: malformed sample")

// System accumulates the linear constraints extracted from measured
// outcomes of one instance over GF(p). Each distinct non-zero outcome
// contributes one constraint row. Rows keep the order in which their
// outcomes were first seen, which pins down the solution returned when
// the system stays underdetermined.
type System struct {
	f    gf.Field
	n    int
	rows [][]gf.Elem
	seen map[string]struct{}
}

// NewSystem returns an empty constraint set for length-n outcomes over f.
// Outcomes are digit strings, so the field radix must not exceed 10.
func NewSystem(f gf.Field, n int) (*System, error) {
	if n < 1 {
		return nil, fmt.Errorf("simon: outcome length %d must be >= 1", n)
	}
	if f.P() > 10 {
		return nil, fmt.Errorf("simon: radix %d has no single-digit rendering", f.P())
	}
	return &System{f: f, n: n, seen: make(map[string]struct{})}, nil
}

// Add ingests one outcome string. Duplicates of an already collected
// outcome and the all-zero outcome are dropped without error, since
// multiplicity carries no extra information and the zero vector
// constrains nothing.
func (s *System) Add(outcome string) error {
	vec, zero, err := s.parse(outcome)
	if err != nil {
		return err
	}
	if zero {
		return nil
	}
	if _, dup := s.seen[outcome]; dup {
		return nil
	}
	s.seen[outcome] = struct{}{}
	s.rows = append(s.rows, vec)
	return nil
}

// AddAll ingests outcomes in order and stops at the first malformed one.
func (s *System) AddAll(outcomes []string) error {
	for _, o := range outcomes {
		if err := s.Add(o); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) parse(outcome string) ([]gf.Elem, bool, error) {
	if len(outcome) != s.n {
		return nil, false, fmt.Errorf("%w: length %d, want %d", ErrMalformedSample, len(outcome), s.n)
	}
	vec := make([]gf.Elem, s.n)
	zero := true
	for i := 0; i < s.n; i++ {
		c := outcome[i]
		if c < '0' || c >= '0'+byte(s.f.P()) {
			return nil, false, fmt.Errorf("%w: digit %q at position %d outside radix %d", ErrMalformedSample, c, i, s.f.P())
		}
		d := gf.Elem(c - '0')
		if d != 0 {
			zero = false
		}
		vec[i] = d
	}
	return vec, zero, nil
}

// Len returns the number of collected constraint rows.
func (s *System) Len() int { return len(s.rows) }

// Empty reports whether no informative outcome has been collected yet.
func (s *System) Empty() bool { return len(s.rows) == 0 }

// N returns the outcome length.
func (s *System) N() int { return s.n }

// Field returns the field the constraints live over.
func (s *System) Field() gf.Field { return s.f }

// Matrix returns the k x n constraint matrix, one row per collected
// outcome in first-seen order.
func (s *System) Matrix() (*gf.Matrix, error) {
	return gf.FromRows(s.f, s.rows)
}

package simon

import (
	"fmt"

	"QAlgoBench/gf"
)

// Pair holds the two secrets recovered from a pooled two-secret run,
// named after the declared secret each one answers.
type Pair struct {
	First  string
	Second string
	// Zeros and Ones count the samples routed to each branch.
	Zeros int
	Ones  int
}

// RecoverPair splits pooled samples on their leading ancilla bit and
// runs one independent recovery per bucket. The oracle applies the
// first hidden string while the ancilla reads 0 and flips it before
// applying the second, so tag 0 samples answer the first declared
// secret and tag 1 samples the second.
func RecoverPair(f gf.Field, n int, samples []string, policy RowPolicy) (Pair, error) {
	first, err := NewSystem(f, n)
	if err != nil {
		return Pair{}, err
	}
	second, err := NewSystem(f, n)
	if err != nil {
		return Pair{}, err
	}
	var p Pair
	for _, sample := range samples {
		if len(sample) != n+1 {
			return Pair{}, fmt.Errorf("%w: length %d, want %d", ErrMalformedSample, len(sample), n+1)
		}
		payload := sample[1:]
		switch sample[0] {
		case '0':
			p.Zeros++
			if err := first.Add(payload); err != nil {
				return Pair{}, err
			}
		case '1':
			p.Ones++
			if err := second.Add(payload); err != nil {
				return Pair{}, err
			}
		default:
			return Pair{}, fmt.Errorf("%w: ancilla tag %q, want 0 or 1", ErrMalformedSample, sample[0])
		}
	}
	p.First = first.Solve(policy)
	p.Second = second.Solve(policy)
	return p, nil
}

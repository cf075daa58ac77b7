package simon

import (
	"fmt"

	"QAlgoBench/gf"
	"QAlgoBench/trit"
)

// RecoverTernary recovers a ternary secret from qubit-level outcomes.
// Each sample is the 2n-bit register readout of one shot, two bits per
// trit, which is decoded before entering the GF(3) system. A bit pair
// outside the trit encoding is a malformed sample, not a degenerate one.
func RecoverTernary(n int, samples []string, policy RowPolicy) (string, error) {
	sys, err := NewSystem(gf.F3, n)
	if err != nil {
		return "", err
	}
	for _, raw := range samples {
		if len(raw) != 2*n {
			return "", fmt.Errorf("%w: length %d, want %d", ErrMalformedSample, len(raw), 2*n)
		}
		decoded, err := trit.FromBits(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedSample, err)
		}
		if err := sys.Add(decoded); err != nil {
			return "", err
		}
	}
	return sys.Solve(policy), nil
}

// TernaryEquivalents lists the secrets indistinguishable from s by the
// ternary recovery, s itself and its double. Both generate the same
// hidden subgroup, so either answer certifies a run.
func TernaryEquivalents(s string) ([]string, error) {
	if !trit.Valid(s) {
		return nil, fmt.Errorf("simon: %q is not a trit string", s)
	}
	d := trit.Double(s)
	if d == s {
		return []string{s}, nil
	}
	return []string{s, d}, nil
}

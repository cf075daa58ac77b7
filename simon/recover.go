package simon

import (
	"strings"

	"QAlgoBench/gf"
)

// RowPolicy selects which row of the reduced augmented matrix is read as
// the secret candidate. The two policies agree whenever the constraints
// reach rank n-1, the well-sampled case, and only diverge on systems
// that are still underdetermined.
type RowPolicy int

const (
	// LastRow inspects only the final row of the reduced matrix.
	LastRow RowPolicy = iota
	// FirstMatch scans top to bottom and takes the first usable row.
	FirstMatch
)

// Solve reduces the augmented system [M^T | I_n] and extracts the hidden
// string. A row is usable when its M^T block is entirely zero and its
// identity block is not; the identity block of the selected row, rendered
// as digits, is the answer. With no usable row, or no collected
// constraints at all, Solve falls back to the all-zero string, the
// trivial-secret verdict.
func (s *System) Solve(policy RowPolicy) string {
	if s.Empty() {
		return zeroString(s.n)
	}
	m, err := s.Matrix()
	if err != nil {
		panic("simon: constraint rows lost uniform length")
	}
	a := m.Transpose().AugmentIdentity()
	a.RREF()
	k := s.Len()
	switch policy {
	case FirstMatch:
		for r := 0; r < a.Rows(); r++ {
			if sec, ok := readRow(a, r, k, s.n); ok {
				return sec
			}
		}
	default:
		if sec, ok := readRow(a, a.Rows()-1, k, s.n); ok {
			return sec
		}
	}
	return zeroString(s.n)
}

// readRow checks whether row r lies in the null space of the constraint
// block and, if so, renders its identity-block entries as the candidate.
func readRow(a *gf.Matrix, r, k, n int) (string, bool) {
	row := a.Row(r)
	for _, v := range row[:k] {
		if v != 0 {
			return "", false
		}
	}
	nonzero := false
	var sb strings.Builder
	sb.Grow(n)
	for _, v := range row[k : k+n] {
		if v != 0 {
			nonzero = true
		}
		sb.WriteByte('0' + byte(v))
	}
	if !nonzero {
		return "", false
	}
	return sb.String(), true
}

// Recover runs the full pipeline on a batch of outcome strings: collect,
// deduplicate, reduce, extract.
func Recover(f gf.Field, n int, outcomes []string, policy RowPolicy) (string, error) {
	sys, err := NewSystem(f, n)
	if err != nil {
		return "", err
	}
	if err := sys.AddAll(outcomes); err != nil {
		return "", err
	}
	return sys.Solve(policy), nil
}

func zeroString(n int) string { return strings.Repeat("0", n) }

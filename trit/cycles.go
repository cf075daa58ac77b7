package trit

import (
	"fmt"
	"math/bits"
)

// Table is the orbit decomposition of all length-n ternary strings under
// repeated addition of a fixed secret string mod 3. Orbits partition the
// space; the position of a string's orbit in the table is the value a
// ternary oracle encodes into its ancilla register.
type Table struct {
	n      int
	secret string
	cycles [][]string
	width  int
	index  map[string]int
}

// Decompose walks every string of length n in counting order and records
// its orbit under t -> t + secret the first time it is seen. Addition mod 3
// is a bijection, so every walk returns to its start and the orbits cover
// the space exactly once.
func Decompose(n int, secret string) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("trit: length %d must be >= 1", n)
	}
	if len(secret) != n {
		return nil, fmt.Errorf("trit: secret length %d, want %d", len(secret), n)
	}
	if !Valid(secret) {
		return nil, fmt.Errorf("trit: secret %q has digits outside 0..2", secret)
	}

	index := make(map[string]int)
	var cycles [][]string
	for _, start := range Enumerate(n) {
		if _, seen := index[start]; seen {
			continue
		}
		var cycle []string
		for cur := start; ; cur = Add(cur, secret) {
			if _, seen := index[cur]; seen {
				break
			}
			index[cur] = len(cycles)
			cycle = append(cycle, cur)
		}
		cycles = append(cycles, cycle)
	}

	width := 0
	if len(cycles) > 1 {
		width = bits.Len(uint(len(cycles) - 1))
	}
	return &Table{n: n, secret: secret, cycles: cycles, width: width, index: index}, nil
}

// N returns the string length the table was built for.
func (t *Table) N() int { return t.n }

// Secret returns the secret string the orbits were generated with.
func (t *Table) Secret() string { return t.secret }

// Cycles returns the ordered orbits. The slice is shared; treat it as
// read-only.
func (t *Table) Cycles() [][]string { return t.cycles }

// NumCycles returns the orbit count: 3^(n-1) for a non-zero secret under
// the promise, 3^n singletons for the all-zero secret.
func (t *Table) NumCycles() int { return len(t.cycles) }

// Width returns the number of ancilla bits needed to address every orbit,
// ceil(log2(NumCycles)). A single orbit needs none.
func (t *Table) Width() int { return t.width }

// IndexOf returns the orbit index of s.
func (t *Table) IndexOf(s string) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

// IndexBits renders orbit index k as a fixed-width binary string, most
// significant bit first. Ancilla qubit b receives a controlled flip
// exactly when bit b of this string is 1.
func (t *Table) IndexBits(k int) string {
	if t.width == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", t.width, k)
}

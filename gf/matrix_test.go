package gf

import "testing"

func mustFromRows(t *testing.T, f Field, rows [][]Elem) *Matrix {
	t.Helper()
	m, err := FromRows(f, rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

func TestFromRowsRagged(t *testing.T) {
	_, err := FromRows(F2, [][]Elem{{1, 0}, {1}})
	if err == nil {
		t.Fatal("expected ragged-row error")
	}
}

func TestTransposeAugmentIdentity(t *testing.T) {
	m := mustFromRows(t, F2, [][]Elem{{1, 1, 0}, {0, 1, 1}})
	a := m.Transpose().AugmentIdentity()
	if a.Rows() != 3 || a.Cols() != 5 {
		t.Fatalf("augmented shape %dx%d, want 3x5", a.Rows(), a.Cols())
	}
	want := [][]Elem{
		{1, 0, 1, 0, 0},
		{1, 1, 0, 1, 0},
		{0, 1, 0, 0, 1},
	}
	for i := range want {
		for j := range want[i] {
			if a.At(i, j) != want[i][j] {
				t.Fatalf("augmented[%d][%d] = %d, want %d", i, j, a.At(i, j), want[i][j])
			}
		}
	}
}

func TestRREFBinaryKnown(t *testing.T) {
	// Two constraint vectors for secret 111, transposed and augmented.
	m := mustFromRows(t, F2, [][]Elem{{1, 1, 0}, {0, 1, 1}})
	a := m.Transpose().AugmentIdentity()
	pivots := a.RREF()
	if len(pivots) != 3 || pivots[0] != 0 || pivots[1] != 1 || pivots[2] != 2 {
		t.Fatalf("pivots = %v, want [0 1 2]", pivots)
	}
	want := [][]Elem{
		{1, 0, 0, 1, 1},
		{0, 1, 0, 0, 1},
		{0, 0, 1, 1, 1},
	}
	for i := range want {
		for j := range want[i] {
			if a.At(i, j) != want[i][j] {
				t.Fatalf("rref[%d][%d] = %d, want %d", i, j, a.At(i, j), want[i][j])
			}
		}
	}
}

func TestRREFTernaryNormalizesPivot(t *testing.T) {
	m := mustFromRows(t, F3, [][]Elem{{0, 2}, {1, 1}})
	pivots := m.RREF()
	if len(pivots) != 2 {
		t.Fatalf("pivots = %v, want two", pivots)
	}
	want := [][]Elem{{1, 0}, {0, 1}}
	for i := range want {
		for j := range want[i] {
			if m.At(i, j) != want[i][j] {
				t.Fatalf("rref[%d][%d] = %d, want %d", i, j, m.At(i, j), want[i][j])
			}
		}
	}
}

func TestRREFRankDeficient(t *testing.T) {
	m := mustFromRows(t, F3, [][]Elem{{1, 1}, {2, 2}})
	pivots := m.RREF()
	if len(pivots) != 1 || pivots[0] != 0 {
		t.Fatalf("pivots = %v, want [0]", pivots)
	}
	if m.At(1, 0) != 0 || m.At(1, 1) != 0 {
		t.Fatalf("second row not eliminated: [%d %d]", m.At(1, 0), m.At(1, 1))
	}
}

// Reduction must be a fixed point: reducing an already reduced matrix
// changes nothing.
func TestRREFIdempotent(t *testing.T) {
	for _, f := range []Field{F2, F3} {
		for _, shape := range [][2]int{{3, 5}, {4, 4}, {5, 3}, {1, 1}, {2, 7}} {
			rows := make([][]Elem, shape[0])
			for i := range rows {
				rows[i] = make([]Elem, shape[1])
				for j := range rows[i] {
					rows[i][j] = f.Reduce(int64(i*7 + j*3 + i*j + 1))
				}
			}
			m := mustFromRows(t, f, rows)
			m.RREF()
			again := m.Clone()
			again.RREF()
			if !m.Equal(again) {
				t.Fatalf("p=%d shape %v: second reduction changed the matrix", f.P(), shape)
			}
		}
	}
}

func TestRREFEmptyMatrix(t *testing.T) {
	m, err := FromRows(F2, nil)
	if err != nil {
		t.Fatalf("FromRows(nil): %v", err)
	}
	if pivots := m.RREF(); len(pivots) != 0 {
		t.Fatalf("pivots of empty matrix = %v", pivots)
	}
}

func BenchmarkRREF(b *testing.B) {
	const n = 64
	rows := make([][]Elem, n)
	for i := range rows {
		row := make([]Elem, 2*n)
		for j := 0; j < n; j++ {
			row[j] = Elem((i*j + i + j) % 2)
		}
		row[n+i] = 1
		rows[i] = row
	}
	m, err := FromRows(F2, rows)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Clone().RREF()
	}
}

package trit

import "testing"

func checkPartition(t *testing.T, n int, secret string) *Table {
	t.Helper()
	table, err := Decompose(n, secret)
	if err != nil {
		t.Fatalf("Decompose(%d, %q): %v", n, secret, err)
	}
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	seen := make(map[string]bool)
	for _, cycle := range table.Cycles() {
		for _, s := range cycle {
			if seen[s] {
				t.Fatalf("n=%d secret=%q: %q appears in two cycles", n, secret, s)
			}
			seen[s] = true
		}
	}
	if len(seen) != total {
		t.Fatalf("n=%d secret=%q: cycles cover %d strings, want %d", n, secret, len(seen), total)
	}
	return table
}

func TestPartitionAllSecretsSmall(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for _, secret := range Enumerate(n) {
			table := checkPartition(t, n, secret)
			if secret == Zero(n) {
				continue
			}
			for i, cycle := range table.Cycles() {
				if len(cycle) != 3 {
					t.Fatalf("n=%d secret=%q cycle %d has length %d, want 3", n, secret, i, len(cycle))
				}
			}
		}
	}
}

func TestPartitionLargerLengths(t *testing.T) {
	cases := []struct {
		n      int
		secret string
	}{
		{5, "12012"},
		{5, "00001"},
		{5, Zero(5)},
		{6, "201201"},
		{6, "000002"},
		{6, Zero(6)},
	}
	for _, c := range cases {
		checkPartition(t, c.n, c.secret)
	}
}

func TestZeroSecretSingletons(t *testing.T) {
	table := checkPartition(t, 3, "000")
	if table.NumCycles() != 27 {
		t.Fatalf("NumCycles = %d, want 27", table.NumCycles())
	}
	for i, cycle := range table.Cycles() {
		if len(cycle) != 1 {
			t.Fatalf("cycle %d has length %d, want singleton", i, len(cycle))
		}
	}
}

func TestCycleOrderCanonical(t *testing.T) {
	table := checkPartition(t, 2, "11")
	want := [][]string{
		{"00", "11", "22"},
		{"01", "12", "20"},
		{"02", "10", "21"},
	}
	got := table.Cycles()
	if len(got) != len(want) {
		t.Fatalf("got %d cycles, want %d", len(got), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("cycle[%d][%d] = %q, want %q", i, j, got[i][j], want[i][j])
			}
		}
	}
}

func TestWidthAndIndexBits(t *testing.T) {
	table := checkPartition(t, 2, "01")
	if table.NumCycles() != 3 {
		t.Fatalf("NumCycles = %d, want 3", table.NumCycles())
	}
	if table.Width() != 2 {
		t.Fatalf("Width = %d, want 2", table.Width())
	}
	if got := table.IndexBits(2); got != "10" {
		t.Fatalf("IndexBits(2) = %q, want %q", got, "10")
	}
	if got := table.IndexBits(0); got != "00" {
		t.Fatalf("IndexBits(0) = %q, want %q", got, "00")
	}

	single, err := Decompose(1, "1")
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if single.NumCycles() != 1 || single.Width() != 0 {
		t.Fatalf("single orbit: cycles=%d width=%d", single.NumCycles(), single.Width())
	}
	if got := single.IndexBits(0); got != "" {
		t.Fatalf("IndexBits with zero width = %q, want empty", got)
	}
}

func TestIndexOfMatchesCycles(t *testing.T) {
	table := checkPartition(t, 3, "102")
	for i, cycle := range table.Cycles() {
		for _, s := range cycle {
			idx, ok := table.IndexOf(s)
			if !ok || idx != i {
				t.Fatalf("IndexOf(%q) = %d,%v, want %d", s, idx, ok, i)
			}
		}
	}
	if _, ok := table.IndexOf("999"); ok {
		t.Fatal("IndexOf accepted an invalid string")
	}
}

func TestDecomposeValidation(t *testing.T) {
	if _, err := Decompose(0, ""); err == nil {
		t.Error("expected error for n=0")
	}
	if _, err := Decompose(3, "01"); err == nil {
		t.Error("expected error for length mismatch")
	}
	if _, err := Decompose(2, "03"); err == nil {
		t.Error("expected error for invalid digit")
	}
}

func BenchmarkDecompose(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompose(9, "102010201"); err != nil {
			b.Fatal(err)
		}
	}
}

package simon

import (
	"errors"
	"strings"
	"testing"

	"QAlgoBench/gf"
)

func TestSystemDedupAndZeroDrop(t *testing.T) {
	sys, err := NewSystem(gf.F2, 3)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	for _, o := range []string{"110", "000", "110", "011", "000", "110"} {
		if err := sys.Add(o); err != nil {
			t.Fatalf("add %q: %v", o, err)
		}
	}
	if got := sys.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	m, err := sys.Matrix()
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}
	// First-seen order must survive the dedup.
	want := [][]gf.Elem{{1, 1, 0}, {0, 1, 1}}
	for i, row := range want {
		for j, v := range row {
			if m.At(i, j) != v {
				t.Fatalf("matrix[%d][%d] = %d, want %d", i, j, m.At(i, j), v)
			}
		}
	}
}

func TestSystemRejectsMalformed(t *testing.T) {
	sys, err := NewSystem(gf.F2, 3)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	for _, o := range []string{"01", "0110", "012", "a10", ""} {
		err := sys.Add(o)
		if !errors.Is(err, ErrMalformedSample) {
			t.Errorf("Add(%q) = %v, want ErrMalformedSample", o, err)
		}
	}
	if !sys.Empty() {
		t.Fatalf("rejected samples must not enter the system")
	}
	// Digit 2 is in range once the field is GF(3).
	tern, err := NewSystem(gf.F3, 3)
	if err != nil {
		t.Fatalf("new ternary system: %v", err)
	}
	if err := tern.Add("012"); err != nil {
		t.Fatalf("add ternary sample: %v", err)
	}
}

func TestNewSystemValidation(t *testing.T) {
	if _, err := NewSystem(gf.F2, 0); err == nil {
		t.Fatalf("length 0 accepted")
	}
	f, err := gf.New(13)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if _, err := NewSystem(f, 4); err == nil {
		t.Fatalf("radix 13 accepted, digits cannot render it")
	}
}

func BenchmarkRecover(b *testing.B) {
	const n = 16
	outcomes := make([]string, 0, n-1)
	for i := 0; i < n-1; i++ {
		row := make([]byte, n)
		for j := range row {
			row[j] = '0'
		}
		row[i], row[i+1] = '1', '1'
		outcomes = append(outcomes, string(row))
	}
	want := strings.Repeat("1", n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		got, err := Recover(gf.F2, n, outcomes, LastRow)
		if err != nil {
			b.Fatal(err)
		}
		if got != want {
			b.Fatalf("recovered %q", got)
		}
	}
}

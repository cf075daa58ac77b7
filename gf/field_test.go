package gf

import (
	"errors"
	"testing"
)

func TestNewRejectsBadModulus(t *testing.T) {
	for _, p := range []uint64{0, 1, 4, 6, 9, 15} {
		if _, err := New(p); err == nil {
			t.Errorf("New(%d): expected error", p)
		}
	}
	for _, p := range []uint64{2, 3, 5, 7, 31} {
		if _, err := New(p); err != nil {
			t.Errorf("New(%d): %v", p, err)
		}
	}
}

func TestArithmeticExhaustive(t *testing.T) {
	for _, f := range []Field{F2, F3} {
		p := int64(f.P())
		for a := int64(0); a < p; a++ {
			for b := int64(0); b < p; b++ {
				if got, want := f.Add(Elem(a), Elem(b)), Elem((a+b)%p); got != want {
					t.Fatalf("p=%d add(%d,%d)=%d want %d", p, a, b, got, want)
				}
				if got, want := f.Sub(Elem(a), Elem(b)), Elem(((a-b)%p+p)%p); got != want {
					t.Fatalf("p=%d sub(%d,%d)=%d want %d", p, a, b, got, want)
				}
				if got, want := f.Mul(Elem(a), Elem(b)), Elem((a*b)%p); got != want {
					t.Fatalf("p=%d mul(%d,%d)=%d want %d", p, a, b, got, want)
				}
			}
			if got, want := f.Neg(Elem(a)), Elem((p-a)%p); got != want {
				t.Fatalf("p=%d neg(%d)=%d want %d", p, a, got, want)
			}
		}
	}
}

func TestReduceSigned(t *testing.T) {
	cases := []struct {
		f    Field
		x    int64
		want Elem
	}{
		{F2, -1, 1},
		{F2, -4, 0},
		{F2, 5, 1},
		{F3, -1, 2},
		{F3, -3, 0},
		{F3, -5, 1},
		{F3, 7, 1},
	}
	for _, c := range cases {
		if got := c.f.Reduce(c.x); got != c.want {
			t.Errorf("p=%d reduce(%d)=%d want %d", c.f.P(), c.x, got, c.want)
		}
	}
}

func TestInverseSmallModuli(t *testing.T) {
	if inv, err := F2.Inverse(1); err != nil || inv != 1 {
		t.Fatalf("inverse of 1 mod 2: %d, %v", inv, err)
	}
	if inv, err := F3.Inverse(1); err != nil || inv != 1 {
		t.Fatalf("inverse of 1 mod 3: %d, %v", inv, err)
	}
	if inv, err := F3.Inverse(2); err != nil || inv != 2 {
		t.Fatalf("inverse of 2 mod 3: %d, %v", inv, err)
	}
	for _, f := range []Field{F2, F3} {
		if _, err := f.Inverse(0); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("p=%d inverse(0): got %v, want ErrDivisionByZero", f.P(), err)
		}
		if _, err := f.Inverse(Elem(f.P())); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("p=%d inverse(p): got %v, want ErrDivisionByZero", f.P(), err)
		}
	}
}

// The inverse contract must hold for any prime modulus, not just 2 and 3.
func TestInverseLargerPrimes(t *testing.T) {
	for _, p := range []uint64{5, 7, 11, 13} {
		f, err := New(p)
		if err != nil {
			t.Fatalf("New(%d): %v", p, err)
		}
		for a := uint64(1); a < p; a++ {
			inv, err := f.Inverse(Elem(a))
			if err != nil {
				t.Fatalf("p=%d inverse(%d): %v", p, a, err)
			}
			if prod := f.Mul(Elem(a), inv); prod != 1 {
				t.Fatalf("p=%d %d*%d = %d, want 1", p, a, inv, prod)
			}
		}
	}
}

func TestPowFermat(t *testing.T) {
	for _, f := range []Field{F2, F3} {
		for a := uint64(1); a < f.P(); a++ {
			if got := f.Pow(Elem(a), 0); got != 1 {
				t.Errorf("p=%d %d^0 = %d, want 1", f.P(), a, got)
			}
			if got := f.Pow(Elem(a), f.P()-1); got != 1 {
				t.Errorf("p=%d %d^(p-1) = %d, want 1", f.P(), a, got)
			}
		}
	}
}

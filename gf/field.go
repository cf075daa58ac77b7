package gf

// Package gf implements exact arithmetic and row reduction over prime fields
// GF(p) for small p. It is self-contained and provides the field operations,
// dense matrices and the reduced-row-echelon-form solver used by the Simon
// post-processing pipeline.

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Inverse when the element is zero mod p.
var ErrDivisionByZero = errors.New("gf: inverse of zero element")

// Elem is a field element. All values handed out by Field methods are
// reduced to [0, p).
type Elem uint64

// Field describes GF(p) for a prime modulus p.
type Field struct {
	p uint64
}

// Presets for the two moduli the Simon family uses.
var (
	F2 = Field{p: 2}
	F3 = Field{p: 3}
)

// New constructs a prime-field descriptor. p must be a prime >= 2.
func New(p uint64) (Field, error) {
	if p < 2 {
		return Field{}, fmt.Errorf("gf: modulus %d must be >= 2", p)
	}
	for d := uint64(2); d*d <= p; d++ {
		if p%d == 0 {
			return Field{}, fmt.Errorf("gf: modulus %d is not prime", p)
		}
	}
	return Field{p: p}, nil
}

// P returns the modulus.
func (f Field) P() uint64 { return f.p }

// Reduce maps an arbitrary signed integer into [0, p).
func (f Field) Reduce(x int64) Elem {
	m := x % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}
	return Elem(m)
}

// Add returns a + b mod p.
func (f Field) Add(a, b Elem) Elem {
	v := (uint64(a) + uint64(b)) % f.p
	return Elem(v)
}

// Neg returns -a mod p.
func (f Field) Neg(a Elem) Elem {
	r := uint64(a) % f.p
	if r == 0 {
		return 0
	}
	return Elem(f.p - r)
}

// Sub returns a - b mod p.
func (f Field) Sub(a, b Elem) Elem {
	return f.Add(a, f.Neg(b))
}

// Mul returns a * b mod p.
func (f Field) Mul(a, b Elem) Elem {
	return Elem((uint64(a) % f.p) * (uint64(b) % f.p) % f.p)
}

// Pow returns a^e mod p by square-and-multiply.
func (f Field) Pow(a Elem, e uint64) Elem {
	result := Elem(1 % f.p)
	base := Elem(uint64(a) % f.p)
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		e >>= 1
		if e > 0 {
			base = f.Mul(base, base)
		}
	}
	return result
}

// Inverse returns a^-1 mod p via Fermat's little theorem (a^(p-2) mod p).
// For p in {2, 3} this coincides with the table 1->1, 2->2.
func (f Field) Inverse(a Elem) (Elem, error) {
	if uint64(a)%f.p == 0 {
		return 0, ErrDivisionByZero
	}
	return f.Pow(a, f.p-2), nil
}

package trit

// Package trit provides ternary digit-string utilities: component-wise
// arithmetic mod 3, canonical enumeration, and the two-bit qubit encoding
// used when ternary digits are carried on qubit pairs.

import (
	"fmt"
	"strings"
)

// Valid reports whether s consists only of the digits 0, 1, 2.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '2' {
			return false
		}
	}
	return true
}

// Add returns the component-wise sum a + b mod 3. Both strings must have
// the same length and valid digits; violations panic since every caller
// controls its inputs.
func Add(a, b string) string {
	if len(a) != len(b) {
		panic("trit: length mismatch")
	}
	var sb strings.Builder
	sb.Grow(len(a))
	for i := 0; i < len(a); i++ {
		da, db := a[i]-'0', b[i]-'0'
		if da > 2 || db > 2 {
			panic("trit: digit out of range")
		}
		sb.WriteByte('0' + (da+db)%3)
	}
	return sb.String()
}

// Double returns s + s mod 3. A secret and its double generate the same
// hidden subgroup, so both count as correct recoveries.
func Double(s string) string { return Add(s, s) }

// Zero returns the all-zero string of length n.
func Zero(n int) string { return strings.Repeat("0", n) }

// Enumerate lists all 3^n ternary strings of length n in counting order,
// most significant digit first.
func Enumerate(n int) []string {
	total := 1
	for i := 0; i < n; i++ {
		total *= 3
	}
	out := make([]string, total)
	buf := make([]byte, n)
	for v := 0; v < total; v++ {
		x := v
		for i := n - 1; i >= 0; i-- {
			buf[i] = '0' + byte(x%3)
			x /= 3
		}
		out[v] = string(buf)
	}
	return out
}

// ToBits encodes each ternary digit as a two-bit group, high bit first:
// 0 -> 00, 1 -> 01, 2 -> 10. The pair 11 is never produced.
func ToBits(s string) string {
	var sb strings.Builder
	sb.Grow(2 * len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			sb.WriteString("00")
		case '1':
			sb.WriteString("01")
		case '2':
			sb.WriteString("10")
		default:
			panic("trit: digit out of range")
		}
	}
	return sb.String()
}

// FromBits decodes a two-bit-per-digit string produced by a qubit-pair
// measurement back into ternary digits. The 11 pair does not encode a
// digit and is rejected, as is an odd-length input.
func FromBits(b string) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("trit: bit string length %d is odd", len(b))
	}
	var sb strings.Builder
	sb.Grow(len(b) / 2)
	for i := 0; i < len(b); i += 2 {
		switch b[i : i+2] {
		case "00":
			sb.WriteByte('0')
		case "01":
			sb.WriteByte('1')
		case "10":
			sb.WriteByte('2')
		case "11":
			return "", fmt.Errorf("trit: pair 11 at offset %d does not encode a ternary digit", i)
		default:
			return "", fmt.Errorf("trit: invalid characters %q at offset %d", b[i:i+2], i)
		}
	}
	return sb.String(), nil
}

package randutil

// Package randutil wraps the lattigo PRNG readers with the small bounded
// draws the samplers and dataset generators need. PRNGs are passed in
// explicitly so every randomized path can be keyed and reproduced.

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Int64 draws a uniform value in [0, max) from prng, falling back to
// crypto/rand when prng is nil or its reader fails.
func Int64(prng utils.PRNG, max int64) (int64, error) {
	if max <= 0 {
		return 0, fmt.Errorf("randutil: max must be > 0, got %d", max)
	}
	if prng != nil {
		buf := make([]byte, 8)
		if _, err := prng.Read(buf); err == nil {
			r := new(big.Int).SetBytes(buf)
			return r.Mod(r, big.NewInt(max)).Int64(), nil
		}
	}
	rn, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return rn.Int64(), nil
}

// Digit draws a uniform digit in [0, radix).
func Digit(prng utils.PRNG, radix uint64) (byte, error) {
	v, err := Int64(prng, int64(radix))
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

// DigitString draws n uniform digits in [0, radix) rendered as a string.
func DigitString(prng utils.PRNG, n int, radix uint64) (string, error) {
	buf := make([]byte, n)
	for i := range buf {
		d, err := Digit(prng, radix)
		if err != nil {
			return "", err
		}
		buf[i] = '0' + d
	}
	return string(buf), nil
}

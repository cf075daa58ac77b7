package backend

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tuneinsight/lattigo/v4/utils"

	"QAlgoBench/circuit"
	"QAlgoBench/gf"
	"QAlgoBench/internal/randutil"
	"QAlgoBench/trit"
)

// Backend produces measurement counts for a rendered circuit.
type Backend interface {
	Run(qasm string, shots int) (*Counts, error)
}

// Promise samples outcomes from the hidden-structure promise of its
// instance. For the Simon families every sample is a uniform vector of
// the secret's dual space; Bernstein-Vazirani always yields the secret;
// Deutsch-Jozsa yields the all-zero string for constant oracles and the
// all-one string for the balanced parity oracles the workbench emits.
// With a keyed PRNG the sample stream is deterministic.
type Promise struct {
	inst   circuit.Instance
	field  gf.Field
	qubits int
	bits   int
	prng   utils.PRNG
}

// NewPromise builds a backend for one instance. A nil prng falls back to
// fresh system entropy on every draw.
func NewPromise(inst circuit.Instance, prng utils.PRNG) (*Promise, error) {
	qubits, bits, err := inst.Registers()
	if err != nil {
		return nil, err
	}
	field, err := gf.New(inst.Family.Radix())
	if err != nil {
		return nil, err
	}
	return &Promise{inst: inst, field: field, qubits: qubits, bits: bits, prng: prng}, nil
}

var registerRe = regexp.MustCompile(`(?m)^(qu)?bit\[(\d+)\] [cq];$`)

// Run checks that the program matches the instance's shape and produces
// shots samples. The program text must be fully plugged: structural lint
// plus register sizes stand in for a parser here.
func (b *Promise) Run(qasm string, shots int) (*Counts, error) {
	if shots < 1 {
		return nil, fmt.Errorf("backend: shots %d must be >= 1", shots)
	}
	if err := circuit.Lint(qasm); err != nil {
		return nil, err
	}
	if err := b.checkRegisters(qasm); err != nil {
		return nil, err
	}
	counts := NewCounts()
	for s := 0; s < shots; s++ {
		sample, err := b.sample()
		if err != nil {
			return nil, err
		}
		counts.Observe(sample)
	}
	return counts, nil
}

func (b *Promise) checkRegisters(qasm string) error {
	declaredQ, declaredC := -1, -1
	for _, m := range registerRe.FindAllStringSubmatch(qasm, -1) {
		size, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("backend: register size %q: %v", m[2], err)
		}
		if m[1] == "qu" {
			declaredQ = size
		} else {
			declaredC = size
		}
	}
	if declaredQ != b.qubits || declaredC != b.bits {
		return fmt.Errorf("backend: program declares registers (%d, %d), instance needs (%d, %d)",
			declaredQ, declaredC, b.qubits, b.bits)
	}
	return nil
}

func (b *Promise) sample() (string, error) {
	switch b.inst.Family {
	case circuit.FamilySimon:
		return b.dualVector(b.inst.Secret)
	case circuit.FamilyTernarySimon:
		v, err := b.dualVector(b.inst.Secret)
		if err != nil {
			return "", err
		}
		return trit.ToBits(v), nil
	case circuit.FamilyMultiSimon:
		tag, err := randutil.Digit(b.prng, 2)
		if err != nil {
			return "", err
		}
		secret := b.inst.Secret
		if tag == 1 {
			secret = b.inst.Secret2
		}
		payload, err := b.dualVector(secret)
		if err != nil {
			return "", err
		}
		return string([]byte{'0' + tag}) + payload, nil
	case circuit.FamilyBernsteinVazirani:
		return b.inst.Secret, nil
	default:
		if b.inst.Constant {
			return strings.Repeat("0", b.inst.N), nil
		}
		return strings.Repeat("1", b.inst.N), nil
	}
}

// dualVector draws a uniform vector orthogonal to the secret: free
// digits everywhere except the secret's first non-zero position, whose
// digit is solved so the inner product vanishes. A zero secret leaves
// every digit free.
func (b *Promise) dualVector(secret string) (string, error) {
	n := len(secret)
	pivot := -1
	for i := 0; i < n; i++ {
		if secret[i] != '0' {
			pivot = i
			break
		}
	}
	digits := make([]gf.Elem, n)
	for i := 0; i < n; i++ {
		if i == pivot {
			continue
		}
		d, err := randutil.Digit(b.prng, b.field.P())
		if err != nil {
			return "", err
		}
		digits[i] = gf.Elem(d)
	}
	if pivot >= 0 {
		dot := gf.Elem(0)
		for i := 0; i < n; i++ {
			if i == pivot {
				continue
			}
			dot = b.field.Add(dot, b.field.Mul(digits[i], gf.Elem(secret[i]-'0')))
		}
		inv, err := b.field.Inverse(gf.Elem(secret[pivot] - '0'))
		if err != nil {
			return "", err
		}
		digits[pivot] = b.field.Mul(b.field.Neg(dot), inv)
	}
	out := make([]byte, n)
	for i, d := range digits {
		out[i] = '0' + byte(d)
	}
	return string(out), nil
}

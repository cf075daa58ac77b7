package circuit

import (
	"fmt"

	"QAlgoBench/trit"
)

// Family names one benchmark circuit family. The string values double as
// the directory prefixes of the dataset layout.
type Family string

const (
	FamilySimon             Family = "simon"
	FamilyMultiSimon        Family = "multi_simon"
	FamilyTernarySimon      Family = "simon_ternary"
	FamilyBernsteinVazirani Family = "bernstein_vazirani"
	FamilyDeutschJozsa      Family = "deutsch_jozsa"
)

// Families lists every known family in dataset order.
func Families() []Family {
	return []Family{
		FamilySimon,
		FamilyMultiSimon,
		FamilyTernarySimon,
		FamilyBernsteinVazirani,
		FamilyDeutschJozsa,
	}
}

// Valid reports whether f names a known family.
func (f Family) Valid() bool {
	switch f {
	case FamilySimon, FamilyMultiSimon, FamilyTernarySimon,
		FamilyBernsteinVazirani, FamilyDeutschJozsa:
		return true
	}
	return false
}

// Radix returns the digit radix of the family's instance strings.
func (f Family) Radix() uint64 {
	if f == FamilyTernarySimon {
		return 3
	}
	return 2
}

// Instance fully determines one benchmark circuit: the family plus the
// hidden strings its oracle encodes. Unused fields stay empty per
// family: Secret2 is multi-secret only, Constant is Deutsch-Jozsa only,
// Bernstein-Vazirani carries no key.
type Instance struct {
	Family   Family
	N        int
	Secret   string
	Secret2  string
	Key      string
	Constant bool
}

// Validate checks the instance strings against the family's shape.
func (inst Instance) Validate() error {
	if !inst.Family.Valid() {
		return fmt.Errorf("circuit: unknown family %q", inst.Family)
	}
	if inst.N < 1 {
		return fmt.Errorf("circuit: instance size %d must be >= 1", inst.N)
	}
	radix := byte(inst.Family.Radix())
	switch inst.Family {
	case FamilySimon, FamilyTernarySimon:
		if err := checkDigitString("secret", inst.Secret, inst.N, radix); err != nil {
			return err
		}
		return checkDigitString("key", inst.Key, inst.N, radix)
	case FamilyMultiSimon:
		if err := checkDigitString("first secret", inst.Secret, inst.N, radix); err != nil {
			return err
		}
		if err := checkDigitString("second secret", inst.Secret2, inst.N, radix); err != nil {
			return err
		}
		return checkDigitString("key", inst.Key, inst.N, radix)
	case FamilyBernsteinVazirani:
		return checkDigitString("secret", inst.Secret, inst.N, radix)
	default:
		return checkDigitString("key", inst.Key, inst.N, radix)
	}
}

// Build constructs the instance's full circuit.
func (inst Instance) Build() (*Program, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	switch inst.Family {
	case FamilySimon:
		return Simon(inst.N, inst.Secret, inst.Key)
	case FamilyMultiSimon:
		return MultiSimon(inst.N, inst.Secret, inst.Secret2, inst.Key)
	case FamilyTernarySimon:
		table, err := trit.Decompose(inst.N, inst.Secret)
		if err != nil {
			return nil, err
		}
		return TernarySimon(table, inst.Key)
	case FamilyBernsteinVazirani:
		return BernsteinVazirani(inst.N, inst.Secret)
	default:
		return DeutschJozsa(inst.N, inst.Constant, inst.Key)
	}
}

// Registers returns the qubit and classical bit counts of the family's
// circuit at size n, the shape a backend checks a program against.
func (inst Instance) Registers() (qubits, bits int, err error) {
	if err := inst.Validate(); err != nil {
		return 0, 0, err
	}
	n := inst.N
	switch inst.Family {
	case FamilySimon:
		return 2 * n, n, nil
	case FamilyMultiSimon:
		return 2*n + 1, n + 1, nil
	case FamilyTernarySimon:
		table, err := trit.Decompose(n, inst.Secret)
		if err != nil {
			return 0, 0, err
		}
		return 2*n + table.Width(), 2 * n, nil
	default:
		return n + 1, n, nil
	}
}

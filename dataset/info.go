package dataset

import (
	"fmt"
	"regexp"

	"QAlgoBench/circuit"
)

// Info is the parsed ground truth of one trial. Secret2 is set for the
// multi-secret family only; Balanced distinguishes the two
// Deutsch-Jozsa oracle kinds, with the key digits carried in Secret.
type Info struct {
	Secret   string
	Secret2  string
	Key      string
	Balanced bool
}

// FormatInfo renders the oracle_info.txt body for an instance. The
// Bernstein-Vazirani form deliberately carries no trailing newline;
// parsers must not rely on one.
func FormatInfo(inst circuit.Instance) (string, error) {
	if err := inst.Validate(); err != nil {
		return "", err
	}
	switch inst.Family {
	case circuit.FamilySimon, circuit.FamilyTernarySimon:
		return fmt.Sprintf("Secret string: %s\nKey string: %s\n", inst.Secret, inst.Key), nil
	case circuit.FamilyMultiSimon:
		return fmt.Sprintf("Secret string 1: %s\nSecret string 2: %s\nKey string: %s\n",
			inst.Secret, inst.Secret2, inst.Key), nil
	case circuit.FamilyBernsteinVazirani:
		return fmt.Sprintf("Secret string: %s", inst.Secret), nil
	default:
		kind, key := "balanced", inst.Key
		if inst.Constant {
			kind, key = "constant", string(inst.Key[inst.N-1])
		}
		return fmt.Sprintf("Balanced: %s\nSecret string: %s\n", kind, key), nil
	}
}

var (
	secretRe    = regexp.MustCompile(`Secret string: ([01]+)`)
	secretTerRe = regexp.MustCompile(`Secret string: ([012]+)`)
	secret1Re   = regexp.MustCompile(`Secret string 1: ([01]+)`)
	secret2Re   = regexp.MustCompile(`Secret string 2: ([01]+)`)
	keyRe       = regexp.MustCompile(`Key string: ([012]+)`)
	balancedRe  = regexp.MustCompile(`Balanced: (constant|balanced)`)
)

func matchOne(re *regexp.Regexp, text, what string) (string, error) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("dataset: %s not found in oracle info", what)
	}
	return m[1], nil
}

// ParseInfo extracts the ground truth from an oracle_info.txt body.
func ParseInfo(f circuit.Family, text string) (Info, error) {
	var info Info
	var err error
	switch f {
	case circuit.FamilySimon:
		if info.Secret, err = matchOne(secretRe, text, "secret string"); err != nil {
			return info, err
		}
		info.Key, err = matchOne(keyRe, text, "key string")
	case circuit.FamilyTernarySimon:
		if info.Secret, err = matchOne(secretTerRe, text, "secret string"); err != nil {
			return info, err
		}
		info.Key, err = matchOne(keyRe, text, "key string")
	case circuit.FamilyMultiSimon:
		if info.Secret, err = matchOne(secret1Re, text, "first secret string"); err != nil {
			return info, err
		}
		if info.Secret2, err = matchOne(secret2Re, text, "second secret string"); err != nil {
			return info, err
		}
		info.Key, err = matchOne(keyRe, text, "key string")
	case circuit.FamilyBernsteinVazirani:
		info.Secret, err = matchOne(secretRe, text, "secret string")
	case circuit.FamilyDeutschJozsa:
		var kind string
		if kind, err = matchOne(balancedRe, text, "balance type"); err != nil {
			return info, err
		}
		info.Balanced = kind == "balanced"
		info.Secret, err = matchOne(secretRe, text, "secret string")
	default:
		err = fmt.Errorf("dataset: unknown family %q", f)
	}
	if err != nil {
		return info, err
	}
	return info, nil
}

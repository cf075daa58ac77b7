package dataset

// Package dataset lays out and populates the on-disk benchmark tree:
// full circuits under full_circuit/<family>_n{n}/, per-trial oracle
// includes and ground-truth files under test_oracle/n{n}/trial{t}/, and
// one shared skeleton per (family, n) at the root. File and directory
// names are load-bearing: the extraction step parses instance strings
// back out of circuit file names, and the verification harness locates
// trials by the layout alone.

import (
	"fmt"
	"path/filepath"
	"strings"

	"QAlgoBench/circuit"
)

// OracleFile and InfoFile are the fixed per-trial artifact names.
const (
	OracleFile = "oracle.inc"
	InfoFile   = "oracle_info.txt"
)

// Layout resolves workbench paths under one root directory.
type Layout struct {
	Root string
}

// CircuitDir returns the directory of full circuits for (family, n).
func (l Layout) CircuitDir(f circuit.Family, n int) string {
	return filepath.Join(l.Root, "full_circuit", fmt.Sprintf("%s_n%d", f, n))
}

// SkeletonPath returns the shared per-n skeleton file, the circuit with
// its oracle replaced by an include directive.
func (l Layout) SkeletonPath(f circuit.Family, n int) string {
	return filepath.Join(l.Root, fmt.Sprintf("%s_n%d.qasm", f, n))
}

// TrialDir returns the directory of one extracted test case.
func (l Layout) TrialDir(n, trial int) string {
	return filepath.Join(l.Root, "test_oracle", fmt.Sprintf("n%d", n), fmt.Sprintf("trial%d", trial))
}

// OraclePath returns the extracted oracle include of one trial.
func (l Layout) OraclePath(n, trial int) string {
	return filepath.Join(l.TrialDir(n, trial), OracleFile)
}

// InfoPath returns the ground-truth file of one trial.
func (l Layout) InfoPath(n, trial int) string {
	return filepath.Join(l.TrialDir(n, trial), InfoFile)
}

// TranscriptPath returns the verification transcript written for a
// family. The names are historical and not uniform: the ternary family
// logs to ternary_simon_verification.txt, Bernstein-Vazirani to
// bv_verification.txt and Deutsch-Jozsa to dj_verification.txt.
func (l Layout) TranscriptPath(f circuit.Family) string {
	prefix := string(f)
	switch f {
	case circuit.FamilyTernarySimon:
		prefix = "ternary_simon"
	case circuit.FamilyBernsteinVazirani:
		prefix = "bv"
	case circuit.FamilyDeutschJozsa:
		prefix = "dj"
	}
	return filepath.Join(l.Root, prefix+"_verification.txt")
}

// IndexPath returns the JSON dataset index written for a family.
func (l Layout) IndexPath(f circuit.Family) string {
	return filepath.Join(l.Root, fmt.Sprintf("%s_dataset.json", f))
}

// CircuitFileName renders the canonical file name of one instance.
// Every hidden string the oracle encodes appears in the name, which is
// what lets extraction recover the ground truth without re-reading the
// circuit body.
func CircuitFileName(inst circuit.Instance) (string, error) {
	if err := inst.Validate(); err != nil {
		return "", err
	}
	switch inst.Family {
	case circuit.FamilySimon, circuit.FamilyTernarySimon:
		return fmt.Sprintf("%s_n%d_s%s_k%s.qasm", inst.Family, inst.N, inst.Secret, inst.Key), nil
	case circuit.FamilyMultiSimon:
		return fmt.Sprintf("%s_n%d_s(1)%s_s(2)%s_k%s.qasm",
			inst.Family, inst.N, inst.Secret, inst.Secret2, inst.Key), nil
	case circuit.FamilyBernsteinVazirani:
		return fmt.Sprintf("bv_n%d_s%s.qasm", inst.N, inst.Secret), nil
	default:
		kind := "balanced"
		if inst.Constant {
			kind = "constant"
		}
		return fmt.Sprintf("dj_n%d_%s_%c.qasm", inst.N, kind, inst.Key[inst.N-1]), nil
	}
}

// ParseCircuitFileName recovers the instance encoded in a circuit file
// name produced by CircuitFileName. The Deutsch-Jozsa constant form
// only records the significant last key digit; the rest of the key is
// restored as zeros.
func ParseCircuitFileName(f circuit.Family, n int, name string) (circuit.Instance, error) {
	inst := circuit.Instance{Family: f, N: n}
	base := strings.TrimSuffix(filepath.Base(name), ".qasm")
	if base == filepath.Base(name) {
		return inst, fmt.Errorf("dataset: %q is not a .qasm file", name)
	}
	parts := strings.Split(base, "_")
	bad := func() (circuit.Instance, error) {
		return inst, fmt.Errorf("dataset: file name %q does not match family %q", name, f)
	}
	switch f {
	case circuit.FamilySimon, circuit.FamilyTernarySimon:
		if len(parts) < 4 {
			return bad()
		}
		s, k := parts[len(parts)-2], parts[len(parts)-1]
		if !strings.HasPrefix(s, "s") || !strings.HasPrefix(k, "k") {
			return bad()
		}
		inst.Secret, inst.Key = s[1:], k[1:]
	case circuit.FamilyMultiSimon:
		if len(parts) < 5 {
			return bad()
		}
		s1, s2, k := parts[len(parts)-3], parts[len(parts)-2], parts[len(parts)-1]
		if !strings.HasPrefix(s1, "s(1)") || !strings.HasPrefix(s2, "s(2)") || !strings.HasPrefix(k, "k") {
			return bad()
		}
		inst.Secret, inst.Secret2, inst.Key = s1[4:], s2[4:], k[1:]
	case circuit.FamilyBernsteinVazirani:
		if len(parts) < 3 {
			return bad()
		}
		s := parts[len(parts)-1]
		if !strings.HasPrefix(s, "s") {
			return bad()
		}
		inst.Secret = s[1:]
	case circuit.FamilyDeutschJozsa:
		if len(parts) < 4 {
			return bad()
		}
		kind, last := parts[len(parts)-2], parts[len(parts)-1]
		switch kind {
		case "constant":
			inst.Constant = true
		case "balanced":
		default:
			return bad()
		}
		if inst.Constant {
			if last != "0" && last != "1" {
				return bad()
			}
			inst.Key = strings.Repeat("0", n-1) + last
		} else {
			inst.Key = last
		}
	default:
		return inst, fmt.Errorf("dataset: unknown family %q", f)
	}
	if err := inst.Validate(); err != nil {
		return inst, err
	}
	return inst, nil
}

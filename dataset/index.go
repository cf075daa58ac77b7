package dataset

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/pkg/errors"

	"QAlgoBench/circuit"
)

// IndexEntry pairs a natural-language task description with the path
// of the circuit that solves it, relative to the dataset root.
type IndexEntry struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// WriteIndex walks the generated circuits of the configured range and
// writes one JSON index per family, returning the entry count.
func WriteIndex(cfg Config) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	l := Layout{Root: cfg.Root}
	var entries []IndexEntry
	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		names, err := listQASM(l.CircuitDir(cfg.Family, n))
		if err != nil {
			return 0, err
		}
		for _, name := range names {
			inst, err := ParseCircuitFileName(cfg.Family, n, name)
			if err != nil {
				return 0, err
			}
			desc, err := describe(inst)
			if err != nil {
				return 0, err
			}
			entries = append(entries, IndexEntry{
				Input:  desc,
				Output: path.Join("full_circuit", fmt.Sprintf("%s_n%d", cfg.Family, n), name),
			})
		}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, errors.Wrap(err, "marshal index")
	}
	if err := writeFileMkdir(l.IndexPath(cfg.Family), append(data, '\n')); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func describe(inst circuit.Instance) (string, error) {
	switch inst.Family {
	case circuit.FamilySimon:
		return fmt.Sprintf("Simon's algorithm circuit on %d input qubits; the oracle hides the secret string %s behind the key mask %s.",
			inst.N, inst.Secret, inst.Key), nil
	case circuit.FamilyMultiSimon:
		return fmt.Sprintf("Two-secret Simon circuit on %d input qubits; an ancilla tags whether a sample constrains the hidden string %s or %s, with key mask %s.",
			inst.N, inst.Secret, inst.Secret2, inst.Key), nil
	case circuit.FamilyTernarySimon:
		qubits, _, err := inst.Registers()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Ternary Simon circuit on %d trits (%d qubits); the oracle writes the cycle index of each input under the hidden shift %s, with key mask %s.",
			inst.N, qubits, inst.Secret, inst.Key), nil
	case circuit.FamilyBernsteinVazirani:
		return fmt.Sprintf("Bernstein-Vazirani circuit on %d input qubits hiding the secret string %s.",
			inst.N, inst.Secret), nil
	case circuit.FamilyDeutschJozsa:
		if inst.Constant {
			return fmt.Sprintf("Deutsch-Jozsa circuit on %d input qubits with a constant oracle fixed to %c.",
				inst.N, inst.Key[inst.N-1]), nil
		}
		return fmt.Sprintf("Deutsch-Jozsa circuit on %d input qubits with a balanced parity oracle keyed by %s.",
			inst.N, inst.Key), nil
	}
	return "", fmt.Errorf("dataset: unknown family %q", inst.Family)
}

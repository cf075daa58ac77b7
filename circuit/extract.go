package circuit

import (
	"fmt"
	"strings"
)

// Split separates a rendered circuit into the per-trial oracle include
// and the instance-independent algorithm skeleton.
type Split struct {
	OracleInc string
	Skeleton  string
}

const includeMarker = `include "oracle.inc";`

// ExtractOracle cuts every gate definition out of a rendered program and
// substitutes an include directive. Gate definitions sit between the
// header and the classical register declaration, so the split is purely
// positional. External includes such as gh.inc are part of the header
// and stay in the skeleton.
func ExtractOracle(qasm string) (Split, error) {
	gatePos := strings.Index(qasm, "gate ")
	if gatePos < 0 {
		return Split{}, fmt.Errorf("circuit: no gate definition in program")
	}
	bitPos := strings.Index(qasm, "\nbit[")
	if bitPos < 0 {
		return Split{}, fmt.Errorf("circuit: no classical register declaration in program")
	}
	bitPos++
	if bitPos <= gatePos {
		return Split{}, fmt.Errorf("circuit: classical register declared before gate definitions")
	}
	return Split{
		OracleInc: qasm[gatePos:bitPos],
		Skeleton:  qasm[:gatePos] + includeMarker + "\n" + qasm[bitPos:],
	}, nil
}

// PlugOracle re-inlines an oracle include into a skeleton, replacing the
// include directive left by ExtractOracle.
func PlugOracle(skeleton, oracleInc string) (string, error) {
	pos := strings.Index(skeleton, includeMarker)
	if pos < 0 {
		return "", fmt.Errorf("circuit: oracle include directive not found in skeleton")
	}
	return skeleton[:pos] + oracleInc + skeleton[pos+len(includeMarker):], nil
}

// Lint runs the structural checks a plugged program must pass before a
// backend accepts it: QASM 3 header, no unresolved oracle include,
// balanced braces, both register declarations, at least one measurement.
func Lint(qasm string) error {
	if !strings.HasPrefix(qasm, "OPENQASM 3") {
		return fmt.Errorf("circuit: missing OPENQASM 3 header")
	}
	if strings.Contains(qasm, includeMarker) {
		return fmt.Errorf("circuit: unresolved oracle include")
	}
	depth := 0
	for _, r := range qasm {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("circuit: unbalanced braces")
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("circuit: unbalanced braces")
	}
	if !strings.Contains(qasm, "\nqubit[") {
		return fmt.Errorf("circuit: missing qubit register declaration")
	}
	if !strings.Contains(qasm, "\nbit[") {
		return fmt.Errorf("circuit: missing classical register declaration")
	}
	if !strings.Contains(qasm, "measure ") {
		return fmt.Errorf("circuit: no measurement in program")
	}
	return nil
}

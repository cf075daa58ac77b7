package circuit

// Package circuit builds the benchmark circuits of the Simon family and
// serializes them as OpenQASM 3.0 text. A Program keeps the oracle as a
// named gate definition so the dataset side can split it from the
// algorithm skeleton and re-plug it later.
//
// Qubit q[i] carries digit i of the instance strings throughout; sample
// strings produced by a backend use the same positional convention, so
// no endianness juggling happens anywhere in the pipeline.

import (
	"fmt"
	"io"
	"strings"
)

// GateDef is one named gate definition. Params are the formal qubit
// names, Body the statements over them.
type GateDef struct {
	Name   string
	Params []string
	Body   []string
}

// Program is an OpenQASM 3.0 program: header includes, gate definitions,
// one classical and one quantum register, and the operation list.
type Program struct {
	// Includes lists extra include files after stdgates.inc.
	Includes []string
	Gates    []GateDef
	Qubits   int
	Bits     int
	Ops      []string
}

// String renders the program. The classical register is declared before
// the quantum one and gate definitions come before both, the layout the
// oracle extraction step depends on.
func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 3.0;\n")
	sb.WriteString("include \"stdgates.inc\";\n")
	for _, inc := range p.Includes {
		fmt.Fprintf(&sb, "include %q;\n", inc)
	}
	for _, g := range p.Gates {
		fmt.Fprintf(&sb, "gate %s %s {\n", g.Name, strings.Join(g.Params, ", "))
		for _, line := range g.Body {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("}\n")
	}
	if p.Bits > 0 {
		fmt.Fprintf(&sb, "bit[%d] c;\n", p.Bits)
	}
	fmt.Fprintf(&sb, "qubit[%d] q;\n", p.Qubits)
	for _, op := range p.Ops {
		sb.WriteString(op)
		sb.WriteString("\n")
	}
	return sb.String()
}

// WriteQASM writes the rendered program to w.
func (p *Program) WriteQASM(w io.Writer) error {
	_, err := io.WriteString(w, p.String())
	return err
}

// gateParams returns the formal parameter names _gate_q_0 .. _gate_q_{n-1}.
func gateParams(n int) []string {
	params := make([]string, n)
	for i := range params {
		params[i] = fmt.Sprintf("_gate_q_%d", i)
	}
	return params
}

// applyGate renders a call of a defined gate on qubits [from, to).
func applyGate(name string, from, to int) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" ")
	for i := from; i < to; i++ {
		if i > from {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "q[%d]", i)
	}
	sb.WriteString(";")
	return sb.String()
}

func checkDigitString(role, s string, n int, radix byte) error {
	if n < 1 {
		return fmt.Errorf("circuit: instance size %d must be >= 1", n)
	}
	if len(s) != n {
		return fmt.Errorf("circuit: %s %q has length %d, want %d", role, s, len(s), n)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] >= '0'+radix {
			return fmt.Errorf("circuit: %s %q has digit %q outside radix %d", role, s, s[i], radix)
		}
	}
	return nil
}

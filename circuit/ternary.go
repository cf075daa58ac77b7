package circuit

import (
	"fmt"
	"strings"

	"QAlgoBench/trit"
)

// TernarySimon builds the qutrit Simon circuit from a cycle table. Each
// trit rides a qubit pair (q[2i], q[2i+1], high bit first); the oracle
// writes the binary index of the input's cycle onto the ancilla register
// with one multi-controlled X per (cycle member, set index bit), then
// XORs in the key's own cycle index as the masking layer. The skeleton
// applies the generalized Hadamard GH per pair, the oracle, and
// inv @ GH per pair before measuring all 2n data bits. GH's basis-gate
// body is a synthesis artifact and is pulled in via include "gh.inc"
// rather than re-derived here.
func TernarySimon(table *trit.Table, key string) (*Program, error) {
	if table == nil {
		return nil, fmt.Errorf("circuit: nil cycle table")
	}
	n := table.N()
	if err := checkDigitString("key", key, n, 3); err != nil {
		return nil, err
	}
	w := table.Width()
	oracle := GateDef{Name: "Oracle", Params: gateParams(2*n + w)}
	for ci, cycle := range table.Cycles() {
		idx := table.IndexBits(ci)
		if !strings.ContainsRune(idx, '1') {
			continue
		}
		for _, member := range cycle {
			pattern := trit.ToBits(member)
			for b := 0; b < w; b++ {
				if idx[b] == '1' {
					oracle.Body = append(oracle.Body, controlledX(pattern, 2*n+b))
				}
			}
		}
	}
	keyCycle, ok := table.IndexOf(key)
	if !ok {
		return nil, fmt.Errorf("circuit: key %q missing from cycle table", key)
	}
	mask := table.IndexBits(keyCycle)
	for b := 0; b < len(mask); b++ {
		if mask[b] == '1' {
			oracle.Body = append(oracle.Body, fmt.Sprintf("x _gate_q_%d;", 2*n+b))
		}
	}

	p := &Program{
		Includes: []string{"gh.inc"},
		Gates:    []GateDef{oracle},
		Qubits:   2*n + w,
		Bits:     2 * n,
	}
	for i := 0; i < n; i++ {
		p.Ops = append(p.Ops, fmt.Sprintf("GH q[%d], q[%d];", 2*i, 2*i+1))
	}
	p.Ops = append(p.Ops, applyGate("Oracle", 0, 2*n+w))
	for i := 0; i < n; i++ {
		p.Ops = append(p.Ops, fmt.Sprintf("inv @ GH q[%d], q[%d];", 2*i, 2*i+1))
	}
	p.Ops = measureLayer(p.Ops, 2*n)
	return p, nil
}

// controlledX renders an X on the target under one control per pattern
// bit: ctrl for '1', negctrl for '0', modifiers and control arguments in
// the same qubit order.
func controlledX(pattern string, target int) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '1' {
			sb.WriteString("ctrl @ ")
		} else {
			sb.WriteString("negctrl @ ")
		}
	}
	sb.WriteString("x ")
	for i := 0; i < len(pattern); i++ {
		fmt.Fprintf(&sb, "_gate_q_%d, ", i)
	}
	fmt.Fprintf(&sb, "_gate_q_%d;", target)
	return sb.String()
}

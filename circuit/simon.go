package circuit

import (
	"fmt"
	"strings"
)

// Simon builds the binary Simon circuit for one (secret, key) instance:
// an Oracle gate computing f(x) = x XOR (x_i * secret) XOR key on the
// output register, wrapped in the H / oracle / H / measure skeleton.
// The pivot i is the first set position of the secret; an all-zero
// secret leaves f a plain keyed copy.
func Simon(n int, secret, key string) (*Program, error) {
	if err := checkDigitString("secret", secret, n, 2); err != nil {
		return nil, err
	}
	if err := checkDigitString("key", key, n, 2); err != nil {
		return nil, err
	}
	oracle := GateDef{Name: "Oracle", Params: gateParams(2 * n)}
	oracle.Body = copyLadder(oracle.Body, n)
	oracle.Body = secretFold(oracle.Body, secret)
	oracle.Body = keyMask(oracle.Body, key, n)

	p := &Program{Qubits: 2 * n, Bits: n, Gates: []GateDef{oracle}}
	p.Ops = hadamardLayer(p.Ops, n)
	p.Ops = append(p.Ops, applyGate("Oracle", 0, 2*n))
	p.Ops = hadamardLayer(p.Ops, n)
	p.Ops = measureLayer(p.Ops, n)
	return p, nil
}

// MultiSimon builds the two-secret circuit on 2n+1 qubits. The ancilla
// (last qubit) starts in superposition; the first branch oracle runs
// under a positive ancilla control, the ancilla is flipped mid-gate,
// and the second branch runs under the same positive control. Each
// branch folds its own secret, and the key mask is applied uncontrolled
// to the output register.
func MultiSimon(n int, secret1, secret2, key string) (*Program, error) {
	if err := checkDigitString("first secret", secret1, n, 2); err != nil {
		return nil, err
	}
	if err := checkDigitString("second secret", secret2, n, 2); err != nil {
		return nil, err
	}
	if err := checkDigitString("key", key, n, 2); err != nil {
		return nil, err
	}
	anc := 2 * n
	oracle := GateDef{Name: "Oracle", Params: gateParams(2*n + 1)}
	oracle.Body = controlledBranch(oracle.Body, secret1, n, anc)
	oracle.Body = append(oracle.Body, fmt.Sprintf("x _gate_q_%d;", anc))
	oracle.Body = controlledBranch(oracle.Body, secret2, n, anc)
	oracle.Body = keyMask(oracle.Body, key, n)

	p := &Program{Qubits: 2*n + 1, Bits: n + 1, Gates: []GateDef{oracle}}
	p.Ops = hadamardLayer(p.Ops, n)
	p.Ops = append(p.Ops, fmt.Sprintf("h q[%d];", anc))
	p.Ops = append(p.Ops, applyGate("Oracle", 0, 2*n+1))
	p.Ops = hadamardLayer(p.Ops, n)
	p.Ops = append(p.Ops, fmt.Sprintf("c[%d] = measure q[%d];", n, anc))
	p.Ops = measureLayer(p.Ops, n)
	return p, nil
}

// copyLadder appends the cx fan copying the input register to the output
// register.
func copyLadder(body []string, n int) []string {
	for i := 0; i < n; i++ {
		body = append(body, fmt.Sprintf("cx _gate_q_%d, _gate_q_%d;", i, n+i))
	}
	return body
}

// secretFold appends the controlled XOR of the secret into the output
// register, keyed on the secret's first set bit.
func secretFold(body []string, secret string) []string {
	pivot := strings.IndexByte(secret, '1')
	if pivot < 0 {
		return body
	}
	n := len(secret)
	for j := 0; j < n; j++ {
		if secret[j] == '1' {
			body = append(body, fmt.Sprintf("cx _gate_q_%d, _gate_q_%d;", pivot, n+j))
		}
	}
	return body
}

// controlledBranch appends one branch of the two-secret oracle: the copy
// ladder and secret fold with every cx promoted to a ccx on the ancilla.
func controlledBranch(body []string, secret string, n, anc int) []string {
	for i := 0; i < n; i++ {
		body = append(body, fmt.Sprintf("ctrl @ cx _gate_q_%d, _gate_q_%d, _gate_q_%d;", anc, i, n+i))
	}
	pivot := strings.IndexByte(secret, '1')
	if pivot < 0 {
		return body
	}
	for j := 0; j < n; j++ {
		if secret[j] == '1' {
			body = append(body, fmt.Sprintf("ctrl @ cx _gate_q_%d, _gate_q_%d, _gate_q_%d;", anc, pivot, n+j))
		}
	}
	return body
}

// keyMask appends the X layer flipping output qubits at the key's set
// positions.
func keyMask(body []string, key string, n int) []string {
	for j := 0; j < n; j++ {
		if key[j] == '1' {
			body = append(body, fmt.Sprintf("x _gate_q_%d;", n+j))
		}
	}
	return body
}

func hadamardLayer(ops []string, n int) []string {
	for i := 0; i < n; i++ {
		ops = append(ops, fmt.Sprintf("h q[%d];", i))
	}
	return ops
}

func measureLayer(ops []string, n int) []string {
	for i := 0; i < n; i++ {
		ops = append(ops, fmt.Sprintf("c[%d] = measure q[%d];", i, i))
	}
	return ops
}

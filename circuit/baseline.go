package circuit

import "fmt"

// BernsteinVazirani builds the dot-product oracle circuit on n+1 qubits:
// cx from every set secret position into the phase ancilla, inside the
// usual H / X,H ancilla prep / oracle / H skeleton.
func BernsteinVazirani(n int, secret string) (*Program, error) {
	if err := checkDigitString("secret", secret, n, 2); err != nil {
		return nil, err
	}
	oracle := GateDef{Name: "Oracle", Params: gateParams(n + 1)}
	for j := 0; j < n; j++ {
		if secret[j] == '1' {
			oracle.Body = append(oracle.Body, fmt.Sprintf("cx _gate_q_%d, _gate_q_%d;", j, n))
		}
	}
	return phaseKickbackSkeleton(n, oracle), nil
}

// DeutschJozsa builds a constant or balanced oracle circuit on n+1
// qubits. Constant oracles flip the ancilla when the key's last bit is
// set and do nothing otherwise; balanced oracles compute the parity of
// x XOR key via an X sandwich around the cx fan.
func DeutschJozsa(n int, constant bool, key string) (*Program, error) {
	if err := checkDigitString("key", key, n, 2); err != nil {
		return nil, err
	}
	oracle := GateDef{Name: "Oracle", Params: gateParams(n + 1)}
	if constant {
		if key[n-1] == '1' {
			oracle.Body = append(oracle.Body, fmt.Sprintf("x _gate_q_%d;", n))
		} else {
			oracle.Body = append(oracle.Body, fmt.Sprintf("id _gate_q_%d;", n))
		}
	} else {
		for j := 0; j < n; j++ {
			if key[j] == '1' {
				oracle.Body = append(oracle.Body, fmt.Sprintf("x _gate_q_%d;", j))
			}
		}
		for j := 0; j < n; j++ {
			oracle.Body = append(oracle.Body, fmt.Sprintf("cx _gate_q_%d, _gate_q_%d;", j, n))
		}
		for j := 0; j < n; j++ {
			if key[j] == '1' {
				oracle.Body = append(oracle.Body, fmt.Sprintf("x _gate_q_%d;", j))
			}
		}
	}
	return phaseKickbackSkeleton(n, oracle), nil
}

// phaseKickbackSkeleton wraps an n+1 qubit oracle in the shared BV/DJ
// frame: |-> ancilla prep, H layers around the oracle, n measured bits.
func phaseKickbackSkeleton(n int, oracle GateDef) *Program {
	p := &Program{Qubits: n + 1, Bits: n, Gates: []GateDef{oracle}}
	p.Ops = hadamardLayer(p.Ops, n)
	p.Ops = append(p.Ops, fmt.Sprintf("x q[%d];", n))
	p.Ops = append(p.Ops, fmt.Sprintf("h q[%d];", n))
	p.Ops = append(p.Ops, applyGate("Oracle", 0, n+1))
	p.Ops = hadamardLayer(p.Ops, n)
	p.Ops = measureLayer(p.Ops, n)
	return p
}

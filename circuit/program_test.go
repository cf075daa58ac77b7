package circuit

import (
	"strings"
	"testing"
)

func TestSimonGolden(t *testing.T) {
	p, err := Simon(2, "11", "01")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := `OPENQASM 3.0;
include "stdgates.inc";
gate Oracle _gate_q_0, _gate_q_1, _gate_q_2, _gate_q_3 {
  cx _gate_q_0, _gate_q_2;
  cx _gate_q_1, _gate_q_3;
  cx _gate_q_0, _gate_q_2;
  cx _gate_q_0, _gate_q_3;
  x _gate_q_3;
}
bit[2] c;
qubit[4] q;
h q[0];
h q[1];
Oracle q[0], q[1], q[2], q[3];
h q[0];
h q[1];
c[0] = measure q[0];
c[1] = measure q[1];
`
	if got := p.String(); got != want {
		t.Errorf("rendered program mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSimonZeroSecretSkipsFold(t *testing.T) {
	p, err := Simon(3, "000", "000")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	body := p.Gates[0].Body
	if len(body) != 3 {
		t.Fatalf("zero secret, zero key oracle has %d lines, want the 3 copy lines", len(body))
	}
}

func TestBuilderValidation(t *testing.T) {
	if _, err := Simon(3, "11", "000"); err == nil {
		t.Errorf("short secret accepted")
	}
	if _, err := Simon(3, "102", "000"); err == nil {
		t.Errorf("ternary digit accepted in binary secret")
	}
	if _, err := Simon(0, "", ""); err == nil {
		t.Errorf("empty instance accepted")
	}
	if _, err := MultiSimon(3, "110", "011", "0a0"); err == nil {
		t.Errorf("malformed key accepted")
	}
	if _, err := BernsteinVazirani(4, "01x1"); err == nil {
		t.Errorf("malformed BV secret accepted")
	}
	if _, err := DeutschJozsa(4, false, "012"); err == nil {
		t.Errorf("wrong-length DJ key accepted")
	}
}

func TestWriteQASMMatchesString(t *testing.T) {
	p, err := BernsteinVazirani(3, "101")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	var sb strings.Builder
	if err := p.WriteQASM(&sb); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != p.String() {
		t.Errorf("WriteQASM and String disagree")
	}
}

func TestMultiSimonStructure(t *testing.T) {
	p, err := MultiSimon(3, "110", "000", "001")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p.Qubits != 7 || p.Bits != 4 {
		t.Fatalf("registers (%d, %d), want (7, 4)", p.Qubits, p.Bits)
	}
	body := p.Gates[0].Body
	// Branch one: 3 controlled copies + 2 folds (secret 110). Flip.
	// Branch two: 3 controlled copies, no fold (zero secret). Key: 1 X.
	flip := -1
	for i, line := range body {
		if line == "x _gate_q_6;" && flip == -1 {
			flip = i
		}
	}
	if flip != 5 {
		t.Fatalf("ancilla flip at line %d, want 5 (body %v)", flip, body)
	}
	if len(body) != 10 {
		t.Fatalf("oracle body has %d lines, want 10", len(body))
	}
	for _, line := range body[6:9] {
		if !strings.HasPrefix(line, "ctrl @ cx _gate_q_6, ") {
			t.Errorf("second branch line %q lost its ancilla control", line)
		}
	}
	if body[9] != "x _gate_q_5;" {
		t.Errorf("key mask line = %q, want x on the last output qubit", body[9])
	}
	// The ancilla is measured into the top classical bit before the payload.
	wantMeasure := "c[3] = measure q[6];"
	found := false
	for _, op := range p.Ops {
		if op == wantMeasure {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ancilla measurement %q missing from ops", wantMeasure)
	}
}

func TestDeutschJozsaOracles(t *testing.T) {
	constant, err := DeutschJozsa(3, true, "001")
	if err != nil {
		t.Fatalf("build constant: %v", err)
	}
	if len(constant.Gates[0].Body) != 1 || constant.Gates[0].Body[0] != "x _gate_q_3;" {
		t.Errorf("constant-one oracle body = %v", constant.Gates[0].Body)
	}
	balanced, err := DeutschJozsa(3, false, "010")
	if err != nil {
		t.Fatalf("build balanced: %v", err)
	}
	// X sandwich (1 set key bit twice) around 3 cx lines.
	if len(balanced.Gates[0].Body) != 5 {
		t.Errorf("balanced oracle body = %v", balanced.Gates[0].Body)
	}
}

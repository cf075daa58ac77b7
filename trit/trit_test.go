package trit

import "testing"

func TestEnumerateCountingOrder(t *testing.T) {
	got := Enumerate(2)
	want := []string{"00", "01", "02", "10", "11", "12", "20", "21", "22"}
	if len(got) != len(want) {
		t.Fatalf("Enumerate(2) returned %d strings, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Enumerate(2)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if got := Enumerate(0); len(got) != 1 || got[0] != "" {
		t.Fatalf("Enumerate(0) = %v, want one empty string", got)
	}
}

func TestAddAndDouble(t *testing.T) {
	if got := Add("012", "111"); got != "120" {
		t.Errorf(`Add("012","111") = %q, want "120"`, got)
	}
	if got := Add("222", "222"); got != "111" {
		t.Errorf(`Add("222","222") = %q, want "111"`, got)
	}
	if got := Double("012"); got != "021" {
		t.Errorf(`Double("012") = %q, want "021"`, got)
	}
	if got := Double("000"); got != "000" {
		t.Errorf(`Double("000") = %q, want "000"`, got)
	}
}

func TestAddPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Add("01", "012")
}

func TestValid(t *testing.T) {
	for _, s := range []string{"", "0", "012", "222"} {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false", s)
		}
	}
	for _, s := range []string{"3", "01a", "0 2", "-1"} {
		if Valid(s) {
			t.Errorf("Valid(%q) = true", s)
		}
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for _, s := range Enumerate(3) {
		bits := ToBits(s)
		if len(bits) != 6 {
			t.Fatalf("ToBits(%q) has length %d", s, len(bits))
		}
		back, err := FromBits(bits)
		if err != nil {
			t.Fatalf("FromBits(%q): %v", bits, err)
		}
		if back != s {
			t.Fatalf("round trip %q -> %q -> %q", s, bits, back)
		}
	}
}

func TestFromBitsRejectsInvalid(t *testing.T) {
	for _, b := range []string{"11", "0011", "010", "0x", "1100"} {
		if _, err := FromBits(b); err == nil {
			t.Errorf("FromBits(%q): expected error", b)
		}
	}
}

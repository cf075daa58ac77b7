package simon

import (
	"errors"
	"reflect"
	"testing"
)

func TestRecoverTernaryFromBitSamples(t *testing.T) {
	// One shot of 11 constrains the secret to the 12 orbit.
	got, err := RecoverTernary(2, []string{"0101"}, LastRow)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if got != "12" {
		t.Errorf("recovered %q, want 12", got)
	}

	// Constraints 010 and 101 pin 102 up to doubling.
	got, err = RecoverTernary(3, []string{"000100", "010001"}, LastRow)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if got != "102" {
		t.Errorf("recovered %q, want 102", got)
	}
}

func TestRecoverTernaryDropsZeroShots(t *testing.T) {
	got, err := RecoverTernary(2, []string{"0000", "0000"}, LastRow)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if got != "00" {
		t.Errorf("recovered %q, want the all-zero fallback", got)
	}
}

func TestRecoverTernaryMalformed(t *testing.T) {
	for _, samples := range [][]string{
		{"010"},
		{"1100"},
		{"01a0"},
	} {
		if _, err := RecoverTernary(2, samples, LastRow); !errors.Is(err, ErrMalformedSample) {
			t.Errorf("samples %v: err = %v, want ErrMalformedSample", samples, err)
		}
	}
}

func TestTernaryEquivalents(t *testing.T) {
	got, err := TernaryEquivalents("12")
	if err != nil {
		t.Fatalf("equivalents: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"12", "21"}) {
		t.Errorf("equivalents of 12 = %v", got)
	}
	got, err = TernaryEquivalents("00")
	if err != nil {
		t.Fatalf("equivalents: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"00"}) {
		t.Errorf("equivalents of 00 = %v", got)
	}
	if _, err := TernaryEquivalents("13"); err == nil {
		t.Fatalf("non-trit string accepted")
	}
}

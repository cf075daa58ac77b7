package verify

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"QAlgoBench/prof"
)

// TrialResult is the success tally of one extracted test case.
type TrialResult struct {
	Trial   int `json:"trial"`
	Success int `json:"success"`
	Fail    int `json:"fail"`
}

// SizeResult aggregates all trials of one problem size. SyntaxError is
// set, and Trials left empty, when the plugged circuit failed the
// structural check and the size was skipped.
type SizeResult struct {
	N            int           `json:"n"`
	SyntaxError  string        `json:"syntax_error,omitempty"`
	Trials       []TrialResult `json:"trials,omitempty"`
	TotalSuccess int           `json:"total_success"`
	TotalFail    int           `json:"total_fail"`
}

// Timing is one aggregated stage duration in seconds.
type Timing struct {
	Label   string  `json:"label"`
	Seconds float64 `json:"seconds"`
}

// Report is the machine-readable outcome of a verification run. Digest
// fingerprints the transcript so two runs can be compared without
// diffing the text.
type Report struct {
	Algorithm string       `json:"algorithm"`
	Seed      string       `json:"seed,omitempty"`
	Repeats   int          `json:"repeats"`
	Shots     int          `json:"shots,omitempty"`
	Sizes     []SizeResult `json:"sizes"`
	Digest    string       `json:"digest"`
	Timings   []Timing     `json:"timings,omitempty"`
}

// WriteFile marshals the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

// digest fingerprints data with SHAKE-256.
func digest(data []byte) string {
	h := sha3.NewShake256()
	h.Write(data)
	sum := make([]byte, 32)
	h.Read(sum)
	return hex.EncodeToString(sum)
}

// timingsFrom converts aggregated tracker totals for the report.
func timingsFrom(t *prof.Tracker) []Timing {
	totals := t.Totals()
	if len(totals) == 0 {
		return nil
	}
	out := make([]Timing, len(totals))
	for i, e := range totals {
		out[i] = Timing{Label: e.Label, Seconds: e.Dur.Seconds()}
	}
	return out
}

package verify

// Package verify replays the extracted trials of a dataset against the
// promise backend and scores how often the classical recovery pipeline
// reproduces each trial's ground truth. Its transcript mirrors the
// historical verification logs line for line, so existing tooling that
// scrapes Success/Fail counters keeps working.

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"QAlgoBench/circuit"
)

// Options drives one verification run. Zero fields are filled from the
// family defaults by normalize: the historical size ranges, 10 trials
// capped by the instance space, 10 repeats per trial, and per-family
// sample counts derived from the circuit width when Shots is 0.
type Options struct {
	Algorithm string `json:"algorithm"`
	DataDir   string `json:"data_dir"`
	MinN      int    `json:"min_n,omitempty"`
	MaxN      int    `json:"max_n,omitempty"`
	Trials    int    `json:"trials,omitempty"`
	Repeats   int    `json:"repeats,omitempty"`
	Shots     int    `json:"shots,omitempty"`
	Seed      string `json:"seed,omitempty"`
	Workers   int    `json:"workers,omitempty"`
	Report    string `json:"report,omitempty"`
}

// familyParams carries the per-family verification defaults: the
// transcript headline, the historical check range and the base of the
// trial budget min(Trials, base^(n-2)), plus the two fixed constant
// trials of the Deutsch-Jozsa layout.
type familyParams struct {
	title       string
	minN, maxN  int
	trialBase   int
	extraTrials int
}

func paramsFor(f circuit.Family) familyParams {
	switch f {
	case circuit.FamilyMultiSimon:
		return familyParams{title: "Multi Simon's Algorithm", minN: 4, maxN: 30, trialBase: 4}
	case circuit.FamilyTernarySimon:
		return familyParams{title: "Ternary Simon's Algorithm", minN: 3, maxN: 10, trialBase: 4}
	case circuit.FamilyBernsteinVazirani:
		return familyParams{title: "Bernstein-Vazirani Algorithm", minN: 2, maxN: 10, trialBase: 2}
	case circuit.FamilyDeutschJozsa:
		return familyParams{title: "Deutsch-Jozsa Algorithm", minN: 2, maxN: 10, trialBase: 2, extraTrials: 2}
	default:
		return familyParams{title: "Simon's Algorithm", minN: 2, maxN: 10, trialBase: 4}
	}
}

// Family returns the configured circuit family.
func (o Options) Family() circuit.Family {
	return circuit.Family(o.Algorithm)
}

func (o *Options) normalize() {
	p := paramsFor(o.Family())
	if o.MinN == 0 {
		o.MinN = p.minN
	}
	if o.MaxN == 0 {
		o.MaxN = p.maxN
	}
	if o.Trials == 0 {
		o.Trials = 10
	}
	if o.Repeats == 0 {
		o.Repeats = 10
	}
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
}

// Validate checks the options after normalization.
func (o Options) Validate() error {
	if !o.Family().Valid() {
		return fmt.Errorf("verify: unknown algorithm %q", o.Algorithm)
	}
	if o.DataDir == "" {
		return fmt.Errorf("verify: data directory not set")
	}
	if o.MinN < 2 {
		return fmt.Errorf("verify: min size %d must be >= 2", o.MinN)
	}
	if o.MaxN < o.MinN {
		return fmt.Errorf("verify: size range [%d, %d] is empty", o.MinN, o.MaxN)
	}
	if o.Trials < 1 {
		return fmt.Errorf("verify: trial cap %d must be >= 1", o.Trials)
	}
	if o.Repeats < 1 {
		return fmt.Errorf("verify: repeat count %d must be >= 1", o.Repeats)
	}
	if o.Shots < 0 {
		return fmt.Errorf("verify: shot count %d must be >= 0", o.Shots)
	}
	return nil
}

// LoadOptions decodes a JSON options file.
func LoadOptions(path string) (Options, error) {
	var o Options
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("verify: read options: %w", err)
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("verify: decode options: %w", err)
	}
	return o, nil
}

// trialBudget returns the number of trials checked at size n:
// min(cap, base^(n-2)) plus any fixed extra trials of the family.
func trialBudget(p familyParams, n, cap int) int {
	budget := 1
	for i := 2; i < n; i++ {
		budget *= p.trialBase
		if budget >= cap {
			budget = cap
			break
		}
	}
	if budget > cap {
		budget = cap
	}
	return budget + p.extraTrials
}

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tuneinsight/lattigo/v4/utils"

	"QAlgoBench/circuit"
	"QAlgoBench/internal/randutil"
)

// Config drives the generation, extraction and indexing stages for one
// family. Cases caps the distinct secrets (and keys) drawn per size;
// the effective pool is min(radix^(n-2), Cases) so small sizes are
// covered exhaustively. A nil PRNG draws from system entropy.
type Config struct {
	Root   string
	Family circuit.Family
	MinN   int
	MaxN   int
	Cases  int
	PRNG   utils.PRNG
}

// DefaultConfig returns the canonical per-family ranges. The ternary
// family stops at n=10: its oracle walks all 3^n strings, and the
// verification range tops out there anyway. The single-query families
// get a larger case pool since each instance is one file.
func DefaultConfig(f circuit.Family) Config {
	c := Config{Family: f, MinN: 2, MaxN: 30, Cases: 5}
	switch f {
	case circuit.FamilyTernarySimon:
		c.MaxN = 10
	case circuit.FamilyBernsteinVazirani, circuit.FamilyDeutschJozsa:
		c.Cases = 20
	}
	return c
}

func (c Config) validate() error {
	if !c.Family.Valid() {
		return fmt.Errorf("dataset: unknown family %q", c.Family)
	}
	if c.Root == "" {
		return fmt.Errorf("dataset: root directory not set")
	}
	if c.MinN < 2 {
		return fmt.Errorf("dataset: min size %d must be >= 2", c.MinN)
	}
	if c.MaxN < c.MinN {
		return fmt.Errorf("dataset: size range [%d, %d] is empty", c.MinN, c.MaxN)
	}
	if c.Cases < 1 {
		return fmt.Errorf("dataset: case count %d must be >= 1", c.Cases)
	}
	return nil
}

// Generate builds and writes the full circuits of every instance in
// the configured range and returns the number of files written.
func Generate(cfg Config) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	l := Layout{Root: cfg.Root}
	total := 0
	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		instances, err := drawInstances(cfg, n)
		if err != nil {
			return total, err
		}
		dir := l.CircuitDir(cfg.Family, n)
		for _, inst := range instances {
			prog, err := inst.Build()
			if err != nil {
				return total, err
			}
			name, err := CircuitFileName(inst)
			if err != nil {
				return total, err
			}
			if err := writeFileMkdir(filepath.Join(dir, name), []byte(prog.String())); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

// drawInstances enumerates the instances generated for one size. The
// Simon families cross every secret with every key; the multi-secret
// family pairs its two secret pools index by index instead, keeping
// the file count linear in the pool size.
func drawInstances(cfg Config, n int) ([]circuit.Instance, error) {
	radix := cfg.Family.Radix()
	var out []circuit.Instance
	switch cfg.Family {
	case circuit.FamilySimon, circuit.FamilyTernarySimon:
		// An all-zero ternary shift would split the space into 3^n
		// singleton cycles and change the ancilla width, breaking the
		// shared per-n skeleton.
		excludeZero := cfg.Family == circuit.FamilyTernarySimon
		secrets, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, excludeZero)
		if err != nil {
			return nil, err
		}
		keys, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, false)
		if err != nil {
			return nil, err
		}
		for _, s := range secrets {
			for _, k := range keys {
				out = append(out, circuit.Instance{Family: cfg.Family, N: n, Secret: s, Key: k})
			}
		}
	case circuit.FamilyMultiSimon:
		first, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, false)
		if err != nil {
			return nil, err
		}
		second, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, false)
		if err != nil {
			return nil, err
		}
		keys, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, false)
		if err != nil {
			return nil, err
		}
		for i := range first {
			for _, k := range keys {
				out = append(out, circuit.Instance{
					Family: cfg.Family, N: n,
					Secret: first[i], Secret2: second[i], Key: k,
				})
			}
		}
	case circuit.FamilyBernsteinVazirani:
		secrets, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, false)
		if err != nil {
			return nil, err
		}
		for _, s := range secrets {
			out = append(out, circuit.Instance{Family: cfg.Family, N: n, Secret: s})
		}
	case circuit.FamilyDeutschJozsa:
		pad := strings.Repeat("0", n-1)
		for _, last := range []string{"0", "1"} {
			out = append(out, circuit.Instance{
				Family: cfg.Family, N: n, Key: pad + last, Constant: true,
			})
		}
		keys, err := drawPool(cfg.PRNG, n, radix, cfg.Cases, false)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			out = append(out, circuit.Instance{Family: cfg.Family, N: n, Key: k})
		}
	}
	return out, nil
}

// drawPool draws min(radix^(n-2), cases) distinct digit strings of
// length n, in draw order so a keyed PRNG reproduces the pool exactly.
func drawPool(prng utils.PRNG, n int, radix uint64, cases int, excludeZero bool) ([]string, error) {
	want := poolSize(radix, n, cases)
	zero := strings.Repeat("0", n)
	seen := make(map[string]struct{}, want)
	pool := make([]string, 0, want)
	for len(pool) < want {
		s, err := randutil.DigitString(prng, n, radix)
		if err != nil {
			return nil, err
		}
		if excludeZero && s == zero {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		pool = append(pool, s)
	}
	return pool, nil
}

// poolSize computes min(radix^(n-2), cases) without overflowing.
func poolSize(radix uint64, n, cases int) int {
	size := 1
	for i := 2; i < n; i++ {
		size *= int(radix)
		if size >= cases {
			return cases
		}
	}
	if size > cases {
		return cases
	}
	return size
}

func writeFileMkdir(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create dataset dir")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write dataset file")
	}
	return nil
}

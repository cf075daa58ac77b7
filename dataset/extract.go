package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"QAlgoBench/circuit"
)

// Extract splits every generated circuit in the configured range into
// a per-trial oracle include plus ground-truth file, and saves the
// shared skeleton once per size from the first circuit seen. Sizes
// with no generated circuits are skipped. Returns the number of trials
// written.
//
// Trial numbering restarts at 1 for each size. For Deutsch-Jozsa the
// two constant oracles always take trials 1 and 2 and the balanced
// ones follow, which is what lets a checker budget trials as
// min(10, 2^(n-2))+2.
func Extract(cfg Config) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	l := Layout{Root: cfg.Root}
	total := 0
	for n := cfg.MinN; n <= cfg.MaxN; n++ {
		dir := l.CircuitDir(cfg.Family, n)
		names, err := listQASM(dir)
		if err != nil {
			return total, err
		}
		if cfg.Family == circuit.FamilyDeutschJozsa {
			names = constantsFirst(names)
		}
		saved := false
		for i, name := range names {
			trial := i + 1
			inst, err := ParseCircuitFileName(cfg.Family, n, name)
			if err != nil {
				return total, err
			}
			content, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return total, errors.Wrap(err, "read circuit")
			}
			split, err := circuit.ExtractOracle(string(content))
			if err != nil {
				return total, errors.Wrapf(err, "extract %s", name)
			}
			info, err := FormatInfo(inst)
			if err != nil {
				return total, err
			}
			if err := writeFileMkdir(l.InfoPath(n, trial), []byte(info)); err != nil {
				return total, err
			}
			if err := writeFileMkdir(l.OraclePath(n, trial), []byte(split.OracleInc)); err != nil {
				return total, err
			}
			if !saved {
				if err := writeFileMkdir(l.SkeletonPath(cfg.Family, n), []byte(split.Skeleton)); err != nil {
					return total, err
				}
				saved = true
			}
			total++
		}
	}
	return total, nil
}

// listQASM returns the .qasm file names of dir in lexical order; a
// missing dir yields none.
func listQASM(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read circuit dir")
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".qasm") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// constantsFirst stable-partitions Deutsch-Jozsa circuit names so the
// constant oracles precede the balanced ones.
func constantsFirst(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(name, "_constant_") {
			out = append(out, name)
		}
	}
	for _, name := range names {
		if !strings.Contains(name, "_constant_") {
			out = append(out, name)
		}
	}
	return out
}

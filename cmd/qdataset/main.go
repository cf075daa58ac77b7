package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tuneinsight/lattigo/v4/utils"
	"github.com/urfave/cli"

	"QAlgoBench/circuit"
	"QAlgoBench/dataset"
	"QAlgoBench/verify"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func familyNames() string {
	names := make([]string, 0, len(circuit.Families()))
	for _, f := range circuit.Families() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func datasetFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "algo,a",
			Usage: "circuit family: " + familyNames(),
		},
		cli.StringFlag{
			Name:  "data,d",
			Value: ".",
			Usage: "dataset root directory",
		},
		cli.IntFlag{
			Name:  "min-n",
			Usage: "smallest problem size (0 uses the family default)",
		},
		cli.IntFlag{
			Name:  "max-n",
			Usage: "largest problem size (0 uses the family default)",
		},
		cli.IntFlag{
			Name:  "cases",
			Usage: "cap on distinct secrets and keys per size (0 uses the family default)",
		},
		cli.StringFlag{
			Name:  "seed",
			Usage: "key the random draws for a reproducible dataset",
		},
	}
}

func datasetConfig(c *cli.Context) (dataset.Config, error) {
	f := circuit.Family(c.String("algo"))
	if !f.Valid() {
		return dataset.Config{}, fmt.Errorf("unknown algorithm %q, want one of: %s", c.String("algo"), familyNames())
	}
	cfg := dataset.DefaultConfig(f)
	cfg.Root = c.String("data")
	if v := c.Int("min-n"); v > 0 {
		cfg.MinN = v
	}
	if v := c.Int("max-n"); v > 0 {
		cfg.MaxN = v
	}
	if v := c.Int("cases"); v > 0 {
		cfg.Cases = v
	}
	if seed := c.String("seed"); seed != "" {
		prng, err := utils.NewKeyedPRNG([]byte(seed))
		if err != nil {
			return dataset.Config{}, err
		}
		cfg.PRNG = prng
	}
	return cfg, nil
}

func generateCommand() cli.Command {
	return cli.Command{
		Name:  "generate",
		Usage: "build the full oracle circuits of a family and write them as QASM",
		Flags: datasetFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := datasetConfig(c)
			if err != nil {
				return err
			}
			count, err := dataset.Generate(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d circuits under %s\n", count, cfg.Root)
			return nil
		},
	}
}

func extractCommand() cli.Command {
	return cli.Command{
		Name:  "extract",
		Usage: "split generated circuits into per-trial oracles and shared skeletons",
		Flags: datasetFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := datasetConfig(c)
			if err != nil {
				return err
			}
			count, err := dataset.Extract(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("extracted %d trials under %s\n", count, cfg.Root)
			return nil
		},
	}
}

func indexCommand() cli.Command {
	return cli.Command{
		Name:  "index",
		Usage: "write the JSON description/circuit index of a generated family",
		Flags: datasetFlags(),
		Action: func(c *cli.Context) error {
			cfg, err := datasetConfig(c)
			if err != nil {
				return err
			}
			count, err := dataset.WriteIndex(cfg)
			if err != nil {
				return err
			}
			fmt.Printf("indexed %d circuits in %s\n", count, dataset.Layout{Root: cfg.Root}.IndexPath(cfg.Family))
			return nil
		},
	}
}

func checkCommand() cli.Command {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "algo,a",
			Usage: "circuit family: " + familyNames(),
		},
		cli.StringFlag{
			Name:  "data,d",
			Value: ".",
			Usage: "dataset root directory",
		},
		cli.StringFlag{
			Name:  "options",
			Usage: "JSON options file; other flags are ignored when set",
		},
		cli.IntFlag{Name: "min-n", Usage: "smallest checked size (0 uses the family default)"},
		cli.IntFlag{Name: "max-n", Usage: "largest checked size (0 uses the family default)"},
		cli.IntFlag{Name: "trials", Usage: "trial cap per size (0 means 10)"},
		cli.IntFlag{Name: "repeats", Usage: "experiments per trial (0 means 10)"},
		cli.IntFlag{Name: "shots", Usage: "samples per experiment (0 derives from the circuit width)"},
		cli.StringFlag{Name: "seed", Usage: "master seed for reproducible sampling"},
		cli.IntFlag{Name: "workers", Usage: "parallel trials (0 uses all CPUs)"},
		cli.StringFlag{Name: "report", Usage: "also write a JSON report to this path"},
		cli.BoolFlag{Name: "quiet,q", Usage: "suppress the live transcript"},
	}
	return cli.Command{
		Name:  "check",
		Usage: "replay extracted trials through the recovery pipeline and score them",
		Flags: flags,
		Action: func(c *cli.Context) error {
			var opts verify.Options
			if path := c.String("options"); path != "" {
				loaded, err := verify.LoadOptions(path)
				if err != nil {
					return err
				}
				opts = loaded
			} else {
				opts = verify.Options{
					Algorithm: c.String("algo"),
					DataDir:   c.String("data"),
					MinN:      c.Int("min-n"),
					MaxN:      c.Int("max-n"),
					Trials:    c.Int("trials"),
					Repeats:   c.Int("repeats"),
					Shots:     c.Int("shots"),
					Seed:      c.String("seed"),
					Workers:   c.Int("workers"),
					Report:    c.String("report"),
				}
			}
			var echo io.Writer = os.Stdout
			if c.Bool("quiet") {
				echo = nil
			}
			report, err := verify.Check(opts, echo)
			if err != nil {
				return err
			}
			success, fail := 0, 0
			for _, size := range report.Sizes {
				success += size.TotalSuccess
				fail += size.TotalFail
			}
			fmt.Printf("checked %s: %d success, %d fail; transcript digest %s\n",
				report.Algorithm, success, fail, report.Digest)
			return nil
		},
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "qdataset"
	app.Usage = "generate, extract and check hidden-subgroup benchmark circuits"
	app.Version = VERSION
	app.Commands = []cli.Command{
		generateCommand(),
		extractCommand(),
		indexCommand(),
		checkCommand(),
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

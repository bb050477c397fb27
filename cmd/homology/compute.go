package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/isaiahtx/simplicial-homology/complexes"
	"github.com/isaiahtx/simplicial-homology/homology"
	"github.com/isaiahtx/simplicial-homology/simplex"
	"github.com/isaiahtx/simplicial-homology/snf"
)

type computeFlags struct {
	examples    []string
	asJSON      bool
	maxAttempts int
	unbounded   bool
	retryDelay  time.Duration
	parallel    int
	check       bool
	cacheSize   int
}

// input is one complex to compute.
type input struct {
	name  string
	faces []simplex.Face
}

// groupJSON and resultJSON are the --json output shapes.
type groupJSON struct {
	Dim     int        `json:"dim"`
	Rank    int        `json:"rank"`
	Torsion []*big.Int `json:"torsion"`
	Text    string     `json:"text"`
}

type resultJSON struct {
	Name        string      `json:"name"`
	Fingerprint string      `json:"fingerprint"`
	Sizes       []int       `json:"sizes"`
	Groups      []groupJSON `json:"groups"`
	Top         int         `json:"top"`
}

func newComputeCmd(rf *rootFlags) *cobra.Command {
	cf := &computeFlags{}
	cmd := &cobra.Command{
		Use:   "compute [file|-]...",
		Short: "Compute homology of complexes from files or the catalog",
		Long: `Compute homology of one or more complexes.

Files hold YAML or JSON: either a face list [[0,1],[1,2],[2,0]] or a
mapping with "name" and "faces". "-" reads standard input.

Examples:
  homology compute --example rp2 --example klein
  homology compute torus.yaml --json
  cat complex.json | homology compute -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, rf, cf, args)
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&cf.examples, "example", "e", nil, "catalog complex to compute (repeatable)")
	f.BoolVar(&cf.asJSON, "json", false, "print results as JSON")
	f.IntVar(&cf.maxAttempts, "max-attempts", snf.DefaultMaxAttempts, "reduction attempts on transient failures")
	f.BoolVar(&cf.unbounded, "unbounded-retries", false, "retry transient failures until success or interrupt")
	f.DurationVar(&cf.retryDelay, "retry-delay", snf.DefaultRetryDelay, "pause between reduction attempts")
	f.IntVar(&cf.parallel, "parallel", homology.DefaultParallelism, "dimensions reduced concurrently")
	f.BoolVar(&cf.check, "check", false, "cross-check H0 against 1-skeleton components")
	f.IntVar(&cf.cacheSize, "cache-size", homology.DefaultCacheSize, "results kept for repeated complexes")

	return cmd
}

func runCompute(cmd *cobra.Command, rf *rootFlags, cf *computeFlags, args []string) error {
	logger, err := rf.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts, err := cf.options()
	if err != nil {
		return err
	}
	opts = append(opts, homology.WithLogger(logger))

	inputs, err := gatherInputs(cmd.InOrStdin(), cf.examples, args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("nothing to compute: pass a file, '-' or --example")
	}

	engine, err := homology.NewEngine(cf.cacheSize, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var results []resultJSON
	for i, in := range inputs {
		res, err := engine.Compute(cmd.Context(), in.faces)
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		logger.Info("computed", "complex", in.name, "top", res.Top(), "fingerprint", res.Fingerprint.String())

		if cf.asJSON {
			results = append(results, toJSON(in.name, res))
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n%s", in.name, res)
	}

	if cf.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	return nil
}

// options maps flags onto homology options, validating them first so the
// option constructors never panic on user input.
func (cf *computeFlags) options() ([]homology.Option, error) {
	if cf.parallel < 1 {
		return nil, fmt.Errorf("--parallel %d: must be >= 1", cf.parallel)
	}
	if cf.retryDelay < 0 {
		return nil, fmt.Errorf("--retry-delay %s: must be >= 0", cf.retryDelay)
	}
	if cf.cacheSize < 1 {
		return nil, fmt.Errorf("--cache-size %d: must be >= 1", cf.cacheSize)
	}

	snfOpts := []snf.Option{snf.WithRetryDelay(cf.retryDelay)}
	if cf.unbounded {
		snfOpts = append(snfOpts, snf.WithUnboundedRetries())
	} else {
		if cf.maxAttempts < 1 {
			return nil, fmt.Errorf("--max-attempts %d: must be >= 1", cf.maxAttempts)
		}
		snfOpts = append(snfOpts, snf.WithMaxAttempts(cf.maxAttempts))
	}

	opts := []homology.Option{
		homology.WithParallelism(cf.parallel),
		homology.WithSNFOptions(snfOpts...),
	}
	if cf.check {
		opts = append(opts, homology.WithConnectivityCheck())
	}

	return opts, nil
}

// gatherInputs resolves catalog names first, then files in argument order.
func gatherInputs(stdin io.Reader, examples, files []string) ([]input, error) {
	var out []input
	for _, name := range examples {
		faces, err := complexes.Named(name)
		if err != nil {
			return nil, fmt.Errorf("--example %s: %w (known: %v)", name, err, complexes.Names())
		}
		out = append(out, input{name: name, faces: faces})
	}

	for _, path := range files {
		doc, err := readDocument(stdin, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := doc.Name
		if name == "" {
			name = path
		}
		out = append(out, input{name: name, faces: doc.Faces})
	}

	return out, nil
}

func readDocument(stdin io.Reader, path string) (*complexes.Document, error) {
	if path == "-" {
		return complexes.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return complexes.Decode(f)
}

func toJSON(name string, r *homology.Result) resultJSON {
	out := resultJSON{
		Name:        name,
		Fingerprint: r.Fingerprint.String(),
		Sizes:       r.Sizes,
		Groups:      make([]groupJSON, len(r.Groups)),
		Top:         r.Top(),
	}
	for i, g := range r.Groups {
		torsion := g.Torsion
		if torsion == nil {
			torsion = []*big.Int{}
		}
		out.Groups[i] = groupJSON{Dim: g.Dim, Rank: g.Rank, Torsion: torsion, Text: g.String()}
	}

	return out
}

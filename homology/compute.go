// SPDX-License-Identifier: MIT

package homology

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/isaiahtx/simplicial-homology/chain"
	"github.com/isaiahtx/simplicial-homology/simplex"
	"github.com/isaiahtx/simplicial-homology/skeleton"
	"github.com/isaiahtx/simplicial-homology/snf"
)

const opCompute = "Compute"

// Compute returns the homology of the complex generated by faces.
//
// Implementation:
//   - Stage 1: simplex.Close (validates input, fails fast).
//   - Stage 2: chain.Group (canonical indexed strata).
//   - Stage 3: for d = 1..top, build ∂_d and reduce it with snf.Compute,
//     sequentially or on an errgroup (WithParallelism).
//   - Stage 4: Assemble, then the optional connectivity check.
//
// Any failure aborts the computation; no partial Result is returned.
func Compute(ctx context.Context, faces []simplex.Face, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	cpx, err := simplex.Close(faces)
	if err != nil {
		return nil, homologyErrorf(opCompute, err)
	}
	strata := chain.Group(cpx.Faces())
	o.logger.Debug("homology: complex closed", "input", len(faces), "faces", cpx.Len(), "top", strata.Top())

	return computeStrata(ctx, strata, o)
}

// computeStrata runs stages 3-4 on prepared strata.
func computeStrata(ctx context.Context, strata chain.Strata, o Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, homologyErrorf(opCompute, err)
	}

	top := strata.Top()
	boundaries := make([]snf.Result, top+1)

	reduce := func(ctx context.Context, d int) error {
		m, err := chain.Boundary(strata.At(d), strata.At(d-1))
		if err != nil {
			return err
		}
		snfOpts := append([]snf.Option{snf.WithContext(ctx), snf.WithLogger(o.logger)}, o.snfOpts...)
		r, err := snf.Compute(m, snfOpts...)
		if err != nil {
			return fmt.Errorf("∂%d: %w", d, err)
		}
		boundaries[d] = r // each d owns its slot
		o.logger.Debug("homology: boundary reduced",
			"dim", d, "rows", m.Rows(), "cols", m.Cols(), "rank", r.Rank, "divisors", len(r.Divisors))

		return nil
	}

	if o.parallelism > 1 && top > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.parallelism)
		for d := 1; d <= top; d++ {
			d := d
			g.Go(func() error { return reduce(gctx, d) })
		}
		if err := g.Wait(); err != nil {
			return nil, homologyErrorf(opCompute, err)
		}
	} else {
		for d := 1; d <= top; d++ {
			if err := reduce(ctx, d); err != nil {
				return nil, homologyErrorf(opCompute, err)
			}
		}
	}

	groups, err := Assemble(strata.Sizes(), boundaries)
	if err != nil {
		return nil, homologyErrorf(opCompute, err)
	}
	res := &Result{
		Groups:      groups,
		Sizes:       strata.Sizes(),
		Fingerprint: strata.Fingerprint(),
	}

	if o.checkConnectivity {
		res.Components = skeleton.Count(strata)
		if res.Components != res.At(0).Rank {
			return nil, homologyErrorf(opCompute, fmt.Errorf("rank H0 = %d, components = %d: %w", res.At(0).Rank, res.Components, ErrInconsistent))
		}
	}

	return res, nil
}

// SPDX-License-Identifier: MIT

package snf

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/isaiahtx/simplicial-homology/matrix"
)

const opCompute = "Compute"

// Result is the elementary divisor summary of one matrix.
type Result struct {
	// Rank is the number of nonzero SNF diagonal entries.
	Rank int
	// Divisors are the SNF diagonal entries >= 2, in SNF order.
	Divisors []*big.Int
	// Diagonal is the full non-negative SNF diagonal (length min(rows, cols)).
	Diagonal []*big.Int
}

// Int64Divisors returns Divisors as int64 values and whether all of them fit.
func (r Result) Int64Divisors() ([]int64, bool) {
	out := make([]int64, len(r.Divisors))
	for i, d := range r.Divisors {
		if !d.IsInt64() {
			return nil, false
		}
		out[i] = d.Int64()
	}

	return out, true
}

// String renders "rank=R divisors=[d1 d2 ...]".
func (r Result) String() string {
	parts := make([]string, len(r.Divisors))
	for i, d := range r.Divisors {
		parts[i] = d.String()
	}

	return fmt.Sprintf("rank=%d divisors=[%s]", r.Rank, strings.Join(parts, " "))
}

// Compute returns the rank and nontrivial elementary divisors of m.
//
// Implementation:
//   - Stage 1: reject nil input as ErrMalformed.
//   - Stage 2: zero rows or zero columns → Result{} without reduction.
//   - Stage 3: call the reducer; retry only ErrTransient failures, waiting
//     RetryDelay between attempts, until success, the attempt bound, or ctx.
//   - Stage 4: check the reduced matrix is diagonal with m's shape and
//     summarize it.
//
// The input is never mutated.
func Compute(m matrix.Matrix, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, snfErrorf(opCompute, fmt.Errorf("%w: %w", ErrMalformed, err))
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return Result{}, nil
	}

	for attempt := 1; ; attempt++ {
		if err := o.ctx.Err(); err != nil {
			return Result{}, snfErrorf(opCompute, err)
		}

		d, err := o.reducer.Reduce(o.ctx, m)
		if err == nil {
			return summarize(m, d)
		}
		if !errors.Is(err, ErrTransient) {
			return Result{}, snfErrorf(opCompute, err)
		}
		if o.maxAttempts > 0 && attempt >= o.maxAttempts {
			return Result{}, snfErrorf(opCompute, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err))
		}

		o.logger.Warn("snf: transient reduction failure, retrying",
			"attempt", attempt, "delay", o.retryDelay, "rows", m.Rows(), "cols", m.Cols(), "err", err)
		if werr := wait(o.ctx, o.retryDelay); werr != nil {
			return Result{}, snfErrorf(opCompute, fmt.Errorf("retry wait: %w (last failure: %v)", werr, err))
		}
	}
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// summarize validates the reducer output and extracts rank and divisors.
func summarize(in matrix.Matrix, d *matrix.Dense) (Result, error) {
	if d == nil || d.Rows() != in.Rows() || d.Cols() != in.Cols() {
		return Result{}, snfErrorf(opCompute, fmt.Errorf("%w: reducer returned wrong shape", ErrMalformed))
	}
	if !d.IsDiagonal() {
		return Result{}, snfErrorf(opCompute, fmt.Errorf("%w: reducer returned a non-diagonal matrix", ErrMalformed))
	}

	res := Result{Diagonal: d.Diagonal()}
	for _, v := range res.Diagonal {
		v.Abs(v) // elementary divisors are defined up to units
		if v.Sign() == 0 {
			continue
		}
		res.Rank++
		if v.BitLen() > 1 { // |v| >= 2
			res.Divisors = append(res.Divisors, v)
		}
	}

	return res, nil
}

// SPDX-License-Identifier: MIT

package snf

import (
	"context"

	"github.com/isaiahtx/simplicial-homology/matrix"
)

// Reducer brings a matrix to Smith Normal Form. Implementations must not
// mutate m and should wrap ErrTransient for failures worth retrying.
type Reducer interface {
	Reduce(ctx context.Context, m matrix.Matrix) (*matrix.Dense, error)
}

// ReducerFunc adapts a function to Reducer.
type ReducerFunc func(ctx context.Context, m matrix.Matrix) (*matrix.Dense, error)

// Reduce calls f(ctx, m).
func (f ReducerFunc) Reduce(ctx context.Context, m matrix.Matrix) (*matrix.Dense, error) {
	return f(ctx, m)
}

// Exact is the in-process big.Int reducer backed by matrix.SmithNormalForm.
// It never returns ErrTransient.
var Exact Reducer = ReducerFunc(func(_ context.Context, m matrix.Matrix) (*matrix.Dense, error) {
	return matrix.SmithNormalForm(m)
})

// Package snf computes the rank and nontrivial elementary divisors of an
// integer matrix through its Smith Normal Form.
//
// What
//
//   - Compute(m) returns Result{Rank, Divisors, Diagonal}:
//     Rank is the number of nonzero diagonal entries of SNF(m), Divisors the
//     entries with |d| >= 2 in SNF order (each divides the next), Diagonal
//     the full normalized diagonal for callers that want it.
//   - Matrices with zero rows or zero columns short-circuit to rank 0 and no
//     divisors; the reducer is never invoked for them.
//
// Reduction backends
//
//	The work is delegated to a Reducer. The default, Exact, runs
//	matrix.SmithNormalForm in-process with big.Int arithmetic. Other
//	backends (an external CAS, a remote worker) plug in through WithReducer.
//
// Failure policy
//
//   - Malformed input (nil matrix) and malformed reducer output (wrong
//     shape, not diagonal) are ErrMalformed and are never retried.
//   - Errors that match ErrTransient are retried after RetryDelay, at most
//     MaxAttempts times in total (DefaultMaxAttempts unless configured;
//     WithUnboundedRetries removes the bound). Exhaustion returns
//     ErrRetriesExhausted wrapping the last failure.
//   - Any other reducer error is returned immediately.
//   - The context given by WithContext cancels waiting between attempts.
//
// Options
//
//   - WithContext(ctx)         cancellation for retry waits.
//   - WithMaxAttempts(n)       total attempts, n >= 1.
//   - WithUnboundedRetries()   retry transient failures until success or ctx done.
//   - WithRetryDelay(d)        pause between attempts, d >= 0.
//   - WithReducer(r)           reduction backend.
//   - WithLogger(l)            slog logger for retry warnings.
package snf

package query

import "slices"

// Updater computes the speculative value of a collection. It receives a copy
// of the current snapshot and may modify and return it.
type Updater[T any] func(current []T) []T

// Outcome reports how a transaction ended.
type Outcome string

const (
	// OutcomePending means neither Commit nor Revert has been called.
	OutcomePending Outcome = "pending"

	// OutcomeCommitted means the speculative value was confirmed.
	OutcomeCommitted Outcome = "committed"

	// OutcomeReverted means the snapshot was restored.
	OutcomeReverted Outcome = "reverted"
)

// Transaction is an optimistic edit in three steps: a snapshot is captured,
// a speculative value is derived from it, and the edit is either committed or
// reverted to the snapshot.
//
// Transaction does not touch any shared state itself; the caller stores the
// values it hands out. This keeps the commit-or-revert logic testable without
// a cache.
type Transaction[T any] struct {
	snapshot    []T
	speculative []T
	outcome     Outcome
}

// Begin captures snapshot and applies updater to a copy of it.
// A nil updater leaves the speculative value equal to the snapshot.
func Begin[T any](snapshot []T, updater Updater[T]) *Transaction[T] {
	tx := &Transaction[T]{
		snapshot: slices.Clone(snapshot),
		outcome:  OutcomePending,
	}

	if updater == nil {
		tx.speculative = slices.Clone(snapshot)
	} else {
		tx.speculative = updater(slices.Clone(snapshot))
	}

	return tx
}

// Speculative returns a copy of the speculative value.
func (tx *Transaction[T]) Speculative() []T {
	return slices.Clone(tx.speculative)
}

// Snapshot returns a copy of the value captured by Begin.
func (tx *Transaction[T]) Snapshot() []T {
	return slices.Clone(tx.snapshot)
}

// Commit confirms the speculative value. Committing a reverted transaction
// has no effect.
func (tx *Transaction[T]) Commit() []T {
	if tx.outcome == OutcomePending {
		tx.outcome = OutcomeCommitted
	}
	return tx.Speculative()
}

// Revert returns the captured snapshot. It is idempotent: reverting twice
// yields the same value as reverting once.
func (tx *Transaction[T]) Revert() []T {
	tx.outcome = OutcomeReverted
	return tx.Snapshot()
}

// Outcome returns the current outcome.
func (tx *Transaction[T]) Outcome() Outcome {
	return tx.outcome
}

// Result is returned by Cache.Mutate.
type Result[T any] struct {
	// Outcome is OutcomeCommitted on success and OutcomeReverted on failure.
	Outcome Outcome

	// Value is the cached collection right after the mutation settled: the
	// speculative value when committed, the restored snapshot when reverted.
	Value []T

	// Err is the error returned by the mutation function, if any.
	Err error
}

// Reverted reports whether the optimistic edit was rolled back.
func (r Result[T]) Reverted() bool {
	return r.Outcome == OutcomeReverted
}

// Package committer implements the mutation plan pattern for the in-memory
// stores.
//
// Stores never mutate state directly on behalf of a caller. They return
// Mutations, callers collect them into a CommitPlan, and the Committer
// applies the plan atomically under a single write lock:
//
//	plan := committer.NewPlan()
//	plan.Add(catalog.DecrementMut(productID, qty))
//	plan.Add(ledger.AppendMut(sale))
//	err := comm.Apply(plan)
//
// Apply runs every mutation's Validate before running any Apply, so a plan
// either fully succeeds or has no effect. Readers take the shared read lock
// via Read, which means no reader can observe a half-applied plan.
package committer

import (
	"fmt"
	"sync"
)

// Mutation is a single staged change against a store.
// Validate must not mutate anything; Apply must not fail.
type Mutation struct {
	// Validate checks the mutation against current state. Nil means
	// unconditionally valid.
	Validate func() error

	// Apply performs the change. Called only after every mutation in the
	// plan validated.
	Apply func()
}

// CommitPlan collects mutations from multiple stores for atomic application.
type CommitPlan struct {
	mutations []Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{mutations: make([]Mutation, 0)}
}

// Add adds a mutation to the plan.
func (cp *CommitPlan) Add(mut Mutation) {
	cp.mutations = append(cp.mutations, mut)
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer serializes all writes to the stores that share it and provides
// consistent read snapshots.
type Committer struct {
	mu sync.RWMutex
}

// NewCommitter creates a new Committer.
func NewCommitter() *Committer {
	return &Committer{}
}

// Apply executes the CommitPlan atomically. If any mutation fails
// validation, no mutation is applied and the validation error is returned.
func (c *Committer) Apply(plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, mut := range plan.mutations {
		if mut.Validate == nil {
			continue
		}
		if err := mut.Validate(); err != nil {
			return fmt.Errorf("commit plan rejected: %w", err)
		}
	}

	for _, mut := range plan.mutations {
		mut.Apply()
	}

	return nil
}

// Read runs fn under the shared read lock. Every store read goes through
// here so listings and aggregations see a consistent snapshot.
func (c *Committer) Read(fn func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn()
}

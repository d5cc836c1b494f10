package committer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitter_Apply(t *testing.T) {
	t.Run("empty plan is a no-op", func(t *testing.T) {
		comm := NewCommitter()
		assert.NoError(t, comm.Apply(NewPlan()))
	})

	t.Run("applies every mutation on success", func(t *testing.T) {
		comm := NewCommitter()
		var a, b int

		plan := NewPlan()
		plan.Add(Mutation{Apply: func() { a = 1 }})
		plan.Add(Mutation{Validate: func() error { return nil }, Apply: func() { b = 2 }})

		require.NoError(t, comm.Apply(plan))
		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
	})

	t.Run("validation failure applies nothing", func(t *testing.T) {
		comm := NewCommitter()
		sentinel := errors.New("no stock")
		var applied bool

		plan := NewPlan()
		plan.Add(Mutation{Apply: func() { applied = true }})
		plan.Add(Mutation{Validate: func() error { return sentinel }, Apply: func() { applied = true }})

		err := comm.Apply(plan)
		assert.ErrorIs(t, err, sentinel)
		assert.False(t, applied, "no Apply may run when any Validate fails")
	})

	t.Run("all validations run before any apply", func(t *testing.T) {
		comm := NewCommitter()
		var order []string

		plan := NewPlan()
		plan.Add(Mutation{
			Validate: func() error { order = append(order, "v1"); return nil },
			Apply:    func() { order = append(order, "a1") },
		})
		plan.Add(Mutation{
			Validate: func() error { order = append(order, "v2"); return nil },
			Apply:    func() { order = append(order, "a2") },
		})

		require.NoError(t, comm.Apply(plan))
		assert.Equal(t, []string{"v1", "v2", "a1", "a2"}, order)
	})
}

func TestCommitter_Read(t *testing.T) {
	comm := NewCommitter()
	var seen int
	comm.Read(func() { seen = 42 })
	assert.Equal(t, 42, seen)
}

func TestPlan_Count(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())
	plan.Add(Mutation{Apply: func() {}})
	plan.Add(Mutation{Apply: func() {}})
	assert.Equal(t, 2, plan.Count())
	assert.False(t, plan.IsEmpty())
}

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
)

func TestCustomers_AddCustomer(t *testing.T) {
	t.Run("assigns ids and zero loyalty points", func(t *testing.T) {
		_, customers, _, _ := newTestStores(t)

		c1, err := customers.AddCustomer("John Ntiri", "ntiri@hotmail.com", "58120001")
		require.NoError(t, err)
		c2, err := customers.AddCustomer("Jane Seoete", "seoete@outlook.com", "59123401")
		require.NoError(t, err)

		assert.Equal(t, int64(1), c1.ID())
		assert.Equal(t, int64(2), c2.ID())
		assert.Equal(t, int64(0), c1.LoyaltyPoints())
	})

	t.Run("required fields", func(t *testing.T) {
		_, customers, _, _ := newTestStores(t)

		_, err := customers.AddCustomer("", "a@b.c", "123")
		assert.ErrorIs(t, err, domain.ErrEmptyName)
		_, err = customers.AddCustomer("John", "", "123")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)
		_, err = customers.AddCustomer("John", "a@b.c", "")
		assert.ErrorIs(t, err, domain.ErrEmptyPhone)
		assert.Empty(t, customers.List())
	})
}

func TestCustomers_UpdateCustomer(t *testing.T) {
	_, customers, _, _ := newTestStores(t)
	seeded := domain.ReconstructCustomer(3, "Mike Joele", "mike@yahoo.com", "57120056", 200)
	require.NoError(t, customers.Restore(seeded))

	t.Run("replaces contact fields and preserves loyalty points", func(t *testing.T) {
		require.NoError(t, customers.UpdateCustomer(3, "Mike Joele", "mike@gmail.com", "57120056"))

		got, ok := customers.Get(3)
		require.True(t, ok)
		assert.Equal(t, "mike@gmail.com", got.Email())
		assert.Equal(t, int64(200), got.LoyaltyPoints())
	})

	t.Run("unknown id", func(t *testing.T) {
		err := customers.UpdateCustomer(99, "X", "x@y.z", "1")
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})
}

func TestCustomers_DeleteCustomer(t *testing.T) {
	_, customers, _, _ := newTestStores(t)
	c, err := customers.AddCustomer("John Ntiri", "ntiri@hotmail.com", "58120001")
	require.NoError(t, err)

	require.NoError(t, customers.DeleteCustomer(c.ID()))
	_, ok := customers.Get(c.ID())
	assert.False(t, ok)

	assert.ErrorIs(t, customers.DeleteCustomer(c.ID()), domain.ErrCustomerNotFound)
}

func TestCustomers_ListOrder(t *testing.T) {
	_, customers, _, _ := newTestStores(t)
	// The register keeps insertion order even when seeded ids are not
	// sorted.
	require.NoError(t, customers.Restore(domain.ReconstructCustomer(5, "Raterekeke", "r@p.za", "722334466", 25)))
	require.NoError(t, customers.Restore(domain.ReconstructCustomer(4, "Joala", "j@g.ls", "22334466", 10)))
	require.NoError(t, customers.Restore(domain.ReconstructCustomer(1, "John", "n@h.com", "58120001", 120)))

	ids := []int64{}
	for _, c := range customers.List() {
		ids = append(ids, c.ID())
	}
	assert.Equal(t, []int64{5, 4, 1}, ids)

	next, err := customers.AddCustomer("New", "new@x.y", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), next.ID())
}

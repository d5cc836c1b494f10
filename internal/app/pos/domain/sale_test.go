package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleDate() time.Time {
	return time.Date(2025, 8, 17, 0, 0, 0, 0, time.Local)
}

func TestNewSale(t *testing.T) {
	lines := []SaleLine{{ProductID: 1, Quantity: 2}}
	total := NewMoneyFromUnits(100)

	t.Run("valid sale", func(t *testing.T) {
		sale, err := NewSale(1, 3, saleDate(), lines, total, PaymentCash)
		require.NoError(t, err)
		assert.Equal(t, int64(1), sale.ID())
		assert.Equal(t, int64(3), sale.CustomerID())
		assert.True(t, sale.Total().Equals(total))
		assert.Equal(t, PaymentCash, sale.PaymentMethod())
	})

	t.Run("no lines returns error", func(t *testing.T) {
		_, err := NewSale(1, 3, saleDate(), nil, total, PaymentCash)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("no customer returns error", func(t *testing.T) {
		_, err := NewSale(1, 0, saleDate(), lines, total, PaymentCash)
		assert.ErrorIs(t, err, ErrNoCustomer)
	})

	t.Run("zero line quantity returns error", func(t *testing.T) {
		_, err := NewSale(1, 3, saleDate(), []SaleLine{{ProductID: 1, Quantity: 0}}, total, PaymentCash)
		assert.ErrorIs(t, err, ErrInvalidLineQuantity)
	})

	t.Run("negative total returns error", func(t *testing.T) {
		negative, _ := NewMoney(-1, 1)
		_, err := NewSale(1, 3, saleDate(), lines, negative, PaymentCash)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("unknown payment method returns error", func(t *testing.T) {
		_, err := NewSale(1, 3, saleDate(), lines, total, PaymentMethod("IOU"))
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})
}

func TestSale_UnitsOf(t *testing.T) {
	lines := []SaleLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	}
	sale, err := NewSale(1, 1, saleDate(), lines, NewMoneyFromUnits(125), PaymentCash)
	require.NoError(t, err)

	assert.Equal(t, int64(2), sale.UnitsOf(1))
	assert.Equal(t, int64(1), sale.UnitsOf(3))
	assert.Equal(t, int64(0), sale.UnitsOf(99))
}

func TestSale_IsImmutable(t *testing.T) {
	lines := []SaleLine{{ProductID: 1, Quantity: 2}}
	sale, err := NewSale(1, 1, saleDate(), lines, NewMoneyFromUnits(100), PaymentCash)
	require.NoError(t, err)

	// Mutating the caller's slice or the returned copies must not reach
	// the sale.
	lines[0].Quantity = 99
	got := sale.Lines()
	got[0].Quantity = 42
	assert.Equal(t, int64(2), sale.Lines()[0].Quantity)

	total := sale.Total()
	_ = total.Add(NewMoneyFromUnits(1000))
	assert.Equal(t, "100.00", sale.Total().String())
}

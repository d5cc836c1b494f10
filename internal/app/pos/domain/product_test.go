package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := NewMoneyFromUnits(50)

	t.Run("valid product creation", func(t *testing.T) {
		p, err := NewProduct(1, "Coffee", "Strong black coffee", "Beverages", price, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID())
		assert.Equal(t, "Coffee", p.Name())
		assert.Equal(t, "Beverages", p.Category())
		assert.Equal(t, int64(15), p.Quantity())
		assert.False(t, p.LowStock())
	})

	t.Run("empty name returns error", func(t *testing.T) {
		_, err := NewProduct(1, "", "d", "Beverages", price, 5)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty category returns error", func(t *testing.T) {
		_, err := NewProduct(1, "Coffee", "d", "", price, 5)
		assert.ErrorIs(t, err, ErrEmptyCategory)
	})

	t.Run("negative price returns error", func(t *testing.T) {
		negative, _ := NewMoney(-50, 1)
		_, err := NewProduct(1, "Coffee", "d", "Beverages", negative, 5)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		p, err := NewProduct(1, "Sample", "freebie", "Promo", ZeroMoney(), 5)
		require.NoError(t, err)
		assert.True(t, p.Price().IsZero())
	})

	t.Run("negative quantity returns error", func(t *testing.T) {
		_, err := NewProduct(1, "Coffee", "d", "Beverages", price, -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestProduct_LowStock(t *testing.T) {
	price := NewMoneyFromUnits(25)

	t.Run("below threshold", func(t *testing.T) {
		p, _ := NewProduct(1, "Muffin", "d", "Pastries", price, LowStockThreshold-1)
		assert.True(t, p.LowStock())
	})

	t.Run("at threshold", func(t *testing.T) {
		p, _ := NewProduct(1, "Muffin", "d", "Pastries", price, LowStockThreshold)
		assert.False(t, p.LowStock())
	})

	t.Run("recomputed after adjustment", func(t *testing.T) {
		p, _ := NewProduct(1, "Muffin", "d", "Pastries", price, 12)
		require.False(t, p.LowStock())
		require.NoError(t, p.AdjustQuantity(-5))
		assert.True(t, p.LowStock())
	})
}

func TestProduct_AdjustQuantity(t *testing.T) {
	price := NewMoneyFromUnits(50)

	t.Run("positive delta", func(t *testing.T) {
		p, _ := NewProduct(1, "Coffee", "d", "Beverages", price, 15)
		require.NoError(t, p.AdjustQuantity(5))
		assert.Equal(t, int64(20), p.Quantity())
	})

	t.Run("negative delta", func(t *testing.T) {
		p, _ := NewProduct(1, "Coffee", "d", "Beverages", price, 15)
		require.NoError(t, p.AdjustQuantity(-15))
		assert.Equal(t, int64(0), p.Quantity())
	})

	t.Run("delta past zero is rejected with no side effect", func(t *testing.T) {
		p, _ := NewProduct(1, "Coffee", "d", "Beverages", price, 15)
		err := p.AdjustQuantity(-100)
		assert.ErrorIs(t, err, ErrInvalidAdjustment)
		assert.Equal(t, int64(15), p.Quantity())
	})
}

func TestProduct_Update(t *testing.T) {
	price := NewMoneyFromUnits(50)
	p, _ := NewProduct(1, "Coffee", "d", "Beverages", price, 15)

	t.Run("replaces mutable fields", func(t *testing.T) {
		newPrice := NewMoneyFromUnits(60)
		require.NoError(t, p.Update("Espresso", "double shot", "Beverages", newPrice, 8))
		assert.Equal(t, "Espresso", p.Name())
		assert.True(t, p.Price().Equals(newPrice))
		assert.Equal(t, int64(8), p.Quantity())
		assert.True(t, p.LowStock())
		assert.Equal(t, int64(1), p.ID())
	})

	t.Run("invalid update leaves product unchanged via caller-side copy", func(t *testing.T) {
		err := p.Update("", "d", "Beverages", price, 5)
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestProduct_Clone(t *testing.T) {
	price := NewMoneyFromUnits(50)
	p, _ := NewProduct(1, "Coffee", "d", "Beverages", price, 15)

	clone := p.Clone()
	require.NoError(t, clone.AdjustQuantity(-10))

	assert.Equal(t, int64(15), p.Quantity())
	assert.Equal(t, int64(5), clone.Quantity())
}

func TestProduct_InventoryValue(t *testing.T) {
	p, _ := NewProduct(1, "Coffee", "d", "Beverages", NewMoneyFromUnits(50), 15)
	assert.Equal(t, "750.00", p.InventoryValue().String())
}

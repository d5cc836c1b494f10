package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary amount with exact decimal arithmetic backed by
// big.Rat. Prices and sale totals never touch floating point.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(5500, 100) is 55.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromUnits creates a Money from a whole number of currency units.
func NewMoneyFromUnits(units int64) *Money {
	return &Money{rat: big.NewRat(units, 1)}
}

// ZeroMoney returns a zero amount.
func ZeroMoney() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Add returns the sum of two amounts.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// MultiplyInt returns this amount multiplied by an integer quantity.
func (m *Money) MultiplyInt(n int64) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(n, 1))}
}

// DivideInt returns this amount divided by a non-zero integer count.
func (m *Money) DivideInt(n int64) (*Money, error) {
	if n == 0 {
		return nil, fmt.Errorf("cannot divide by zero")
	}
	return &Money{rat: new(big.Rat).Quo(m.rat, big.NewRat(n, 1))}, nil
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the amount is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan returns true if this amount is less than the other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this amount is greater than the other.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if the amounts are equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 value, for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the amount with two decimal places and no currency symbol.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates an independent copy of this amount.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

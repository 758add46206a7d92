package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Money is a monetary amount in integer minor units (cents). Keeping amounts
// in integers makes pricing recomputation deterministic: repeated recomputation
// of the same inputs always yields the same total, with no floating drift.
//
// The zero value is a valid zero amount. Negative amounts are representable
// (intermediate results of subtraction) but rejected wherever the domain
// requires a non-negative value.
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in minor units.
func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulInt returns the amount multiplied by an integer factor.
func (m Money) MulInt(factor int) Money {
	return Money{cents: m.cents * int64(factor)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// GreaterThan reports whether m is strictly larger than other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "125.50".
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// ValidateNonNegative returns an error when the amount is below zero.
// paramName names the field being validated in the resulting error.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not a valid non-negative amount", m))
	}
	return nil
}

// ValidatePositive returns an error when the amount is zero or below.
// paramName names the field being validated in the resulting error.
func (m Money) ValidatePositive(paramName string) error {
	if m.cents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not a valid positive amount", m))
	}
	return nil
}

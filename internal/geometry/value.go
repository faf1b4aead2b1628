package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a length or constraint fails validation.
// The root carton package re-exports it as ErrInvalidGeometry.
var ErrInvalid = errors.New("invalid geometry")

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto     Unit = iota // No explicit length; resolved from a fallback
	UnitFixed                // Absolute length in pixels
	UnitFraction             // Fraction of the container size (0.5 = half)
)

// Value represents a length that can be fixed, container-relative, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value with no explicit length.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute pixel length.
func Fixed(px float64) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Fraction returns a Value representing a fraction of the container size.
// The value is a pure ratio, not a percentage (0.5 = half the container).
func Fraction(f float64) Value {
	return Value{Amount: f, Unit: UnitFraction}
}

// IsAuto returns true if this value has no explicit length.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve computes the concrete length for the given container size.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(container, fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitFraction:
		return container * v.Amount
	default:
		return fallback
	}
}

// Validate rejects negative amounts on non-auto values.
func (v Value) Validate() error {
	if v.Unit != UnitAuto && v.Amount < 0 {
		return fmt.Errorf("%w: negative length %v", ErrInvalid, v.Amount)
	}
	return nil
}

// Clamp restricts size to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func Clamp(size, minVal, maxVal float64) float64 {
	if size < minVal {
		return minVal
	}
	if maxVal >= minVal && size > maxVal {
		return maxVal
	}
	return size
}

// Add returns a+b, clamped to zero when the result would be negative.
func Add(a, b float64) float64 {
	if s := a + b; s > 0 {
		return s
	}
	return 0
}

// Sub returns a-b, clamped to zero when the result would be negative.
func Sub(a, b float64) float64 {
	if d := a - b; d > 0 {
		return d
	}
	return 0
}

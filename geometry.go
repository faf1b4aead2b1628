// geometry.go re-exports geometry types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package carton

import "github.com/grindlemire/go-carton/internal/geometry"

// Direction specifies the axis along which a group's panels are arranged.
type Direction = geometry.Direction

const (
	Horizontal = geometry.Horizontal
	Vertical   = geometry.Vertical
)

// Value represents a length (fixed pixels, fraction of container, or auto).
type Value = geometry.Value

// Unit specifies how a Value is interpreted.
type Unit = geometry.Unit

const (
	UnitAuto     = geometry.UnitAuto
	UnitFixed    = geometry.UnitFixed
	UnitFraction = geometry.UnitFraction
)

// Constraint bounds a panel's size with a minimum and maximum Value.
type Constraint = geometry.Constraint

// Auto creates a Value with no explicit length.
func Auto() Value {
	return geometry.Auto()
}

// Fixed creates a Value with an absolute pixel length.
func Fixed(px float64) Value {
	return geometry.Fixed(px)
}

// Fraction creates a Value relative to the container size (0.5 = half).
func Fraction(f float64) Value {
	return geometry.Fraction(f)
}

// Unbounded creates a Constraint with no minimum and no maximum.
func Unbounded() Constraint {
	return geometry.Unbounded()
}

// MinSize creates a Constraint with a fixed minimum and no maximum.
func MinSize(px float64) Constraint {
	return Constraint{Min: geometry.Fixed(px), Max: geometry.Auto()}
}

// FixedSize creates a Constraint pinning a panel at an exact size.
func FixedSize(px float64) Constraint {
	return Constraint{Min: geometry.Fixed(px), Max: geometry.Fixed(px)}
}

// Clamp restricts size to the range [minVal, maxVal].
func Clamp(size, minVal, maxVal float64) float64 {
	return geometry.Clamp(size, minVal, maxVal)
}

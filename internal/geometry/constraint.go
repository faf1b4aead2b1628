package geometry

import (
	"fmt"
	"math"
)

// Constraint bounds a panel's size. Min resolves against the container
// size with fallback 0; Max resolves with fallback +Inf (unbounded).
type Constraint struct {
	Min Value
	Max Value
}

// Unbounded returns a Constraint with no minimum and no maximum.
func Unbounded() Constraint {
	return Constraint{Min: Auto(), Max: Auto()}
}

// ResolveMin returns the concrete minimum for the given container size.
func (c Constraint) ResolveMin(container float64) float64 {
	return c.Min.Resolve(container, 0)
}

// ResolveMax returns the concrete maximum for the given container size.
// An auto maximum resolves to +Inf.
func (c Constraint) ResolveMax(container float64) float64 {
	return c.Max.Resolve(container, math.Inf(1))
}

// Clamp restricts size to the constraint's resolved bounds.
func (c Constraint) Clamp(size, container float64) float64 {
	return Clamp(size, c.ResolveMin(container), c.ResolveMax(container))
}

// Validate rejects negative bounds and fixed minimums above fixed
// maximums. Container-relative bounds are only comparable at resolve
// time, so inversion between mixed units is not checked here.
func (c Constraint) Validate() error {
	if err := c.Min.Validate(); err != nil {
		return err
	}
	if err := c.Max.Validate(); err != nil {
		return err
	}
	if c.Min.Unit == UnitFixed && c.Max.Unit == UnitFixed && c.Min.Amount > c.Max.Amount {
		return fmt.Errorf("%w: minimum %v exceeds maximum %v", ErrInvalid, c.Min.Amount, c.Max.Amount)
	}
	if c.Min.Unit == UnitFraction && c.Max.Unit == UnitFraction && c.Min.Amount > c.Max.Amount {
		return fmt.Errorf("%w: minimum fraction %v exceeds maximum fraction %v", ErrInvalid, c.Min.Amount, c.Max.Amount)
	}
	return nil
}

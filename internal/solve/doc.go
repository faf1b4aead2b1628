// Package solve implements the constraint solver of the resize engine.
//
// It is pure: given an ordered sequence of items (current size, resolved
// bounds, proportional weight) it produces a new ordered size assignment.
// Two modes exist. [Drag] handles pairwise drag redistribution with an
// outward overflow cascade, used while a separator is being dragged.
// [Distribute] handles proportional redistribution by weight, used on
// container resize and on panel add/remove.
//
// Bounds arrive already resolved against the container size; the solver
// never sees Value units. The caller owns validation.
package solve

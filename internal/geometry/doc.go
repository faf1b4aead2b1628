// Package geometry holds the pure value types of the resize engine:
// directions, lengths, and size constraints.
//
// Lengths are modeled as a Value that is either a fixed pixel amount, a
// fraction of the container, or auto (no explicit size). Constraints pair
// a minimum and maximum Value and resolve them against a concrete
// container size. Types are re-exported through the root carton package
// for public consumption.
package geometry

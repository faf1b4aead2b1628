package solve

import "math"

// epsilon bounds the float residue we tolerate before declaring a
// distribution unsatisfiable. Residues below it are folded into the
// last unclamped recipient so committed sums stay exact.
const epsilon = 1e-9

// Distribute resizes items so their sizes sum to total, sharing the
// free-space delta across panels proportionally to their weight.
//
// Panels with zero weight never receive a proportional share — they
// participate only through min/max clamping and otherwise behave as
// fixed-size panels. Clamping a panel mid-distribution creates surplus
// or deficit, which is redistributed among the not-yet-clamped weighted
// panels; the fixed point is reached in at most len(items) passes.
//
// The returned flag is false when the remainder cannot be absorbed by
// any panel. The sizes returned in that case are the best-effort
// clamped assignment, every panel pinned at its nearest feasible bound;
// the caller commits them as a degraded state.
func Distribute(items []Item, total float64) ([]float64, bool) {
	sizes := sizesOf(items)

	// Initial clamp against the (possibly new) resolved bounds. This can
	// itself create a deficit, e.g. a fractional minimum growing with the
	// container.
	for i, it := range items {
		if it.Collapsed {
			continue
		}
		sizes[i] = clamp(sizes[i], it.Min, it.Max)
	}

	active := make([]bool, len(items))
	for i, it := range items {
		active[i] = !it.Collapsed && it.Weight > 0
	}

	remainder := total - sum(sizes)
	for pass := 0; pass <= len(items); pass++ {
		if remainder > -epsilon && remainder < epsilon {
			break
		}
		weightSum := 0.0
		for i, it := range items {
			if active[i] {
				weightSum += it.Weight
			}
		}
		if weightSum == 0 {
			break
		}
		for i, it := range items {
			if !active[i] {
				continue
			}
			share := remainder * it.Weight / weightSum
			next := clamp(sizes[i]+share, it.Min, it.Max)
			if next != sizes[i]+share {
				// Hit a bound; this panel is done absorbing.
				active[i] = false
			}
			sizes[i] = next
		}
		remainder = total - sum(sizes)
	}

	if remainder <= -epsilon || remainder >= epsilon {
		return sizes, false
	}

	// Fold the float residue into the last panel still off its bounds so
	// the committed sum equals the target exactly.
	if remainder != 0 {
		for i := len(items) - 1; i >= 0; i-- {
			it := items[i]
			if it.Collapsed {
				continue
			}
			if next := sizes[i] + remainder; next >= it.Min && next <= it.Max {
				sizes[i] = next
				break
			}
		}
	}
	return sizes, true
}

// Fit clamps a target size for items[i] to what the other items can
// yield or absorb, so pinning items[i] at the result keeps the
// distribution feasible whenever the real constraints are. When the
// constraints are genuinely infeasible the target is clamped only to
// the item's own bounds and the subsequent Distribute reports the
// degraded state.
func Fit(items []Item, i int, target, total float64) float64 {
	minOthers, maxOthers := 0.0, 0.0
	for j, it := range items {
		if j == i || it.Collapsed {
			continue
		}
		minOthers += it.Min
		maxOthers += it.Max
	}

	lo := total - maxOthers // -Inf when any sibling is unbounded
	hi := total - minOthers
	lo = math.Max(lo, items[i].Min)
	hi = math.Min(hi, items[i].Max)
	if lo > hi {
		return clamp(target, items[i].Min, items[i].Max)
	}
	return clamp(target, lo, hi)
}

// clamp restricts v to [minVal, maxVal]; minVal wins when inverted.
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

package solve

import "math"

// Drag applies a signed pointer delta at the separator between
// items[sep] and items[sep+1] and returns the new size assignment.
//
// A positive delta grows items[sep] and shrinks panels to the right of
// the separator; a negative delta grows items[sep+1] and shrinks panels
// to the left. Growth is confined to the panel adjacent to the
// separator, clamped to its maximum. The shrinking side is an outward
// cascade: each panel drains to its minimum before the next one is
// touched, so dragging into a neighbor at its limit shoves the limit
// through subsequent panels. Delta the cascade cannot absorb at the
// group boundary is dropped — it is applied to no panel, which is what
// preserves the total.
//
// sep must be in [0, len(items)-2]; the group validates before calling.
func Drag(items []Item, sep int, delta float64) []float64 {
	sizes := sizesOf(items)
	if delta == 0 || len(items) < 2 {
		return sizes
	}

	var grow int
	var step int // cascade direction on the shrinking side
	if delta > 0 {
		grow, step = grower(items, sep, -1)
	} else {
		grow, step = grower(items, sep+1, +1)
	}
	if grow < 0 {
		return sizes
	}

	// The adjacent panel's own maximum caps the whole movement.
	capacity := math.Abs(delta)
	if headroom := items[grow].Max - sizes[grow]; headroom < capacity {
		capacity = headroom
	}
	if capacity <= 0 {
		return sizes
	}

	// Cascade outward, draining each shrinkable panel to its minimum.
	absorbed := 0.0
	for i := grow - step; i >= 0 && i < len(items); i -= step {
		if capacity <= 0 {
			break
		}
		if items[i].Collapsed {
			continue
		}
		take := sizes[i] - items[i].Min
		if take <= 0 {
			continue
		}
		if take > capacity {
			take = capacity
		}
		sizes[i] -= take
		capacity -= take
		absorbed += take
	}

	sizes[grow] += absorbed
	return sizes
}

// grower returns the nearest non-collapsed panel at or beyond start,
// walking away from the separator, together with the cascade step for
// the opposite side. Returns -1 when every candidate is collapsed.
func grower(items []Item, start, away int) (int, int) {
	for i := start; i >= 0 && i < len(items); i += away {
		if !items[i].Collapsed {
			return i, away
		}
	}
	return -1, away
}

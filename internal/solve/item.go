package solve

// Item is one panel's view into the solver: its current size, its bounds
// resolved against the container, and its proportional weight.
// Collapsed items are invisible to both solver modes: they keep size
// zero, absorb nothing, and contribute nothing.
type Item struct {
	Size      float64
	Min       float64
	Max       float64 // +Inf when unbounded
	Weight    float64
	Collapsed bool
}

// sizesOf copies the current sizes out of items. Collapsed items are
// pinned to zero regardless of their stored size.
func sizesOf(items []Item) []float64 {
	sizes := make([]float64, len(items))
	for i, it := range items {
		if it.Collapsed {
			sizes[i] = 0
			continue
		}
		sizes[i] = it.Size
	}
	return sizes
}

// sum returns the total of all sizes.
func sum(sizes []float64) float64 {
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total
}

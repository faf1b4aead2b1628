package carton

// dragSession tracks one in-progress separator drag. It is created on
// drag-start, destroyed on drag-end or drag-cancel, and exclusively
// owned by the group that spawned it.
type dragSession struct {
	// separator is the boundary index being dragged: the gap between
	// panels[separator] and panels[separator+1].
	separator int

	// startSizes snapshots every panel size at session start. Moves are
	// always recomputed from this snapshot plus the cumulative pointer
	// delta, never from the previous intermediate result, so repeated
	// clamping cannot drift.
	startSizes []float64

	// baseDelta is the cumulative delta already consumed by a mid-drag
	// container-resize rebase. Effective delta = cumulative - baseDelta.
	baseDelta float64

	// lastDelta is the most recent cumulative delta, kept for rebasing.
	lastDelta float64
}

// snapshot copies the given sizes for rollback.
func snapshot(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	copy(out, sizes)
	return out
}

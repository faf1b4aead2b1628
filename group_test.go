package carton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPanelGroup builds the canonical fixture: a 400-wide horizontal
// group split 200/200, both panels min 50 with no maximum.
func twoPanelGroup(t *testing.T) (*Group, PanelID, PanelID) {
	t.Helper()
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)

	left, err := g.AddPanel(MinSize(50), 1, 0)
	require.NoError(t, err)
	right, err := g.AddPanel(MinSize(50), 1, 200)
	require.NoError(t, err)

	require.Equal(t, []float64{200, 200}, g.Sizes())
	return g, left, right
}

// assertCommitted checks the committed invariants: exact sum and
// per-panel bounds for non-collapsed panels.
func assertCommitted(t *testing.T, g *Group) {
	t.Helper()
	require.False(t, g.Degraded())

	total := 0.0
	for _, p := range g.Panels() {
		if p.Collapsed() {
			continue
		}
		size := p.Size()
		total += size
		c := p.Constraint()
		assert.GreaterOrEqual(t, size, c.ResolveMin(g.ContainerSize()))
		assert.LessOrEqual(t, size, c.ResolveMax(g.ContainerSize()))
	}
	assert.Equal(t, g.ContainerSize(), total, "committed sizes must sum to the container exactly")
}

func TestNewGroup_RejectsNegativeContainer(t *testing.T) {
	_, err := NewGroup(Horizontal, -1)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestGroup_AddPanel(t *testing.T) {
	g, err := NewGroup(Vertical, 400)
	require.NoError(t, err)

	// The first panel takes the whole container.
	first, err := g.AddPanel(Unbounded(), 1, 123)
	require.NoError(t, err)
	assert.Equal(t, []float64{400}, g.Sizes())
	assertCommitted(t, g)

	// Later panels keep their initial size; the others yield.
	_, err = g.AddPanel(Unbounded(), 1, 100)
	require.NoError(t, err)
	assert.Equal(t, []float64{300, 100}, g.Sizes())
	assertCommitted(t, g)

	p, ok := g.Panel(first)
	require.True(t, ok)
	assert.Equal(t, 300.0, p.Size())
}

func TestGroup_AddPanel_RejectsInvalidGeometry(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	before := g.Sizes()

	type tc struct {
		constraint Constraint
		weight     float64
		size       float64
	}

	tests := map[string]tc{
		"negative weight":     {constraint: Unbounded(), weight: -1, size: 0},
		"negative size":       {constraint: Unbounded(), weight: 1, size: -10},
		"inverted constraint": {constraint: Constraint{Min: Fixed(100), Max: Fixed(50)}, weight: 1, size: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := g.AddPanel(tt.constraint, tt.weight, tt.size)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
			assert.Equal(t, before, g.Sizes(), "failed operations must not touch state")
		})
	}
}

func TestGroup_AddPanel_OversizedInitialShrinksToFeasible(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(MinSize(50), 1, 0)
	require.NoError(t, err)

	// The request exceeds what the sibling can yield; it shrinks to the
	// feasible remainder instead of degrading a satisfiable layout.
	_, err = g.AddPanel(Unbounded(), 1, 380)
	require.NoError(t, err)

	assert.Equal(t, []float64{50, 350}, g.Sizes())
	assert.False(t, g.Degraded())
	assertCommitted(t, g)
}

func TestGroup_AddPanel_InfeasibleMinimaStillDegrade(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(FixedSize(350), 0, 0)
	require.NoError(t, err)

	// 350 fixed plus a 100 minimum cannot fit in 400; the group commits
	// the nearest feasible bounds and reports the degraded state.
	_, err = g.AddPanel(MinSize(100), 1, 100)
	require.NoError(t, err)

	assert.True(t, g.Degraded())
	assert.Equal(t, []float64{350, 100}, g.Sizes())
}

func TestGroup_RemovePanel_RedistributesByWeight(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 100)
	require.NoError(t, err)
	third, err := g.AddPanel(Unbounded(), 2, 100)
	require.NoError(t, err)
	require.Equal(t, []float64{250, 50, 100}, g.Sizes())

	require.NoError(t, g.RemovePanel(third))
	assert.Equal(t, []float64{300, 100}, g.Sizes())
	assertCommitted(t, g)
}

func TestGroup_RemovePanel_Unknown(t *testing.T) {
	g, _, _ := twoPanelGroup(t)
	before := g.Sizes()

	err := g.RemovePanel(PanelID("nope"))
	assert.ErrorIs(t, err, ErrPanelNotFound)
	assert.Equal(t, before, g.Sizes())
}

func TestGroup_Resize_FixedPanelKeepsSize(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	_, err = g.AddPanel(FixedSize(100), 0, 100)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 150)
	require.NoError(t, err)
	require.Equal(t, []float64{150, 100, 150}, g.Sizes())

	require.NoError(t, g.Resize(200))
	assert.Equal(t, []float64{50, 100, 50}, g.Sizes())
	assertCommitted(t, g)
}

func TestGroup_Resize_RejectsNegative(t *testing.T) {
	g, _, _ := twoPanelGroup(t)
	before := g.Sizes()

	err := g.Resize(-5)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Equal(t, before, g.Sizes())
	assert.Equal(t, 400.0, g.ContainerSize())
}

func TestGroup_Resize_WeightRatiosPreserved(t *testing.T) {
	g, err := NewGroup(Horizontal, 300)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 2, 200)
	require.NoError(t, err)
	require.Equal(t, []float64{100, 200}, g.Sizes())

	// Free space grows by 150 with nothing clamped: shares are 1:2.
	require.NoError(t, g.Resize(450))
	assert.Equal(t, []float64{150, 300}, g.Sizes())
	assertCommitted(t, g)
}

func TestGroup_DragScenario(t *testing.T) {
	g, _, _ := twoPanelGroup(t)

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(100))
	assert.Equal(t, []float64{300, 100}, g.Sizes())

	// Recomputation is anchored at the snapshot: replaying the same
	// cumulative delta is idempotent.
	require.NoError(t, g.DragMove(100))
	assert.Equal(t, []float64{300, 100}, g.Sizes())

	// The right panel bottoms out at its minimum and the cascade has
	// nowhere left to go; the excess is dropped.
	require.NoError(t, g.DragMove(150))
	assert.Equal(t, []float64{350, 50}, g.Sizes())
	require.NoError(t, g.DragMove(500))
	assert.Equal(t, []float64{350, 50}, g.Sizes())

	require.NoError(t, g.DragEnd())
	assert.Equal(t, []float64{350, 50}, g.Sizes())
	assert.False(t, g.Dragging())
	assertCommitted(t, g)
}

func TestGroup_DragCancel_IsExactInverse(t *testing.T) {
	g, _, _ := twoPanelGroup(t)

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(80))
	require.NoError(t, g.DragMove(-30))
	require.NoError(t, g.DragMove(140))
	require.NoError(t, g.DragCancel())

	assert.Equal(t, []float64{200, 200}, g.Sizes())
	assert.False(t, g.Dragging())
	assertCommitted(t, g)
}

func TestGroup_DragEventsWithoutSession(t *testing.T) {
	g, _, _ := twoPanelGroup(t)
	before := g.Sizes()

	assert.ErrorIs(t, g.DragMove(50), ErrNoActiveSession)
	assert.ErrorIs(t, g.DragEnd(), ErrNoActiveSession)
	assert.ErrorIs(t, g.DragCancel(), ErrNoActiveSession)
	assert.Equal(t, before, g.Sizes())
}

func TestGroup_DragStart_UnknownSeparator(t *testing.T) {
	g, _, _ := twoPanelGroup(t)

	assert.ErrorIs(t, g.DragStart(-1), ErrSeparatorNotFound)
	assert.ErrorIs(t, g.DragStart(1), ErrSeparatorNotFound)
	assert.False(t, g.Dragging())
}

func TestGroup_DragStart_WhileActiveIsIgnored(t *testing.T) {
	g, err := NewGroup(Horizontal, 300)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = g.AddPanel(Unbounded(), 1, 100)
		require.NoError(t, err)
	}
	require.Equal(t, []float64{100, 100, 100}, g.Sizes())

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragStart(1)) // ignored, not an error

	// The move still applies to separator 0.
	require.NoError(t, g.DragMove(50))
	assert.Equal(t, []float64{150, 50, 100}, g.Sizes())
}

func TestGroup_ResizeDuringDrag_Rebases(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 200)
	require.NoError(t, err)

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(50))
	require.Equal(t, []float64{250, 150}, g.Sizes())

	// Container resize takes precedence and commits mid-drag.
	require.NoError(t, g.Resize(300))
	assert.Equal(t, []float64{200, 100}, g.Sizes())
	assert.True(t, g.Dragging())
	assertCommitted(t, g)

	// Only pointer travel after the rebase applies to the new snapshot.
	require.NoError(t, g.DragMove(80))
	assert.Equal(t, []float64{230, 70}, g.Sizes())

	require.NoError(t, g.DragEnd())
	assertCommitted(t, g)
}

func TestGroup_Unsatisfiable_DegradesAndRecovers(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(MinSize(40), 1, 0)
	require.NoError(t, err)
	_, err = g.AddPanel(MinSize(40), 1, 200)
	require.NoError(t, err)

	// 50 cannot hold two panels of minimum 40: pinned at minima.
	require.NoError(t, g.Resize(50))
	assert.True(t, g.Degraded())
	assert.Equal(t, []float64{40, 40}, g.Sizes())

	// The group stays usable and recovers on the next feasible layout.
	require.NoError(t, g.Resize(400))
	assert.False(t, g.Degraded())
	assert.Equal(t, []float64{200, 200}, g.Sizes())
	assertCommitted(t, g)
}

func TestGroup_Notifications(t *testing.T) {
	g, _, _ := twoPanelGroup(t)

	var got []Layout
	unsub := g.Subscribe(func(l Layout) {
		got = append(got, l)
	})
	defer unsub()

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(50))
	require.NoError(t, g.DragMove(100))
	require.NoError(t, g.DragEnd())

	require.Len(t, got, 3, "two provisional moves plus exactly one commit")
	assert.True(t, got[0].Provisional)
	assert.Equal(t, []float64{250, 150}, got[0].Sizes)
	assert.True(t, got[1].Provisional)
	assert.Equal(t, []float64{300, 100}, got[1].Sizes)
	assert.False(t, got[2].Provisional)
	assert.Equal(t, []float64{300, 100}, got[2].Sizes)
	assert.Equal(t, g.ID(), got[2].Group)
}

func TestGroup_CollapseAndRestore(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	side, err := g.AddPanel(MinSize(50), 1, 100, Collapsible())
	require.NoError(t, err)
	require.Equal(t, []float64{300, 100}, g.Sizes())

	// Collapse bypasses the minimum and frees the space.
	require.NoError(t, g.Collapse(side))
	assert.Equal(t, []float64{400, 0}, g.Sizes())
	p, _ := g.Panel(side)
	assert.True(t, p.Collapsed())
	assert.False(t, g.Degraded())

	// Collapsing again is a no-op.
	require.NoError(t, g.Collapse(side))
	assert.Equal(t, []float64{400, 0}, g.Sizes())

	// A drag toward a fully collapsed side has nothing to grow.
	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(-50))
	assert.Equal(t, []float64{400, 0}, g.Sizes())
	require.NoError(t, g.DragEnd())

	// Restore reopens at the cached quarter of the container.
	require.NoError(t, g.Restore(side))
	assert.Equal(t, []float64{300, 100}, g.Sizes())
	assert.False(t, p.Collapsed())
	assertCommitted(t, g)
}

func TestGroup_Collapse_RequiresCollapsible(t *testing.T) {
	g, left, _ := twoPanelGroup(t)

	err := g.Collapse(left)
	assert.ErrorIs(t, err, ErrNotCollapsible)
	assert.Equal(t, []float64{200, 200}, g.Sizes())
}

func TestGroup_Restore_ScalesWithContainer(t *testing.T) {
	g, err := NewGroup(Vertical, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	side, err := g.AddPanel(Unbounded(), 1, 100, Collapsible())
	require.NoError(t, err)

	require.NoError(t, g.Collapse(side))
	require.NoError(t, g.Resize(800))
	require.Equal(t, []float64{800, 0}, g.Sizes())

	// The cached fraction (1/4) tracks the container, not the pixels.
	require.NoError(t, g.Restore(side))
	assert.Equal(t, []float64{600, 200}, g.Sizes())
	assertCommitted(t, g)
}

func TestGroup_Restore_UnyieldingSiblingShrinksReopened(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(MinSize(350), 1, 0)
	require.NoError(t, err)
	side, err := g.AddPanel(Unbounded(), 1, 50, Collapsible())
	require.NoError(t, err)
	require.Equal(t, []float64{350, 50}, g.Sizes())

	require.NoError(t, g.Collapse(side))
	require.NoError(t, g.Resize(380))
	require.Equal(t, []float64{380, 0}, g.Sizes())

	// The cached eighth of the container (47.5) no longer fits next to
	// the sibling's 350 minimum; the panel reopens at the 30 that do.
	require.NoError(t, g.Restore(side))
	assert.Equal(t, []float64{350, 30}, g.Sizes())
	assert.False(t, g.Degraded())
	assertCommitted(t, g)
}

func TestGroup_StructuralChangeCancelsDrag(t *testing.T) {
	g, err := NewGroup(Horizontal, 400)
	require.NoError(t, err)
	_, err = g.AddPanel(Unbounded(), 1, 0)
	require.NoError(t, err)
	victim, err := g.AddPanel(Unbounded(), 1, 200)
	require.NoError(t, err)

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(100))
	require.Equal(t, []float64{300, 100}, g.Sizes())

	// Removing a panel rolls the drag back before redistributing, so the
	// provisional movement never leaks into the committed state.
	require.NoError(t, g.RemovePanel(victim))
	assert.False(t, g.Dragging())
	assert.Equal(t, []float64{400}, g.Sizes())
	assertCommitted(t, g)
}

func TestGroup_Destroy_CancelsSession(t *testing.T) {
	g, _, _ := twoPanelGroup(t)

	require.NoError(t, g.DragStart(0))
	require.NoError(t, g.DragMove(75))
	g.Destroy()

	assert.False(t, g.Dragging())
	assert.Equal(t, []float64{200, 200}, g.Sizes())
}

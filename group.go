package carton

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grindlemire/go-carton/internal/debug"
	"github.com/grindlemire/go-carton/internal/solve"
)

// GroupID identifies a carton group.
type GroupID string

// Group owns the ordered panels of one container and the separators
// between them. It is a two-state machine: Idle, or Dragging while a
// separator drag session is active. All mutations go through its entry
// points, run synchronously on the caller, and commit a fully computed
// candidate state — a failed operation never leaves partial changes.
//
// Committed invariant: outside a drag session and outside the explicit
// degraded state, the sizes of non-collapsed panels sum to the
// container size exactly, and every non-collapsed panel sits within its
// constraint.
type Group struct {
	id            GroupID
	direction     Direction
	containerSize float64
	panels        []*Panel
	session       *dragSession
	degraded      bool
	events        *Events[Layout]
}

// NewGroup creates an empty group for a container of the given size.
// The direction is fixed for the group's lifetime.
func NewGroup(direction Direction, containerSize float64) (*Group, error) {
	if containerSize < 0 {
		return nil, fmt.Errorf("%w: negative container size %v", ErrInvalidGeometry, containerSize)
	}
	return &Group{
		id:            GroupID(uuid.NewString()),
		direction:     direction,
		containerSize: containerSize,
		events:        NewEvents[Layout](),
	}, nil
}

// ID returns the group's identifier.
func (g *Group) ID() GroupID {
	return g.id
}

// Direction returns the group's layout axis.
func (g *Group) Direction() Direction {
	return g.direction
}

// ContainerSize returns the current container size.
func (g *Group) ContainerSize() float64 {
	return g.containerSize
}

// Degraded reports whether the last committed layout could not satisfy
// every constraint.
func (g *Group) Degraded() bool {
	return g.degraded
}

// Dragging reports whether a drag session is active.
func (g *Group) Dragging() bool {
	return g.session != nil
}

// Sizes returns a copy of the ordered panel sizes.
func (g *Group) Sizes() []float64 {
	sizes := make([]float64, len(g.panels))
	for i, p := range g.panels {
		sizes[i] = p.Size()
	}
	return sizes
}

// Panel returns the panel with the given identifier.
func (g *Group) Panel(id PanelID) (*Panel, bool) {
	if i := g.find(id); i >= 0 {
		return g.panels[i], true
	}
	return nil, false
}

// Panels returns the ordered panels. The slice is a copy; the panels
// are live and must not be mutated by callers.
func (g *Group) Panels() []*Panel {
	out := make([]*Panel, len(g.panels))
	copy(out, g.panels)
	return out
}

// Subscribe registers fn for layout notifications: one per committed
// transition and one per intermediate drag move.
func (g *Group) Subscribe(fn func(Layout)) Unsubscribe {
	return g.events.Subscribe(fn)
}

// AddPanel appends a panel. The first panel takes the whole container;
// later panels keep their initial size (clamped to their constraint)
// while the existing panels yield the space proportionally to their
// basis weights.
func (g *Group) AddPanel(constraint Constraint, weight, initialSize float64, opts ...PanelOption) (PanelID, error) {
	p, err := newPanel(constraint, weight, initialSize, opts...)
	if err != nil {
		return "", err
	}
	g.cancelActiveDrag()

	if len(g.panels) == 0 {
		p.size = constraint.Clamp(g.containerSize, g.containerSize)
		g.panels = []*Panel{p}
		g.commit([]float64{p.size}, p.size != g.containerSize)
		return p.id, nil
	}

	p.size = constraint.Clamp(initialSize, g.containerSize)
	g.panels = append(g.panels, p)

	// Trim the requested size to what the existing panels can yield
	// before pinning; an oversized request shrinks to the feasible
	// remainder instead of forcing a degraded, over-full commit.
	items := g.items(g.Sizes(), g.containerSize)
	last := len(items) - 1
	items[last].Size = solve.Fit(items, last, items[last].Size, g.containerSize)
	pin(items, last)
	sizes, ok := solve.Distribute(items, g.containerSize)
	g.commit(sizes, !ok)
	return p.id, nil
}

// RemovePanel removes the panel and redistributes its freed size to the
// remaining panels proportionally to their basis weights.
func (g *Group) RemovePanel(id PanelID) error {
	i := g.find(id)
	if i < 0 {
		debug.Logf("group %s: remove of unknown panel %s", g.id, id)
		return ErrPanelNotFound
	}
	g.cancelActiveDrag()

	g.panels = append(g.panels[:i], g.panels[i+1:]...)
	if len(g.panels) == 0 {
		g.commit(nil, false)
		return nil
	}
	sizes, ok := solve.Distribute(g.items(g.Sizes(), g.containerSize), g.containerSize)
	g.commit(sizes, !ok)
	return nil
}

// Resize re-lays the group out for a new container size, distributing
// the free-space delta proportionally to basis weights. During an
// active drag the resize takes precedence: the session is rebased onto
// the fresh assignment and subsequent moves apply only the pointer
// travel that follows.
func (g *Group) Resize(newSize float64) error {
	if newSize < 0 {
		return fmt.Errorf("%w: negative container size %v", ErrInvalidGeometry, newSize)
	}
	if len(g.panels) == 0 {
		g.containerSize = newSize
		return nil
	}

	sizes, ok := solve.Distribute(g.items(g.Sizes(), newSize), newSize)
	g.containerSize = newSize
	if g.session != nil {
		g.session.startSizes = snapshot(sizes)
		g.session.baseDelta = g.session.lastDelta
	}
	g.commit(sizes, !ok)
	return nil
}

// DragStart opens a drag session on the separator between
// panels[separator] and panels[separator+1], snapshotting all sizes.
// A drag-start while a session is already active is ignored.
func (g *Group) DragStart(separator int) error {
	if g.session != nil {
		debug.Logf("group %s: drag-start ignored, session already active", g.id)
		return nil
	}
	if separator < 0 || separator >= len(g.panels)-1 {
		debug.Logf("group %s: drag-start on unknown separator %d", g.id, separator)
		return ErrSeparatorNotFound
	}
	g.session = &dragSession{separator: separator, startSizes: snapshot(g.Sizes())}
	return nil
}

// DragMove applies the cumulative pointer delta since drag-start. Sizes
// are always recomputed from the session snapshot, so replaying the
// same delta yields the same result. Each move notifies subscribers
// with a provisional layout.
func (g *Group) DragMove(cumulative float64) error {
	if g.session == nil {
		debug.Logf("group %s: drag-move with no active session", g.id)
		return ErrNoActiveSession
	}
	s := g.session
	s.lastDelta = cumulative

	items := g.items(s.startSizes, g.containerSize)
	sizes := solve.Drag(items, s.separator, cumulative-s.baseDelta)
	for i, p := range g.panels {
		p.size = sizes[i]
	}
	g.events.Emit(Layout{Group: g.id, Sizes: sizes, Degraded: g.degraded, Provisional: true})
	return nil
}

// DragEnd commits the last computed sizes and closes the session.
func (g *Group) DragEnd() error {
	if g.session == nil {
		debug.Logf("group %s: drag-end with no active session", g.id)
		return ErrNoActiveSession
	}
	sizes := g.Sizes()
	g.session = nil
	g.commit(sizes, g.degraded)
	return nil
}

// DragCancel closes the session and reverts every panel to the exact
// sizes captured at drag-start, regardless of intermediate moves.
func (g *Group) DragCancel() error {
	if g.session == nil {
		debug.Logf("group %s: drag-cancel with no active session", g.id)
		return ErrNoActiveSession
	}
	sizes := snapshot(g.session.startSizes)
	g.session = nil
	g.commit(sizes, g.degraded)
	return nil
}

// Collapse shrinks a collapsible panel to zero, bypassing its minimum,
// and hands its space to the remaining panels proportionally to their
// basis weights. The panel's share of the container is cached so
// Restore can reopen it at a familiar size. Collapsing an already
// collapsed panel is a no-op.
func (g *Group) Collapse(id PanelID) error {
	i := g.find(id)
	if i < 0 {
		debug.Logf("group %s: collapse of unknown panel %s", g.id, id)
		return ErrPanelNotFound
	}
	p := g.panels[i]
	if !p.collapsible {
		debug.Logf("group %s: collapse of non-collapsible panel %s", g.id, id)
		return ErrNotCollapsible
	}
	if p.collapsed {
		return nil
	}
	g.cancelActiveDrag()

	if g.containerSize > 0 {
		p.cachedFraction = p.size / g.containerSize
	}
	p.collapsed = true
	p.size = 0

	sizes, ok := solve.Distribute(g.items(g.Sizes(), g.containerSize), g.containerSize)
	g.commit(sizes, !ok)
	return nil
}

// Restore reopens a collapsed panel at its cached fraction of the
// container, clamped to its constraint, taking the space back from the
// other panels. Restoring a panel that is not collapsed is a no-op.
func (g *Group) Restore(id PanelID) error {
	i := g.find(id)
	if i < 0 {
		debug.Logf("group %s: restore of unknown panel %s", g.id, id)
		return ErrPanelNotFound
	}
	p := g.panels[i]
	if !p.collapsed {
		return nil
	}
	g.cancelActiveDrag()

	p.collapsed = false
	p.size = p.constraint.Clamp(p.cachedFraction*g.containerSize, g.containerSize)

	// The cached size reopens only as far as the other panels can
	// yield; unyielding siblings shrink the reopened panel rather than
	// degrade a satisfiable layout.
	items := g.items(g.Sizes(), g.containerSize)
	items[i].Size = solve.Fit(items, i, items[i].Size, g.containerSize)
	pin(items, i)
	sizes, ok := solve.Distribute(items, g.containerSize)
	g.commit(sizes, !ok)
	return nil
}

// Destroy cancels any active drag session. Called when the container
// unmounts; no notification is sent since there is nothing left to
// paint.
func (g *Group) Destroy() {
	if g.session == nil {
		return
	}
	for i, p := range g.panels {
		p.size = g.session.startSizes[i]
	}
	g.session = nil
}

// commit stores a fully computed size assignment and notifies
// subscribers exactly once.
func (g *Group) commit(sizes []float64, degraded bool) {
	for i, p := range g.panels {
		p.size = sizes[i]
	}
	g.degraded = degraded
	g.events.Emit(Layout{Group: g.id, Sizes: snapshot(sizes), Degraded: degraded})
}

// cancelActiveDrag silently rolls an in-flight session back to its
// snapshot. Structural mutations take precedence over a drag; the
// mutation's own commit carries the single notification.
func (g *Group) cancelActiveDrag() {
	if g.session == nil {
		return
	}
	for i, p := range g.panels {
		p.size = g.session.startSizes[i]
	}
	g.session = nil
	debug.Logf("group %s: active drag cancelled by structural change", g.id)
}

// items builds the solver's view of the panels with bounds resolved
// against the given container size.
func (g *Group) items(sizes []float64, container float64) []solve.Item {
	items := make([]solve.Item, len(g.panels))
	for i, p := range g.panels {
		items[i] = solve.Item{
			Size:      sizes[i],
			Min:       p.constraint.ResolveMin(container),
			Max:       p.constraint.ResolveMax(container),
			Weight:    p.weight,
			Collapsed: p.collapsed,
		}
	}
	return items
}

// pin freezes items[i] at its current size so Distribute reshapes only
// the other panels around it.
func pin(items []solve.Item, i int) {
	items[i].Min = items[i].Size
	items[i].Max = items[i].Size
	items[i].Weight = 0
}

// find returns the index of the panel with the given id, or -1.
func (g *Group) find(id PanelID) int {
	for i, p := range g.panels {
		if p.id == id {
			return i
		}
	}
	return -1
}

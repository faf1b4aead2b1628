package carton

import "github.com/grindlemire/go-carton/internal/debug"

// Manager owns groups keyed by identifier. It is the explicit,
// caller-owned replacement for any global registry: whichever component
// manages container lifecycles holds a Manager and maps mounted
// containers to GroupIDs. Groups never know about each other; the
// manager merely routes calls and fans layout notifications out across
// all groups it owns.
type Manager struct {
	groups map[GroupID]*Group
	events *Events[Layout]
	unsubs map[GroupID]Unsubscribe
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		groups: make(map[GroupID]*Group),
		events: NewEvents[Layout](),
		unsubs: make(map[GroupID]Unsubscribe),
	}
}

// CreateGroup creates a group for a newly mounted container and returns
// its identifier.
func (m *Manager) CreateGroup(direction Direction, containerSize float64) (GroupID, error) {
	g, err := NewGroup(direction, containerSize)
	if err != nil {
		return "", err
	}
	m.groups[g.ID()] = g
	m.unsubs[g.ID()] = g.Subscribe(m.events.Emit)
	return g.ID(), nil
}

// DestroyGroup removes a group when its container unmounts, cancelling
// any active drag session. Destroying an unknown group is a no-op.
func (m *Manager) DestroyGroup(id GroupID) {
	g, ok := m.groups[id]
	if !ok {
		return
	}
	g.Destroy()
	m.unsubs[id]()
	delete(m.unsubs, id)
	delete(m.groups, id)
}

// Group returns the group with the given identifier.
func (m *Manager) Group(id GroupID) (*Group, bool) {
	g, ok := m.groups[id]
	return g, ok
}

// Subscribe registers fn for layout notifications from every group the
// manager owns, current and future.
func (m *Manager) Subscribe(fn func(Layout)) Unsubscribe {
	return m.events.Subscribe(fn)
}

// AddPanel appends a panel to the given group.
func (m *Manager) AddPanel(id GroupID, constraint Constraint, weight, initialSize float64, opts ...PanelOption) (PanelID, error) {
	g, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return g.AddPanel(constraint, weight, initialSize, opts...)
}

// RemovePanel removes a panel from the given group.
func (m *Manager) RemovePanel(id GroupID, panelID PanelID) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	return g.RemovePanel(panelID)
}

// DragStart opens a drag session on the given separator.
func (m *Manager) DragStart(id GroupID, separator int) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	return g.DragStart(separator)
}

// DragMove applies the cumulative pointer delta since drag-start.
func (m *Manager) DragMove(id GroupID, cumulative float64) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	return g.DragMove(cumulative)
}

// DragEnd commits the active drag session.
func (m *Manager) DragEnd(id GroupID) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	return g.DragEnd()
}

// DragCancel aborts the active drag session with exact rollback.
func (m *Manager) DragCancel(id GroupID) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	return g.DragCancel()
}

// NotifyContainerResized re-lays a group out for a new container size.
// Called by the element-size observer; the core never watches sizes
// itself.
func (m *Manager) NotifyContainerResized(id GroupID, newSize float64) error {
	g, err := m.lookup(id)
	if err != nil {
		return err
	}
	return g.Resize(newSize)
}

func (m *Manager) lookup(id GroupID) (*Group, error) {
	g, ok := m.groups[id]
	if !ok {
		debug.Logf("manager: unknown group %s", id)
		return nil, ErrGroupNotFound
	}
	return g, nil
}

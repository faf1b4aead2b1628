package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-carton"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Align(lipgloss.Center, lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	separatorActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212"))

	degradedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// latest latches the most recent layout notification so the view can
// render it. The engine emits synchronously on the Update goroutine.
type latest struct {
	layout carton.Layout
}

// model is the bubbletea state for the demo: one horizontal group, a
// drag controller translating mouse events, and a manual size observer
// fed from terminal resize messages.
type model struct {
	manager  *carton.Manager
	groupID  carton.GroupID
	group    *carton.Group
	drag     *carton.DragController
	observer *carton.ManualObserver
	panels   []PanelConfig
	ids      []carton.PanelID
	latest   *latest

	width  int
	height int
}

func newModel(cfg Config) (model, error) {
	manager := carton.NewManager()

	// Sized at zero until the first WindowSizeMsg arrives.
	id, err := manager.CreateGroup(carton.Horizontal, 0)
	if err != nil {
		return model{}, err
	}

	ids := make([]carton.PanelID, 0, len(cfg.Panels))
	for _, p := range cfg.Panels {
		var opts []carton.PanelOption
		if p.Collapsible {
			opts = append(opts, carton.Collapsible())
		}
		pid, err := manager.AddPanel(id, carton.MinSize(p.Min), p.Weight, p.Min, opts...)
		if err != nil {
			return model{}, fmt.Errorf("add panel %q: %w", p.Title, err)
		}
		ids = append(ids, pid)
	}

	group, _ := manager.Group(id)
	m := model{
		manager:  manager,
		groupID:  id,
		group:    group,
		drag:     carton.NewDragController(group),
		observer: carton.NewManualObserver(0),
		panels:   cfg.Panels,
		ids:      ids,
		latest:   &latest{},
	}

	group.Subscribe(func(l carton.Layout) {
		m.latest.layout = l
	})
	carton.NewResizeSynchronizer(manager).Bind(id, m.observer)
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.observer.Set(float64(m.contentWidth()))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.drag.Active() {
				_ = m.drag.PointerCancel()
			}
			return m, nil
		case "c":
			m.toggleCollapse()
			return m, nil
		}

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) model {
	p := carton.Pointer{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if sep, ok := m.separatorAt(msg.X); ok {
			_ = m.drag.PointerDown(sep, p, 0)
		}
	case tea.MouseActionMotion:
		if m.drag.Active() {
			_ = m.drag.PointerMove(p)
		}
	case tea.MouseActionRelease:
		if m.drag.Active() {
			_ = m.drag.PointerUp()
		}
	}
	return m
}

// toggleCollapse flips the first collapsible panel.
func (m model) toggleCollapse() {
	for i, p := range m.panels {
		if !p.Collapsible {
			continue
		}
		panel, ok := m.group.Panel(m.ids[i])
		if !ok {
			return
		}
		if panel.Collapsed() {
			_ = m.group.Restore(m.ids[i])
		} else {
			_ = m.group.Collapse(m.ids[i])
		}
		return
	}
}

// contentWidth is the horizontal space available to panels after the
// separator columns are set aside.
func (m model) contentWidth() int {
	w := m.width - (len(m.panels) - 1)
	if w < 0 {
		w = 0
	}
	return w
}

// separatorAt maps a terminal column to the separator drawn there, with
// one cell of slop on either side so thin targets stay grabbable.
func (m model) separatorAt(x int) (int, bool) {
	col := 0
	for i, size := range m.columnWidths() {
		if i == len(m.panels)-1 {
			break
		}
		col += size
		if x >= col-1 && x <= col+1 {
			return i, true
		}
		col++ // the separator column itself
	}
	return 0, false
}

// columnWidths converts the engine's float sizes to terminal columns,
// folding the rounding residue into the last panel so the row spans the
// full width.
func (m model) columnWidths() []int {
	sizes := m.group.Sizes()
	widths := make([]int, len(sizes))
	used := 0
	for i, s := range sizes {
		widths[i] = int(math.Round(s))
		used += widths[i]
	}
	if n := len(widths); n > 0 {
		widths[n-1] += m.contentWidth() - used
		if widths[n-1] < 0 {
			widths[n-1] = 0
		}
	}
	return widths
}

func (m model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	bodyHeight := m.height - 2
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	sizes := m.group.Sizes()
	cols := make([]string, 0, 2*len(m.panels))
	for i, w := range m.columnWidths() {
		if i > 0 {
			style := separatorStyle
			if m.drag.Active() {
				style = separatorActiveStyle
			}
			cols = append(cols, style.Render(strings.Repeat("│\n", bodyHeight-1)+"│"))
		}
		if w == 0 {
			continue
		}
		label := fmt.Sprintf("%s\n%.0f", m.panels[i].Title, sizes[i])
		cols = append(cols, panelStyle.Width(w-2).Height(bodyHeight-2).Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	status := helpStyle.Render("drag separators with the mouse · c collapse · esc cancel drag · q quit")
	if m.latest.layout.Degraded {
		status = degradedStyle.Render("container too small for the panel minimums")
	} else if m.latest.layout.Provisional {
		status = helpStyle.Render("dragging...")
	}

	return lipgloss.JoinVertical(lipgloss.Left, row, status)
}

package carton

import "github.com/grindlemire/go-carton/internal/debug"

// Pointer is an absolute pointer position in viewport coordinates.
type Pointer struct {
	X float64
	Y float64
}

// DragController converts a raw pointer-event stream into drag-session
// calls on one group. It projects pointer positions onto the group's
// axis (horizontal groups use X, vertical groups use Y), anchors the
// coordinate frame at session start, and enforces a single session per
// group: a second pointer-down while a session is active is ignored.
//
// The container origin is supplied by the view layer at session start
// and never recomputed mid-drag, so the engine does not force layout
// reads on every move.
type DragController struct {
	group  *Group
	active bool
	origin float64 // container origin along the axis, captured at pointer-down
	anchor float64 // pointer position relative to origin at pointer-down
}

// NewDragController creates a controller for the given group.
func NewDragController(group *Group) *DragController {
	return &DragController{group: group}
}

// Active reports whether the controller currently owns a drag session.
func (dc *DragController) Active() bool {
	return dc.active
}

// PointerDown starts a drag on the given separator. containerOrigin is
// the container's position along the drag axis in the same coordinate
// space as the pointer.
func (dc *DragController) PointerDown(separator int, p Pointer, containerOrigin float64) error {
	if dc.active {
		debug.Logf("drag controller: pointer-down ignored, session active")
		return nil
	}
	if err := dc.group.DragStart(separator); err != nil {
		return err
	}
	dc.active = true
	dc.origin = containerOrigin
	dc.anchor = dc.axis(p) - containerOrigin
	return nil
}

// PointerMove feeds the pointer's displacement along the group's axis
// into the active session. Without a session the event is ignored.
func (dc *DragController) PointerMove(p Pointer) error {
	if !dc.active {
		debug.Logf("drag controller: pointer-move with no session")
		return ErrNoActiveSession
	}
	delta := (dc.axis(p) - dc.origin) - dc.anchor
	return dc.group.DragMove(delta)
}

// PointerUp commits the drag and closes the session.
func (dc *DragController) PointerUp() error {
	if !dc.active {
		debug.Logf("drag controller: pointer-up with no session")
		return ErrNoActiveSession
	}
	dc.active = false
	return dc.group.DragEnd()
}

// PointerCancel aborts the drag, reverting to the pre-drag sizes. Used
// for pointer-cancel and pointer-leave.
func (dc *DragController) PointerCancel() error {
	if !dc.active {
		debug.Logf("drag controller: pointer-cancel with no session")
		return ErrNoActiveSession
	}
	dc.active = false
	return dc.group.DragCancel()
}

// axis projects a pointer position onto the group's drag axis.
func (dc *DragController) axis(p Pointer) float64 {
	if dc.group.Direction() == Horizontal {
		return p.X
	}
	return p.Y
}

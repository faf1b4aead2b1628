package carton

import (
	"errors"

	"github.com/grindlemire/go-carton/internal/geometry"
)

// ErrInvalidGeometry reports negative sizes or inverted constraints.
// Operations failing with it are rejected at the API boundary and have
// no effect on group state.
var ErrInvalidGeometry = geometry.ErrInvalid

// ErrPanelNotFound reports an operation on an unknown panel identifier.
// Non-fatal: the operation is logged and ignored.
var ErrPanelNotFound = errors.New("carton: panel not found")

// ErrSeparatorNotFound reports a drag targeting a separator index with
// no panel pair behind it. Non-fatal, logged and ignored.
var ErrSeparatorNotFound = errors.New("carton: separator not found")

// ErrNoActiveSession reports a drag-move, drag-end, or drag-cancel
// arriving while no drag session is active. Non-fatal: spurious pointer
// events can arrive after an external cancel, so the event is logged
// and ignored.
var ErrNoActiveSession = errors.New("carton: no active drag session")

// ErrGroupNotFound reports a manager operation on an unknown group
// identifier. Non-fatal, logged and ignored.
var ErrGroupNotFound = errors.New("carton: group not found")

// ErrNotCollapsible reports a collapse request on a panel that was not
// registered as collapsible. Non-fatal, logged and ignored.
var ErrNotCollapsible = errors.New("carton: panel is not collapsible")

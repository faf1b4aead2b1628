package carton

import (
	"fmt"

	"github.com/google/uuid"
)

// PanelID identifies a panel. Unique within its group.
type PanelID string

// Panel is one resizable carton inside a group. Panels are created and
// mutated only through their group's entry points; external code reads
// them through accessors and never mutates fields directly.
type Panel struct {
	id          PanelID
	size        float64
	constraint  Constraint
	weight      float64
	collapsible bool
	collapsed   bool

	// cachedFraction remembers the panel's share of the container at the
	// moment it collapsed, so Restore can reopen it at a familiar size.
	cachedFraction float64
}

// PanelOption configures a panel at creation time.
type PanelOption func(*Panel)

// Collapsible marks the panel as collapsible: it may be shrunk to zero
// through Collapse, bypassing its minimum, and reopened with Restore.
func Collapsible() PanelOption {
	return func(p *Panel) {
		p.collapsible = true
	}
}

// newPanel validates and builds a panel. The group assigns its size.
func newPanel(constraint Constraint, weight, initialSize float64, opts ...PanelOption) (*Panel, error) {
	if err := constraint.Validate(); err != nil {
		return nil, err
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: negative basis weight %v", ErrInvalidGeometry, weight)
	}
	if initialSize < 0 {
		return nil, fmt.Errorf("%w: negative initial size %v", ErrInvalidGeometry, initialSize)
	}

	p := &Panel{
		id:         PanelID(uuid.NewString()),
		size:       initialSize,
		constraint: constraint,
		weight:     weight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ID returns the panel's identifier.
func (p *Panel) ID() PanelID {
	return p.id
}

// Size returns the panel's current size. Collapsed panels report zero.
func (p *Panel) Size() float64 {
	if p.collapsed {
		return 0
	}
	return p.size
}

// Constraint returns the panel's size constraint.
func (p *Panel) Constraint() Constraint {
	return p.constraint
}

// Weight returns the panel's basis weight for proportional
// redistribution. Zero-weight panels behave as fixed-size panels.
func (p *Panel) Weight() float64 {
	return p.weight
}

// Collapsible reports whether the panel may be collapsed to zero.
func (p *Panel) Collapsible() bool {
	return p.collapsible
}

// Collapsed reports whether the panel is currently collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

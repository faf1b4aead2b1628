package geometry

// Direction specifies the axis along which a group's panels are arranged.
// It is fixed for the lifetime of a group.
type Direction uint8

const (
	Horizontal Direction = iota // Panels side by side; drag follows the X axis
	Vertical                    // Panels stacked; drag follows the Y axis
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

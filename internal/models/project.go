package models

// Project status colours used on task chips.
const (
	ColorActive    = "#10b981"
	ColorPlanning  = "#3b82f6"
	ColorCompleted = "#6b7280"
	ColorOnHold    = "#f59e0b"
	ColorDefault   = "#6366f1"
)

// Color returns the chip colour for the project's status.
func (p Project) Color() string {
	return StatusColor(p.Status)
}

func StatusColor(status string) string {
	switch status {
	case "active":
		return ColorActive
	case "planning":
		return ColorPlanning
	case "completed":
		return ColorCompleted
	case "on_hold":
		return ColorOnHold
	default:
		return ColorDefault
	}
}

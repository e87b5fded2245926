package service

import (
	"strings"

	"taskboard/pkg/calendar"
)

// Visibility is the viewer-side task filter handed to the grid builder
type Visibility struct {
	ViewerID       uint64
	OwnerID        uint64
	HiddenProjects map[string]bool
	Search         string
}

// Allows reports whether the viewer sees t: another member's private tasks never show,
// hidden projects are filtered out, and a search keeps titles containing it (case-insensitive).
func (v Visibility) Allows(t calendar.TaskRef) bool {
	if t.Private && v.ViewerID != v.OwnerID {
		return false
	}
	if t.ProjectID != "" && v.HiddenProjects[t.ProjectID] {
		return false
	}
	if search := strings.TrimSpace(v.Search); search != "" {
		return strings.Contains(strings.ToLower(t.Title), strings.ToLower(search))
	}
	return true
}

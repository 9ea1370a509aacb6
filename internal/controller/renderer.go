package controller

import "github.com/BusselW/navmenu/internal/menu"

// Renderer is the host mount point. The controller pushes the validated
// tree, per-submenu phase changes, and the inline error state through it;
// how those get drawn is the host's business.
type Renderer interface {
	MountTree(tree []*menu.Node)
	PhaseChanged(submenuID string, phase Phase)
	ShowError(err error)
	Unmount()
}

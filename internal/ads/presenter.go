package ads

import (
	"time"

	"adsd/pkg/types"
)

// Presenter is the outbound presentation collaborator. The core requests
// spawn and teardown of visual ad presentations and forwards DisplayParams
// opaquely; rendering is entirely the presenter's business.
//
// Contract: Teardown is called by the manager when it decides to close a
// presentation; the presenter must not call back into the manager from it —
// the manager records the close itself. When the presenter destroys a
// presentation on its own initiative (e.g. the user hits the close
// affordance), it must synchronously notify the manager via
// NotifyPresentationClosed.
type Presenter interface {
	// ShowBanner spawns the persistent banner presentation.
	ShowBanner(params types.DisplayParams)
	// ShowFullscreen spawns a fullscreen presentation for kind.
	ShowFullscreen(kind types.AdKind, params types.DisplayParams)
	// ShowCloseAffordance asks for an explicit close control, used when a
	// show timer elapses with auto-close disabled.
	ShowCloseAffordance(kind types.AdKind)
	// UpdateTimeLeft refreshes the remaining-time indicator while a
	// fullscreen ad with ShowTimeLeft is up.
	UpdateTimeLeft(kind types.AdKind, remaining time.Duration)
	// Teardown destroys the active presentation for kind.
	Teardown(kind types.AdKind)
}

// noopPresenter is the default; it renders nothing.
type noopPresenter struct{}

func (noopPresenter) ShowBanner(types.DisplayParams)                 {}
func (noopPresenter) ShowFullscreen(types.AdKind, types.DisplayParams) {}
func (noopPresenter) ShowCloseAffordance(types.AdKind)               {}
func (noopPresenter) UpdateTimeLeft(types.AdKind, time.Duration)     {}
func (noopPresenter) Teardown(types.AdKind)                          {}

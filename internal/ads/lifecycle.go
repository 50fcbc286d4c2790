package ads

// LifecycleState is the per-kind ad lifecycle state. Fullscreen kinds cycle
// not_loaded -> loading -> ready -> showing -> not_loaded; banner toggles
// hidden <-> shown. Transitions are driven exclusively by manager operations
// and countdown expiry on the consumer tick.
type LifecycleState string

const (
	StateNotLoaded LifecycleState = "not_loaded"
	StateLoading   LifecycleState = "loading"
	StateReady     LifecycleState = "ready"
	StateShowing   LifecycleState = "showing"

	// Banner-only states: banners have no load/ready distinction.
	StateHidden LifecycleState = "hidden"
	StateShown  LifecycleState = "shown"
)

// lifecycle tracks one fullscreen kind. At most one load countdown and one
// show countdown are armed at any moment; arming a new load replaces the
// prior one.
type lifecycle struct {
	state LifecycleState
	load  *Countdown
	show  *Countdown
}

func newLifecycle() *lifecycle {
	return &lifecycle{state: StateNotLoaded}
}

// reset returns the lifecycle to not_loaded and disarms both countdowns.
func (lc *lifecycle) reset() {
	lc.state = StateNotLoaded
	lc.load = nil
	lc.show = nil
}

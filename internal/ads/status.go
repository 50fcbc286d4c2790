package ads

import (
	"adsd/pkg/types"
)

// Status returns a read-only projection of the backend state for /status.
// Safe to call from any goroutine.
func (m *Mock) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp := types.StatusResponse{Initialized: m.initialized}

	bannerState := StateHidden
	if m.bannerShown {
		bannerState = StateShown
	}
	resp.Ads = append(resp.Ads, types.AdStatus{
		Kind:  types.KindBanner,
		State: string(bannerState),
		Ready: true,
	})

	for _, kind := range []types.AdKind{types.KindInterstitial, types.KindRewarded} {
		lc := m.lifecycles[kind]
		st := types.AdStatus{
			Kind:  kind,
			State: string(lc.state),
			Ready: m.initialized && lc.state == StateReady,
		}
		if lc.load != nil && !lc.load.Finished() {
			st.LoadRemainingMS = lc.load.Remaining().Milliseconds()
		}
		if lc.show != nil && !lc.show.Finished() {
			st.ShowRemainingMS = lc.show.Remaining().Milliseconds()
		}
		resp.Ads = append(resp.Ads, st)
	}
	return resp
}

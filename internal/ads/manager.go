package ads

import "adsd/pkg/types"

// Manager is the capability surface every ad backend implements: the mock
// below, or a real network-backed integration. Callers depend on this
// surface only, never on a concrete backend.
//
// All methods report success as a boolean and must not panic on misuse.
// Implementations are driven from the single consumer tick.
type Manager interface {
	// Initialize moves the backend to its initialized state and enqueues
	// Initialized{success:true}. Idempotent: returns true immediately when
	// already initialized. Load/show before Initialize return false.
	Initialize() bool
	// IsInitialized reports whether Initialize completed.
	IsInitialized() bool

	// LoadBanner starts loading a banner placement. Banners have no async
	// load step in the mock; real backends may differ.
	LoadBanner(adID string) bool
	// LoadInterstitial starts (or restarts) an interstitial load.
	LoadInterstitial(adID string) bool
	// LoadRewarded starts (or restarts) a rewarded load.
	LoadRewarded(adID string) bool

	// ShowBanner spawns the banner presentation.
	ShowBanner() bool
	// ShowInterstitial presents a ready interstitial.
	ShowInterstitial() bool
	// ShowRewarded presents a ready rewarded ad.
	ShowRewarded() bool

	// HideBanner tears down the banner presentation; idempotent.
	HideBanner() bool
	// HideInterstitial tears down a showing interstitial; idempotent.
	HideInterstitial() bool
	// HideRewarded tears down a showing rewarded ad; idempotent.
	HideRewarded() bool

	// IsBannerReady reports banner readiness. Banners are always ready.
	IsBannerReady() bool
	// IsInterstitialReady reports whether an interstitial finished loading.
	IsInterstitialReady() bool
	// IsRewardedReady reports whether a rewarded ad finished loading.
	IsRewardedReady() bool

	// BannerWidth and BannerHeight report the banner dimensions for a
	// placement, in logical pixels.
	BannerWidth(adID string) int
	BannerHeight(adID string) int
}

// The kind-generic operations below dispatch to the Manager's kind-specific
// primitives. They are the derived half of the capability surface; backends
// implement only the primitives.

// Load starts loading an ad of the given kind. Returns false for unknown
// kinds.
func Load(m Manager, kind types.AdKind, adID string) bool {
	switch kind {
	case types.KindBanner:
		return m.LoadBanner(adID)
	case types.KindInterstitial:
		return m.LoadInterstitial(adID)
	case types.KindRewarded:
		return m.LoadRewarded(adID)
	}
	return false
}

// Show presents an ad of the given kind. Returns false without side effects
// when the ad is not ready.
func Show(m Manager, kind types.AdKind) bool {
	if !IsReady(m, kind) {
		return false
	}
	switch kind {
	case types.KindBanner:
		return m.ShowBanner()
	case types.KindInterstitial:
		return m.ShowInterstitial()
	case types.KindRewarded:
		return m.ShowRewarded()
	}
	return false
}

// Hide tears down the active presentation of the given kind, if any.
func Hide(m Manager, kind types.AdKind) bool {
	switch kind {
	case types.KindBanner:
		return m.HideBanner()
	case types.KindInterstitial:
		return m.HideInterstitial()
	case types.KindRewarded:
		return m.HideRewarded()
	}
	return false
}

// IsReady reports whether an ad of the given kind can be shown now.
func IsReady(m Manager, kind types.AdKind) bool {
	switch kind {
	case types.KindBanner:
		return m.IsBannerReady()
	case types.KindInterstitial:
		return m.IsInterstitialReady()
	case types.KindRewarded:
		return m.IsRewardedReady()
	}
	return false
}

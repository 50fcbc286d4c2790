package types

import "time"

// AdKind identifies one of the supported ad formats. The string form is
// stable and used as a lookup key, an event tag, and a URL path segment.
type AdKind string

const (
	KindBanner       AdKind = "banner"
	KindInterstitial AdKind = "interstitial"
	KindRewarded     AdKind = "rewarded"
)

// Kinds lists every supported ad kind.
func Kinds() []AdKind {
	return []AdKind{KindBanner, KindInterstitial, KindRewarded}
}

// ParseAdKind maps a string to an AdKind. ok is false for unknown values.
func ParseAdKind(s string) (AdKind, bool) {
	switch AdKind(s) {
	case KindBanner, KindInterstitial, KindRewarded:
		return AdKind(s), true
	}
	return "", false
}

// Fullscreen reports whether the kind has a load/ready/show/close lifecycle
// with timers. Banner is persistent and has no load step.
func (k AdKind) Fullscreen() bool {
	return k == KindInterstitial || k == KindRewarded
}

func (k AdKind) String() string { return string(k) }

// EventType tags a lifecycle Event variant.
type EventType string

const (
	EventInitialized     EventType = "initialized"
	EventConsentGathered EventType = "consent_gathered"
	EventAdLoaded        EventType = "ad_loaded"
	EventAdFailedToLoad  EventType = "ad_failed_to_load"
	EventAdOpened        EventType = "ad_opened"
	EventAdClosed        EventType = "ad_closed"
	EventRewardEarned    EventType = "reward_earned"
)

// KnownEventType reports whether t is one of the defined variants.
// Consumers should treat unknown types permissively; producers must not
// fabricate them.
func KnownEventType(t EventType) bool {
	switch t {
	case EventInitialized, EventConsentGathered, EventAdLoaded,
		EventAdFailedToLoad, EventAdOpened, EventAdClosed, EventRewardEarned:
		return true
	}
	return false
}

// Event is one lifecycle event. It encodes a tagged union as a flat struct:
// Type selects the variant, the remaining fields carry that variant's
// payload and are zero otherwise. Events are immutable once constructed and
// comparable with ==.
type Event struct {
	Type EventType `json:"type"`
	// Success is set for initialized and consent_gathered.
	Success bool `json:"success,omitempty"`
	// Error is set for consent_gathered and ad_failed_to_load.
	Error string `json:"error,omitempty"`
	// Kind is set for ad_loaded, ad_failed_to_load, ad_opened and ad_closed.
	Kind AdKind `json:"kind,omitempty"`
	// Amount and RewardKind are set for reward_earned.
	Amount     int    `json:"amount,omitempty"`
	RewardKind string `json:"reward_kind,omitempty"`
}

// Initialized reports completion of ad system initialization.
func Initialized(success bool) Event {
	return Event{Type: EventInitialized, Success: success}
}

// ConsentGathered reports the outcome of a consent flow.
func ConsentGathered(success bool, errText string) Event {
	return Event{Type: EventConsentGathered, Success: success, Error: errText}
}

// AdLoaded reports that an ad of the given kind finished loading.
func AdLoaded(kind AdKind) Event {
	return Event{Type: EventAdLoaded, Kind: kind}
}

// AdFailedToLoad reports a backend load failure. The mock backend never
// produces this variant; it exists for real network-backed managers.
func AdFailedToLoad(kind AdKind, errText string) Event {
	return Event{Type: EventAdFailedToLoad, Kind: kind, Error: errText}
}

// AdOpened reports that an ad presentation appeared.
func AdOpened(kind AdKind) Event {
	return Event{Type: EventAdOpened, Kind: kind}
}

// AdClosed reports that an ad presentation was torn down.
func AdClosed(kind AdKind) Event {
	return Event{Type: EventAdClosed, Kind: kind}
}

// RewardEarned reports that a rewarded ad ran to completion.
func RewardEarned(amount int, rewardKind string) Event {
	return Event{Type: EventRewardEarned, Amount: amount, RewardKind: rewardKind}
}

// DisplayParams is the opaque presentation payload forwarded to the
// presentation collaborator when an ad is shown. The core stores and
// forwards it; it never interprets the styling fields.
type DisplayParams struct {
	// Background is a styling reference (e.g. a color name or hex value).
	Background string `json:"background,omitempty"`
	// Text is an optional message rendered over the background.
	Text string `json:"text,omitempty"`
	// Image is an optional image reference; overrides Background/Text.
	Image string `json:"image,omitempty"`
	// ShowTimeLeft requests a remaining-time indicator.
	ShowTimeLeft bool `json:"show_time_left"`
	// AutoClose tears the presentation down when the show timer elapses.
	// When false the presentation stays up with a close affordance.
	AutoClose bool `json:"auto_close"`
	// ShowDuration is how long the presentation runs before the show timer
	// elapses. Ignored for banners.
	ShowDuration time.Duration `json:"show_duration"`
}

// RewardSettings configures the reward granted when a rewarded ad completes.
type RewardSettings struct {
	// Amount is the reward quantity; never negative.
	Amount int `json:"amount"`
	// Kind is a free-form reward label (e.g. "coins").
	Kind string `json:"kind"`
}

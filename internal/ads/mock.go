package ads

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"adsd/internal/eventq"
	"adsd/pkg/types"
)

// Defaults applied when corresponding MockConfig fields are unset.
const (
	defaultLoadDuration = time.Second
	defaultShowDuration = 3500 * time.Millisecond

	defaultBannerWidth  = 100
	defaultBannerHeight = 50
)

func defaultDisplayParams() types.DisplayParams {
	return types.DisplayParams{
		Background:   "#71717a",
		Text:         "Displaying an ad",
		ShowTimeLeft: true,
		AutoClose:    false,
		ShowDuration: defaultShowDuration,
	}
}

func defaultReward() types.RewardSettings {
	return types.RewardSettings{Amount: 1, Kind: "default"}
}

// MockConfig encapsulates all tunables for Mock construction.
type MockConfig struct {
	// LoadDuration is the fabricated load time for fullscreen kinds.
	LoadDuration time.Duration
	// Banner, Interstitial and Rewarded are the per-kind display settings
	// forwarded opaquely to the presenter.
	Banner       types.DisplayParams
	Interstitial types.DisplayParams
	Rewarded     types.DisplayParams
	// Reward is granted when a rewarded ad's show timer elapses.
	Reward types.RewardSettings
	// Queue is the shared event channel. Required.
	Queue *eventq.Queue[types.Event]
	// Presenter receives spawn/teardown requests. Optional; defaults to a
	// no-op presenter.
	Presenter Presenter
	// Logger is an optional structured logger.
	Logger *zerolog.Logger
}

// Mock is the reference ad backend: it fabricates timer-based loads and
// shows so the lifecycle state machine and the event queue can be exercised
// without a real ad-network SDK.
//
// All mutating operations (everything except the readiness/status getters)
// must run on the single consumer tick. The internal lock exists so that
// read-side snapshots (Status, IsReady) may be taken from other goroutines.
type Mock struct {
	mu           sync.RWMutex
	initialized  bool
	loadDuration time.Duration
	lifecycles   map[types.AdKind]*lifecycle
	bannerShown  bool
	display      map[types.AdKind]types.DisplayParams
	reward       types.RewardSettings
	queue        *eventq.Queue[types.Event]
	presenter    Presenter
	log          zerolog.Logger
}

// NewMock constructs a Mock from MockConfig, applying defaults for unset
// fields. cfg.Queue must be non-nil.
func NewMock(cfg MockConfig) *Mock {
	m := &Mock{
		loadDuration: cfg.LoadDuration,
		lifecycles: map[types.AdKind]*lifecycle{
			types.KindInterstitial: newLifecycle(),
			types.KindRewarded:     newLifecycle(),
		},
		display: map[types.AdKind]types.DisplayParams{
			types.KindBanner:       cfg.Banner,
			types.KindInterstitial: cfg.Interstitial,
			types.KindRewarded:     cfg.Rewarded,
		},
		reward:    cfg.Reward,
		queue:     cfg.Queue,
		presenter: cfg.Presenter,
		log:       zerolog.Nop(),
	}
	if m.loadDuration <= 0 {
		m.loadDuration = defaultLoadDuration
	}
	for _, kind := range []types.AdKind{types.KindInterstitial, types.KindRewarded} {
		p := m.display[kind]
		if p == (types.DisplayParams{}) {
			p = defaultDisplayParams()
		} else if p.ShowDuration <= 0 {
			p.ShowDuration = defaultShowDuration
		}
		m.display[kind] = p
	}
	if m.reward == (types.RewardSettings{}) {
		m.reward = defaultReward()
	}
	if m.reward.Amount < 0 {
		m.reward.Amount = 0
	}
	if m.presenter == nil {
		m.presenter = noopPresenter{}
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	}
	return m
}

// Initialize is idempotent: the Initialized event is enqueued exactly once.
func (m *Mock) Initialize() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return true
	}
	// Arm default timers: disarm any stale countdowns.
	for _, lc := range m.lifecycles {
		lc.reset()
	}
	m.initialized = true
	m.queue.Push(types.Initialized(true))
	m.log.Info().Msg("ad backend initialized")
	return true
}

func (m *Mock) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// LoadBanner has no async step in the mock: banners are always ready.
func (m *Mock) LoadBanner(adID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.initialized {
		return false
	}
	loadsTotal.WithLabelValues(string(types.KindBanner)).Inc()
	return true
}

func (m *Mock) LoadInterstitial(adID string) bool {
	return m.loadFullscreen(types.KindInterstitial, adID)
}

func (m *Mock) LoadRewarded(adID string) bool {
	return m.loadFullscreen(types.KindRewarded, adID)
}

// loadFullscreen arms the load countdown. Loading again while a load is in
// flight restarts the countdown (last call wins); loading while showing is
// rejected.
func (m *Mock) loadFullscreen(kind types.AdKind, adID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return false
	}
	lc := m.lifecycles[kind]
	if lc.state == StateShowing {
		return false
	}
	lc.state = StateLoading
	lc.load = NewCountdown(m.loadDuration)
	lc.show = nil
	loadsTotal.WithLabelValues(string(kind)).Inc()
	m.log.Debug().Str("kind", string(kind)).Str("ad_id", adID).
		Dur("load_duration", m.loadDuration).Msg("ad load started")
	return true
}

// IsBannerReady is unconditionally true: banners have no load step.
func (m *Mock) IsBannerReady() bool { return true }

func (m *Mock) IsInterstitialReady() bool {
	return m.fullscreenReady(types.KindInterstitial)
}

func (m *Mock) IsRewardedReady() bool {
	return m.fullscreenReady(types.KindRewarded)
}

func (m *Mock) fullscreenReady(kind types.AdKind) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized && m.lifecycles[kind].state == StateReady
}

// ShowBanner spawns the banner presentation. Showing an already-shown
// banner is a no-op returning true.
func (m *Mock) ShowBanner() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return false
	}
	if m.bannerShown {
		return true
	}
	m.bannerShown = true
	m.presenter.ShowBanner(m.display[types.KindBanner])
	showsTotal.WithLabelValues(string(types.KindBanner)).Inc()
	m.log.Info().Str("kind", string(types.KindBanner)).Msg("ad shown")
	return true
}

func (m *Mock) ShowInterstitial() bool {
	return m.showFullscreen(types.KindInterstitial)
}

func (m *Mock) ShowRewarded() bool {
	return m.showFullscreen(types.KindRewarded)
}

func (m *Mock) showFullscreen(kind types.AdKind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return false
	}
	lc := m.lifecycles[kind]
	if lc.state != StateReady {
		return false
	}
	params := m.display[kind]
	lc.state = StateShowing
	lc.show = NewCountdown(params.ShowDuration)
	m.presenter.ShowFullscreen(kind, params)
	showsTotal.WithLabelValues(string(kind)).Inc()
	m.log.Info().Str("kind", string(kind)).
		Dur("show_duration", params.ShowDuration).Bool("auto_close", params.AutoClose).
		Msg("ad shown")
	return true
}

// HideBanner is idempotent: hiding a hidden banner returns true with no
// event.
func (m *Mock) HideBanner() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.bannerShown {
		m.bannerShown = false
		m.presenter.Teardown(types.KindBanner)
		m.queue.Push(types.AdClosed(types.KindBanner))
		closesTotal.WithLabelValues(string(types.KindBanner)).Inc()
		m.log.Info().Str("kind", string(types.KindBanner)).Msg("ad closed")
	}
	return true
}

func (m *Mock) HideInterstitial() bool {
	return m.hideFullscreen(types.KindInterstitial)
}

func (m *Mock) HideRewarded() bool {
	return m.hideFullscreen(types.KindRewarded)
}

func (m *Mock) hideFullscreen(kind types.AdKind) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if lc := m.lifecycles[kind]; lc.state == StateShowing {
		m.closeLocked(kind, lc, true)
	}
	return true
}

// closeLocked performs the close transition exactly once per active
// presentation: teardown (unless the presenter already destroyed it),
// AdClosed, and a reset of the lifecycle including any pending load timer.
func (m *Mock) closeLocked(kind types.AdKind, lc *lifecycle, tellPresenter bool) {
	if tellPresenter {
		m.presenter.Teardown(kind)
	}
	m.queue.Push(types.AdClosed(kind))
	lc.reset()
	closesTotal.WithLabelValues(string(kind)).Inc()
	m.log.Info().Str("kind", string(kind)).Msg("ad closed")
}

// NotifyPresentationClosed records a presenter-initiated teardown (e.g. the
// user hit the close affordance). The presentation layer must call this
// synchronously when it destroys a presentation on its own; the state guard
// makes the close transition fire at most once per presentation.
func (m *Mock) NotifyPresentationClosed(kind types.AdKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if kind == types.KindBanner {
		if m.bannerShown {
			m.bannerShown = false
			m.queue.Push(types.AdClosed(types.KindBanner))
			closesTotal.WithLabelValues(string(types.KindBanner)).Inc()
		}
		return
	}
	if lc, ok := m.lifecycles[kind]; ok && lc.state == StateShowing {
		m.closeLocked(kind, lc, false)
	}
}

// BannerWidth reports the banner width for a placement.
func (m *Mock) BannerWidth(adID string) int { return defaultBannerWidth }

// BannerHeight reports the banner height for a placement.
func (m *Mock) BannerHeight(adID string) int { return defaultBannerHeight }

// Advance moves all armed countdowns forward by dt and applies the
// resulting transitions. It must be called exactly once per consumer tick.
func (m *Mock) Advance(dt time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range []types.AdKind{types.KindInterstitial, types.KindRewarded} {
		lc := m.lifecycles[kind]
		switch lc.state {
		case StateLoading:
			if lc.load != nil && lc.load.Tick(dt) {
				lc.state = StateReady
				m.queue.Push(types.AdLoaded(kind))
				m.log.Info().Str("kind", string(kind)).Msg("ad loaded")
			}
		case StateShowing:
			if lc.show == nil {
				break
			}
			params := m.display[kind]
			if lc.show.Tick(dt) {
				if kind == types.KindRewarded {
					m.queue.Push(types.RewardEarned(m.reward.Amount, m.reward.Kind))
					rewardsTotal.Inc()
					m.log.Info().Int("amount", m.reward.Amount).
						Str("reward_kind", m.reward.Kind).Msg("reward earned")
				}
				if params.AutoClose {
					m.closeLocked(kind, lc, true)
				} else {
					m.presenter.ShowCloseAffordance(kind)
				}
			} else if !lc.show.Finished() && params.ShowTimeLeft {
				m.presenter.UpdateTimeLeft(kind, lc.show.Remaining())
			}
		}
	}
}

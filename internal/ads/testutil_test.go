package ads

import (
	"sync"
	"testing"
	"time"

	"adsd/internal/eventq"
	"adsd/pkg/types"
)

// recordingPresenter captures every presentation request for assertions.
type recordingPresenter struct {
	mu          sync.Mutex
	banners     []types.DisplayParams
	fullscreens []types.AdKind
	affordances []types.AdKind
	teardowns   []types.AdKind
	timeLefts   int
}

func (p *recordingPresenter) ShowBanner(params types.DisplayParams) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banners = append(p.banners, params)
}

func (p *recordingPresenter) ShowFullscreen(kind types.AdKind, params types.DisplayParams) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreens = append(p.fullscreens, kind)
}

func (p *recordingPresenter) ShowCloseAffordance(kind types.AdKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.affordances = append(p.affordances, kind)
}

func (p *recordingPresenter) UpdateTimeLeft(kind types.AdKind, remaining time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeLefts++
}

func (p *recordingPresenter) Teardown(kind types.AdKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.teardowns = append(p.teardowns, kind)
}

// newTestMock builds a Mock with short, deterministic timings.
func newTestMock(t *testing.T, mutate func(*MockConfig)) (*Mock, *eventq.Queue[types.Event], *recordingPresenter) {
	t.Helper()
	q := eventq.New[types.Event]()
	p := &recordingPresenter{}
	cfg := MockConfig{
		LoadDuration: 100 * time.Millisecond,
		Interstitial: types.DisplayParams{
			Background:   "#111",
			ShowTimeLeft: true,
			AutoClose:    true,
			ShowDuration: 200 * time.Millisecond,
		},
		Rewarded: types.DisplayParams{
			Background:   "#222",
			ShowTimeLeft: true,
			AutoClose:    true,
			ShowDuration: 200 * time.Millisecond,
		},
		Reward:    types.RewardSettings{Amount: 5, Kind: "coins"},
		Queue:     q,
		Presenter: p,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewMock(cfg), q, p
}

// drainEvents fails the test when the queue content differs from want.
func drainEvents(t *testing.T, q *eventq.Queue[types.Event], want ...types.Event) {
	t.Helper()
	got := q.Drain()
	if len(got) != len(want) {
		t.Fatalf("expected %d events %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %+v got %+v", i, want[i], got[i])
		}
	}
}

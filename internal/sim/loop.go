// Package sim runs the consumer tick loop: the single logical context where
// ad lifecycle state may be mutated. Each tick it executes submitted
// commands, advances the backend's countdowns by the elapsed delta, and
// dispatches queued lifecycle events to observers.
package sim

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"adsd/internal/ads"
	"adsd/internal/dispatch"
	"adsd/internal/eventq"
	"adsd/pkg/types"
)

// defaultTickInterval approximates a 20 Hz update loop.
const defaultTickInterval = 50 * time.Millisecond

// Backend is the ad backend driven by the loop: the capability surface plus
// the tick-time hooks the mock provides.
type Backend interface {
	ads.Manager
	Advance(dt time.Duration)
	Status() types.StatusResponse
}

// command is one operation submitted from an arbitrary goroutine for
// execution on the consumer tick.
type command struct {
	run  func() bool
	done chan bool
}

// LoopConfig encapsulates all tunables for Loop construction.
type LoopConfig struct {
	// Backend to drive. Required.
	Backend Backend
	// Events is the shared lifecycle event queue. Required.
	Events *eventq.Queue[types.Event]
	// Dispatcher drains Events each tick. Required.
	Dispatcher *dispatch.Dispatcher
	// Tick is the loop interval; defaults to 50ms.
	Tick time.Duration
	// Logger is an optional structured logger.
	Logger *zerolog.Logger
}

// Loop owns the consumer tick. Operations from other goroutines reach the
// backend only through Do; events reach observers only through the
// dispatcher. Step must never run concurrently with itself.
type Loop struct {
	backend Backend
	events  *eventq.Queue[types.Event]
	disp    *dispatch.Dispatcher
	cmds    *eventq.Queue[command]
	tick    time.Duration
	log     zerolog.Logger
	start   time.Time
}

// NewLoop constructs a Loop from LoopConfig, applying defaults.
func NewLoop(cfg LoopConfig) *Loop {
	l := &Loop{
		backend: cfg.Backend,
		events:  cfg.Events,
		disp:    cfg.Dispatcher,
		cmds:    eventq.New[command](),
		tick:    cfg.Tick,
		log:     zerolog.Nop(),
		start:   time.Now(),
	}
	if l.tick <= 0 {
		l.tick = defaultTickInterval
	}
	if cfg.Logger != nil {
		l.log = *cfg.Logger
	}
	return l
}

// Subscribe registers an observer for dispatched events. Call before Run
// starts; not safe concurrently with Step.
func (l *Loop) Subscribe(fn dispatch.Observer) {
	l.disp.Subscribe(fn)
}

// Run ticks the loop until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()
	l.log.Info().Dur("tick", l.tick).Msg("tick loop started")
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.log.Info().Msg("tick loop stopped")
			return ctx.Err()
		case now := <-ticker.C:
			l.Step(now.Sub(last))
			last = now
		}
	}
}

// Step performs one consumer tick: execute submitted commands, advance the
// backend by dt, dispatch queued events.
func (l *Loop) Step(dt time.Duration) {
	for _, cmd := range l.cmds.Drain() {
		cmd.done <- cmd.run()
	}
	l.backend.Advance(dt)
	l.disp.Dispatch()
}

// Do submits one operation for execution on the next tick and waits for its
// boolean outcome. It returns an error only for malformed requests
// (IsBadRequest) or when ctx is canceled before the operation ran
// (IsCanceled); operation failure is reported through OpResponse.OK.
func (l *Loop) Do(ctx context.Context, req types.OpRequest) (types.OpResponse, error) {
	run, err := l.opFunc(req)
	if err != nil {
		return types.OpResponse{}, err
	}
	cmd := command{run: run, done: make(chan bool, 1)}
	l.cmds.Push(cmd)
	select {
	case ok := <-cmd.done:
		return types.OpResponse{OK: ok}, nil
	case <-ctx.Done():
		return types.OpResponse{}, canceledError{}
	}
}

func (l *Loop) opFunc(req types.OpRequest) (func() bool, error) {
	if req.Op != types.OpInitialize {
		if _, ok := types.ParseAdKind(string(req.Kind)); !ok {
			return nil, badRequestError{msg: "unknown ad kind: " + string(req.Kind)}
		}
	}
	switch req.Op {
	case types.OpInitialize:
		return func() bool { return l.backend.Initialize() }, nil
	case types.OpLoad:
		return func() bool { return ads.Load(l.backend, req.Kind, req.AdID) }, nil
	case types.OpShow:
		return func() bool { return ads.Show(l.backend, req.Kind) }, nil
	case types.OpHide:
		return func() bool { return ads.Hide(l.backend, req.Kind) }, nil
	}
	return nil, badRequestError{msg: "unknown op: " + req.Op}
}

// Inject pushes a backend-produced event straight onto the event queue.
// Safe from any goroutine; this is the producer-context path real ad-SDK
// callbacks would use.
func (l *Loop) Inject(ev types.Event) {
	l.events.Push(ev)
}

// Status reports the backend status plus loop-level fields.
func (l *Loop) Status() types.StatusResponse {
	st := l.backend.Status()
	st.PendingEvents = l.events.Len()
	st.UptimeSeconds = int64(time.Since(l.start).Seconds())
	st.ServerTimeUnix = time.Now().Unix()
	return st
}

// Ready reports whether the backend finished initialization.
func (l *Loop) Ready() bool {
	return l.backend.IsInitialized()
}

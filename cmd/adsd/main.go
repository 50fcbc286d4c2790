package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"adsd/internal/ads"
	"adsd/internal/config"
	"adsd/internal/dispatch"
	"adsd/internal/eventq"
	"adsd/internal/httpapi"
	"adsd/internal/sim"
	"adsd/pkg/types"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("ADSD_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml)")
	tickMS := flag.Int("tick-ms", 0, "Consumer tick interval in ms (0=default 50)")
	loadMS := flag.Int("loading-time-ms", 0, "Fabricated ad load time in ms (0=default 1000)")
	logLevel := flag.String("log-level", os.Getenv("ADSD_LOG_LEVEL"), "Log level: debug|info|warn|error")
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	// Flags override file values when set.
	if *addr != defaultAddr || cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if *tickMS > 0 {
		cfg.TickMS = *tickMS
	}
	if *loadMS > 0 {
		cfg.LoadingTimeMS = *loadMS
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		logger = logger.Level(lvl)
	}
	httpapi.SetLogger(logger)

	events := eventq.New[types.Event]()
	presenter := sim.NewLogPresenter(logger.With().Str("component", "presenter").Logger())
	mgrLog := logger.With().Str("component", "ads").Logger()
	backend := ads.NewMock(ads.MockConfig{
		LoadDuration: time.Duration(cfg.LoadingTimeMS) * time.Millisecond,
		Interstitial: displayParams(cfg.Interstitial),
		Rewarded:     displayParams(cfg.Rewarded),
		Reward:       types.RewardSettings{Amount: cfg.Reward.Amount, Kind: cfg.Reward.Kind},
		Queue:        events,
		Presenter:    presenter,
		Logger:       &mgrLog,
	})

	loopLog := logger.With().Str("component", "loop").Logger()
	loop := sim.NewLoop(sim.LoopConfig{
		Backend:    backend,
		Events:     events,
		Dispatcher: dispatch.New(events),
		Tick:       time.Duration(cfg.TickMS) * time.Millisecond,
		Logger:     &loopLog,
	})
	obsLog := logger.With().Str("component", "events").Logger()
	loop.Subscribe(func(ev types.Event) {
		obsLog.Info().Str("type", string(ev.Type)).Str("kind", string(ev.Kind)).
			Bool("success", ev.Success).Str("error", ev.Error).
			Int("amount", ev.Amount).Str("reward_kind", ev.RewardKind).
			Msg("lifecycle event")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	httpapi.SetBaseContext(ctx)
	go func() {
		_ = loop.Run(ctx)
	}()

	mux := httpapi.NewMux(loop)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("adsd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

// displayParams maps file config onto the opaque presentation payload,
// leaving zero values for NewMock's defaults.
func displayParams(ac config.AdConfig) types.DisplayParams {
	return types.DisplayParams{
		Background:   ac.Background,
		Text:         ac.Text,
		Image:        ac.Image,
		ShowTimeLeft: ac.ShowTimeLeft,
		AutoClose:    ac.AutoClose,
		ShowDuration: time.Duration(ac.DurationMS) * time.Millisecond,
	}
}

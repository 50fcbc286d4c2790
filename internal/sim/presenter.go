package sim

import (
	"time"

	"github.com/rs/zerolog"

	"adsd/pkg/types"
)

// LogPresenter is a presentation collaborator that renders nothing and
// reports every spawn/teardown request through structured logs. It stands
// in for a real UI layer in the daemon.
type LogPresenter struct {
	log zerolog.Logger
}

// NewLogPresenter returns a presenter logging through l.
func NewLogPresenter(l zerolog.Logger) *LogPresenter {
	return &LogPresenter{log: l}
}

func (p *LogPresenter) ShowBanner(params types.DisplayParams) {
	p.log.Info().Str("kind", string(types.KindBanner)).
		Str("background", params.Background).Str("text", params.Text).
		Msg("presentation spawned")
}

func (p *LogPresenter) ShowFullscreen(kind types.AdKind, params types.DisplayParams) {
	p.log.Info().Str("kind", string(kind)).
		Str("background", params.Background).Str("text", params.Text).
		Str("image", params.Image).Bool("auto_close", params.AutoClose).
		Dur("show_duration", params.ShowDuration).
		Msg("presentation spawned")
}

func (p *LogPresenter) ShowCloseAffordance(kind types.AdKind) {
	p.log.Info().Str("kind", string(kind)).Msg("close affordance shown")
}

func (p *LogPresenter) UpdateTimeLeft(kind types.AdKind, remaining time.Duration) {
	p.log.Debug().Str("kind", string(kind)).Dur("remaining", remaining).
		Msg("time left")
}

func (p *LogPresenter) Teardown(kind types.AdKind) {
	p.log.Info().Str("kind", string(kind)).Msg("presentation torn down")
}

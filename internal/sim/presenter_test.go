package sim

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"adsd/internal/ads"
	"adsd/pkg/types"
)

var _ ads.Presenter = (*LogPresenter)(nil)

func TestLogPresenterEmitsStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPresenter(zerolog.New(&buf))

	p.ShowFullscreen(types.KindRewarded, types.DisplayParams{
		Background:   "#71717a",
		Text:         "Displaying an ad",
		ShowDuration: 3500 * time.Millisecond,
	})
	p.ShowCloseAffordance(types.KindRewarded)
	p.Teardown(types.KindRewarded)

	out := buf.String()
	for _, want := range []string{"presentation spawned", "close affordance shown", "presentation torn down", `"kind":"rewarded"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

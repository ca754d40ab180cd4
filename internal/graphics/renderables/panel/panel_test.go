package panel

import (
	"fmt"
	"testing"

	"openwater/internal/config"
	"openwater/internal/wave"
	"openwater/internal/world"
)

func restoreConfig(t *testing.T) {
	t.Helper()
	res := config.GetBaseResolution()
	dist := config.GetViewDistance()
	t.Cleanup(func() {
		config.SetBaseResolution(res)
		config.SetViewDistance(dist)
	})
}

// TestViewDistanceForRatio checks the slider mapping reads the budget-derived
// maximum at call time instead of freezing it when the panel is built.
func TestViewDistanceForRatio(t *testing.T) {
	restoreConfig(t)

	if got := viewDistanceForRatio(0); got != 1 {
		t.Errorf("ratio 0 = %d tiles, want 1", got)
	}

	config.SetBaseResolution(config.MinResolution)
	coarse := viewDistanceForRatio(1)
	config.SetBaseResolution(256)
	fine := viewDistanceForRatio(1)

	if fine != config.SafeMaxViewDistance() {
		t.Errorf("ratio 1 = %d tiles, want safe max %d", fine, config.SafeMaxViewDistance())
	}
	if coarse <= fine {
		t.Errorf("coarse tiles should allow a wider range: got %d at res %d vs %d at res 256",
			coarse, config.MinResolution, fine)
	}
}

// TestViewDistanceRowTracksResolution changes the tile resolution after the
// panel is built and checks the row label follows the new safe maximum.
func TestViewDistanceRowTracksResolution(t *testing.T) {
	restoreConfig(t)
	config.SetBaseResolution(64)

	p := NewPanel(nil, nil, nil, wave.NewParameters(), world.NewStreamer(nil))

	var row *sliderRow
	for i := range p.rows {
		if p.rows[i].label == "View distance" {
			row = &p.rows[i]
		}
	}
	if row == nil {
		t.Fatal("view distance row missing")
	}

	config.SetBaseResolution(config.MinResolution)
	want := fmt.Sprintf("%d tiles", config.SafeMaxViewDistance())
	if got := row.format(1); got != want {
		t.Errorf("label at full slider = %q, want %q after resolution change", got, want)
	}
}

// TestAddToggleSeedsFromGetter pins that a toggle row starts in the state its
// backing getter reports.
func TestAddToggleSeedsFromGetter(t *testing.T) {
	p := NewPanel(nil, nil, nil, wave.NewParameters(), world.NewStreamer(nil))

	on := true
	p.AddToggle("Wireframe", func() bool { return on }, func(v bool) { on = v })

	if len(p.toggles) != 1 || !p.toggles[0].toggle.IsOn {
		t.Error("toggle should seed from its getter")
	}
}

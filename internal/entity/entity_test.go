package entity

import (
	"math"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/core"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func testEnv() (*config.GameConfig, *audio.Recorder, *audio.Emitter) {
	cfg := config.Default()
	rec := &audio.Recorder{}
	return &cfg, rec, audio.NewEmitter(rec, nil)
}

func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func pressed(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

func floor() []Platform {
	return []Platform{NewPlatform(0, 550, 800, 50)}
}

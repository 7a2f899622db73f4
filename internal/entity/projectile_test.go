package entity

import (
	"math"
	"testing"
)

func TestLaserCulling(t *testing.T) {
	cfg, _, _ := testEnv()
	tests := []struct {
		name      string
		direction int
		ticks     int
	}{
		// Starts at left 90: right edge drops below -100 on tick 22.
		{"leftward", -1, 22},
		// Left edge passes 800+100 on tick 82.
		{"rightward", 1, 82},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLaser(100, 100, tc.direction, &cfg.Laser)
			for i := 0; i < tc.ticks-1; i++ {
				l.Update(800)
			}
			if !l.Active {
				t.Fatalf("culled before tick %d", tc.ticks)
			}
			l.Update(800)
			if l.Active {
				t.Errorf("expected cull on tick %d, laser at %+v", tc.ticks, l.Rect)
			}
			x := l.Rect.X
			l.Update(800)
			if l.Rect.X != x {
				t.Error("inactive laser should not move")
			}
		})
	}
}

func TestMermeladaCulling(t *testing.T) {
	cfg, _, _ := testEnv()
	tests := []struct {
		name  string
		x, y  float64
		angle float64
		ticks int
	}{
		// Top starts at 590 and passes 700 on tick 23.
		{"falls below cull line", 400, 600, math.Pi / 2, 23},
		// Right edge starts at 60 and drops below -100 on tick 33.
		{"leaves left side", 50, 300, math.Pi, 33},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMermelada(tc.x, tc.y, tc.angle, &cfg.Mermelada)
			for i := 0; i < tc.ticks-1; i++ {
				m.Update(800)
			}
			if !m.Active {
				t.Fatalf("culled before tick %d", tc.ticks)
			}
			m.Update(800)
			if m.Active {
				t.Errorf("expected cull on tick %d, projectile at %+v", tc.ticks, m.Rect)
			}
		})
	}
}

func TestGoldenArepaFloats(t *testing.T) {
	cfg, _, _ := testEnv()
	a := NewGoldenArepa(200, 300, &cfg.Powerup)

	if a.Rect.X != 175 || a.Rect.Y != 275 {
		t.Errorf("arepa at (%v, %v), expected (175, 275)", a.Rect.X, a.Rect.Y)
	}

	for i := 1; i <= 100; i++ {
		a.Update()
		want := 300 + math.Sin(float64(i)*cfg.Powerup.FloatSpeed)*cfg.Powerup.Amplitude
		if !approx(a.Rect.CenterY(), want) {
			t.Fatalf("tick %d: centerY = %v, expected %v", i, a.Rect.CenterY(), want)
		}
		if math.Abs(a.Rect.CenterY()-a.BaseY) > cfg.Powerup.Amplitude+1e-9 {
			t.Fatalf("tick %d: float exceeded amplitude", i)
		}
	}

	if !a.Collect() {
		t.Fatal("first collect should succeed")
	}
	if a.Collect() {
		t.Error("power-up can only be collected once")
	}
}

func TestGoalAnchorsBottomCenter(t *testing.T) {
	g := NewGoal(700, 550, 40, 80)
	if g.Rect.CenterX() != 700 || g.Rect.Bottom() != 550 {
		t.Errorf("goal at cx=%v bottom=%v", g.Rect.CenterX(), g.Rect.Bottom())
	}
}

package entity

import (
	"testing"

	"github.com/vovakirdan/sancho-bros/internal/audio"
)

func TestPolochoTurnsAtPatrolEnd(t *testing.T) {
	cfg, _, em := testEnv()
	ground := []Platform{NewPlatform(0, 550, 2000, 50)}
	e := NewPolocho(500, 510, cfg.Enemy.PatrolDistance, cfg, em)

	if e.PatrolStart != 350 || e.PatrolEnd != 650 {
		t.Fatalf("patrol = [%v, %v], expected [350, 650]", e.PatrolStart, e.PatrolEnd)
	}

	for i := 0; i < 200 && e.Direction == 1; i++ {
		e.Update(ground)
	}
	if e.Direction != -1 {
		t.Fatal("enemy never turned around")
	}
	if e.Rect.Right() != e.PatrolEnd {
		t.Errorf("right = %v, expected snap to %v", e.Rect.Right(), e.PatrolEnd)
	}

	for i := 0; i < 400 && e.Direction == -1; i++ {
		e.Update(ground)
	}
	if e.Rect.Left() != e.PatrolStart {
		t.Errorf("left = %v, expected snap to %v", e.Rect.Left(), e.PatrolStart)
	}
}

func TestPolochoTurnsAtLedge(t *testing.T) {
	cfg, _, em := testEnv()
	ledge := []Platform{NewPlatform(0, 550, 300, 50)}
	e := NewPolocho(200, 510, 500, cfg, em)

	turned := false
	for i := 0; i < 300; i++ {
		e.Update(ledge)
		if e.Direction == -1 {
			turned = true
		}
		if e.Rect.Left() >= 300 || e.Rect.Bottom() != 550 {
			t.Fatalf("tick %d: enemy walked off the ledge: %+v", i, e.Rect)
		}
	}
	if !turned {
		t.Error("enemy should have turned at the ledge")
	}
}

func TestPolochoTurnsAtWall(t *testing.T) {
	cfg, _, em := testEnv()
	wall := NewPlatform(400, 450, 50, 100)
	platforms := []Platform{NewPlatform(0, 550, 800, 50), wall}
	e := NewPolocho(300, 510, 500, cfg, em)

	turned := false
	for i := 0; i < 60; i++ {
		e.Update(platforms)
		if e.Direction == -1 {
			turned = true
		}
		if e.Rect.Intersects(wall.Rect) {
			t.Fatalf("tick %d: enemy overlaps wall: %+v", i, e.Rect)
		}
	}
	if !turned {
		t.Error("enemy should have turned at the wall")
	}
}

func TestSquashIsIdempotent(t *testing.T) {
	cfg, rec, em := testEnv()
	e := NewPolocho(100, 510, 150, cfg, em)
	bottom, cx := e.Rect.Bottom(), e.Rect.CenterX()

	if !e.Squash() {
		t.Fatal("first squash should succeed")
	}
	if e.Squash() {
		t.Error("second squash should be a no-op")
	}
	if rec.Count(audio.SoundStomp) != 1 {
		t.Errorf("stomp sound played %d times", rec.Count(audio.SoundStomp))
	}
	if e.Active() || !e.Squashed() || e.Animation() != AnimSquashed {
		t.Error("squashed enemy should be inactive")
	}

	if e.Rect.W != 60 || e.Rect.H != 10 {
		t.Errorf("squashed size = %vx%v, expected 60x10", e.Rect.W, e.Rect.H)
	}
	if e.Rect.Bottom() != bottom || e.Rect.CenterX() != cx {
		t.Errorf("squash moved the footprint: bottom=%v cx=%v", e.Rect.Bottom(), e.Rect.CenterX())
	}
}

func TestSquashedEnemyIsRemovedAfterDelay(t *testing.T) {
	cfg, _, em := testEnv()
	e := NewPolocho(100, 510, 150, cfg, em)
	e.Squash()
	x := e.Rect.X

	for i := 0; i < cfg.Enemy.SquashDuration-1; i++ {
		e.Update(floor())
	}
	if e.Removed() {
		t.Fatal("removed too early")
	}
	if e.Rect.X != x {
		t.Error("squashed enemy should not move")
	}
	e.Update(floor())
	if !e.Removed() {
		t.Errorf("expected removal after %d ticks", cfg.Enemy.SquashDuration)
	}
}

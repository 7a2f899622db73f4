package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/entity"
)

const minimalYAML = `
metadata:
  name: Test Yard
  level_number: 1
player:
  spawn_x: 100
  spawn_y: 400
platforms:
  - {x: 0, y: 550}
enemies:
  - {type: polocho, spawn_x: 500, spawn_y: 510}
powerups:
  - {type: golden_arepa, x: 300, y: 450}
goal:
  x: 700
  y: 550
`

func testConfig() *config.GameConfig {
	cfg := config.Default()
	return &cfg
}

func mustParse(t *testing.T, doc string) *Definition {
	t.Helper()
	def, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return def
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		code  string
		field string
	}{
		{
			name: "valid",
			doc:  minimalYAML,
		},
		{
			name: "json document",
			doc: `{"metadata": {"name": "J", "level_number": 2},
  "player": {"spawn_x": 10, "spawn_y": 20},
  "platforms": [{"x": 0, "y": 550, "width": 800, "height": 50}],
  "goal": {"x": 700, "y": 550}}`,
		},
		{
			name:  "missing metadata",
			doc:   "player: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0}]\ngoal: {x: 1, y: 1}",
			code:  CodeMissingField,
			field: "metadata",
		},
		{
			name:  "missing name",
			doc:   "metadata: {level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0}]\ngoal: {x: 1, y: 1}",
			code:  CodeMissingField,
			field: "metadata.name",
		},
		{
			name:  "missing spawn",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1}\nplatforms: [{x: 0, y: 0}]\ngoal: {x: 1, y: 1}",
			code:  CodeMissingField,
			field: "player.spawn_y",
		},
		{
			name:  "missing platforms",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\ngoal: {x: 1, y: 1}",
			code:  CodeMissingField,
			field: "platforms",
		},
		{
			name:  "empty platforms",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: []\ngoal: {x: 1, y: 1}",
			code:  CodeEmptyPlatforms,
			field: "platforms",
		},
		{
			name:  "negative platform width",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0, width: -5}]\ngoal: {x: 1, y: 1}",
			code:  CodeInvalidValue,
			field: "platforms[0].width",
		},
		{
			name:  "unknown enemy",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0}]\nenemies: [{type: goomba, spawn_x: 1, spawn_y: 1}]\ngoal: {x: 1, y: 1}",
			code:  CodeUnknownType,
			field: "enemies[0].type",
		},
		{
			name:  "unknown boss",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0}]\nboss: {type: dragon, spawn_x: 1, spawn_y: 1}\ngoal: {x: 1, y: 1}",
			code:  CodeUnknownType,
			field: "boss.type",
		},
		{
			name:  "missing goal",
			doc:   "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0}]",
			code:  CodeMissingField,
			field: "goal",
		},
		{
			name:  "zero level number",
			doc:   "metadata: {name: a, level_number: 0}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: [{x: 0, y: 0}]\ngoal: {x: 1, y: 1}",
			code:  CodeInvalidValue,
			field: "metadata.level_number",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := mustParse(t, tc.doc).Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Code != tc.code || verr.Field != tc.field {
				t.Errorf("got [%s] %s, expected [%s] %s", verr.Code, verr.Field, tc.code, tc.field)
			}
		})
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	if _, err := Parse([]byte("metadata: [unclosed")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestFromDefinitionAppliesDefaults(t *testing.T) {
	cfg := testConfig()
	l, err := FromDefinition(mustParse(t, minimalYAML), cfg, nil)
	if err != nil {
		t.Fatalf("FromDefinition failed: %v", err)
	}

	if l.Name != "Test Yard" || l.Number != 1 {
		t.Errorf("metadata = %q #%d", l.Name, l.Number)
	}
	if l.Width != cfg.Window.Width {
		t.Errorf("width = %v, expected viewport width %v", l.Width, cfg.Window.Width)
	}
	if p := l.Platforms[0].Rect; p.W != 100 || p.H != 20 {
		t.Errorf("platform size = %vx%v, expected 100x20", p.W, p.H)
	}
	e := l.Enemies[0]
	if e.PatrolStart != 350 || e.PatrolEnd != 650 {
		t.Errorf("patrol = [%v, %v], expected [350, 650]", e.PatrolStart, e.PatrolEnd)
	}
	if l.Goal.Rect.W != cfg.Goal.Width || l.Goal.Rect.H != cfg.Goal.Height {
		t.Errorf("goal size = %vx%v", l.Goal.Rect.W, l.Goal.Rect.H)
	}
	if l.Player.Rect.X != 100 || l.Player.Rect.Y != 400 {
		t.Errorf("player at (%v, %v)", l.Player.Rect.X, l.Player.Rect.Y)
	}
	if l.Boss != nil {
		t.Error("no boss expected")
	}
}

func TestFromDefinitionRejectsInvalid(t *testing.T) {
	def := mustParse(t, "metadata: {name: a, level_number: 1}\nplayer: {spawn_x: 1, spawn_y: 1}\nplatforms: []\ngoal: {x: 1, y: 1}")
	if _, err := FromDefinition(def, testConfig(), nil); err == nil {
		t.Error("expected validation error")
	}
}

func TestResetRestoresLoadedState(t *testing.T) {
	cfg := testConfig()
	l, err := FromDefinition(mustParse(t, minimalYAML), cfg, audio.NewEmitter(nil, nil))
	if err != nil {
		t.Fatalf("FromDefinition failed: %v", err)
	}
	start := l.Enemies[0].Rect
	patrolStart, patrolEnd := l.Enemies[0].PatrolStart, l.Enemies[0].PatrolEnd

	for i := 0; i < 120; i++ {
		l.Enemies[0].Update(l.Platforms)
	}
	l.Enemies[0].PatrolEnd = 9999
	l.Powerups[0].Collect()
	l.Player.Rect.X = 600
	l.Lasers = append(l.Lasers, entity.NewLaser(0, 0, 1, &cfg.Laser))

	if err := l.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if len(l.Enemies) != 1 || l.Enemies[0].Rect != start {
		t.Errorf("enemy not restored: %+v", l.Enemies)
	}
	if l.Enemies[0].PatrolStart != patrolStart || l.Enemies[0].PatrolEnd != patrolEnd {
		t.Errorf("patrol = [%v, %v]", l.Enemies[0].PatrolStart, l.Enemies[0].PatrolEnd)
	}
	if len(l.Powerups) != 1 || l.Powerups[0].Collected {
		t.Error("power-up should be back")
	}
	if l.Player.Rect.X != 100 {
		t.Errorf("player x = %v", l.Player.Rect.X)
	}
	if len(l.Lasers) != 0 || len(l.Mermeladas) != 0 {
		t.Error("projectiles should be cleared")
	}
	if l.def.Enemies[0].SpawnX != 500 {
		t.Error("definition must not change")
	}
}

func TestRespawnPlayer(t *testing.T) {
	l, err := FromDefinition(mustParse(t, minimalYAML), testConfig(), nil)
	if err != nil {
		t.Fatalf("FromDefinition failed: %v", err)
	}
	l.Player.Rect.X, l.Player.Rect.Y = 300, 700
	l.Player.VelocityY = 12
	l.Player.Lives = 2

	l.RespawnPlayer()
	if l.Player.Rect.X != 100 || l.Player.Rect.Y != 400 || l.Player.VelocityY != 0 {
		t.Errorf("player at (%v, %v) v=%v", l.Player.Rect.X, l.Player.Rect.Y, l.Player.VelocityY)
	}
	if l.Player.Lives != 2 {
		t.Error("respawn must not touch lives")
	}
}

func TestPruneDropsSpentEntities(t *testing.T) {
	cfg := testConfig()
	l, err := FromDefinition(mustParse(t, minimalYAML), cfg, nil)
	if err != nil {
		t.Fatalf("FromDefinition failed: %v", err)
	}
	l.Enemies[0].Squash()
	l.Prune()
	if len(l.Enemies) != 1 {
		t.Fatal("squashed enemy stays until removed")
	}
	for i := 0; i < cfg.Enemy.SquashDuration; i++ {
		l.Enemies[0].Update(l.Platforms)
	}
	l.Powerups[0].Collect()
	l.Prune()
	if len(l.Enemies) != 0 || len(l.Powerups) != 0 {
		t.Errorf("enemies=%d powerups=%d after prune", len(l.Enemies), len(l.Powerups))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "level_9.yaml"), testConfig(), nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "level_1.yaml", minimalYAML)
	writeFile(t, dir, "level_2.json", `{"metadata": {"name": "Two", "level_number": 2},
  "player": {"spawn_x": 10, "spawn_y": 20},
  "platforms": [{"x": 0, "y": 550}],
  "goal": {"x": 700, "y": 550}}`)
	writeFile(t, dir, "level_4.yml", "metadata: {name: broken}")
	writeFile(t, dir, "notes.txt", "not a level")

	loader := NewLoader(dir)
	if n := loader.Count(); n != 2 {
		t.Errorf("Count() = %d, expected 2", n)
	}

	def, err := loader.Load(2)
	if err != nil {
		t.Fatalf("Load(2) failed: %v", err)
	}
	if def.Name() != "Two" {
		t.Errorf("name = %q", def.Name())
	}

	if _, err := loader.Load(3); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(3) = %v, expected ErrNotFound", err)
	}
	var verr *ValidationError
	if _, err := loader.Load(4); !errors.As(err, &verr) {
		t.Errorf("Load(4) = %v, expected validation error", err)
	}

	path, ok := loader.Path(1)
	if !ok || path != filepath.Join(dir, "level_1.yaml") {
		t.Errorf("Path(1) = %q, %v", path, ok)
	}

	entries, err := loader.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, expected 3", len(entries))
	}
	for i, want := range []int{1, 2, 4} {
		if entries[i].Number != want {
			t.Errorf("entry %d is level %d, expected %d", i, entries[i].Number, want)
		}
	}
	if entries[0].Err != nil || entries[2].Err == nil {
		t.Errorf("errors = %v / %v", entries[0].Err, entries[2].Err)
	}
}

func TestEmbeddedCampaign(t *testing.T) {
	loader := Embedded()
	if loader.Count() != 5 {
		t.Fatalf("embedded campaign has %d levels, expected 5", loader.Count())
	}
	if _, ok := loader.Path(1); ok {
		t.Error("embedded levels have no disk path")
	}

	cfg := testConfig()
	for n := 1; n <= 5; n++ {
		def, err := loader.Load(n)
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		if def.Number() != n {
			t.Errorf("level %d declares number %d", n, def.Number())
		}
		l, err := FromDefinition(def, cfg, nil)
		if err != nil {
			t.Fatalf("level %d: %v", n, err)
		}
		if l.Goal.Rect.Right() > l.Width {
			t.Errorf("level %d: goal outside level", n)
		}
		if (n == 5) != (l.Boss != nil) {
			t.Errorf("level %d: boss presence = %v", n, l.Boss != nil)
		}
	}
}

func TestWatcherReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "notes.txt", "ignored")
	path := writeFile(t, dir, "level_1.yaml", minimalYAML)

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event for %q, expected %q", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event received")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
	for range w.Events {
	}
}

// Package level turns level documents into live entity sets.
//
// A Level keeps the Definition it was built from and never mutates it:
// Reset discards every entity and rebuilds from that definition, so
// enemies return to their loaded spawn points and patrol ranges.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/entity"
)

// Level owns every entity of the level being played.
type Level struct {
	Name       string
	Number     int
	Width      float64
	Height     float64
	Background string
	Music      string
	SpawnX     float64
	SpawnY     float64

	Player     *entity.Player
	Platforms  []entity.Platform
	Enemies    []*entity.Polocho
	Powerups   []*entity.GoldenArepa
	Boss       *entity.CorruptionBoss
	Goal       entity.Goal
	Lasers     []*entity.Laser
	Mermeladas []*entity.Mermelada

	def   *Definition
	cfg   *config.GameConfig
	audio *audio.Emitter
}

// Load reads, validates and builds the level file at path.
func Load(path string, cfg *config.GameConfig, em *audio.Emitter) (*Level, error) {
	def, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromDefinition(def, cfg, em)
}

// ReadFile reads and parses a level document without building it.
func ReadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// FromDefinition validates def and builds a fresh level from it.
func FromDefinition(def *Definition, cfg *config.GameConfig, em *audio.Emitter) (*Level, error) {
	if def == nil {
		return nil, missing("definition")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	l := &Level{
		Name:   def.Name(),
		Number: def.Number(),
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		SpawnX: *def.Player.SpawnX,
		SpawnY: *def.Player.SpawnY,
		def:    def,
		cfg:    cfg,
		audio:  em,
	}
	if def.Metadata.Width != nil {
		l.Width = *def.Metadata.Width
	}
	l.Background = def.Metadata.BackgroundType
	l.Music = def.Metadata.Music

	if err := l.build(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reset discards all entities, including in-flight projectiles, and
// rebuilds them from the stored definition.
func (l *Level) Reset() error {
	return l.build()
}

func (l *Level) build() error {
	def := l.def

	l.Player = entity.NewPlayer(l.SpawnX, l.SpawnY, l.cfg, l.audio)

	l.Platforms = make([]entity.Platform, 0, len(def.Platforms))
	for _, p := range def.Platforms {
		w, h := p.size()
		pl := entity.NewPlatform(p.X, p.Y, w, h)
		pl.Kind = p.Type
		pl.Texture = p.Texture
		l.Platforms = append(l.Platforms, pl)
	}

	l.Enemies = make([]*entity.Polocho, 0, len(def.Enemies))
	for _, e := range def.Enemies {
		build, err := Enemies.Lookup(e.kind())
		if err != nil {
			return fmt.Errorf("level: %w", err)
		}
		l.Enemies = append(l.Enemies, build(e, l.cfg, l.audio))
	}

	l.Powerups = make([]*entity.GoldenArepa, 0, len(def.Powerups))
	for _, p := range def.Powerups {
		build, err := Powerups.Lookup(p.kind())
		if err != nil {
			return fmt.Errorf("level: %w", err)
		}
		l.Powerups = append(l.Powerups, build(p, l.cfg))
	}

	l.Boss = nil
	if def.Boss != nil {
		build, err := Bosses.Lookup(def.Boss.kind())
		if err != nil {
			return fmt.Errorf("level: %w", err)
		}
		l.Boss = build(*def.Boss, l.cfg, l.audio)
	}

	gw, gh := l.cfg.Goal.Width, l.cfg.Goal.Height
	if def.Goal.Width != nil {
		gw = *def.Goal.Width
	}
	if def.Goal.Height != nil {
		gh = *def.Goal.Height
	}
	l.Goal = entity.NewGoal(*def.Goal.X, *def.Goal.Y, gw, gh)

	l.Lasers = nil
	l.Mermeladas = nil
	return nil
}

// RespawnPlayer puts the player back at the spawn point with no vertical motion.
func (l *Level) RespawnPlayer() {
	l.Player.Respawn(l.SpawnX, l.SpawnY)
}

// Prune drops removed enemies, collected power-ups and spent projectiles.
func (l *Level) Prune() {
	enemies := l.Enemies[:0]
	for _, e := range l.Enemies {
		if !e.Removed() {
			enemies = append(enemies, e)
		}
	}
	clear(l.Enemies[len(enemies):])
	l.Enemies = enemies

	powerups := l.Powerups[:0]
	for _, p := range l.Powerups {
		if !p.Collected {
			powerups = append(powerups, p)
		}
	}
	clear(l.Powerups[len(powerups):])
	l.Powerups = powerups

	lasers := l.Lasers[:0]
	for _, s := range l.Lasers {
		if s.Active {
			lasers = append(lasers, s)
		}
	}
	clear(l.Lasers[len(lasers):])
	l.Lasers = lasers

	mermeladas := l.Mermeladas[:0]
	for _, m := range l.Mermeladas {
		if m.Active {
			mermeladas = append(mermeladas, m)
		}
	}
	clear(l.Mermeladas[len(mermeladas):])
	l.Mermeladas = mermeladas
}

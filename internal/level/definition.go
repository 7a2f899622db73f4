package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the immutable level document. Pointer fields distinguish
// "absent" from a zero value so required fields can be checked.
// JSON documents decode through the same YAML tags.
type Definition struct {
	Metadata  *Metadata     `yaml:"metadata"`
	Player    *Spawn        `yaml:"player"`
	Platforms []PlatformDef `yaml:"platforms"`
	Enemies   []EnemyDef    `yaml:"enemies"`
	Powerups  []PowerupDef  `yaml:"powerups"`
	Goal      *GoalDef      `yaml:"goal"`
	Boss      *BossDef      `yaml:"boss,omitempty"`
}

// Metadata names the level. BackgroundType and Music are renderer hints.
type Metadata struct {
	Name           *string  `yaml:"name"`
	LevelNumber    *int     `yaml:"level_number"`
	Width          *float64 `yaml:"width,omitempty"`
	BackgroundType string   `yaml:"background_type,omitempty"`
	Music          string   `yaml:"music,omitempty"`
}

// Spawn is the player start position (top-left corner).
type Spawn struct {
	SpawnX *float64 `yaml:"spawn_x"`
	SpawnY *float64 `yaml:"spawn_y"`
}

// PlatformDef is a static platform. Width and height default to 100x20.
type PlatformDef struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Width   *float64 `yaml:"width,omitempty"`
	Height  *float64 `yaml:"height,omitempty"`
	Type    string   `yaml:"type,omitempty"`
	Texture string   `yaml:"texture,omitempty"`
}

// EnemyDef places a patrolling enemy.
type EnemyDef struct {
	Type           string   `yaml:"type"`
	SpawnX         float64  `yaml:"spawn_x"`
	SpawnY         float64  `yaml:"spawn_y"`
	PatrolDistance *float64 `yaml:"patrol_distance,omitempty"`
}

// PowerupDef places a collectible, centered on (X, Y).
type PowerupDef struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// GoalDef places the level exit by bottom-center.
type GoalDef struct {
	X      *float64 `yaml:"x"`
	Y      *float64 `yaml:"y"`
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

// BossDef places the boss by bottom-left corner.
type BossDef struct {
	Type   string  `yaml:"type"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

const (
	defaultPlatformWidth  = 100
	defaultPlatformHeight = 20

	defaultEnemyType   = "polocho"
	defaultPowerupType = "golden_arepa"
	defaultBossType    = "corruption_boss"
)

// Parse decodes a YAML or JSON level document. It does not validate.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("level: parse: %w", err)
	}
	return &def, nil
}

// Validate checks required fields, value ranges and entity types.
// It returns the first problem found as a *ValidationError.
func (d *Definition) Validate() error {
	if d.Metadata == nil {
		return missing("metadata")
	}
	if d.Metadata.Name == nil {
		return missing("metadata.name")
	}
	if d.Metadata.LevelNumber == nil {
		return missing("metadata.level_number")
	}
	if *d.Metadata.LevelNumber < 1 {
		return invalid("metadata.level_number", "must be at least 1, got %d", *d.Metadata.LevelNumber)
	}
	if d.Metadata.Width != nil && *d.Metadata.Width <= 0 {
		return invalid("metadata.width", "must be positive, got %v", *d.Metadata.Width)
	}

	if d.Player == nil {
		return missing("player")
	}
	if d.Player.SpawnX == nil {
		return missing("player.spawn_x")
	}
	if d.Player.SpawnY == nil {
		return missing("player.spawn_y")
	}

	if d.Platforms == nil {
		return missing("platforms")
	}
	if len(d.Platforms) == 0 {
		return &ValidationError{Code: CodeEmptyPlatforms, Field: "platforms", Message: "level must have at least one platform"}
	}
	for i, p := range d.Platforms {
		if p.Width != nil && *p.Width <= 0 {
			return invalid(fmt.Sprintf("platforms[%d].width", i), "must be positive, got %v", *p.Width)
		}
		if p.Height != nil && *p.Height <= 0 {
			return invalid(fmt.Sprintf("platforms[%d].height", i), "must be positive, got %v", *p.Height)
		}
	}

	for i, e := range d.Enemies {
		field := fmt.Sprintf("enemies[%d]", i)
		if !Enemies.Exists(e.kind()) {
			return unknownType(field+".type", e.kind(), Enemies.List())
		}
		if e.PatrolDistance != nil && *e.PatrolDistance < 0 {
			return invalid(field+".patrol_distance", "must not be negative, got %v", *e.PatrolDistance)
		}
	}
	for i, p := range d.Powerups {
		if !Powerups.Exists(p.kind()) {
			return unknownType(fmt.Sprintf("powerups[%d].type", i), p.kind(), Powerups.List())
		}
	}

	if d.Goal == nil {
		return missing("goal")
	}
	if d.Goal.X == nil {
		return missing("goal.x")
	}
	if d.Goal.Y == nil {
		return missing("goal.y")
	}
	if d.Goal.Width != nil && *d.Goal.Width <= 0 {
		return invalid("goal.width", "must be positive, got %v", *d.Goal.Width)
	}
	if d.Goal.Height != nil && *d.Goal.Height <= 0 {
		return invalid("goal.height", "must be positive, got %v", *d.Goal.Height)
	}

	if d.Boss != nil && !Bosses.Exists(d.Boss.kind()) {
		return unknownType("boss.type", d.Boss.kind(), Bosses.List())
	}
	return nil
}

// Name returns the level name, or "" if unset.
func (d *Definition) Name() string {
	if d.Metadata == nil || d.Metadata.Name == nil {
		return ""
	}
	return *d.Metadata.Name
}

// Number returns the level number, or 0 if unset.
func (d *Definition) Number() int {
	if d.Metadata == nil || d.Metadata.LevelNumber == nil {
		return 0
	}
	return *d.Metadata.LevelNumber
}

func (e EnemyDef) kind() string {
	if e.Type == "" {
		return defaultEnemyType
	}
	return e.Type
}

func (p PowerupDef) kind() string {
	if p.Type == "" {
		return defaultPowerupType
	}
	return p.Type
}

func (b BossDef) kind() string {
	if b.Type == "" {
		return defaultBossType
	}
	return b.Type
}

func (p PlatformDef) size() (w, h float64) {
	w, h = defaultPlatformWidth, defaultPlatformHeight
	if p.Width != nil {
		w = *p.Width
	}
	if p.Height != nil {
		h = *p.Height
	}
	return w, h
}

func unknownType(field, name string, known []string) *ValidationError {
	return &ValidationError{
		Code:    CodeUnknownType,
		Field:   field,
		Message: fmt.Sprintf("unknown type %q (known: %v)", name, known),
	}
}

package session

import (
	"github.com/vovakirdan/sancho-bros/internal/level"
)

// Levels supplies level definitions by number, starting at 1.
type Levels interface {
	Load(n int) (*level.Definition, error)
	Count() int
}

// Store is the persistence collaborator. Every call is best effort:
// failures are logged and never change gameplay.
type Store interface {
	RecordLevelComplete(levelNumber, score int) error
	HighestLevelCompleted() (int, error)
	HighScore() (int, error)
	SaveRun(score, levelReached int, outcome string) error
	LoadSettings() (music, sfx float64, err error)
	SaveSettings(music, sfx float64) error
}

// Run outcomes passed to Store.SaveRun.
const (
	OutcomeGameOver = "game_over"
	OutcomeVictory  = "victory"
	OutcomeAbandon  = "abandoned"
)

// DefaultVolume is used when no settings have been saved.
const DefaultVolume = 0.7

type nopStore struct{}

func (nopStore) RecordLevelComplete(int, int) error  { return nil }
func (nopStore) HighestLevelCompleted() (int, error) { return 0, nil }
func (nopStore) HighScore() (int, error)             { return 0, nil }
func (nopStore) SaveRun(int, int, string) error      { return nil }
func (nopStore) SaveSettings(float64, float64) error { return nil }
func (nopStore) LoadSettings() (float64, float64, error) {
	return DefaultVolume, DefaultVolume, nil
}

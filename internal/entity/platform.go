package entity

import "github.com/vovakirdan/sancho-bros/internal/core"

// Platform is a static collidable surface.
// Kind and Texture are passed through to the renderer untouched.
type Platform struct {
	Rect    core.Rect
	Kind    string
	Texture string
}

// NewPlatform creates a platform from its top-left corner and size.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{Rect: core.NewRect(x, y, w, h)}
}

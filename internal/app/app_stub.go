//go:build !ebiten

package app

import "hexflake/internal/core"

// Game is a no-op placeholder for headless builds.
type Game struct{}

// New returns nil in the headless build.
func New(core.Sim, float64, int, int64, int) *Game { return nil }

package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters and colors for rendering
const (
	PlayerChar   = '@'
	ObstacleChar = '|'

	PlayerFg   = core.ColorYellow
	PlayerBg   = core.ColorBlack
	ObstacleFg = core.ColorRed
	ObstacleBg = core.ColorBlack
	SkyBg      = core.ColorNavy
)

// Render draws the current mode to the screen.
func (g *Game) Render(dst *core.Screen) {
	switch g.mode {
	case core.ModeMenu:
		g.renderMenu(dst)
	case core.ModePlaying:
		g.renderPlaying(dst)
	case core.ModeEnd:
		g.renderEnd(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, "Welcome to Flappy Dragon")
	dst.DrawTextCentered(8, "(P) Play Game")
	dst.DrawTextCentered(9, "(Q) Quit Game")
}

func (g *Game) renderPlaying(dst *core.Screen) {
	dst.ClearBg(SkyBg)

	// The player always sits in the first column; the world scrolls past it
	dst.SetCell(0, g.player.Y, PlayerChar, PlayerFg, PlayerBg)
	g.obstacles.Render(dst, g.player.X)

	dst.DrawText(0, 0, "Press SPACE to flap, LEFT/RIGHT to dash.")
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", g.score))
}

func (g *Game) renderEnd(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(5, "You are dead!")
	dst.DrawTextCentered(6, fmt.Sprintf("You earned %d points", g.score))
	dst.DrawTextCentered(8, "(P) Play Again")
	dst.DrawTextCentered(9, "(Q) Quit Game")
}

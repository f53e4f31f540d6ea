package bricks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar    = '═'
	BallChar      = '●'
	TrailOldChar  = '·'
	TrailNewChar  = '•'
	BrickChar     = '█'
	SeparatorChar = '─'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// BrickColor returns the color class for a brick with the given hits left.
func BrickColor(hits int) core.Color {
	switch {
	case hits >= 3:
		return core.ColorRed
	case hits == 2:
		return core.ColorOrange
	default:
		return core.ColorBlue
	}
}

// BannerColor maps the banner alpha hint to a brightness step.
func BannerColor(alpha float64) core.Color {
	switch {
	case alpha >= 0.4:
		return core.ColorBrightWhite
	case alpha >= 0.2:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

// viewport scales arena coordinates onto the screen below the HUD.
type viewport struct {
	arena Arena
	cols  int
	rows  int
}

func newViewport(a Arena, dst *core.Screen) viewport {
	return viewport{arena: a, cols: dst.Width(), rows: max(dst.Height()-hudRows, 0)}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.arena.Width))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor(y*float64(v.rows)/v.arena.Height))
}

// rect maps an arena rectangle to cells, always at least one cell in size.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the last snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.last, g.Title())
}

// RenderSnapshot draws a snapshot: HUD, bricks, trail, ball, paddle and
// any phase overlay.
func RenderSnapshot(dst *core.Screen, snap Snapshot, title string) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows || snap.Arena.Width <= 0 || snap.Arena.Height <= 0 {
		return
	}
	v := newViewport(snap.Arena, dst)

	renderHUD(dst, snap, title)

	for _, b := range snap.Bricks {
		dst.DrawRect(v.rect(b.Rect), BrickChar, BrickColor(b.HitsRemaining))
	}

	renderTrail(dst, v, snap.Trail)

	dst.SetColored(v.col(snap.Ball.X), v.row(snap.Ball.Y), BallChar, core.ColorBrightWhite)

	paddle := v.rect(snap.Paddle)
	dst.DrawHLine(paddle.X, dst.Height()-1, paddle.W, PaddleChar, core.ColorCyan)

	renderOverlay(dst, snap)
}

func renderHUD(dst *core.Screen, snap Snapshot, title string) {
	dst.DrawHLine(0, 0, dst.Width(), SeparatorChar, core.ColorGray)

	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColored(1, 0, score, core.ColorYellow)

	dst.DrawTextCentered(0, " "+title+" ", core.ColorWhite)

	right := fmt.Sprintf(" Level: %d  Lives: %d ", snap.Level, snap.Lives)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGreen)
}

// renderTrail fades the trail: the older half dim, the newer half brighter.
// The newest point sits under the ball and is skipped.
func renderTrail(dst *core.Screen, v viewport, trail []core.Vec) {
	n := len(trail)
	for i, p := range trail[:max(n-1, 0)] {
		glyph, color := TrailOldChar, core.ColorGray
		if i >= n/2 {
			glyph, color = TrailNewChar, core.ColorBrightBlue
		}
		dst.SetColored(v.col(p.X), v.row(p.Y), glyph, color)
	}
}

func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.Phase == PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  |  Esc menu", snap.Score), core.ColorRed)
	case snap.LevelCleared != nil:
		drawCenteredBox(dst, "LEVEL CLEARED",
			fmt.Sprintf("Level %d next", snap.Level+1), BannerColor(snap.LevelCleared.Alpha))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}

package magicset

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/magicset/internal/core"
	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
)

const (
	cellWidth    = 3 // Bracket, glyph, bracket
	hudHeight    = 3 // Title, counters, verdict
	footerHeight = 2 // Blank line, controls
)

// boardSize returns the on-screen size of a w×h board including its frame.
func boardSize(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2
}

// tileColor maps tile colors to screen colors.
func tileColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorBlue:
		return core.ColorBrightBlue
	case engine.ColorRed:
		return core.ColorBrightRed
	case engine.ColorYellow:
		return core.ColorBrightYellow
	default:
		return core.ColorWhite
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.session.Bounds()
	boardW, boardH := boardSize(w, h)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + (g.screenH-hudHeight-footerHeight-boardH)/2

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextCenteredColored(boardY+boardH+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderError shows why the board could not be built.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredColored(y, "Cannot build board", core.ColorBrightRed)
	if g.err != nil {
		dst.DrawTextCentered(y+1, g.err.Error())
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, counters and the last verdict.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorCyan)

	stats := g.session.Stats()
	left := fmt.Sprintf("Sets: %d  Misses: %d", stats.Matches, stats.Misses)
	right := fmt.Sprintf("Tiles: %d", g.session.TileCount())
	dst.DrawText(boardX, 1, left)
	rightX := boardX + boardW - utf8.RuneCountInString(right)
	if rightX < boardX+utf8.RuneCountInString(left)+1 {
		rightX = boardX + utf8.RuneCountInString(left) + 1
	}
	dst.DrawText(rightX, 1, right)

	switch {
	case g.verdictTicks > 0 && g.verdict != nil && g.verdict.Match():
		dst.DrawTextCenteredColored(2, "Set!", core.ColorGreen)
	case g.verdictTicks > 0 && g.verdict != nil:
		dst.DrawTextCenteredColored(2, verdictHint(*g.verdict), core.ColorRed)
	case g.session.Phase() == engine.PhaseSelecting:
		marked := fmt.Sprintf("Marked %d/%d", len(g.session.Marks()), g.session.Arity())
		dst.DrawTextCenteredColored(2, marked, core.ColorBrightYellow)
	}
}

// verdictHint explains a failed check.
func verdictHint(v engine.Verdict) string {
	switch {
	case !v.ColorMatch && !v.ShapeMatch:
		return "Not a set: colors and shapes"
	case !v.ColorMatch:
		return "Not a set: colors"
	default:
		return "Not a set: shapes"
	}
}

// renderBoard draws the frame, the tiles, the marks and the cursor.
// Row 0 of the board is drawn at the bottom.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	w, h := g.session.Bounds()
	boardW, boardH := boardSize(w, h)
	dst.DrawBoxColored(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	cursor := g.session.Cursor()
	for y := 0; y < h; y++ {
		sy := boardY + 1 + (h - 1 - y)
		for x := 0; x < w; x++ {
			sx := boardX + 1 + x*cellWidth
			pos := engine.C(x, y)

			glyph, color := '·', core.ColorDim
			if tile, ok := g.session.TileAt(pos); ok {
				glyph, color = tile.Attrs.Shape.Glyph(), tileColor(tile.Attrs.Color)
			} else if g.sparkAt(pos) {
				glyph, color = '✦', core.ColorWhite
			}
			dst.SetColored(sx+1, sy, glyph, color)

			marked := g.session.IsMarked(pos)
			switch {
			case pos == cursor && marked:
				dst.SetColored(sx, sy, '«', core.ColorBrightWhite)
				dst.SetColored(sx+2, sy, '»', core.ColorBrightWhite)
			case pos == cursor:
				dst.SetColored(sx, sy, '<', core.ColorBrightWhite)
				dst.SetColored(sx+2, sy, '>', core.ColorBrightWhite)
			case marked:
				dst.SetColored(sx, sy, '[', core.ColorBrightYellow)
				dst.SetColored(sx+2, sy, ']', core.ColorBrightYellow)
			}
		}
	}
}

func (g *Game) sparkAt(pos engine.Coord) bool {
	for _, s := range g.sparks {
		if s.pos == pos {
			return true
		}
	}
	return false
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	stats := g.session.Stats()
	switch g.outcome {
	case OutcomeCleared:
		sets := fmt.Sprintf("%d sets, %d misses", stats.Matches, stats.Misses)
		g.drawOverlay(dst, centerX, centerY, "BOARD CLEARED!", sets, "Press R to restart")
	case OutcomeStuck:
		left := fmt.Sprintf("%d tiles left", g.session.TileCount())
		g.drawOverlay(dst, centerX, centerY, "NO SETS LEFT", left, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// requiredScreen returns the minimum screen size for an n×n board:
// board, HUD above it and a line of margin below.
func requiredScreen(n int) (w, h int) {
	return n*cellWidth + 1 + 4, hudHeight + 1 + n*cellHeight + 1 + 1
}

// tileColor maps a tile value to a color that gets heavier with magnitude.
func tileColor(v int) core.Color {
	switch {
	case v <= 2:
		return core.ColorWhite
	case v <= 4:
		return core.ColorBrightWhite
	case v <= 8:
		return core.ColorYellow
	case v <= 16:
		return core.ColorOrange
	case v <= 32:
		return core.ColorBrightRed
	case v <= 64:
		return core.ColorRed
	case v <= 128:
		return core.ColorBrightYellow
	case v <= 256:
		return core.ColorBrightGreen
	case v <= 512:
		return core.ColorGreen
	case v <= 1024:
		return core.ColorBrightCyan
	case v <= WinTile:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	n := g.session.Size()
	boardW := n*cellWidth + 1
	boardH := n*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	renderBoard(dst, g.session.board, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))

	controls := g.Controls()
	dst.DrawTextColor(core.Max(0, (g.screenW-len(controls))/2), boardY+boardH, controls, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := requiredScreen(g.size)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, resize terminal", w, h))
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.session.Score()))

	best := fmt.Sprintf("Best: %d", g.session.Best())
	dst.DrawText(core.Max(boardX, boardX+boardW-len(best)), 1, best)

	size := fmt.Sprintf("%dx%d", g.size, g.size)
	dst.DrawTextColor(boardX+(boardW-len(size))/2, 2, size, core.ColorGray)
}

// renderBoard draws the grid lines and the tiles.
func renderBoard(dst *core.Screen, board Board, boardX, boardY int) {
	n := board.Size()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < n {
				dst.DrawHLineColor(px+1, py, cellWidth-1, '─', core.ColorGray)
			}
			if y < n {
				dst.DrawVLineColor(px, py+1, cellHeight-1, '│', core.ColorGray)
			}
		}
	}

	for r := range n {
		for c := range n {
			val := board[r][c]
			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := core.Max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws the pause box or the end-of-round notice.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if g.notice != nil {
		drawOverlay(dst, board,
			g.notice.Message(),
			fmt.Sprintf("Score: %d  Best: %d", g.notice.Score, g.notice.Best),
			"Enter: play again",
		)
	}
}

// drawOverlay draws a centered text box over the board.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | +/-: Size | P: Pause | Q: Quit"
}

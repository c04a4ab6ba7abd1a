package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/vmath"
)

// RgbLetterbox fills cells outside the field
var RgbLetterbox = RGB{8, 8, 12}

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	view   Viewport
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		buf:    NewRenderBuffer(w, h),
		width:  w,
		height: h,
	}
}

// Resize updates the renderer after a terminal resize event
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.buf.Resize(width, height)
	r.screen.Sync()
}

// Viewport returns the mapping used by the last frame
func (r *TerminalRenderer) Viewport() Viewport {
	return r.view
}

// RenderFrame composites and shows one frame
func (r *TerminalRenderer) RenderFrame(s *engine.Snapshot) {
	r.buf.Clear()
	r.view = NewViewport(s.Field, r.width, r.height)
	r.drawLetterbox()

	if s.Phase == engine.PhaseRoundOver {
		r.drawScoreLine(s.Scores, s.Countdown)
	} else {
		r.drawCollectible(s.Collectible)
		r.drawHazards(s.Hazards)
		for i := range s.Players {
			r.drawTrail(&s.Players[i])
		}
		for i := range s.Players {
			r.drawHead(&s.Players[i])
		}
		if s.ShowBanner {
			r.drawScoreLine(s.Scores, 0)
		}
	}

	if s.Paused {
		r.drawPaused()
	}

	r.buf.Flush(r.screen)
	r.screen.Show()
}

func (r *TerminalRenderer) drawLetterbox() {
	v := r.view
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if x < v.OffsetX || x >= v.OffsetX+v.Cols || y < v.OffsetY || y >= v.OffsetY+v.Rows {
				r.buf.SetBg(x, y, RgbLetterbox)
			}
		}
	}
}

// fillSquare paints every cell whose center lies in the square, or at least the cell under center
func (r *TerminalRenderer) fillSquare(center vmath.Vec2, side float64, bg RGB) {
	half := side / 2
	lo := vmath.Vec2{X: center.X - half, Y: center.Y - half}
	hi := vmath.Vec2{X: center.X + half, Y: center.Y + half}
	x0, y0, x1, y1 := r.view.Span(lo, hi)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.SquareContains(center, side, r.view.CellCenter(x, y)) {
				r.buf.SetBg(x, y, bg)
			}
		}
	}
	cx, cy := r.view.ToCell(center)
	r.buf.SetBg(cx, cy, bg)
}

// fillCircle paints every cell whose center lies in the circle, or at least the cell under center
func (r *TerminalRenderer) fillCircle(center vmath.Vec2, radius float64, bg RGB) {
	lo := vmath.Vec2{X: center.X - radius, Y: center.Y - radius}
	hi := vmath.Vec2{X: center.X + radius, Y: center.Y + radius}
	x0, y0, x1, y1 := r.view.Span(lo, hi)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vmath.CircleContains(center, radius, r.view.CellCenter(x, y)) {
				r.buf.SetBg(x, y, bg)
			}
		}
	}
	cx, cy := r.view.ToCell(center)
	r.buf.SetBg(cx, cy, bg)
}

func (r *TerminalRenderer) drawCollectible(c engine.Collectible) {
	r.fillSquare(c.Position, c.OuterSize, RgbOuterMarker)
	r.fillCircle(c.Position, c.InnerRadius, RgbInnerMarker)
	r.fillSquare(c.Position, c.PickupSize, RgbPickup)
}

func (r *TerminalRenderer) drawHazards(hazards []engine.HazardView) {
	for _, h := range hazards {
		r.fillCircle(h.Position, h.Radius, RgbHazard)
	}
}

func (r *TerminalRenderer) drawTrail(p *engine.PlayerView) {
	c := trailColor(p.Color)
	for _, pt := range p.Trail {
		x, y := r.view.ToCell(pt)
		r.buf.SetBg(x, y, c)
	}
}

func (r *TerminalRenderer) drawHead(p *engine.PlayerView) {
	x, y := r.view.ToCell(p.Position)
	if p.Alive {
		r.buf.SetWithBg(x, y, ' ', RgbText, playerColor(p.Color))
		return
	}
	r.buf.SetWithBg(x, y, 'x', RgbText, RgbDead)
}

// drawScoreLine centers "s1-s2" in the field, with the countdown below when positive
func (r *TerminalRenderer) drawScoreLine(scores [parameter.PlayerCount]int, countdown int) {
	v := r.view
	line := fmt.Sprintf("%d-%d", scores[0], scores[1])
	midY := v.OffsetY + v.Rows/2
	r.buf.Text(v.OffsetX+(v.Cols-len(line))/2, midY-1, line, RgbText)
	if countdown > 0 {
		cd := fmt.Sprintf("%d", countdown)
		r.buf.Text(v.OffsetX+(v.Cols-len(cd))/2, midY+1, cd, RgbText)
	}
}

func (r *TerminalRenderer) drawPaused() {
	const label = "PAUSED"
	v := r.view
	r.buf.Text(v.OffsetX+(v.Cols-len(label))/2, v.OffsetY, label, RgbText)
}

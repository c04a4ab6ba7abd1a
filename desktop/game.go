// Package desktop is the windowed frontend: ebiten drives the frame loop, keyboard and gamepad triggers steer
package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/lines/engine"
	"github.com/lixenwraith/lines/parameter"
	"github.com/lixenwraith/lines/session"
)

const (
	glyphWidth  = 7  // basicfont.Face7x13 advance
	glyphHeight = 13 // basicfont.Face7x13 line height
	bannerScale = 6.0
	bannerGap   = 10.0
)

var (
	colorBackground  = color.RGBA{R: 26, G: 27, B: 38, A: 255}
	colorOuterMarker = color.RGBA{R: 52, G: 54, B: 74, A: 255}
	colorInnerMarker = color.RGBA{R: 16, G: 16, B: 22, A: 255}
	colorPickup      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorHazard      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Game implements ebiten.Game over a session
type Game struct {
	session    *session.Session
	pads       *padSet
	fullscreen bool
	quit       bool
	banner     *ebiten.Image
}

// New creates the windowed game
func New(s *session.Session, fullscreen bool) *Game {
	return &Game{
		session:    s,
		pads:       newPadSet(),
		fullscreen: fullscreen,
	}
}

// Update polls input and advances the round
func (g *Game) Update() error {
	g.handleSystemKeys()
	if g.quit {
		return ebiten.Termination
	}
	g.session.Tick(g.pollSteering())
	return nil
}

func (g *Game) handleSystemKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
	}
}

// pollSteering merges keyboard and the first two gamepads into per-player steering
func (g *Game) pollSteering() [parameter.PlayerCount]engine.Steer {
	var out [parameter.PlayerCount]engine.Steer
	out[0] = keySteer(ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyD))
	out[1] = keySteer(ebiten.IsKeyPressed(ebiten.KeyArrowLeft), ebiten.IsKeyPressed(ebiten.KeyArrowRight))

	g.pads.refresh()
	for i, pad := range g.pads.triggers() {
		out[i] = mergeSteer(out[i], pad)
	}
	return out
}

// Draw renders the latest snapshot in field coordinates
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session.Snapshot()
	screen.Fill(colorBackground)

	if s.Paused {
		defer g.drawBannerText(screen, "PAUSED", s.Field.Width/2, bannerGap)
	}

	if s.Phase == engine.PhaseRoundOver {
		g.drawScoreLine(screen, s, s.Countdown)
		return
	}

	c := s.Collectible
	drawSquare(screen, float32(c.Position.X), float32(c.Position.Y), float32(c.OuterSize), colorOuterMarker)
	vector.DrawFilledCircle(screen, float32(c.Position.X), float32(c.Position.Y), float32(c.InnerRadius), colorInnerMarker, true)
	drawSquare(screen, float32(c.Position.X), float32(c.Position.Y), float32(c.PickupSize), colorPickup)

	for _, h := range s.Hazards {
		vector.DrawFilledCircle(screen, float32(h.Position.X), float32(h.Position.Y), float32(h.Radius), colorHazard, true)
	}

	for i := range s.Players {
		p := &s.Players[i]
		clr := playerRGBA(p.Color)
		for _, pt := range p.Trail {
			drawSquare(screen, float32(pt.X), float32(pt.Y), float32(s.TrailSize), clr)
		}
	}
	for i := range s.Players {
		p := &s.Players[i]
		drawSquare(screen, float32(p.Position.X), float32(p.Position.Y), float32(s.PlayerSize), playerRGBA(p.Color))
	}

	if s.ShowBanner {
		g.drawScoreLine(screen, s, 0)
	}
}

// drawScoreLine renders "s1-s2" and an optional countdown, scaled up from the bitmap font
func (g *Game) drawScoreLine(screen *ebiten.Image, s *engine.Snapshot, countdown int) {
	cx := s.Field.Width / 2
	cy := s.Field.Height / 2
	g.drawBannerText(screen, fmt.Sprintf("%d-%d", s.Scores[0], s.Scores[1]), cx, cy-glyphHeight*bannerScale-bannerGap)
	if countdown > 0 {
		g.drawBannerText(screen, fmt.Sprintf("%d", countdown), cx, cy+bannerGap)
	}
}

func (g *Game) drawBannerText(screen *ebiten.Image, msg string, cx, top float64) {
	w := len(msg) * glyphWidth
	if g.banner == nil || g.banner.Bounds().Dx() < w {
		g.banner = ebiten.NewImage(max(w, 8*glyphWidth), glyphHeight+3)
	}
	g.banner.Clear()
	text.Draw(g.banner, msg, basicfont.Face7x13, 0, glyphHeight, color.White)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(cx-float64(w)*bannerScale/2, top)
	screen.DrawImage(g.banner, op)
}

// Layout keeps the logical screen equal to the field; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.session.Snapshot().Field
	return int(f.Width), int(f.Height)
}

// drawSquare fills a square of side size centered on x, y
func drawSquare(dst *ebiten.Image, x, y, size float32, clr color.Color) {
	vector.DrawFilledRect(dst, x-size/2, y-size/2, size, size, clr, false)
}

func playerRGBA(c engine.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

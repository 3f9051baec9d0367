package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/brawler/common"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/match"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	healthBarWidth  = 200
	healthBarHeight = 16
	hudMargin       = 20

	// flashPeriod is how long a hit fighter stays in each flash phase.
	flashPeriod = 100 * time.Millisecond
)

// renderer draws a match snapshot. It never touches the match itself.
type renderer struct {
	face  text.Face
	small text.Face
	debug bool
}

func newRenderer(debug bool) *renderer {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("render: load font: %v", err)
	}
	return &renderer{
		face:  &text.GoTextFace{Source: src, Size: 20},
		small: &text.GoTextFace{Source: src, Size: 14},
		debug: debug,
	}
}

func (r *renderer) Draw(screen *ebiten.Image, s match.Snapshot) {
	screen.Fill(colornames.Midnightblue)

	floorY := s.Arena.Height - s.Arena.FloorHeight
	vector.DrawFilledRect(screen, 0, float32(floorY), float32(s.Arena.Width), float32(s.Arena.FloorHeight), colornames.Saddlebrown, false)

	for _, p := range s.Platforms {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), colornames.Peru, false)
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1, colornames.Sienna, false)
	}

	flash := (s.Elapsed/flashPeriod)%2 == 0
	for _, a := range s.Actors {
		r.drawActor(screen, a, a.Hit && flash)
	}

	r.drawHUD(screen, s)

	if r.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  match: %s", ebiten.ActualTPS(), s.ID), hudMargin, int(s.Arena.Height)-hudMargin)
	}
}

func (r *renderer) drawActor(screen *ebiten.Image, a match.ActorView, flash bool) {
	body := color.Color(a.Color)
	if flash {
		body = colornames.White
	}
	vector.DrawFilledRect(screen, float32(a.X), float32(a.Y), float32(a.Width), float32(a.Height), body, false)

	// Eye marks the facing side.
	eyeX := a.X + a.Width - 14
	if a.FacingLeft {
		eyeX = a.X + 6
	}
	vector.DrawFilledRect(screen, float32(eyeX), float32(a.Y+14), 8, 8, colornames.Black, false)

	if a.Anim == component.AnimAttack {
		vector.DrawFilledRect(screen, float32(a.HitBox.X), float32(a.HitBox.Y+a.HitBox.Height/2-3), float32(a.HitBox.Width), 6, colornames.Orangered, false)
	}

	if r.debug {
		drawBox(screen, a.HurtBox, colornames.Lime)
		if a.Attacking {
			drawBox(screen, a.HitBox, colornames.Red)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", a.Anim, a.Frame), int(a.X), int(a.Y)-16)
	}
}

func drawBox(screen *ebiten.Image, b common.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, c, false)
}

func (r *renderer) drawHUD(screen *ebiten.Image, s match.Snapshot) {
	for _, a := range s.Actors {
		x := float64(hudMargin)
		if a.Side == component.SideRight {
			x = s.Arena.Width - healthBarWidth - hudMargin
		}
		y := float64(hudMargin)

		fill := 0.0
		if a.MaxHealth > 0 {
			fill = float64(a.Health) / float64(a.MaxHealth)
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), healthBarWidth, healthBarHeight, colornames.Darkred, false)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(healthBarWidth*fill), healthBarHeight, a.Color, false)
		vector.StrokeRect(screen, float32(x), float32(y), healthBarWidth, healthBarHeight, 2, colornames.White, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+healthBarHeight+4)
		op.ColorScale.ScaleWithColor(colornames.White)
		text.Draw(screen, fmt.Sprintf("%s  %d/%d", a.Name, a.Health, a.MaxHealth), r.small, op)
	}

	clock := match.FormatElapsed(s.Elapsed)
	w, _ := text.Measure(clock, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.Arena.Width/2-w/2, hudMargin)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, clock, r.face, op)
}

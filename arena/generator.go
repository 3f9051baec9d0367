// Package arena builds randomized platform layouts for a match.
package arena

import (
	"math"

	"github.com/milk9111/brawler/ecs/component"
)

// Source is the random stream the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Generator places platforms for an arena of a given size.
type Generator struct {
	layout Layout
	rng    Source
}

func NewGenerator(layout Layout, rng Source) *Generator {
	return &Generator{layout: layout.withDefaults(), rng: rng}
}

// Layout returns the effective layout after defaults.
func (g *Generator) Layout() Layout {
	return g.layout
}

// Generate returns a fresh platform set. The first platforms are the
// primary pass in index order, followed by extras and top-ups; physics
// resolves overlaps in this order.
func (g *Generator) Generate(width, height float64) []component.Platform {
	l := g.layout
	out := make([]component.Platform, 0, l.PrimaryCount.Max+l.ExtraCount.Max)

	count := g.intBetween(l.PrimaryCount)
	spacing := 0.0
	if count > 1 {
		spacing = l.MaxJumpHeight / float64(count-1)
	}
	third := width / 3

	for i := 0; i < count; i++ {
		baseY := height - l.Baseline - float64(i)*spacing
		w := g.between(l.PrimaryWidth.Min, l.PrimaryWidth.Max)

		// section 0: left, 1: middle, 2: right
		lo := float64(i%3)*third + l.Margin
		hi := float64(i%3+1)*third - w - l.Margin
		x := g.between(lo, hi)
		y := baseY + g.between(-l.Jitter, l.Jitter)

		if g.crowded(out, x, y, w) {
			continue
		}
		out = append(out, g.platform(x, y, w))
	}

	extras := g.intBetween(l.ExtraCount)
	for i := 0; i < extras; i++ {
		x, y, w := g.loose(width, height, l.ExtraWidth)
		if g.crowded(out, x, y, w) {
			continue
		}
		out = append(out, g.platform(x, y, w))
	}

	for attempts := 0; len(out) < l.MinTotal; attempts++ {
		x, y, w := g.loose(width, height, l.TopUpWidth)
		if attempts < l.TopUpBudget && g.crowded(out, x, y, w) {
			continue
		}
		out = append(out, g.platform(x, y, w))
	}

	return out
}

// loose draws an unsectioned platform anywhere across the arena width
// inside the extra band.
func (g *Generator) loose(width, height float64, widths Range) (x, y, w float64) {
	w = g.between(widths.Min, widths.Max)
	x = g.between(g.layout.Margin, width-w-g.layout.Margin)
	y = g.between(height-g.layout.ExtraBand.Top, height-g.layout.ExtraBand.Bottom)
	return x, y, w
}

func (g *Generator) platform(x, y, w float64) component.Platform {
	return component.Platform{X: x, Y: y, Width: w, Height: g.layout.PlatformHeight}
}

func (g *Generator) crowded(accepted []component.Platform, x, y, w float64) bool {
	return Crowded(accepted, x+w/2, y, g.layout.CrowdX, g.layout.CrowdY)
}

// Crowded reports whether a candidate with the given center x and top y is
// too close to any accepted platform.
func Crowded(accepted []component.Platform, centerX, top, minX, minY float64) bool {
	for _, p := range accepted {
		if math.Abs(centerX-(p.X+p.Width/2)) < minX && math.Abs(top-p.Y) < minY {
			return true
		}
	}
	return false
}

// between samples [a, b). Inverted bounds are swapped, so a section that is
// narrower than the platform still yields a position.
func (g *Generator) between(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + g.rng.Float64()*(b-a)
}

func (g *Generator) intBetween(r IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}

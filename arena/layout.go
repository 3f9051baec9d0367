package arena

import (
	"fmt"

	"github.com/milk9111/brawler/prefabs"
)

// Range is a closed interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// IntRange is an inclusive integer interval sampled uniformly.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Band is a vertical interval measured upward from the arena bottom, so
// {Top: 400, Bottom: 150} means y in [height-400, height-150].
type Band struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// Layout tunes the platform generator. The zero value is not usable; start
// from DefaultLayout.
type Layout struct {
	FloorHeight    float64 `yaml:"floor_height"`
	PlatformHeight float64 `yaml:"platform_height"`

	// Primary platforms climb from Baseline above the bottom edge toward
	// Baseline+MaxJumpHeight, cycling through the left/mid/right sections.
	PrimaryCount  IntRange `yaml:"primary_count"`
	PrimaryWidth  Range    `yaml:"primary_width"`
	Baseline      float64  `yaml:"baseline"`
	MaxJumpHeight float64  `yaml:"max_jump_height"`
	Jitter        float64  `yaml:"jitter"`
	Margin        float64  `yaml:"margin"`

	ExtraCount IntRange `yaml:"extra_count"`
	ExtraWidth Range    `yaml:"extra_width"`
	ExtraBand  Band     `yaml:"extra_band"`

	MinTotal    int   `yaml:"min_total"`
	TopUpWidth  Range `yaml:"top_up_width"`
	TopUpBudget int   `yaml:"top_up_budget"`

	// Crowding guard: a candidate is rejected when its center is closer
	// than CrowdX horizontally and its top is closer than CrowdY
	// vertically to an accepted platform.
	CrowdX float64 `yaml:"crowd_x"`
	CrowdY float64 `yaml:"crowd_y"`
}

func DefaultLayout() Layout {
	return Layout{
		FloorHeight:    50,
		PlatformHeight: 15,
		PrimaryCount:   IntRange{Min: 5, Max: 7},
		PrimaryWidth:   Range{Min: 250, Max: 350},
		Baseline:       150,
		MaxJumpHeight:  180,
		Jitter:         15,
		Margin:         30,
		ExtraCount:     IntRange{Min: 2, Max: 3},
		ExtraWidth:     Range{Min: 150, Max: 250},
		ExtraBand:      Band{Top: 400, Bottom: 150},
		MinTotal:       5,
		TopUpWidth:     Range{Min: 200, Max: 300},
		TopUpBudget:    1000,
		CrowdX:         80,
		CrowdY:         50,
	}
}

// withDefaults fills unset fields from DefaultLayout so a partial YAML file
// only overrides what it names.
func (l Layout) withDefaults() Layout {
	d := DefaultLayout()
	if l.FloorHeight <= 0 {
		l.FloorHeight = d.FloorHeight
	}
	if l.PlatformHeight <= 0 {
		l.PlatformHeight = d.PlatformHeight
	}
	if l.PrimaryCount.Max <= 0 {
		l.PrimaryCount = d.PrimaryCount
	}
	if l.PrimaryWidth.Max <= 0 {
		l.PrimaryWidth = d.PrimaryWidth
	}
	if l.Baseline <= 0 {
		l.Baseline = d.Baseline
	}
	if l.MaxJumpHeight <= 0 {
		l.MaxJumpHeight = d.MaxJumpHeight
	}
	if l.Jitter < 0 {
		l.Jitter = d.Jitter
	}
	if l.Margin <= 0 {
		l.Margin = d.Margin
	}
	if l.ExtraCount.Max <= 0 {
		l.ExtraCount = d.ExtraCount
	}
	if l.ExtraWidth.Max <= 0 {
		l.ExtraWidth = d.ExtraWidth
	}
	if l.ExtraBand.Top <= 0 {
		l.ExtraBand = d.ExtraBand
	}
	if l.MinTotal <= 0 {
		l.MinTotal = d.MinTotal
	}
	if l.TopUpWidth.Max <= 0 {
		l.TopUpWidth = d.TopUpWidth
	}
	if l.TopUpBudget <= 0 {
		l.TopUpBudget = d.TopUpBudget
	}
	if l.CrowdX <= 0 {
		l.CrowdX = d.CrowdX
	}
	if l.CrowdY <= 0 {
		l.CrowdY = d.CrowdY
	}
	return l
}

// LoadLayout reads a layout prefab. Fields the file leaves out keep their
// defaults.
func LoadLayout(name string) (Layout, error) {
	l, err := prefabs.LoadSpec[Layout](name)
	if err != nil {
		return Layout{}, fmt.Errorf("arena: layout %s: %w", name, err)
	}
	return l.withDefaults(), nil
}

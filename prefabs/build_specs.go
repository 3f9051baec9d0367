package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name and a map of component specs keyed
// by registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-encodes one raw component entry into its typed
// spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type ActorComponentSpec struct {
	Name  string    `yaml:"name"`
	Side  string    `yaml:"side"`
	Spawn SpawnSpec `yaml:"spawn"`
}

// SpawnSpec positions an actor relative to the arena: x as a fraction of
// the width, y as a distance up from the bottom edge.
type SpawnSpec struct {
	XRatio  float64 `yaml:"x_ratio"`
	YOffset float64 `yaml:"y_offset"`
}

type SpriteComponentSpec struct {
	Color *YAMLColor `yaml:"color"`
}

type TransformComponentSpec struct {
	FacingLeft bool `yaml:"facing_left"`
}

type BodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type FighterComponentSpec struct {
	Speed           float64 `yaml:"speed"`
	Gravity         float64 `yaml:"gravity"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpScale float64 `yaml:"double_jump_scale"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	LandingMargin   float64 `yaml:"landing_margin"`
}

type ControlsComponentSpec struct {
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Jump   string `yaml:"jump"`
	Attack string `yaml:"attack"`
}

type HealthComponentSpec struct {
	Max int `yaml:"max"`
}

type AttackComponentSpec struct {
	DurationMS int `yaml:"duration_ms"`
}

type HitboxComponentSpec struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	OffsetY           float64 `yaml:"offset_y"`
	Damage            int     `yaml:"damage"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
}

type HurtboxComponentSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type AnimationComponentSpec struct {
	Defs map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Frames     int `yaml:"frames"`
	FrameDelay int `yaml:"frame_delay"`
}

type BotComponentSpec struct {
	Script string `yaml:"script"`
}

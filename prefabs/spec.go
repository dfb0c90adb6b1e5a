package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ArenaSpec struct {
	Name          string  `yaml:"name"`
	HalfWidth     float64 `yaml:"half_width"`
	HalfHeight    float64 `yaml:"half_height"`
	WallMargin    float64 `yaml:"wall_margin"`
	VelocityGain  float64 `yaml:"velocity_gain"`
	RecoveryAngle float64 `yaml:"recovery_angle"`
	AIInterval    float64 `yaml:"ai_interval"`
}

func DefaultArenaSpec() ArenaSpec {
	return ArenaSpec{
		Name:          "arena",
		HalfWidth:     600,
		HalfHeight:    300,
		WallMargin:    40,
		VelocityGain:  100,
		RecoveryAngle: 0.1,
		AIInterval:    0.1,
	}
}

func (s ArenaSpec) withDefaults() ArenaSpec {
	d := DefaultArenaSpec()
	if s.Name == "" {
		s.Name = d.Name
	}
	if s.HalfWidth <= 0 {
		s.HalfWidth = d.HalfWidth
	}
	if s.HalfHeight <= 0 {
		s.HalfHeight = d.HalfHeight
	}
	if s.WallMargin < 0 {
		s.WallMargin = d.WallMargin
	}
	if s.VelocityGain <= 0 {
		s.VelocityGain = d.VelocityGain
	}
	if s.AIInterval <= 0 {
		s.AIInterval = d.AIInterval
	}
	return s
}

// LoadArenaSpec returns the arena spec. On error the defaults are returned
// alongside the error so callers can log and carry on.
func LoadArenaSpec() (ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return DefaultArenaSpec(), err
	}
	return spec.withDefaults(), nil
}

type MonsterSpec struct {
	Name        string  `yaml:"name"`
	Health      uint32  `yaml:"health"`
	WanderSpeed float64 `yaml:"wander_speed"`
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	Color       string  `yaml:"color"`
	Script      string  `yaml:"script"`
}

func DefaultMonsterSpec() MonsterSpec {
	return MonsterSpec{
		Name:        "Iceborne",
		Health:      100,
		WanderSpeed: 120,
		Radius:      24,
		Mass:        4,
		Color:       "#d9483b",
	}
}

func (s MonsterSpec) withDefaults() MonsterSpec {
	d := DefaultMonsterSpec()
	if s.Name == "" {
		s.Name = d.Name
	}
	if s.Health == 0 {
		s.Health = d.Health
	}
	if s.WanderSpeed <= 0 {
		s.WanderSpeed = d.WanderSpeed
	}
	if s.Radius <= 0 {
		s.Radius = d.Radius
	}
	if s.Mass <= 0 {
		s.Mass = d.Mass
	}
	if s.Color == "" {
		s.Color = d.Color
	}
	return s
}

func LoadMonsterSpec() (MonsterSpec, error) {
	spec, err := LoadSpec[MonsterSpec]("monster.yaml")
	if err != nil {
		return DefaultMonsterSpec(), err
	}
	return spec.withDefaults(), nil
}

type HunterEntrySpec struct {
	Name   string `yaml:"name"`
	Damage uint32 `yaml:"damage"`
}

type HuntersSpec struct {
	PursuitSpeed float64           `yaml:"pursuit_speed"`
	Damage       uint32            `yaml:"damage"`
	Radius       float64           `yaml:"radius"`
	Mass         float64           `yaml:"mass"`
	Color        string            `yaml:"color"`
	Hunters      []HunterEntrySpec `yaml:"hunters"`
}

func DefaultHuntersSpec() HuntersSpec {
	return HuntersSpec{
		PursuitSpeed: 90,
		Damage:       20,
		Radius:       14,
		Mass:         1,
		Color:        "#3b7dd9",
		Hunters: []HunterEntrySpec{
			{Name: "Alice"},
			{Name: "Bob"},
			{Name: "Charlie"},
		},
	}
}

func (s HuntersSpec) withDefaults() HuntersSpec {
	d := DefaultHuntersSpec()
	if s.PursuitSpeed <= 0 {
		s.PursuitSpeed = d.PursuitSpeed
	}
	if s.Damage == 0 {
		s.Damage = d.Damage
	}
	if s.Radius <= 0 {
		s.Radius = d.Radius
	}
	if s.Mass <= 0 {
		s.Mass = d.Mass
	}
	if s.Color == "" {
		s.Color = d.Color
	}
	if len(s.Hunters) == 0 {
		s.Hunters = d.Hunters
	}
	for i := range s.Hunters {
		if s.Hunters[i].Damage == 0 {
			s.Hunters[i].Damage = s.Damage
		}
	}
	return s
}

func LoadHuntersSpec() (HuntersSpec, error) {
	spec, err := LoadSpec[HuntersSpec]("hunters.yaml")
	if err != nil {
		return DefaultHuntersSpec().withDefaults(), err
	}
	spec = spec.withDefaults()
	seen := make(map[string]struct{}, len(spec.Hunters))
	for _, h := range spec.Hunters {
		if h.Name == "" {
			return DefaultHuntersSpec().withDefaults(), fmt.Errorf("prefabs: hunters.yaml: hunter without a name")
		}
		if _, dup := seen[h.Name]; dup {
			return DefaultHuntersSpec().withDefaults(), fmt.Errorf("prefabs: hunters.yaml: duplicate hunter %q", h.Name)
		}
		seen[h.Name] = struct{}{}
	}
	return spec, nil
}

type ExplosionSpec struct {
	Kind       string  `yaml:"kind"`
	Visual     string  `yaml:"visual"`
	StartScale float64 `yaml:"start_scale"`
	EndScale   float64 `yaml:"end_scale"`
	Duration   float64 `yaml:"duration"`
}

type ExplosionTableSpec struct {
	VisualRadius float64         `yaml:"visual_radius"`
	Explosions   []ExplosionSpec `yaml:"explosions"`
}

func LoadExplosionTableSpec() (ExplosionTableSpec, error) {
	spec, err := LoadSpec[ExplosionTableSpec]("explosions.yaml")
	if err != nil {
		return ExplosionTableSpec{}, err
	}
	for _, e := range spec.Explosions {
		if e.Duration <= 0 {
			return ExplosionTableSpec{}, fmt.Errorf("prefabs: explosions.yaml: %s: duration must be positive", e.Kind)
		}
	}
	return spec, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("prefabs: invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

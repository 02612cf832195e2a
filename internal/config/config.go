// Package config provides YAML-based demo configuration loading and
// difficulty management.
package config

// Range is an inclusive [Min, Max] interval sampled by the demos.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Valid reports whether the interval is ordered.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// BallsConfig contains all configuration for the cannon and balls demo.
type BallsConfig struct {
	Cannon     CannonConfig     `yaml:"cannon"`
	Ball       BallConfig       `yaml:"ball"`
	Targets    TargetsConfig    `yaml:"targets"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CannonConfig defines the rotating cannon at the bottom of the arena.
type CannonConfig struct {
	Length      float64 `yaml:"length"`       // Barrel length in cells
	Thickness   float64 `yaml:"thickness"`    // Barrel thickness in cells
	MinAngle    float64 `yaml:"min_angle"`    // Degrees; 0 points right, -90 points up
	MaxAngle    float64 `yaml:"max_angle"`    // Degrees
	RotateStep  float64 `yaml:"rotate_step"`  // Degrees per rotate key press
	Ammo        int     `yaml:"ammo"`         // Balls available per run
	ReloadTicks int     `yaml:"reload_ticks"` // Minimum ticks between shots
}

// BallConfig defines ball physics. Speeds are in cells per second.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`         // Muzzle speed
	Friction     float64 `yaml:"friction"`      // Velocity factor applied on every bounce
	MinSpeed     float64 `yaml:"min_speed"`     // Balls slower than this die
	StuckTimeout float64 `yaml:"stuck_timeout"` // Seconds a ball may stay blocked
	MaxBalls     int     `yaml:"max_balls"`     // Live balls on screen at once
}

// TargetsConfig defines the drifting targets.
type TargetsConfig struct {
	Count      int     `yaml:"count"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Points     int     `yaml:"points"`      // Score per hit
	DriftSpeed float64 `yaml:"drift_speed"` // Peak drift in cells per second
	NoiseScale float64 `yaml:"noise_scale"` // Perlin time scale; larger wanders faster
	SpinSpeed  float64 `yaml:"spin_speed"`  // Degrees per second
}

// ObstaclesConfig defines static rotated bumpers.
type ObstaclesConfig struct {
	Count    int     `yaml:"count"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MaxAngle float64 `yaml:"max_angle"` // Bumpers are tilted within +-MaxAngle
}

// EmitterConfig mirrors the particle emitter's tunable ranges.
type EmitterConfig struct {
	VelocityX    Range    `yaml:"velocity_x"` // Cells per second
	VelocityY    Range    `yaml:"velocity_y"`
	StartX       Range    `yaml:"start_x"` // Offset from the emission point
	StartY       Range    `yaml:"start_y"`
	Width        Range    `yaml:"width"`
	Height       Range    `yaml:"height"`
	TTL          Range    `yaml:"ttl"`      // Particle lifetime in seconds
	Rotation     Range    `yaml:"rotation"` // Angular velocity in degrees per second
	Gravity      float64  `yaml:"gravity"`  // Downward acceleration
	MinParticles int      `yaml:"min_particles"`
	MaxParticles int      `yaml:"max_particles"`
	Revive       bool     `yaml:"revive"`    // Respawn particles that die while the emission lives
	EmitTime     float64  `yaml:"emit_time"` // Emission lifetime; 0 uses TTL.Max
	Colors       []string `yaml:"colors"`
}

// ShapesConfig contains configuration for the shape inspector.
type ShapesConfig struct {
	MoveStep   float64       `yaml:"move_step"`   // Cells per key press
	RotateStep float64       `yaml:"rotate_step"` // Degrees per key press
	Static     ShapeSpec     `yaml:"static"`
	Moving     ShapeSpec     `yaml:"moving"`
	Polygon    []PointConfig `yaml:"polygon"` // Outline used when a shape is a polygon, relative to its center
}

// ShapeSpec describes one inspector shape.
type ShapeSpec struct {
	Kind   string  `yaml:"kind"` // "rectangle", "circle" or "polygon"
	X      float64 `yaml:"x"`    // Center as a fraction of the arena size
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Angle  float64 `yaml:"angle"`
}

// PointConfig is a 2D point in YAML.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed factor at max difficulty
	SizeReduction   float64 `yaml:"size_reduction"`   // Fraction of target size removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

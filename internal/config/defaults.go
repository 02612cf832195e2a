package config

import (
	_ "embed"
)

// Demo identifiers with an embedded default config.
const (
	BallsID     = "balls"
	ParticlesID = "particles"
	ShapesID    = "shapes"
)

//go:embed defaults/balls.yaml
var defaultBallsYAML []byte

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

//go:embed defaults/shapes.yaml
var defaultShapesYAML []byte

// DefaultBallsConfig returns the built-in cannon and balls configuration.
func DefaultBallsConfig() BallsConfig {
	return BallsConfig{
		Cannon: CannonConfig{
			Length:      5,
			Thickness:   1,
			MinAngle:    -170,
			MaxAngle:    -10,
			RotateStep:  3,
			Ammo:        30,
			ReloadTicks: 12,
		},
		Ball: BallConfig{
			Radius:       0.6,
			Speed:        30,
			Friction:     0.9,
			MinSpeed:     2,
			StuckTimeout: 1,
			MaxBalls:     8,
		},
		Targets: TargetsConfig{
			Count:      3,
			Width:      6,
			Height:     2,
			Points:     10,
			DriftSpeed: 6,
			NoiseScale: 0.4,
			SpinSpeed:  20,
		},
		Obstacles: ObstaclesConfig{
			Count:    2,
			Width:    10,
			Height:   1,
			MaxAngle: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SizeReduction:   0.5,
			},
		},
	}
}

// DefaultEmitterConfig returns the built-in particle emitter configuration.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		VelocityX:    Range{Min: -15, Max: 15},
		VelocityY:    Range{Min: -20, Max: 2},
		StartX:       Range{Min: -1, Max: 1},
		StartY:       Range{Min: -0.5, Max: 0.5},
		Width:        Range{Min: 0.5, Max: 2},
		Height:       Range{Min: 0.5, Max: 1.5},
		TTL:          Range{Min: 0.5, Max: 2.5},
		Rotation:     Range{Min: -360, Max: 360},
		Gravity:      18,
		MinParticles: 15,
		MaxParticles: 40,
		Revive:       true,
		EmitTime:     3,
		Colors:       []string{"red", "orange", "yellow", "bright_yellow"},
	}
}

// DefaultShapesConfig returns the built-in shape inspector configuration.
func DefaultShapesConfig() ShapesConfig {
	return ShapesConfig{
		MoveStep:   1,
		RotateStep: 15,
		Static: ShapeSpec{
			Kind:   "rectangle",
			X:      0.4,
			Y:      0.5,
			Width:  24,
			Height: 10,
			Radius: 6,
		},
		Moving: ShapeSpec{
			Kind:   "rectangle",
			X:      0.75,
			Y:      0.5,
			Width:  8,
			Height: 4,
			Radius: 3,
		},
		Polygon: []PointConfig{
			{X: 0, Y: -6},
			{X: 8, Y: 0},
			{X: 4, Y: 6},
			{X: -4, Y: 6},
			{X: -8, Y: 0},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a demo.
func GetDefaultYAML(demoID string) []byte {
	switch demoID {
	case BallsID:
		return defaultBallsYAML
	case ParticlesID:
		return defaultParticlesYAML
	case ShapesID:
		return defaultShapesYAML
	default:
		return nil
	}
}

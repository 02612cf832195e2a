package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
)

// fixedConfig collapses every range so particles are fully predictable.
func fixedConfig() config.EmitterConfig {
	return config.EmitterConfig{
		VelocityX:    config.Range{Min: 2, Max: 2},
		VelocityY:    config.Range{Min: 0, Max: 0},
		StartX:       config.Range{Min: 0, Max: 0},
		StartY:       config.Range{Min: 0, Max: 0},
		Width:        config.Range{Min: 1, Max: 1},
		Height:       config.Range{Min: 1, Max: 1},
		TTL:          config.Range{Min: 1, Max: 1},
		Rotation:     config.Range{Min: 90, Max: 90},
		MinParticles: 3,
		MaxParticles: 3,
		Colors:       []string{"red"},
	}
}

func newEmitter(t *testing.T, cfg config.EmitterConfig) *Emitter {
	t.Helper()
	e, err := NewEmitter(cfg, core.NewSimpleRNG(99))
	require.NoError(t, err)
	return e
}

func TestNewEmitter_UnknownColor(t *testing.T) {
	cfg := fixedConfig()
	cfg.Colors = []string{"red", "ultraviolet"}

	_, err := NewEmitter(cfg, core.NewSimpleRNG(1))
	assert.ErrorContains(t, err, "ultraviolet")
}

func TestEmitter_StartRejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.EmitterConfig)
	}{
		{"no max particles", func(c *config.EmitterConfig) { c.MaxParticles = 0 }},
		{"no min particles", func(c *config.EmitterConfig) { c.MinParticles = 0 }},
		{"min above max", func(c *config.EmitterConfig) { c.MinParticles = 5 }},
		{"no ttl", func(c *config.EmitterConfig) { c.TTL = config.Range{} }},
		{"no width", func(c *config.EmitterConfig) { c.Width = config.Range{} }},
		{"no height", func(c *config.EmitterConfig) { c.Height = config.Range{} }},
		{"reversed velocity", func(c *config.EmitterConfig) { c.VelocityX = config.Range{Min: 3, Max: -3} }},
		{"reversed rotation", func(c *config.EmitterConfig) { c.Rotation = config.Range{Min: 1, Max: 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fixedConfig()
			tt.modify(&cfg)
			e := newEmitter(t, cfg)

			assert.False(t, e.Start(geom.Vec(0, 0), 1))
			assert.False(t, e.Active())
			assert.Empty(t, e.Particles())
		})
	}
}

func TestEmitter_StartSpawnsWithinRanges(t *testing.T) {
	cfg := config.DefaultEmitterConfig()
	e := newEmitter(t, cfg)
	origin := geom.Vec(40, 12)

	require.True(t, e.Start(origin, 2))
	ps := e.Particles()
	assert.GreaterOrEqual(t, len(ps), cfg.MinParticles)
	assert.LessOrEqual(t, len(ps), cfg.MaxParticles)

	for _, p := range ps {
		assert.LessOrEqual(t, p.TTL, 2.0)
		assert.GreaterOrEqual(t, p.Body.X(), origin.X+cfg.StartX.Min)
		assert.LessOrEqual(t, p.Body.X(), origin.X+cfg.StartX.Max)
		assert.GreaterOrEqual(t, p.Body.Y(), origin.Y+cfg.StartY.Min)
		assert.LessOrEqual(t, p.Body.Y(), origin.Y+cfg.StartY.Max)
		assert.GreaterOrEqual(t, p.Body.W(), cfg.Width.Min)
		assert.LessOrEqual(t, p.Body.H(), cfg.Height.Max)
	}
}

func TestEmitter_DefaultEmissionTime(t *testing.T) {
	cfg := fixedConfig()
	cfg.EmitTime = 3
	e := newEmitter(t, cfg)
	require.True(t, e.Start(geom.Vec(0, 0), 0))
	assert.Equal(t, 3.0, e.TimeLeft())

	cfg.EmitTime = 0
	e = newEmitter(t, cfg)
	require.True(t, e.Start(geom.Vec(0, 0), -1))
	assert.Equal(t, cfg.TTL.Max, e.TimeLeft())
}

func TestEmitter_UpdateMovesAndRotates(t *testing.T) {
	e := newEmitter(t, fixedConfig())
	require.True(t, e.Start(geom.Vec(10, 10), 5))

	e.Update(0.5)
	for _, p := range e.Particles() {
		assert.Equal(t, geom.Vec(11, 10), p.Body.Location)
		assert.InDelta(t, 45.0, p.Body.RectangleAngle, 1e-9)
		assert.InDelta(t, 0.5, p.TTL, 1e-9)
		assert.Equal(t, core.ColorRed, p.Color)
	}
	assert.InDelta(t, 4.5, e.TimeLeft(), 1e-9)
}

func TestEmitter_Gravity(t *testing.T) {
	cfg := fixedConfig()
	cfg.VelocityX = config.Range{}
	cfg.Gravity = 10
	e := newEmitter(t, cfg)
	require.True(t, e.Start(geom.Vec(10, 10), 5))

	e.Update(0.5)
	p := e.Particles()[0]
	assert.InDelta(t, 5.0, p.Velocity.Y, 1e-9)
	assert.InDelta(t, 12.5, p.Body.Y(), 1e-9)
}

func TestEmitter_Revive(t *testing.T) {
	for _, revive := range []bool{false, true} {
		cfg := fixedConfig()
		cfg.Revive = revive
		e := newEmitter(t, cfg)
		require.True(t, e.Start(geom.Vec(10, 10), 5))

		e.Update(0.5)
		e.Update(0.5)
		require.Equal(t, 0, e.Live(), "all particles expired")

		e.Update(0.5)
		if revive {
			assert.Equal(t, 3, e.Live())
			assert.Equal(t, geom.Vec(10, 10), e.Particles()[0].Body.Location)
		} else {
			assert.Equal(t, 0, e.Live())
		}
	}
}

func TestEmitter_ClearsWhenEmissionEnds(t *testing.T) {
	e := newEmitter(t, fixedConfig())
	require.True(t, e.Start(geom.Vec(0, 0), 0.5))

	e.Update(0.25)
	e.Update(0.25)
	assert.False(t, e.Active())
	assert.Len(t, e.Particles(), 3)

	e.Update(0.25)
	assert.Empty(t, e.Particles())
}

func TestEmitter_BouncesOffArena(t *testing.T) {
	cfg := fixedConfig()
	cfg.VelocityX = config.Range{}
	cfg.VelocityY = config.Range{Min: 10, Max: 10}
	cfg.Rotation = config.Range{}
	cfg.MinParticles, cfg.MaxParticles = 1, 1

	e := newEmitter(t, cfg)
	e.Arena = geom.RectangleFromCorners(geom.Vec(0, 0), geom.Vec(20, 20))
	require.True(t, e.Start(geom.Vec(10, 19), 5))

	// One step pushes the bottom edge through the floor.
	assert.Equal(t, 1, e.Update(0.1))

	p := e.Particles()[0]
	assert.Equal(t, geom.Vec(10, 19), p.Body.Location)
	assert.InDelta(t, 0.0, p.Velocity.X, 1e-9)
	assert.InDelta(t, -6.0, p.Velocity.Y, 1e-9)
}

func TestEmitter_OutsideArenaDies(t *testing.T) {
	e := newEmitter(t, fixedConfig())
	e.Arena = geom.RectangleFromCorners(geom.Vec(0, 0), geom.Vec(20, 20))
	require.True(t, e.Start(geom.Vec(50, 50), 5))

	assert.Equal(t, 0, e.Update(0.1))
	assert.Equal(t, 0, e.Live())
}

func TestEmitter_Deterministic(t *testing.T) {
	run := func() []Particle {
		e, err := NewEmitter(config.DefaultEmitterConfig(), core.NewSimpleRNG(5))
		require.NoError(t, err)
		require.True(t, e.Start(geom.Vec(20, 10), 0))
		for range 30 {
			e.Update(1.0 / 60)
		}
		return e.Particles()
	}

	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Body.Location, b[i].Body.Location)
		assert.Equal(t, a[i].Velocity, b[i].Velocity)
	}
}

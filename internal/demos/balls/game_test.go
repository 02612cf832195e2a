package balls

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
	"github.com/vovakirdan/mini2d/internal/registry"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// emptyArena returns a config with nothing but the walls to hit.
func emptyArena() config.BallsConfig {
	cfg := config.DefaultBallsConfig()
	cfg.Targets.Count = 0
	cfg.Obstacles.Count = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func fire() core.InputFrame {
	return core.NewInputFrame(core.ActionFire)
}

func TestGame_Registered(t *testing.T) {
	require.True(t, registry.Exists(config.BallsID))

	d, err := registry.Create(config.BallsID, registry.Options{})
	require.NoError(t, err)
	assert.Equal(t, config.BallsID, d.ID())
}

func TestNew_UnknownDifficulty(t *testing.T) {
	_, err := New(registry.Options{Difficulty: "brutal"})
	assert.Error(t, err)
}

func TestGame_Layout(t *testing.T) {
	g := NewWithConfig(config.DefaultBallsConfig())
	g.Reset(runtimeConfig(1))

	assert.Equal(t, geom.Vec(40, 22), g.cannon.Pivot())
	assert.Len(t, g.targets, 3)
	assert.Len(t, g.obstacles, 2)

	for _, o := range g.obstacles {
		assert.True(t, g.arena.Contain(o), "obstacle %v outside arena", o.Location)
	}
}

func TestGame_FireSpawnsBall(t *testing.T) {
	cfg := emptyArena()
	g := NewWithConfig(cfg)
	g.Reset(runtimeConfig(1))

	res := g.Step(fire())
	assert.False(t, res.State.GameOver)
	require.Len(t, g.balls, 1)
	assert.Equal(t, cfg.Cannon.Ammo-1, g.cannon.Ammo())

	// The ball has already flown half a cell from the muzzle.
	assertNear(t, geom.Vec(40, 16.5), g.balls[0].Center())
}

func TestGame_MaxBalls(t *testing.T) {
	cfg := emptyArena()
	cfg.Cannon.ReloadTicks = 0
	cfg.Ball.MaxBalls = 2
	g := NewWithConfig(cfg)
	g.Reset(runtimeConfig(1))

	for range 5 {
		g.Step(fire())
	}
	assert.LessOrEqual(t, len(g.balls), 2)
}

func TestGame_BallHitsTarget(t *testing.T) {
	cfg := emptyArena()
	cfg.Targets.Count = 1
	cfg.Targets.DriftSpeed = 0
	cfg.Targets.SpinSpeed = 0
	g := NewWithConfig(cfg)
	g.Reset(runtimeConfig(7))

	// Straight above the muzzle.
	g.targets[0].Body = *geom.NewRectangle(40, 11, 6, 2)

	// Contact on the ninth tick, before the respawned target can drift into
	// the returning ball.
	g.Step(fire())
	for range 8 {
		g.Step(core.NewInputFrame())
	}

	assert.Equal(t, cfg.Targets.Points, g.State().Score)
	assert.Equal(t, 1, g.targets[0].Hits)
	assert.Equal(t, 1, g.State().Collisions)

	require.Len(t, g.balls, 1)
	assert.Greater(t, g.balls[0].Velocity.Y, 0.0, "ball bounced back down")
}

func TestGame_OverWhenAmmoAndBallsRunOut(t *testing.T) {
	cfg := emptyArena()
	cfg.Cannon.Ammo = 1
	cfg.Ball.MinSpeed = 29
	g := NewWithConfig(cfg)
	g.Reset(runtimeConfig(1))

	g.Step(fire())
	for range 120 {
		if g.Step(core.NewInputFrame()).State.GameOver {
			break
		}
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, 1, g.State().Collisions, "one bounce off the top wall")

	// Frozen until restart.
	tick := g.tick
	g.Step(fire())
	assert.Equal(t, tick, g.tick)

	g.Step(core.NewInputFrame(core.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 1, g.cannon.Ammo())
}

func TestGame_Pause(t *testing.T) {
	g := NewWithConfig(emptyArena())
	g.Reset(runtimeConfig(1))

	g.Step(core.NewInputFrame(core.ActionPause))
	require.True(t, g.State().Paused)

	g.Step(fire())
	assert.Empty(t, g.balls)
	assert.Equal(t, 0, g.tick)

	g.Step(core.NewInputFrame(core.ActionPause))
	assert.False(t, g.State().Paused)
}

func TestGame_RotateInput(t *testing.T) {
	g := NewWithConfig(emptyArena())
	g.Reset(runtimeConfig(1))
	start := g.cannon.Angle()

	g.Step(core.NewInputFrame(core.ActionRotateLeft))
	assert.Less(t, g.cannon.Angle(), start)

	g.Step(core.NewInputFrame(core.ActionRight))
	g.Step(core.NewInputFrame(core.ActionRight))
	assert.Greater(t, g.cannon.Angle(), start)
}

func TestGame_Determinism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%15 == 0:
			inputs[i].Set(core.ActionFire)
		case i%40 < 10:
			inputs[i].Set(core.ActionRotateLeft)
		case i%40 < 25:
			inputs[i].Set(core.ActionRotateRight)
		}
	}

	run := func(seed int64) Snapshot {
		g := NewWithConfig(config.DefaultBallsConfig())
		g.Reset(runtimeConfig(seed))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	assert.Equal(t, a, b)
	assert.Equal(t, a.Hash(), b.Hash())

	c := run(43)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestGame_ScreenTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultBallsConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	g.Step(fire())
	assert.Equal(t, 0, g.tick)

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Screen too small")
}

func TestGame_Render(t *testing.T) {
	g := NewWithConfig(config.DefaultBallsConfig())
	g.Reset(runtimeConfig(3))
	g.Step(fire())

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(scr.Row(0)), "Score: 0"))
	assert.Equal(t, '┌', scr.Get(0, 1))
	assert.Equal(t, '┘', scr.Get(79, 23))

	out := scr.String()
	assert.Contains(t, out, string(BarrelChar))
	assert.Contains(t, out, string(BallChar))
	assert.Contains(t, out, string(TargetChar))
}

package particles

import (
	"fmt"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
)

// bounceDamping is the velocity kept by a particle bouncing off the arena.
const bounceDamping = 0.6

// Particle is one rotated rectangle of a burst.
type Particle struct {
	Body     geom.RectangleF
	Velocity geom.Vector2 // Cells per second
	Spin     float64      // Degrees per second
	TTL      float64      // Seconds left to live
	Color    core.Color
}

// Alive reports whether the particle still has time to live.
func (p *Particle) Alive() bool {
	return p.TTL > 0
}

// Emitter spawns and simulates one burst of particles. It does no drawing.
type Emitter struct {
	// Arena, when set, bounces particles off its walls and kills those that
	// end up outside it.
	Arena *geom.RectangleF

	cfg       config.EmitterConfig
	colors    []core.Color
	rng       *core.SimpleRNG
	particles []Particle
	origin    geom.Vector2
	timeLeft  float64
}

// NewEmitter creates an idle emitter. Every configured color name must be
// known to core.ParseColor.
func NewEmitter(cfg config.EmitterConfig, rng *core.SimpleRNG) (*Emitter, error) {
	colors := make([]core.Color, 0, len(cfg.Colors))
	for _, name := range cfg.Colors {
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("particles: unknown color %q", name)
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorWhite)
	}

	return &Emitter{
		cfg:    cfg,
		colors: colors,
		rng:    rng,
	}, nil
}

// valid checks the configured ranges before an emission.
func (e *Emitter) valid() bool {
	c := e.cfg
	if c.MaxParticles <= 0 || c.MinParticles <= 0 || c.MinParticles > c.MaxParticles {
		return false
	}
	if c.TTL.Max <= 0 || c.Width.Max <= 0 || c.Height.Max <= 0 {
		return false
	}
	for _, r := range []config.Range{c.VelocityX, c.VelocityY, c.StartX, c.StartY, c.Width, c.Height, c.TTL, c.Rotation} {
		if !r.Valid() {
			return false
		}
	}
	return true
}

// Start begins a new emission at location lasting ttl seconds, replacing any
// running one. A ttl of zero or less uses EmitTime, or TTL.Max when EmitTime
// is unset. It returns false and leaves the emitter untouched when the
// configured ranges are invalid.
func (e *Emitter) Start(location geom.Vector2, ttl float64) bool {
	if !e.valid() {
		return false
	}

	e.origin = location
	e.timeLeft = ttl
	if e.timeLeft <= 0 {
		e.timeLeft = e.cfg.EmitTime
	}
	if e.timeLeft <= 0 {
		e.timeLeft = e.cfg.TTL.Max
	}

	n := e.rng.IntRange(e.cfg.MinParticles, e.cfg.MaxParticles)
	e.particles = make([]Particle, n)
	for i := range e.particles {
		e.spawn(&e.particles[i])
	}
	return true
}

// spawn rolls fresh attributes for p at the emission origin. Its lifetime
// never outlasts the emission.
func (e *Emitter) spawn(p *Particle) {
	c := e.cfg

	x := e.origin.X + e.rng.Range(c.StartX.Min, c.StartX.Max)
	y := e.origin.Y + e.rng.Range(c.StartY.Min, c.StartY.Max)
	w := e.rng.Range(c.Width.Min, c.Width.Max)
	h := e.rng.Range(c.Height.Min, c.Height.Max)

	p.Body = *geom.NewRectangle(x, y, w, h)
	p.Velocity = geom.Vec(
		e.rng.Range(c.VelocityX.Min, c.VelocityX.Max),
		e.rng.Range(c.VelocityY.Min, c.VelocityY.Max),
	)
	p.Spin = e.rng.Range(c.Rotation.Min, c.Rotation.Max)
	p.TTL = e.rng.Range(min(c.TTL.Min, e.timeLeft), min(c.TTL.Max, e.timeLeft))
	p.Color = e.colors[e.rng.Intn(len(e.colors))]
}

// Update advances the emission by dt seconds and returns how many particles
// bounced off the arena. Once the emission time runs out every particle is
// cleared.
func (e *Emitter) Update(dt float64) int {
	if e.timeLeft <= 0 {
		e.particles = e.particles[:0]
		return 0
	}

	bounces := 0
	for i := range e.particles {
		p := &e.particles[i]
		if !p.Alive() {
			if e.cfg.Revive {
				e.spawn(p)
			}
			continue
		}

		p.Velocity.Y += e.cfg.Gravity * dt
		prev := p.Body.Location
		p.Body.Location = prev.Add(p.Velocity.Scale(dt))
		p.Body.RectangleAngle = core.WrapAngle(p.Body.RectangleAngle + p.Spin*dt)
		p.TTL -= dt

		if e.Arena != nil && e.bounce(p, prev) {
			bounces++
		}
	}

	e.timeLeft -= dt
	return bounces
}

// bounce resolves p against the arena walls. It reports a bounce; particles
// that left the arena die.
func (e *Emitter) bounce(p *Particle, prev geom.Vector2) bool {
	res := geom.Intersect(e.Arena, &p.Body)
	switch {
	case res.Kind == geom.OverlapContained:
		return false
	case res.Hit():
		p.Body.Location = prev
		if v, err := geom.Reflect(p.Velocity, res.Normal); err == nil {
			p.Velocity = v.Scale(bounceDamping)
		}
		return true
	default:
		p.TTL = 0
		return false
	}
}

// Active reports whether the emission is still running.
func (e *Emitter) Active() bool {
	return e.timeLeft > 0
}

// TimeLeft returns the seconds until the emission ends.
func (e *Emitter) TimeLeft() float64 {
	return e.timeLeft
}

// Particles returns the particle slots of the current emission, dead ones
// included. The slice is owned by the emitter.
func (e *Emitter) Particles() []Particle {
	return e.particles
}

// Live returns the number of particles still alive.
func (e *Emitter) Live() int {
	n := 0
	for i := range e.particles {
		if e.particles[i].Alive() {
			n++
		}
	}
	return n
}

package balls

import (
	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
)

// Perlin parameters for target drift: smooth, low frequency, two octaves.
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = int32(2)
)

// Target is a drifting, spinning box worth points when a ball hits it.
type Target struct {
	Body  geom.RectangleF
	Color core.Color
	Hits  int

	seedX float64 // Noise offsets so targets wander independently
	seedY float64
}

// drifter moves targets along smooth noise paths inside a zone.
type drifter struct {
	noise *perlin.Perlin
	zone  geom.Bounds
	scale float64 // Noise time scale
	spin  float64 // Degrees per second
}

func newDrifter(seed int64, zone geom.Bounds, scale, spin float64) *drifter {
	return &drifter{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed),
		zone:  zone,
		scale: scale,
		spin:  spin,
	}
}

// velocity samples the drift velocity of t at time now, at most speed on
// each axis.
func (d *drifter) velocity(t *Target, now, speed float64) geom.Vector2 {
	x := d.noise.Noise1D(now*d.scale + t.seedX)
	y := d.noise.Noise1D(now*d.scale + t.seedY)
	return geom.Vec(core.ClampF(x*2, -1, 1), core.ClampF(y*2, -1, 1)).Scale(speed)
}

// move advances t by dt seconds and keeps its center inside the zone.
func (d *drifter) move(t *Target, now, dt, speed float64) {
	v := d.velocity(t, now, speed)
	loc := t.Body.Location.Add(v.Scale(dt))
	loc.X = core.ClampF(loc.X, d.zone.Min.X, d.zone.Max.X)
	loc.Y = core.ClampF(loc.Y, d.zone.Min.Y, d.zone.Max.Y)
	t.Body.Location = loc

	if t.seedX < t.seedY {
		t.Body.RectangleAngle = core.WrapAngle(t.Body.RectangleAngle + d.spin*dt)
	} else {
		t.Body.RectangleAngle = core.WrapAngle(t.Body.RectangleAngle - d.spin*dt)
	}
}

// place puts t at a random spot in the zone with fresh noise offsets.
func (d *drifter) place(t *Target, rng *core.SimpleRNG, w, h float64) {
	t.Body = *geom.NewRectangle(
		rng.Range(d.zone.Min.X, d.zone.Max.X),
		rng.Range(d.zone.Min.Y, d.zone.Max.Y),
		w, h,
	)
	t.Body.RectangleAngle = rng.Range(-45, 45)
	t.seedX = rng.Range(0, 1000)
	t.seedY = rng.Range(0, 1000)
}

package balls

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// BallState is the serializable state of one ball.
type BallState struct {
	X, Y   float64
	VX, VY float64
}

// TargetState is the serializable state of one target.
type TargetState struct {
	X, Y  float64
	Angle float64
	Hits  int
}

// Snapshot captures everything that drives the simulation forward.
type Snapshot struct {
	Tick        int
	Score       int
	Collisions  int
	Ammo        int
	CannonAngle float64
	GameOver    bool
	Balls       []BallState
	Targets     []TargetState
	RNGState    uint64
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Collisions: g.collisions,
		GameOver:   g.gameOver,
	}
	if g.rng != nil {
		s.RNGState = g.rng.State()
	}
	if g.cannon != nil {
		s.Ammo = g.cannon.Ammo()
		s.CannonAngle = g.cannon.Angle()
	}
	for _, b := range g.balls {
		c := b.Center()
		s.Balls = append(s.Balls, BallState{X: c.X, Y: c.Y, VX: b.Velocity.X, VY: b.Velocity.Y})
	}
	for _, t := range g.targets {
		s.Targets = append(s.Targets, TargetState{
			X:     t.Body.Location.X,
			Y:     t.Body.Location.Y,
			Angle: t.Body.RectangleAngle,
			Hits:  t.Hits,
		})
	}
	return s
}

// Hash returns a fingerprint of the snapshot. Equal simulations produce
// equal hashes bit for bit.
func (s Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 64+32*len(s.Balls)+32*len(s.Targets))
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }

	u(uint64(s.Tick))
	u(uint64(s.Score))
	u(uint64(s.Collisions))
	u(uint64(s.Ammo))
	f(s.CannonAngle)
	if s.GameOver {
		u(1)
	} else {
		u(0)
	}
	u(s.RNGState)

	u(uint64(len(s.Balls)))
	for _, b := range s.Balls {
		f(b.X)
		f(b.Y)
		f(b.VX)
		f(b.VY)
	}
	u(uint64(len(s.Targets)))
	for _, t := range s.Targets {
		f(t.X)
		f(t.Y)
		f(t.Angle)
		u(uint64(t.Hits))
	}
	return xxhash.Sum64(buf)
}

package game

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

const (
	particleGravity  = 200.0
	particleDamping  = 2.0
	particleBaseLife = 0.6
	particleMaxLife  = 0.8
)

// Particle is a short-lived cosmetic fragment from a brick hit.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  float64
	Size  float64
	Color core.Color
}

// LifeFrac reports the remaining life as a 0..1 fraction, for fading.
func (p *Particle) LifeFrac() float64 {
	return core.Clamp(p.Life/particleMaxLife, 0, 1)
}

// spawnParticles emits a burst at pos. The stream is seeded from the
// position so identical hits produce identical bursts.
func (g *Game) spawnParticles(pos core.Vec, color core.Color, count int) {
	rng := core.NewRand(int64(pos.X*1000 + pos.Y))

	for i := 0; i < count; i++ {
		angle := rng.Range(-math.Pi, math.Pi)
		speed := rng.Range(60, 220)
		g.particles = append(g.particles, Particle{
			Pos:   pos,
			Vel:   core.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
			Life:  particleBaseLife + float64(rng.Intn(100))*0.002,
			Size:  rng.Range(1, 4),
			Color: color,
		})
	}
}

func (g *Game) integrateParticles(dt float64) {
	kept := g.particles[:0]
	for i := range g.particles {
		p := g.particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y += particleGravity * dt
		p.Vel = p.Vel.Scale(1 - particleDamping*dt)
		p.Life -= dt
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.particles = kept
}

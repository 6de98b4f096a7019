package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleSpark
	ParticleConfetti
)

const MaxParticles = 256

const (
	particleGravity    = 18.0
	particleBounce     = 0.3
	particleGroundFric = 0.6
	particleAirDrag    = 0.8
	confettiAirDrag    = 2.6
	confettiGravity    = 4.0
)

// Particle is a small cube in world space. Pos is its centre.
type Particle struct {
	Pos mgl32.Vec3
	Vel mgl32.Vec3

	Size float32

	Life    float32
	MaxLife float32

	Col  RGB
	Kind ParticleKind
}

// Color is the colour to draw p with this frame; sparks cool as they age.
func (p Particle) Color() RGB {
	if p.Kind == ParticleSpark {
		return lerpRGB(Palette.SparkHot, Palette.SparkCool, p.Life/p.MaxLife)
	}
	return p.Col
}

// Fade is a [0,1] opacity. Debris stays solid until it expires.
func (p Particle) Fade() float32 {
	if p.Kind == ParticleDebris || p.MaxLife <= 0 {
		return 1
	}
	return clampF(1-p.Life/p.MaxLife, 0, 1)
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	rng    *Rand
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
		rng: NewRand(seed),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// burstVel is a random velocity on the upper hemisphere.
func (ps *ParticleSystem) burstVel(minSpd, maxSpd, minElev float32) mgl32.Vec3 {
	r := ps.rng
	ang := float64(r.RangeF32(0, 2*math.Pi))
	elev := float64(r.RangeF32(minElev, 1.3))
	spd := r.RangeF32(minSpd, maxSpd)
	flat := float32(math.Cos(elev)) * spd
	return mgl32.Vec3{
		float32(math.Cos(ang)) * flat,
		float32(math.Sin(elev)) * spd,
		float32(math.Sin(ang)) * flat,
	}
}

// SpawnCrash bursts crate splinters and sparks out of the point at.
func (ps *ParticleSystem) SpawnCrash(at mgl32.Vec3, intensity float32) {
	if intensity <= 0 {
		return
	}
	r := ps.rng

	// Debris.
	for i, n := 0, int(24*intensity); i < n; i++ {
		base := Palette.CrateWood
		if r.Float64() < 0.25 {
			base = Palette.CrateSteel
		}
		jitter := int(r.RangeF32(-14, 14))
		ps.Add(Particle{
			Pos:     at.Add(mgl32.Vec3{r.RangeF32(-1, 1), r.RangeF32(-1, 1), r.RangeF32(-1, 1)}),
			Vel:     ps.burstVel(4*intensity, 12*intensity, 0.2),
			Size:    r.RangeF32(0.2, 0.6),
			MaxLife: r.RangeF32(1.5, 3),
			Col:     base.Add(jitter, jitter, jitter),
			Kind:    ParticleDebris,
		})
	}

	// Sparks.
	for i, n := 0, int(16*intensity); i < n; i++ {
		ps.Add(Particle{
			Pos:     at,
			Vel:     ps.burstVel(8*intensity, 20*intensity, 0.05),
			Size:    0.12,
			MaxLife: r.RangeF32(0.2, 0.5),
			Col:     Palette.SparkHot,
			Kind:    ParticleSpark,
		})
	}
}

// SpawnConfetti throws a slow shower of coloured flakes up from at.
func (ps *ParticleSystem) SpawnConfetti(at mgl32.Vec3) {
	r := ps.rng
	for i := 0; i < 40; i++ {
		ps.Add(Particle{
			Pos:     at,
			Vel:     mgl32.Vec3{r.RangeF32(-4, 4), r.RangeF32(6, 12), r.RangeF32(-4, 4)},
			Size:    0.25,
			MaxLife: r.RangeF32(2, 3.5),
			Col:     Palette.Confetti[i%len(Palette.Confetti)],
			Kind:    ParticleConfetti,
		})
	}
}

// Update ages, moves and bounces particles off the plane y = floorY.
// Expired particles are removed.
func (ps *ParticleSystem) Update(dt, floorY float32) {
	if dt <= 0 {
		return
	}

	drag := float32(math.Exp(-particleAirDrag * float64(dt)))
	flutter := float32(math.Exp(-confettiAirDrag * float64(dt)))

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		g, d := float32(particleGravity), drag
		if p.Kind == ParticleConfetti {
			g, d = confettiGravity, flutter
		}
		p.Vel[1] -= g * dt
		p.Vel[0] *= d
		p.Vel[2] *= d
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))

		// Ground contact.
		if ground := floorY + p.Size*0.5; p.Pos[1] <= ground {
			p.Pos[1] = ground
			p.Vel[1] = -p.Vel[1] * particleBounce
			p.Vel[0] *= particleGroundFric
			p.Vel[2] *= particleGroundFric
			p.MaxLife *= 0.96
		}

		i++
	}
}

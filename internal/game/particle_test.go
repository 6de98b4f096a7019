package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSpawnCrashCounts(t *testing.T) {
	tests := []struct {
		name      string
		intensity float32
		want      int
	}{
		{"full", 1, 24 + 16},
		{"half", 0.5, 12 + 8},
		{"none", 0, 0},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewParticleSystem(0, 1)
			ps.SpawnCrash(mgl32.Vec3{0, 3, -50}, tt.intensity)
			if len(ps.P) != tt.want {
				t.Fatalf("spawned %d, want %d", len(ps.P), tt.want)
			}
			for _, p := range ps.P {
				if p.Vel.Y() <= 0 {
					t.Fatalf("particle launched downward: %v", p.Vel)
				}
			}
		})
	}
}

func TestParticleSystemOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(4, 1)
	for i := 0; i < 6; i++ {
		ps.Add(Particle{Size: float32(i), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("len = %d, want 4", len(ps.P))
	}
	if ps.P[0].Size != 4 || ps.P[1].Size != 5 || ps.P[2].Size != 2 {
		t.Fatalf("overwrite order wrong: %v %v %v", ps.P[0].Size, ps.P[1].Size, ps.P[2].Size)
	}

	ps.Clear()
	if len(ps.P) != 0 {
		t.Fatal("Clear left particles")
	}
}

func TestParticleUpdate(t *testing.T) {
	ps := NewParticleSystem(0, 1)
	ps.Add(Particle{Pos: mgl32.Vec3{0, 5, 0}, Vel: mgl32.Vec3{2, 0, 0}, Size: 0.5, MaxLife: 10})
	ps.Add(Particle{Pos: mgl32.Vec3{0, 5, 0}, Size: 0.5, MaxLife: 0.05})

	ps.Update(0.1, TrackSurface)
	if len(ps.P) != 1 {
		t.Fatalf("expired particle not removed, %d left", len(ps.P))
	}
	p := ps.P[0]
	if p.Vel.Y() >= 0 || p.Pos.Y() >= 5 {
		t.Fatalf("gravity not applied: pos %v vel %v", p.Pos, p.Vel)
	}
	if p.Pos.X() <= 0 {
		t.Fatalf("particle did not drift: %v", p.Pos)
	}

	ps.Update(0, TrackSurface)
	if ps.P[0] != p {
		t.Fatal("zero dt should not change particles")
	}

	for i := 0; i < 100; i++ {
		ps.Update(0.05, TrackSurface)
	}
	for _, p := range ps.P {
		if p.Pos.Y() < TrackSurface+p.Size*0.5 {
			t.Fatalf("particle sank through the track: %v", p.Pos)
		}
	}
}

func TestParticleFadeAndColor(t *testing.T) {
	spark := Particle{MaxLife: 1, Kind: ParticleSpark}
	if spark.Color() != Palette.SparkHot || spark.Fade() != 1 {
		t.Fatalf("fresh spark: %v %v", spark.Color(), spark.Fade())
	}
	spark.Life = 1
	if spark.Color() != Palette.SparkCool || spark.Fade() != 0 {
		t.Fatalf("spent spark: %v %v", spark.Color(), spark.Fade())
	}

	debris := Particle{MaxLife: 1, Life: 0.9, Kind: ParticleDebris, Col: Palette.CrateWood}
	if debris.Fade() != 1 || debris.Color() != Palette.CrateWood {
		t.Fatal("debris should stay solid in its own colour")
	}
}

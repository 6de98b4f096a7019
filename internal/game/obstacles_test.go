package game

import "testing"

func TestInitializePlacesObstacles(t *testing.T) {
	cfg := DefaultConfig().Pool
	for seed := uint64(0); seed < 32; seed++ {
		p := NewObstaclePool(cfg, NewRand(seed))
		if p.Len() != cfg.Count {
			t.Fatalf("seed %d: len = %d, want %d", seed, p.Len(), cfg.Count)
		}
		for i, o := range p.Obstacles() {
			if x := o.Position.X(); x < cfg.LaneMin || x > cfg.LaneMax {
				t.Errorf("seed %d obstacle %d: lane %f outside [%f, %f]", seed, i, x, cfg.LaneMin, cfg.LaneMax)
			}
			if want := -(float32(i) * cfg.Spacing); o.Position.Z() != want {
				t.Errorf("seed %d obstacle %d: depth = %f, want %f", seed, i, o.Position.Z(), want)
			}
			if o.Position.Y() != cfg.Height {
				t.Errorf("seed %d obstacle %d: height = %f, want %f", seed, i, o.Position.Y(), cfg.Height)
			}
			for axis := 0; axis < 3; axis++ {
				if o.Scale[axis] != cfg.Size {
					t.Errorf("seed %d obstacle %d: scale = %v, want %f", seed, i, o.Scale, cfg.Size)
				}
			}
		}
	}
}

func TestInitializeIsSeeded(t *testing.T) {
	cfg := DefaultConfig().Pool
	a := NewObstaclePool(cfg, NewRand(42)).Obstacles()
	b := NewObstaclePool(cfg, NewRand(42)).Obstacles()
	c := NewObstaclePool(cfg, NewRand(43)).Obstacles()

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs for equal seeds: %v vs %v", i, a[i], b[i])
		}
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Fatalf("different seeds produced identical layouts")
	}
}

func TestAdvanceFrozenIsNoop(t *testing.T) {
	cfg := DefaultConfig().Pool
	p := NewObstaclePool(cfg, NewRand(7))
	before := append([]Obstacle(nil), p.Obstacles()...)

	for _, dt := range []float32{0, 0.016, 0.5, 10} {
		if r := p.Advance(dt, -11, false); r != nil {
			t.Fatalf("not moving: recycled %v", r)
		}
	}
	p.Freeze()
	for _, dt := range []float32{0, 0.016, 0.5, 10} {
		if r := p.Advance(dt, -11, true); r != nil {
			t.Fatalf("frozen: recycled %v", r)
		}
	}
	for i, o := range p.Obstacles() {
		if o != before[i] {
			t.Errorf("obstacle %d moved: %v -> %v", i, before[i], o)
		}
	}
}

func TestAdvanceMovesByDtTimesSpeed(t *testing.T) {
	cfg := DefaultConfig().Pool
	p := NewObstaclePool(cfg, NewRand(3))
	before := append([]Obstacle(nil), p.Obstacles()...)

	dt := float32(0.25)
	if r := p.Advance(dt, -11, true); r != nil {
		t.Fatalf("unexpected recycle: %v", r)
	}
	for i, o := range p.Obstacles() {
		want := before[i].Position.Z() + dt*cfg.Speed
		if o.Position.Z() != want {
			t.Errorf("obstacle %d: depth = %f, want %f", i, o.Position.Z(), want)
		}
		if o.Position.X() != before[i].Position.X() || o.Position.Y() != before[i].Position.Y() {
			t.Errorf("obstacle %d: lateral position changed", i)
		}
	}
}

func TestAdvanceRecyclesPassedObstacles(t *testing.T) {
	cfg := DefaultConfig().Pool
	p := NewObstaclePool(cfg, NewRand(11))

	// Threshold is actorDepth+RecycleDistance = 1. Only obstacle 0 (depth 0)
	// crosses it after moving 2.5 units.
	actorDepth := float32(-49)
	recycled := p.Advance(0.5, actorDepth, true)
	if len(recycled) != 1 || recycled[0] != 0 {
		t.Fatalf("recycled = %v, want [0]", recycled)
	}

	o := p.Obstacles()[0]
	if want := actorDepth - cfg.RecycleDistance; o.Position.Z() != want {
		t.Errorf("recycled depth = %f, want %f", o.Position.Z(), want)
	}
	if x := o.Position.X(); x < cfg.LaneMin || x > cfg.LaneMax {
		t.Errorf("recycled lane %f outside [%f, %f]", x, cfg.LaneMin, cfg.LaneMax)
	}
	for i, o := range p.Obstacles()[1:] {
		want := -(float32(i+1) * cfg.Spacing) + float32(0.5)*cfg.Speed
		if o.Position.Z() != want {
			t.Errorf("obstacle %d: depth = %f, want %f", i+1, o.Position.Z(), want)
		}
	}
}

func TestInitializeThawsPool(t *testing.T) {
	p := NewObstaclePool(DefaultConfig().Pool, NewRand(1))
	p.Freeze()
	if !p.Frozen() {
		t.Fatal("Freeze did not freeze")
	}
	p.Initialize()
	if p.Frozen() {
		t.Fatal("Initialize left pool frozen")
	}
	if r := p.Advance(0.1, -11, true); r != nil {
		t.Fatalf("unexpected recycle after thaw: %v", r)
	}
	if p.Obstacles()[0].Position.Z() == 0 {
		t.Fatal("thawed pool did not move")
	}
}

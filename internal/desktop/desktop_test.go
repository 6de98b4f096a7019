package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"lanerunner/internal/game"
	"lanerunner/internal/hud"
)

type fakeKeys map[glfw.Key]glfw.Action

func (f fakeKeys) GetKey(k glfw.Key) glfw.Action { return f[k] }

func TestInputFrame(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want game.FrameInput
	}{
		{"nothing", fakeKeys{}, game.FrameInput{}},
		{"w drives", fakeKeys{glfw.KeyW: glfw.Press}, game.FrameInput{Forward: true}},
		{"arrow drives", fakeKeys{glfw.KeyUp: glfw.Press}, game.FrameInput{Forward: true}},
		{"a and d steer", fakeKeys{glfw.KeyA: glfw.Press, glfw.KeyD: glfw.Press}, game.FrameInput{Left: true, Right: true}},
		{"arrows steer", fakeKeys{glfw.KeyLeft: glfw.Press}, game.FrameInput{Left: true}},
		{"escape quits", fakeKeys{glfw.KeyEscape: glfw.Press}, game.FrameInput{Quit: true}},
		{"r resets", fakeKeys{glfw.KeyR: glfw.Press}, game.FrameInput{Reset: true}},
		{"released key ignored", fakeKeys{glfw.KeyW: glfw.Release}, game.FrameInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewInput().Frame(tt.keys); got != tt.want {
				t.Fatalf("Frame = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResetFiresOncePerPress(t *testing.T) {
	in := NewInput()
	held := fakeKeys{glfw.KeyR: glfw.Press}
	if !in.Frame(held).Reset {
		t.Fatal("first frame of R should reset")
	}
	if in.Frame(held).Reset {
		t.Fatal("holding R should not reset again")
	}
	in.Frame(fakeKeys{})
	if !in.Frame(held).Reset {
		t.Fatal("pressing R again should reset")
	}
}

func TestCubeVerticesSpanUnitBox(t *testing.T) {
	for i := 0; i < 36; i++ {
		v := cubeVertices[i*8 : i*8+8]
		for axis := 0; axis < 3; axis++ {
			if v[axis] != 0 && v[axis] != 1 {
				t.Fatalf("vertex %d axis %d = %v", i, axis, v[axis])
			}
		}
		n := mgl32.Vec3{v[3], v[4], v[5]}
		if n.Len() != 1 {
			t.Fatalf("vertex %d normal %v not unit", i, n)
		}
		// The normal points out of the face the vertex lies on.
		for axis := 0; axis < 3; axis++ {
			if n[axis] == 1 && v[axis] != 1 || n[axis] == -1 && v[axis] != 0 {
				t.Fatalf("vertex %d normal %v on wrong face %v", i, n, v[:3])
			}
		}
	}
}

func TestSceneBoxes(t *testing.T) {
	sess := game.NewSession(game.DefaultConfig(), 1)
	cfg := sess.Config()
	boxes := sceneBoxes(sess)

	byKind := map[boxKind]sceneBox{}
	for _, b := range boxes {
		byKind[b.kind] = b
	}

	car := byKind[boxCar]
	if car.pos != sess.PlayerBox().Pos || car.scale != sess.PlayerBox().Scale {
		t.Fatalf("car box %+v does not match player box", car)
	}

	track := byKind[boxTrack]
	if top := track.pos.Y() + track.scale.Y(); top > car.pos.Y() {
		t.Fatalf("track top %v above car bottom %v", top, car.pos.Y())
	}
	if track.pos.X() > cfg.Pool.LaneMin || track.pos.X()+track.scale.X() < cfg.Pool.LaneMax+cfg.Pool.Size {
		t.Fatal("track narrower than the lanes")
	}
	if track.pos.Z() > cfg.FinishDepth || track.pos.Z()+track.scale.Z() < cfg.ActorStart.Z() {
		t.Fatal("track shorter than the course")
	}

	finish := byKind[boxFinish]
	if z := finish.pos.Z() + finish.scale.Z(); z != cfg.FinishDepth {
		t.Fatalf("finish band ends at %v, want %v", z, cfg.FinishDepth)
	}

	moon := byKind[boxMoon]
	centre := moon.pos.Add(moon.scale.Mul(0.5))
	want := sess.Camera().Position.Add(mgl32.Vec3{0, 10, -200})
	if !centre.ApproxEqual(want) {
		t.Fatalf("moon centre %v, want %v", centre, want)
	}
}

func TestTexturesAreOpaque(t *testing.T) {
	rng := game.NewRand(3)
	for name, img := range map[string]texImage{
		"crate":  cratePixels(rng),
		"car":    carPixels(rng),
		"track":  trackPixels(rng),
		"finish": finishPixels(),
		"moon":   moonPixels(rng),
	} {
		if len(img.pix) != img.size*img.size*4 {
			t.Fatalf("%s: %d bytes for size %d", name, len(img.pix), img.size)
		}
		for i := 3; i < len(img.pix); i += 4 {
			if img.pix[i] != 255 {
				t.Fatalf("%s: pixel %d not opaque", name, i/4)
			}
		}
	}

	f := finishPixels()
	if f.at(0, 0) == f.at(1, 0) {
		t.Fatal("finish band is not a checkerboard")
	}
}

func TestAppendString(t *testing.T) {
	buf := appendString(nil, "A B", 10, 20, 2, hud.Red)
	if len(buf) != 2*6*8 {
		t.Fatalf("got %d floats, want two glyph quads", len(buf))
	}
	// Second glyph starts two cells to the right.
	if x := buf[6*8]; x != 10+2*hud.CellW*2 {
		t.Fatalf("second glyph at x=%v", x)
	}
	if buf[4] != 1 || buf[7] != 1 {
		t.Fatalf("colour = %v", buf[4:8])
	}
	if w := TextWidth("A B", 2); w != 3*hud.CellW*2 {
		t.Fatalf("TextWidth = %v", w)
	}
}

func TestHUDLayoutCentresOverlay(t *testing.T) {
	sess := game.NewSession(game.DefaultConfig(), 1)
	lines := hudLayout(sess, 1000, 800)
	if len(lines) != 1+len(hud.Overlay(sess.State())) {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].X != 16 || lines[0].Y != 16 {
		t.Fatalf("status at %v,%v", lines[0].X, lines[0].Y)
	}
	for _, l := range lines[1:] {
		mid := l.X + TextWidth(l.Text, l.Px)/2
		if mid < 499 || mid > 501 {
			t.Errorf("%q centred at %v", l.Text, mid)
		}
	}

	sess.Tick(0.01, game.FrameInput{Forward: true})
	if got := hudLayout(sess, 1000, 800); len(got) != 1 {
		t.Fatalf("running HUD has %d lines, want status only", len(got))
	}
}

func TestEngineSpeedAndQuit(t *testing.T) {
	sess := game.NewSession(game.DefaultConfig(), 1)
	if engineSpeed(sess) != 0 {
		t.Fatal("idle engine should be silent")
	}
	sess.Tick(0.01, game.FrameInput{Forward: true})
	if engineSpeed(sess) <= 0 {
		t.Fatal("running engine should follow speed")
	}
	if quitRequested(sess.Tick(0.01, game.FrameInput{})) {
		t.Fatal("no quit requested")
	}
	if !quitRequested(sess.Tick(0.01, game.FrameInput{Quit: true})) {
		t.Fatal("quit not detected")
	}
}

func TestParticleCubeCentresOnParticle(t *testing.T) {
	p := game.Particle{Pos: mgl32.Vec3{1, 2, 3}, Size: 0.5, MaxLife: 1, Col: game.RGB{R: 255}, Kind: game.ParticleDebris}
	pos, scale, tint := particleCube(p)
	if centre := pos.Add(scale.Mul(0.5)); !centre.ApproxEqual(p.Pos) {
		t.Fatalf("cube centre %v, want %v", centre, p.Pos)
	}
	if scale.X() != 0.5 {
		t.Fatalf("debris should keep full size, got %v", scale.X())
	}
	if tint != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("tint = %v", tint)
	}

	p.Kind = game.ParticleConfetti
	p.Life = 0.9
	if _, s, _ := particleCube(p); s.X() >= 0.5 {
		t.Fatalf("fading particle should shrink, size %v", s.X())
	}
}

package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraAxes(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 0}, 2)
	if c.Front != (mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("front = %v, want -Z", c.Front)
	}
	if c.Right != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("right = %v, want +X", c.Right)
	}
	if c.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("up = %v, want +Y", c.Up)
	}
}

func TestCameraMove(t *testing.T) {
	tests := []struct {
		dir  CameraMove
		want mgl32.Vec3
	}{
		{MoveForward, mgl32.Vec3{0, 0, -1}},
		{MoveBackward, mgl32.Vec3{0, 0, 1}},
		{MoveLeft, mgl32.Vec3{-1, 0, 0}},
		{MoveRight, mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		c := NewCamera(mgl32.Vec3{0, 0, 0}, 2)
		c.Move(tt.dir, 0.5)
		if !c.Position.ApproxEqual(tt.want) {
			t.Errorf("move %d: position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestCameraScrollClamps(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 1)
	c.Scroll(10)
	if c.Zoom != DefaultZoom-10 {
		t.Fatalf("zoom = %f, want %f", c.Zoom, DefaultZoom-10)
	}
	c.Scroll(1000)
	if c.Zoom != MinZoom {
		t.Fatalf("zoom = %f, want %f", c.Zoom, MinZoom)
	}
	c.Scroll(-1000)
	if c.Zoom != MaxZoom {
		t.Fatalf("zoom = %f, want %f", c.Zoom, MaxZoom)
	}
}

func TestViewMatrixLooksForward(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 3.7, -11}, 1)
	// A point straight ahead lands on the view axis at negative view Z.
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 3.7, -20, 1})
	if !mgl32.FloatEqual(p.X(), 0) || !mgl32.FloatEqual(p.Y(), 0) || p.Z() >= 0 {
		t.Fatalf("view-space point = %v", p)
	}
}

func TestRandRangeF32(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 10000; i++ {
		v := r.RangeF32(LaneMin, LaneMax)
		if v < LaneMin || v > LaneMax {
			t.Fatalf("draw %d = %f outside range", i, v)
		}
	}
	if v := r.RangeF32(4, 4); v != 4 {
		t.Fatalf("degenerate range = %f, want 4", v)
	}
}

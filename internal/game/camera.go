package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fly camera. The actor is the camera: the car volume hangs
// at a fixed offset from it.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	Speed float32 // units per second
	Zoom  float32 // vertical field of view, degrees
}

type CameraMove int

const (
	MoveForward CameraMove = iota
	MoveBackward
	MoveLeft
	MoveRight
)

// NewCamera looks down -Z with +X to the right.
func NewCamera(pos mgl32.Vec3, speed float32) Camera {
	c := Camera{
		Position: pos,
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Yaw:      -90,
		Pitch:    0,
		Speed:    speed,
		Zoom:     DefaultZoom,
	}
	c.updateVectors()
	return c
}

// Move steps the camera by Speed*dt along the requested direction.
func (c *Camera) Move(dir CameraMove, dt float32) {
	v := c.Speed * dt
	switch dir {
	case MoveForward:
		c.Position = c.Position.Add(c.Front.Mul(v))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Front.Mul(v))
	case MoveLeft:
		c.Position = c.Position.Sub(c.Right.Mul(v))
	case MoveRight:
		c.Position = c.Position.Add(c.Right.Mul(v))
	}
}

// Scroll narrows or widens the field of view.
func (c *Camera) Scroll(yOffset float32) {
	c.Zoom = clampF(c.Zoom-yOffset, MinZoom, MaxZoom)
}

func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, 0.1, 1000)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = snap(front.Normalize())
	c.Right = snap(c.Front.Cross(c.WorldUp).Normalize())
	c.Up = snap(c.Right.Cross(c.Front).Normalize())
}

// snap zeroes float noise from the trig above so an axis-aligned camera
// moves exactly along its axes.
func snap(v mgl32.Vec3) mgl32.Vec3 {
	for i := range v {
		if v[i] > -1e-6 && v[i] < 1e-6 {
			v[i] = 0
		}
	}
	return v
}

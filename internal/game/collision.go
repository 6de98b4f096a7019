package game

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned box anchored at its minimum corner: it spans
// [Pos, Pos+Scale] on each axis. Obstacle meshes are drawn centred on
// their position, but collision thresholds were tuned against this
// corner convention, so it must not be switched to centred boxes.
type Box struct {
	Pos   mgl32.Vec3
	Scale mgl32.Vec3
}

// Overlaps reports whether two boxes overlap on all three axes.
// Touching faces count as overlap.
func Overlaps(aPos, aScale, bPos, bScale mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if !(aPos[i]+aScale[i] >= bPos[i] && bPos[i]+bScale[i] >= aPos[i]) {
			return false
		}
	}
	return true
}

func (b Box) Overlaps(o Box) bool {
	return Overlaps(b.Pos, b.Scale, o.Pos, o.Scale)
}

// FirstHit returns the index of the first obstacle overlapping the player.
// Only discrete overlap is tested; a fast actor can pass through an
// obstacle between two frames.
func FirstHit(player Box, obstacles []Obstacle) (int, bool) {
	for i := range obstacles {
		if player.Overlaps(obstacles[i].Box()) {
			return i, true
		}
	}
	return -1, false
}

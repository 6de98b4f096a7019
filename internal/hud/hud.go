package hud

import (
	"fmt"

	"lanerunner/internal/game"
)

type Color struct {
	R, G, B uint8
}

var (
	White  = Color{255, 255, 255}
	Green  = Color{100, 255, 100}
	Red    = Color{255, 80, 80}
	Yellow = Color{255, 255, 100}
)

// Line is one row of overlay text. Scale is relative to the status line.
type Line struct {
	Text  string
	Color Color
	Scale float32
}

var controlsPanel = []Line{
	{Text: "W  START", Color: White, Scale: 1},
	{Text: "A / D  STEER", Color: White, Scale: 1},
	{Text: "R  RESET", Color: White, Scale: 1},
	{Text: "ESC  QUIT", Color: White, Scale: 1},
}

// Overlay returns the centred messages for the current state: the
// controls panel until the first forward input, then the outcome banner
// once the run ends.
func Overlay(st game.GameState) []Line {
	var lines []Line
	switch {
	case st.GameOverVisible():
		lines = append(lines,
			Line{Text: "GAME OVER", Color: Red, Scale: 4},
			Line{Text: "PRESS R TO RETRY", Color: White, Scale: 1},
		)
	case st.WinnerVisible():
		lines = append(lines,
			Line{Text: "WINNER!", Color: Green, Scale: 4},
			Line{Text: "PRESS R TO RACE AGAIN", Color: White, Scale: 1},
		)
	}
	if st.ControlsPanelVisible() {
		lines = append(lines, Line{Text: "CYBER RACER", Color: Yellow, Scale: 3})
		lines = append(lines, controlsPanel...)
	}
	return lines
}

// Status is the single-line readout shown during play.
func Status(s *game.Session) string {
	cam := s.Camera()
	dist := s.Config().ActorStart.Z() - cam.Position.Z()
	if dist < 0 {
		dist = 0
	}
	return fmt.Sprintf("SPEED %.1f  DIST %.0f  %3.0f%%", cam.Speed, dist, s.Progress()*100)
}

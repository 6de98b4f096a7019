package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"lanerunner/internal/game"
)

// keySource is the part of *glfw.Window the input mapping reads.
type keySource interface {
	GetKey(key glfw.Key) glfw.Action
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(src keySource, key glfw.Key) bool {
	down := src.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Frame samples the keyboard once. Driving and steering follow the held
// state; reset fires on the press edge only.
func (in *Input) Frame(src keySource) game.FrameInput {
	held := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if src.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	return game.FrameInput{
		Forward: held(glfw.KeyW, glfw.KeyUp),
		Left:    held(glfw.KeyA, glfw.KeyLeft),
		Right:   held(glfw.KeyD, glfw.KeyRight),
		Reset:   in.JustPressed(src, glfw.KeyR),
		Quit:    held(glfw.KeyEscape),
	}
}

// Package desktop is the windowed frontend: a GLFW window with an OpenGL
// 4.1 renderer driving a session from the keyboard.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lanerunner/internal/audio"
	"lanerunner/internal/config"
	"lanerunner/internal/game"
)

// Run opens the window and drives sess until the window closes or the
// player quits. snd may be nil for a silent run.
func Run(s config.Settings, sess *game.Session, snd *audio.System) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(s)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		sess.Zoom(float32(yoff))
	})

	gl.Enable(gl.DEPTH_TEST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer(s.Seed)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > game.MaxFrameDelta {
			dt = game.MaxFrameDelta
		}

		glfw.PollEvents()
		if quitRequested(sess.Tick(float32(dt), input.Frame(window))) {
			window.SetShouldClose(true)
			continue
		}
		snd.SetEngineSpeed(engineSpeed(sess))

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.DrawScene(sess, fbW, fbH)
		rend.DrawHUD(sess, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}

func quitRequested(events []game.Event) bool {
	for _, e := range events {
		if e.Type == game.EventQuit {
			return true
		}
	}
	return false
}

// engineSpeed is the drone pitch input: the actor's speed while running,
// silence otherwise.
func engineSpeed(sess *game.Session) float32 {
	if sess.State().Phase() != game.PhaseRunning {
		return 0
	}
	return sess.Camera().Speed
}

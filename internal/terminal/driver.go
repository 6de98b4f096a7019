// Package terminal drives a session from a text terminal: a top-down view
// of the lanes drawn with tcell, fed by keyboard events.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"lanerunner/internal/game"
)

const (
	frameInterval = 33 * time.Millisecond

	// Terminals only report key presses (plus auto-repeat), so a steer key
	// keeps steering for a short while after each press.
	steerHold = 0.12

	// ViewDepth is how many world units ahead of the car fit in the field.
	ViewDepth = 120.0
)

// Driver owns the frame loop for one session on one screen.
type Driver struct {
	screen tcell.Screen
	sess   *game.Session

	pending   game.FrameInput
	leftHold  float32
	rightHold float32
}

func New(screen tcell.Screen, sess *game.Session) *Driver {
	return &Driver{screen: screen, sess: sess}
}

// HandleEvent folds a tcell event into the input for the next Step.
func (d *Driver) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			d.pending.Quit = true
		case tcell.KeyUp:
			d.pending.Forward = true
		case tcell.KeyLeft:
			d.leftHold = steerHold
		case tcell.KeyRight:
			d.rightHold = steerHold
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'w', 'W':
				d.pending.Forward = true
			case 'a', 'A':
				d.leftHold = steerHold
			case 'd', 'D':
				d.rightHold = steerHold
			case 'r', 'R':
				d.pending.Reset = true
			case 'q', 'Q':
				d.pending.Quit = true
			}
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
}

// Step ticks the session with everything gathered since the last Step and
// redraws. It reports false once the player asked to quit.
func (d *Driver) Step(dt float32) ([]game.Event, bool) {
	in := d.pending
	in.Left = d.leftHold > 0
	in.Right = d.rightHold > 0
	d.pending = game.FrameInput{}
	d.leftHold -= dt
	d.rightHold -= dt

	events := d.sess.Tick(dt, in)
	d.Draw()
	for _, e := range events {
		if e.Type == game.EventQuit {
			return events, false
		}
	}
	return events, true
}

// Run polls events and steps at a fixed interval until quit or ctx ends.
func (d *Driver) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(evCh)
				return
			}
			evCh <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-evCh:
			if !ok {
				return nil
			}
			d.HandleEvent(ev)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > game.MaxFrameDelta {
				dt = game.MaxFrameDelta
			}
			if _, ok := d.Step(float32(dt)); !ok {
				return nil
			}
		}
	}
}
